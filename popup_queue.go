package odge

import (
	"fmt"
	"slices"
)

// PopUpQueue is the non-modal container: a FIFO of timed popups.
//
// In update-all mode every popup ages each frame; in update-one mode only
// the head does, so popups are shown one after another. Either way a popup
// leaves the queue exactly once, when its lifetime ends or it is closed.
type PopUpQueue struct {
	items     []PopUpWidget
	updateAll bool
}

// NewPopUpQueue creates an empty queue in update-one mode.
func NewPopUpQueue() *PopUpQueue {
	return &PopUpQueue{}
}

// SetUpdateAll selects update-all (true) or update-one (false) mode. Draw
// follows the same mode.
func (q *PopUpQueue) SetUpdateAll(v bool) { q.updateAll = v }

// UpdateAll reports the mode.
func (q *PopUpQueue) UpdateAll() bool { return q.updateAll }

// Len returns the number of popups.
func (q *PopUpQueue) Len() int { return len(q.items) }

// Head returns the oldest popup.
func (q *PopUpQueue) Head() (PopUpWidget, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

// Open enqueues w, marks it opened and fires Opened.
func (q *PopUpQueue) Open(w PopUpWidget) error {
	p := w.AsPopUp()
	if p.owner != nil {
		return fmt.Errorf("open %q: %w", p.Name, ErrAlreadyOwned)
	}
	q.items = append(q.items, w)
	p.owner = q
	p.opened = true
	p.closed = false
	p.Invalidate()
	logger.Debug("popup opened", "popup", p.Name, "queued", len(q.items))
	p.Opened.Emit()
	return nil
}

// Close removes w wherever it is in the queue, keeping the order of the rest.
func (q *PopUpQueue) Close(w PopUpWidget) error {
	return q.closePopUp(w.AsPopUp())
}

func (q *PopUpQueue) closePopUp(p *PopUp) error {
	i := q.index(p)
	if i < 0 {
		return fmt.Errorf("close %q: %w", p.Name, ErrNotFound)
	}
	q.remove(i)
	return nil
}

// remove takes the popup at i out of the queue, marks it closed and fires
// Closed.
func (q *PopUpQueue) remove(i int) {
	p := q.items[i].AsPopUp()
	q.items = slices.Delete(q.items, i, i+1)
	p.owner = nil
	p.opened = false
	p.closed = true
	logger.Debug("popup closed", "popup", p.Name, "queued", len(q.items))
	p.Closed.Emit()
}

// CloseAll closes every popup from head to tail.
func (q *PopUpQueue) CloseAll() {
	for len(q.items) > 0 {
		q.remove(0)
	}
}

func (q *PopUpQueue) index(p *PopUp) int {
	return slices.IndexFunc(q.items, func(w PopUpWidget) bool { return w.AsPopUp() == p })
}

// Contains reports whether w is in the queue.
func (q *PopUpQueue) Contains(w PopUpWidget) bool {
	return q.index(w.AsPopUp()) >= 0
}

// Has reports whether a popup with the given name is queued.
func (q *PopUpQueue) Has(name string) bool {
	_, err := q.Find(name)
	return err == nil
}

// Find returns the first popup from the head with the given name.
func (q *PopUpQueue) Find(name string) (PopUpWidget, error) {
	for _, w := range q.items {
		if w.Base().Name == name {
			return w, nil
		}
	}
	return nil, fmt.Errorf("popup %q: %w", name, ErrNotFound)
}

// PopUps returns the queue head to tail.
func (q *PopUpQueue) PopUps() []PopUpWidget { return slices.Clone(q.items) }

// Update runs one frame in the current mode, then refreshes what remains.
func (q *PopUpQueue) Update() {
	if q.updateAll {
		q.updateEach()
	} else {
		q.updateHead()
	}
	for _, w := range q.items {
		refresh(w)
	}
}

// updateEach updates every popup that was queued when the frame started,
// once, and drops those that expired. Popups opened during the pass wait for
// the next frame; popups closed during the pass are skipped.
func (q *PopUpQueue) updateEach() {
	for _, w := range slices.Clone(q.items) {
		p := w.AsPopUp()
		if p.owner != q {
			continue
		}
		w.Update()
		if p.owner == q && p.Expired() {
			logger.Debug("popup expired", "popup", p.Name)
			q.remove(q.index(p))
		}
	}
}

// updateHead updates only the head. A head whose lifetime already ran out
// is dropped without another update.
func (q *PopUpQueue) updateHead() {
	w, ok := q.Head()
	if !ok {
		return
	}
	if w.AsPopUp().Expired() {
		logger.Debug("popup expired", "popup", w.Base().Name)
		q.remove(0)
		return
	}
	w.Update()
}

// Draw paints every popup in update-all mode, or only the head.
func (q *PopUpQueue) Draw(r Renderer) {
	for _, w := range q.items {
		refresh(w)
	}
	if !q.updateAll {
		if w, ok := q.Head(); ok {
			w.Draw(r)
		}
		return
	}
	for _, w := range q.items {
		w.Draw(r)
	}
}
