/*
Package odge provides a retained-mode game UI driven by named input commands.

# Overview

Widgets are long-lived values. A UI owns two containers: a modal
ControlStack where only the top control receives input, and a non-modal
PopUpQueue of timed popups. Each frame the host samples input, updates the
UI and draws it through a Renderer supplied by a backend (backend/opengl,
backend/ebiten or backend/raylib).

Layout is lazy. Changing a component's size, location or style marks it
messy; containers lay out messy components before the next draw, so clean
components cost nothing.

# Quick Start

	// Setup
	devices := opengl.NewDevices(window)
	in, _ := input.New(devices, devices, input.WithPlayerCount(1))
	ui, _ := odge.New(in)

	menu := odge.NewListMenu(nil, odge.WithHeading("PAUSED"))
	resume := odge.NewTextButton("Resume", nil)
	resume.Submitted.Listen(func() { _ = menu.Close() })
	menu.Add(resume)
	_ = ui.Controls.Open(menu)

	// Game loop
	for !window.ShouldClose() {
	    if err := ui.Update(); err != nil {
	        log.Fatal(err)
	    }
	    ui.Draw(renderer)
	    renderer.Flush()
	    window.SwapBuffers()
	}

# Commands

Controls never read keys directly. They query commands registered in the
input's CommandMap; New registers the navigation commands unless
WithNavigation(false) is given:

	ui.up       Up, W, d-pad up, left stick up
	ui.down     Down, S, d-pad down, left stick down
	ui.left     Left, A, d-pad left, left stick left
	ui.right    Right, D, d-pad right, left stick right

Submit and cancel come from the control's Style:

	Enter, Space, A, Start       Submit
	Escape, Backspace, B, Back   Cancel (closes the control when CloseOnCancel is set)

A control that queries a command nobody registered fails its Update with
input.ErrUnknownCommand, and UI.Update returns that error.

# Widgets

## Buttons

	NewTextButton(text string, style *Style, opts ...Option) *TextButton
	    A selectable text label.

	NewImageButton(img Image, src Rect, style *Style, opts ...Option) *ImageButton
	    A selectable image, tinted by the style's image colors.

## Controls

	NewListMenu(style *Style, opts ...Option) *ListMenu
	    Vertical menu. Up/down move the selection, left/right jump a page.
	    Options: WithHeading, WithWrapAround (on by default), WithPageSize.

	NewGalleryMenu(style *Style, opts ...Option) *GalleryMenu
	    Grid of buttons in WithColumns columns.

	NewDialogBox(pages []string, style *Style, opts ...Option) *DialogBox
	    Paged text. Submit advances and closes after the last page.

	NewQuestionBox(message string, yes, no ButtonWidget, style *Style, opts ...Option) *QuestionBox
	    Yes/No question. Nil buttons default to "Yes" and "No".

	NewSelectWheel[T any](options []T, selected int, style *Style, opts ...Option) (*SelectWheel[T], error)
	NewNumericWheel(minValue, maxValue, step, initial int, style *Style, opts ...Option) *NumericWheel
	    One value stepped with left/right. Wheels stop at their ends unless
	    given WithWrapAround(true).

## PopUps

	NewPopText(text string, at Point, style *Style, opts ...Option) *PopText
	    Floating text that lives WithLifetime frames.
	    Options: WithMotion, WithFade.

	NewNoteBox(text string, style *Style, opts ...Option) *NoteBox
	    Boxed notice that lives 300 frames unless given WithLifetime.

# Styles

A Style is shared by pointer. Edit it inside Style.Update so every holder
notices the change on the next frame:

	style.Update(func(s *odge.Style) {
	    s.Padding = odge.Pad(16)
	})

Menus pass their style to their buttons with CascadeStyle, and
ControlStack.SetAllStyles restyles every open control.

# Logging

Debug logging of opens, closes, expiries and focus changes is off by
default. Enable it with SetVerbose(true), or route it with SetLogger.
*/
package odge
