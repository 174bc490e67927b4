package odge_test

import (
	"testing"

	"github.com/go-theft-auto/odge"
)

func TestDrawList_BatchesByTexture(t *testing.T) {
	dl := odge.AcquireDrawList()
	defer odge.ReleaseDrawList(dl)

	dl.AddRect(odge.Rect{W: 10, H: 10}, odge.ColorRed)
	dl.AddRect(odge.Rect{X: 10, W: 10, H: 10}, odge.ColorBlue)
	dl.AddImage(7, odge.Pt(64, 64), odge.Rect{W: 32, H: 32}, odge.Rect{}, odge.ColorWhite)
	dl.AddImage(7, odge.Pt(64, 64), odge.Rect{Y: 32, W: 32, H: 32}, odge.Rect{X: 32, W: 32, H: 32}, odge.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 16 {
		t.Errorf("Expected 16 vertices, got %d", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 24 {
		t.Errorf("Expected 24 indices, got %d", len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 0 || dl.CmdBuffer[0].ElemCount != 12 {
		t.Errorf("Expected untextured command with 12 indices, got %+v", dl.CmdBuffer[0])
	}
	if dl.CmdBuffer[1].TextureID != 7 || dl.CmdBuffer[1].ElemCount != 12 {
		t.Errorf("Expected texture 7 with 12 indices, got %+v", dl.CmdBuffer[1])
	}

	// Second image samples the right half of the texture.
	v := dl.VtxBuffer[12]
	if v.TexCoord != [2]float32{0.5, 0} {
		t.Errorf("Expected UV (0.5, 0), got %v", v.TexCoord)
	}
	if v.Color != uint32(odge.ColorWhite) {
		t.Errorf("Expected white vertex, got %08x", v.Color)
	}
}

func TestDrawList_SkipsInvisible(t *testing.T) {
	dl := odge.AcquireDrawList()
	defer odge.ReleaseDrawList(dl)

	dl.AddRect(odge.Rect{W: 10, H: 10}, odge.ColorTransparent)
	dl.AddRect(odge.Rect{W: 0, H: 10}, odge.ColorRed)
	dl.AddImage(1, odge.Point{}, odge.Rect{W: 5, H: 5}, odge.Rect{}, odge.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Errorf("Expected nothing recorded, got %d vertices and %d commands", len(dl.VtxBuffer), len(dl.CmdBuffer))
	}
}

func TestDrawList_Clip(t *testing.T) {
	dl := odge.AcquireDrawList()
	defer odge.ReleaseDrawList(dl)

	dl.PushClipRect(odge.Rect{X: 1, Y: 2, W: 3, H: 4})
	dl.AddRect(odge.Rect{W: 10, H: 10}, odge.ColorRed)
	dl.PopClipRect()
	dl.AddRect(odge.Rect{W: 10, H: 10}, odge.ColorRed)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if got := dl.CmdBuffer[0].ClipRect; got != [4]float32{1, 2, 4, 6} {
		t.Errorf("Expected clip (1, 2, 4, 6), got %v", got)
	}
	if dl.CmdBuffer[1].ClipRect[2] < 1e8 {
		t.Errorf("Expected the default clip restored, got %v", dl.CmdBuffer[1].ClipRect)
	}
}

func TestDrawList_Clear(t *testing.T) {
	dl := odge.AcquireDrawList()
	defer odge.ReleaseDrawList(dl)

	dl.AddRect(odge.Rect{W: 10, H: 10}, odge.ColorRed)
	dl.Clear()
	if len(dl.VtxBuffer) != 0 || len(dl.IdxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Errorf("Expected empty buffers after Clear")
	}
}
