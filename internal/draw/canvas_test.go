package draw

import (
	"math"
	"strings"
	"testing"
)

func TestCanvasStrokeWithTranslate(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)

	c.Save()
	c.Translate(50, 50)
	c.BeginPath()
	c.MoveTo(-20, 0)
	c.LineTo(20, 0)
	c.Stroke()
	c.Restore()

	for x := 3; x <= 7; x++ {
		if !c.Pixel(x, 5) {
			t.Errorf("expected pixel (%d,5) set", x)
		}
	}
	if got := c.PixelCount(); got != 5 {
		t.Errorf("PixelCount() = %d, want 5", got)
	}
}

func TestCanvasRestoreResetsTransform(t *testing.T) {
	c := NewCanvas(20, 10)

	c.Save()
	c.Translate(10, 10)
	c.Restore()

	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(0, 0)
	c.Stroke()

	if !c.Pixel(0, 0) {
		t.Error("expected pixel at origin after Restore")
	}
	if c.Pixel(10, 10) {
		t.Error("translation leaked past Restore")
	}
}

func TestCanvasRotate(t *testing.T) {
	c := NewCanvas(20, 10)

	c.Save()
	c.Translate(5, 5)
	c.Rotate(math.Pi / 2)
	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(4, 0)
	c.Stroke()
	c.Restore()

	if !c.Pixel(5, 9) {
		t.Error("rotated line should end at (5,9)")
	}
	if c.Pixel(9, 5) {
		t.Error("unrotated end point (9,5) should be empty")
	}
}

func TestCanvasScaleFillRect(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Save()
	c.Scale(2, 2)
	c.FillRect(0, 0, 1, 1)
	c.Restore()

	if !c.Pixel(1, 1) {
		t.Error("scaled rect should cover (1,1)")
	}
	if c.Pixel(4, 4) {
		t.Error("scaled rect should not reach (4,4)")
	}
}

func TestCanvasClearRect(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.FillRect(0, 0, 100, 100)
	if c.PixelCount() == 0 {
		t.Fatal("FillRect drew nothing")
	}

	c.ClearRect(0, 0, 50, 100)
	if c.Pixel(2, 2) {
		t.Error("left half should be cleared")
	}
	if !c.Pixel(8, 2) {
		t.Error("right half should remain")
	}

	c.ClearRect(0, 0, 100, 100)
	if got := c.PixelCount(); got != 0 {
		t.Errorf("PixelCount() after full clear = %d, want 0", got)
	}
}

func TestCanvasGlobalAlphaCutoff(t *testing.T) {
	c := NewCanvas(10, 5)

	c.SetGlobalAlpha(0.1)
	c.FillRect(0, 0, 5, 5)
	if got := c.PixelCount(); got != 0 {
		t.Errorf("faint fill drew %d pixels", got)
	}

	c.SetGlobalAlpha(1)
	c.FillRect(0, 0, 5, 5)
	if c.PixelCount() == 0 {
		t.Error("opaque fill drew nothing")
	}
}

func TestCanvasArcFill(t *testing.T) {
	c := NewCanvas(20, 10)

	c.BeginPath()
	c.Arc(10, 10, 4, 0, 2*math.Pi)
	c.Fill()

	if !c.Pixel(10, 10) {
		t.Error("filled circle should cover its center")
	}
	if c.Pixel(0, 0) {
		t.Error("filled circle should not reach the corner")
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(2, 1)
	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(0, 1)
	c.Stroke()

	var sb strings.Builder
	c.Render(&sb)
	if got, want := sb.String(), "\033[1;1H█"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCanvasRenderBorderNoOffset(t *testing.T) {
	c := NewCanvas(4, 2)
	var sb strings.Builder
	c.RenderBorder(&sb)
	if sb.Len() != 0 {
		t.Errorf("RenderBorder without offset wrote %q", sb.String())
	}
}

func TestChunkWriterFlush(t *testing.T) {
	var sb strings.Builder
	cw := NewChunkWriter(&sb, 2, 1)
	cw.WriteAt(1, 1, "hi")
	if sb.Len() != 0 {
		t.Fatal("ChunkWriter wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := sb.String(), "\033[2;3Hhi"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
