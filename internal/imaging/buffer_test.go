// ABOUTME: Tests for image-to-buffer conversion
// ABOUTME: Covers grayscale and NRGBA fast paths, model conversion, and subimages

package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImage_NRGBA(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	buf := FromImage(img)
	if buf.Width != 2 || buf.Height != 1 || buf.Channels != 4 {
		t.Fatalf("got %dx%d c=%d, want 2x1 c=4", buf.Width, buf.Height, buf.Channels)
	}
	if r, g, b := buf.RGBAt(0, 0); r != 10 || g != 20 || b != 30 {
		t.Errorf("pixel (0,0) = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
	// Straight alpha: samples stay unpremultiplied.
	if r, g, b := buf.RGBAt(1, 0); r != 200 || g != 100 || b != 50 {
		t.Errorf("pixel (1,0) = (%d,%d,%d), want (200,100,50)", r, g, b)
	}
}

func TestFromImage_Gray(t *testing.T) {
	t.Parallel()

	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(2, 1, color.Gray{Y: 77})

	buf := FromImage(img)
	if buf.Channels != 1 {
		t.Fatalf("channels = %d, want 1", buf.Channels)
	}
	if len(buf.Pix) != 3*2 {
		t.Fatalf("pix length = %d, want 6", len(buf.Pix))
	}
	if r, g, b := buf.RGBAt(2, 1); r != 77 || g != 77 || b != 77 {
		t.Errorf("gray pixel = (%d,%d,%d), want replicated 77", r, g, b)
	}
	if r, _, _ := buf.RGBAt(0, 0); r != 0 {
		t.Errorf("unset gray pixel = %d, want 0", r)
	}
}

func TestFromImage_RGBAConvertsThroughNRGBA(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 40, G: 80, B: 160, A: 255})

	buf := FromImage(img)
	if buf.Channels != 4 {
		t.Fatalf("channels = %d, want 4", buf.Channels)
	}
	if r, g, b := buf.RGBAt(0, 0); r != 40 || g != 80 || b != 160 {
		t.Errorf("pixel = (%d,%d,%d), want (40,80,160)", r, g, b)
	}
}

func TestFromImage_SubImageOffset(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(16*x + y), A: 255})
		}
	}

	sub := img.SubImage(image.Rect(1, 2, 3, 4)).(*image.NRGBA)
	buf := FromImage(sub)
	if buf.Width != 2 || buf.Height != 2 {
		t.Fatalf("got %dx%d, want 2x2", buf.Width, buf.Height)
	}
	// (0,0) of the buffer is (1,2) of the parent image.
	if r, _, _ := buf.RGBAt(0, 0); r != 16*1+2 {
		t.Errorf("pixel (0,0) R = %d, want %d", r, 16*1+2)
	}
	if r, _, _ := buf.RGBAt(1, 1); r != 16*2+3 {
		t.Errorf("pixel (1,1) R = %d, want %d", r, 16*2+3)
	}
}

func TestFromImage_SubImageGenericPath(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.SetRGBA(2, 2, color.RGBA{R: 99, A: 255})

	sub := img.SubImage(image.Rect(2, 2, 3, 3)).(*image.RGBA)
	buf := FromImage(sub)
	if buf.Width != 1 || buf.Height != 1 {
		t.Fatalf("got %dx%d, want 1x1", buf.Width, buf.Height)
	}
	if r, _, _ := buf.RGBAt(0, 0); r != 99 {
		t.Errorf("pixel R = %d, want 99", r)
	}
}

func TestRGBAt_TwoChannel(t *testing.T) {
	t.Parallel()

	buf := &Buffer{Width: 2, Height: 1, Channels: 2, Pix: []uint8{50, 255, 80, 0}}
	if r, g, b := buf.RGBAt(1, 0); r != 80 || g != 80 || b != 80 {
		t.Errorf("pixel (1,0) = (%d,%d,%d), want replicated 80", r, g, b)
	}
}
