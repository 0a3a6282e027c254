// ABOUTME: Raw interleaved pixel buffer decoupling the pipeline from image.Image
// ABOUTME: Converts decoded images to row-major samples with 1, 2, 3 or 4 channels

package imaging

import (
	"image"
	"image/color"
)

// Buffer holds decoded pixel samples in row-major, top-to-bottom,
// left-to-right order with Channels interleaved samples per pixel.
// It is never mutated after construction.
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// RGBAt returns the 8-bit RGB components of the pixel at (x, y).
// Buffers with fewer than 3 channels replicate the first sample across
// R, G and B; any alpha channel is ignored.
func (b *Buffer) RGBAt(x, y int) (uint8, uint8, uint8) {
	i := (y*b.Width + x) * b.Channels
	if b.Channels < 3 {
		s := b.Pix[i]
		return s, s, s
	}
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// FromImage converts a decoded image to a Buffer. Grayscale images keep
// their single channel and NRGBA images keep all four without per-pixel
// conversion; everything else goes through color.NRGBAModel.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		buf := &Buffer{Width: w, Height: h, Channels: 1, Pix: make([]uint8, w*h)}
		for y := range h {
			copy(buf.Pix[y*w:(y+1)*w], src.Pix[y*src.Stride:])
		}
		return buf
	case *image.NRGBA:
		buf := &Buffer{Width: w, Height: h, Channels: 4, Pix: make([]uint8, w*h*4)}
		for y := range h {
			copy(buf.Pix[y*w*4:(y+1)*w*4], src.Pix[y*src.Stride:])
		}
		return buf
	}

	buf := &Buffer{Width: w, Height: h, Channels: 4, Pix: make([]uint8, 0, w*h*4)}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf.Pix = append(buf.Pix, c.R, c.G, c.B, c.A)
		}
	}
	return buf
}
