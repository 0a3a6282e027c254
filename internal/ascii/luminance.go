// ABOUTME: Region reducer averaging BT.709 luminance over a source rectangle
// ABOUTME: The hot loop; every source pixel is visited exactly once per render

package ascii

import "github.com/mauromedda/imgascii/internal/imaging"

// ITU-R BT.709 luma coefficients.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// AverageLuminance reduces a source rectangle to a single luminance in
// [0,1] by averaging the perceptual weight of every enclosed pixel. An
// empty rectangle yields 0 (darkest) rather than an error.
func AverageLuminance(buf *imaging.Buffer, r Rect) float64 {
	if r.Empty() {
		return 0.0
	}
	var sum float64
	count := 0
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			cr, cg, cb := buf.RGBAt(x, y)
			sum += (lumaR*float64(cr) + lumaG*float64(cg) + lumaB*float64(cb)) / 255.0
			count++
		}
	}
	return sum / float64(count)
}
