// ABOUTME: Image file decoding with stdlib and x/image format registration
// ABOUTME: Wraps failures in DecodeError so the CLI can map them to an exit code

package imaging

import (
	"fmt"
	"image"
	"os"

	// Register decoders for the supported container formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeError reports a file that could not be opened or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not load image %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode reads and decodes the image file at path into a Buffer.
// The returned format is the registered decoder name ("png", "jpeg", ...).
// Animated inputs contribute only their first frame.
func Decode(path string) (*Buffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}
	return FromImage(img), format, nil
}
