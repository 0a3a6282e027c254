// ABOUTME: Ordered glyph ramps and luminance-to-glyph quantization
// ABOUTME: Validates custom ramps down to single-column grapheme clusters

package ascii

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// defaultGlyphs orders the built-in ramp darkest to lightest; space is the
// lightest glyph.
const defaultGlyphs = "@%#*+=-:. "

// Ramp is an immutable ordered glyph sequence, index 0 darkest.
type Ramp struct {
	name   string
	glyphs []rune
}

// BuiltinRamp returns the named built-in ramp ("default" or "inverted").
func BuiltinRamp(name string) (Ramp, bool) {
	switch name {
	case "default":
		return Ramp{name: name, glyphs: []rune(defaultGlyphs)}, true
	case "inverted":
		return Ramp{name: name, glyphs: reverseRunes([]rune(defaultGlyphs))}, true
	}
	return Ramp{}, false
}

// RampNames lists the built-in ramp names.
func RampNames() []string {
	return []string{"default", "inverted"}
}

// NewRamp builds a custom ramp from a dark-to-light glyph string. The
// string is NFC-normalized and split into grapheme clusters; each cluster
// must be a single rune occupying exactly one terminal column, and at
// least two glyphs are required.
func NewRamp(name, glyphs string) (Ramp, error) {
	rest := norm.NFC.String(glyphs)

	var runes []rune
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cr := []rune(cluster)
		if len(cr) != 1 {
			return Ramp{}, fmt.Errorf("glyph %q is a multi-rune cluster", cluster)
		}
		if w := runewidth.RuneWidth(cr[0]); w != 1 {
			return Ramp{}, fmt.Errorf("glyph %q occupies %d columns, want 1", cluster, w)
		}
		runes = append(runes, cr[0])
	}

	if len(runes) < 2 {
		return Ramp{}, fmt.Errorf("need at least 2 glyphs, got %d", len(runes))
	}
	return Ramp{name: name, glyphs: runes}, nil
}

// Reversed returns the ramp with its glyph order flipped.
func (r Ramp) Reversed() Ramp {
	return Ramp{name: r.name, glyphs: reverseRunes(r.glyphs)}
}

// Index maps a luminance in [0,1] to a glyph index:
// floor(lum*(L-1) + 0.5), clamped into [0, L-1].
func (r Ramp) Index(lum float64) int {
	idx := int(math.Floor(lum*float64(len(r.glyphs)-1) + 0.5))
	if idx < 0 {
		return 0
	}
	if idx > len(r.glyphs)-1 {
		return len(r.glyphs) - 1
	}
	return idx
}

// Glyph returns the ramp glyph for a luminance in [0,1].
func (r Ramp) Glyph(lum float64) rune {
	return r.glyphs[r.Index(lum)]
}

// Len returns the number of glyphs in the ramp.
func (r Ramp) Len() int {
	return len(r.glyphs)
}

// Name returns the name the ramp was constructed under.
func (r Ramp) Name() string {
	return r.name
}

// String returns the glyphs darkest to lightest.
func (r Ramp) String() string {
	return string(r.glyphs)
}

func reverseRunes(in []rune) []rune {
	out := make([]rune, len(in))
	for i, g := range in {
		out[len(in)-1-i] = g
	}
	return out
}
