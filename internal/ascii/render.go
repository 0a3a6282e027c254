// ABOUTME: Pipeline driver composing grid planning, reduction and quantization
// ABOUTME: Streams rows in order; optional errgroup fan-out renders rows in parallel

package ascii

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/imgascii/internal/imaging"
)

// Options configure a render pass.
type Options struct {
	Width   int     // output columns, >= 1
	Aspect  float64 // character cell height/width correction
	Ramp    Ramp
	Workers int // row-rendering goroutines; values < 2 render sequentially
}

// Frame packages a finished rendering for JSON output.
type Frame struct {
	Content string `json:"content"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// Render writes the rendering of buf to w, one newline-terminated row per
// output line, top to bottom. The emission order is identical for any
// worker count.
func Render(w io.Writer, buf *imaging.Buffer, opts Options) error {
	grid, err := planFor(buf, opts)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if opts.Workers > 1 {
		rows := renderParallel(buf, grid, opts.Ramp, opts.Workers)
		for _, row := range rows {
			bw.WriteString(row)
			bw.WriteByte('\n')
		}
		return bw.Flush()
	}

	for oy := range grid.OutH {
		bw.WriteString(renderRow(buf, grid, opts.Ramp, oy))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// RenderRows returns the rendering as one string per output row.
func RenderRows(buf *imaging.Buffer, opts Options) ([]string, error) {
	grid, err := planFor(buf, opts)
	if err != nil {
		return nil, err
	}
	if opts.Workers > 1 {
		return renderParallel(buf, grid, opts.Ramp, opts.Workers), nil
	}
	rows := make([]string, grid.OutH)
	for oy := range grid.OutH {
		rows[oy] = renderRow(buf, grid, opts.Ramp, oy)
	}
	return rows, nil
}

// RenderFrame renders buf and packages the rows as a Frame.
func RenderFrame(buf *imaging.Buffer, opts Options) (Frame, error) {
	rows, err := RenderRows(buf, opts)
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Content: strings.Join(rows, "\n"),
		Width:   opts.Width,
		Height:  len(rows),
	}, nil
}

// planFor validates the inputs a caller is responsible for and plans the
// output grid.
func planFor(buf *imaging.Buffer, opts Options) (Grid, error) {
	if buf.Width < 1 || buf.Height < 1 {
		return Grid{}, fmt.Errorf("empty source image (%dx%d)", buf.Width, buf.Height)
	}
	if opts.Width < 1 {
		return Grid{}, fmt.Errorf("output width %d, want >= 1", opts.Width)
	}
	if opts.Ramp.Len() < 2 {
		return Grid{}, fmt.Errorf("ramp %q has %d glyphs, want >= 2", opts.Ramp.Name(), opts.Ramp.Len())
	}
	return PlanGrid(buf.Width, buf.Height, opts.Width, opts.Aspect), nil
}

// renderRow renders output row oy left to right.
func renderRow(buf *imaging.Buffer, grid Grid, ramp Ramp, oy int) string {
	var b strings.Builder
	b.Grow(grid.OutW)
	for ox := range grid.OutW {
		lum := AverageLuminance(buf, grid.Cell(ox, oy))
		b.WriteRune(ramp.Glyph(lum))
	}
	return b.String()
}

// renderParallel fans rows out over an errgroup. Each goroutine writes only
// its own slot, so no locking is needed; slot order restores the emission
// order.
func renderParallel(buf *imaging.Buffer, grid Grid, ramp Ramp, workers int) []string {
	rows := make([]string, grid.OutH)

	var g errgroup.Group
	g.SetLimit(workers)
	for oy := range grid.OutH {
		g.Go(func() error {
			rows[oy] = renderRow(buf, grid, ramp, oy)
			return nil
		})
	}
	// Workers never return errors; Wait only fences the slot writes.
	_ = g.Wait()
	return rows
}
