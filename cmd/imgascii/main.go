// ABOUTME: CLI entry point for imgascii
// ABOUTME: Resolves arguments against config, decodes the image, renders ASCII rows

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
	"golang.org/x/term"

	"github.com/mauromedda/imgascii/internal/ascii"
	"github.com/mauromedda/imgascii/internal/config"
	"github.com/mauromedda/imgascii/internal/imaging"
	ilog "github.com/mauromedda/imgascii/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const usageLine = "usage: imgascii [flags] <image-path> [width] [inv|invert]"

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("imgascii %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if len(args.remaining()) == 0 {
		fmt.Fprintln(os.Stderr, usageLine)
		os.Exit(1)
	}

	if err := run(args, args.remaining()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes decode failures (2) from usage and config errors (1).
func exitCode(err error) int {
	var decodeErr *imaging.DecodeError
	if errors.As(err, &decodeErr) {
		return 2
	}
	return 1
}

// run resolves the effective options, decodes the image, and renders it.
func run(args cliArgs, rest []string) error {
	if args.verbose {
		ilog.SetLevel(ilog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	ilog.Debug("config: global=%s project=%s", config.GlobalConfigFile(), config.ProjectConfigFile(cwd))

	ramp, err := resolveRamp(args, rest, cfg)
	if err != nil {
		return err
	}
	width := resolveWidth(args, rest, cfg)

	start := time.Now()
	buf, format, err := imaging.Decode(rest[0])
	if err != nil {
		return err
	}
	ilog.Debug("decoded %s: %s %dx%d, %d channels, %s", rest[0], format, buf.Width, buf.Height, buf.Channels, time.Since(start).Round(time.Microsecond))
	ilog.Debug("rendering width=%d aspect=%g ramp=%s workers=%d", width, cfg.EffectiveCharAspect(), ramp.Name(), args.workers)

	opts := ascii.Options{
		Width:   width,
		Aspect:  cfg.EffectiveCharAspect(),
		Ramp:    ramp,
		Workers: args.workers,
	}

	out := io.Writer(os.Stdout)
	if args.output != "" {
		f, err := os.Create(args.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if args.json {
		frame, err := ascii.RenderFrame(buf, opts)
		if err != nil {
			return err
		}
		return json.NewEncoder(out).Encode(frame)
	}
	return ascii.Render(out, buf, opts)
}

// terminalWidthFunc reports the current terminal width on stdout.
// It is a package-level variable so tests can override it.
var terminalWidthFunc = func() (int, error) {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	return w, err
}

// resolveWidth picks the output width: -fit beats the positional width
// argument, which beats the config default of 120.
func resolveWidth(args cliArgs, rest []string, cfg *config.Settings) int {
	def := cfg.EffectiveWidth()
	if args.fit {
		if w, err := terminalWidthFunc(); err == nil && w > 0 {
			return w
		}
		ilog.Debug("stdout is not a terminal, falling back to width %d", def)
		return def
	}
	if len(rest) > 1 {
		return parseWidth(rest[1], def)
	}
	return def
}

// resolveRamp picks the ramp from the -ramp flag or the config default; a
// trailing inv/invert token reverses whatever was selected.
func resolveRamp(args cliArgs, rest []string, cfg *config.Settings) (ascii.Ramp, error) {
	name := args.ramp
	if name == "" {
		name = cfg.EffectiveRamp()
	}

	ramp, err := lookupRamp(name, cfg)
	if err != nil {
		return ascii.Ramp{}, err
	}

	if len(rest) > 2 && invertToken(rest[2]) {
		ramp = ramp.Reversed()
	}
	return ramp, nil
}

// lookupRamp resolves a name against the config's custom ramps first, then
// the built-ins. Custom entries shadow built-in names.
func lookupRamp(name string, cfg *config.Settings) (ascii.Ramp, error) {
	if glyphs, ok := cfg.Ramps[name]; ok {
		ramp, err := ascii.NewRamp(name, glyphs)
		if err != nil {
			return ascii.Ramp{}, fmt.Errorf("config ramp %q: %w", name, err)
		}
		return ramp, nil
	}
	if ramp, ok := ascii.BuiltinRamp(name); ok {
		return ramp, nil
	}
	return ascii.Ramp{}, unknownRampError(name, cfg)
}

// unknownRampError builds the lookup failure, suggesting close names when
// fuzzy matching finds any.
func unknownRampError(name string, cfg *config.Settings) error {
	known := ascii.RampNames()
	for n := range cfg.Ramps {
		known = append(known, n)
	}
	sort.Strings(known)

	matches := fuzzy.Find(name, known)
	if len(matches) == 0 {
		return fmt.Errorf("unknown ramp %q (known: %s)", name, strings.Join(known, ", "))
	}

	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
	}
	return fmt.Errorf("unknown ramp %q, did you mean %s?", name, strings.Join(suggestions, " or "))
}
