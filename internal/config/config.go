// ABOUTME: Layered YAML configuration for rendering defaults and custom ramps
// ABOUTME: Project-local .imgascii.yaml overrides ~/.imgascii/config.yaml

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/imgascii/internal/ascii"
)

// Defaults used when neither the command line nor any config file names a
// value. The cell correction is the renderer's constant.
const (
	DefaultWidth      = 120
	DefaultCharAspect = ascii.CharAspect
	DefaultRampName   = "default"
)

// Settings holds rendering defaults. Zero values mean "not set"; the
// Effective accessors apply the built-in defaults.
type Settings struct {
	Width      int               `yaml:"width,omitempty"`
	CharAspect float64           `yaml:"char_aspect,omitempty"`
	Ramp       string            `yaml:"ramp,omitempty"`
	Ramps      map[string]string `yaml:"ramps,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings; missing files are fine.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// EffectiveWidth returns the configured default output width.
func (s *Settings) EffectiveWidth() int {
	if s.Width > 0 {
		return s.Width
	}
	return DefaultWidth
}

// EffectiveCharAspect returns the configured character cell correction.
func (s *Settings) EffectiveCharAspect() float64 {
	if s.CharAspect > 0 {
		return s.CharAspect
	}
	return DefaultCharAspect
}

// EffectiveRamp returns the configured default ramp name.
func (s *Settings) EffectiveRamp() string {
	if s.Ramp != "" {
		return s.Ramp
	}
	return DefaultRampName
}

// loadFile reads a Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &s, nil
}

// validate rejects values that would poison the pipeline downstream. Ramp
// strings are validated where ramps are constructed, not here.
func (s *Settings) validate() error {
	if s.Width < 0 {
		return fmt.Errorf("width %d, want > 0", s.Width)
	}
	if s.CharAspect < 0 {
		return fmt.Errorf("char_aspect %g, want > 0", s.CharAspect)
	}
	return nil
}

// merge overlays project settings onto global settings. Non-zero project
// values win; ramp maps merge key by key.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Width > 0 {
		result.Width = project.Width
	}
	if project.CharAspect > 0 {
		result.CharAspect = project.CharAspect
	}
	if project.Ramp != "" {
		result.Ramp = project.Ramp
	}

	if len(project.Ramps) > 0 {
		if result.Ramps == nil {
			result.Ramps = make(map[string]string)
		}
		for k, v := range project.Ramps {
			result.Ramps[k] = v
		}
	}

	return &result
}
