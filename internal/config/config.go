package config

import (
	"bytes"
	"os"
	"path/filepath"

	"harmonia/internal/mode"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/harmonia.yaml"

// Window holds the window preferences. Width/Height 0 mean "size of the primary monitor".
type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int    `yaml:"target_fps"`
}

// Prefs holds user preferences: window, initial focus mode, debug overlays and file locations.
// They are read at startup; the running scene never writes them back.
type Prefs struct {
	Mode         mode.Mode `yaml:"mode"`
	Window       Window    `yaml:"window"`
	ShowFPS      bool      `yaml:"show_fps"`
	ShowMemAlloc bool      `yaml:"show_memalloc"`
	ShowStats    bool      `yaml:"show_stats"`
	Layout       string    `yaml:"layout,omitempty"` // scene override; empty = built-in scene
	Stylesheet   string    `yaml:"stylesheet,omitempty"`
	Font         string    `yaml:"font,omitempty"` // family or file name under assets/fonts; empty = first found
	Seed         uint64    `yaml:"seed,omitempty"` // 0 = seed smoke from the clock
	LogPath      string    `yaml:"log_path"`
}

// Default returns default preferences (deep-work mode, overlays off, 60 FPS window).
func Default() Prefs {
	return Prefs{
		Mode: mode.DeepWork,
		Window: Window{
			Title:     "Harmonia Study",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		LogPath: "logs/harmonia.txt",
	}
}

// Load reads preferences from path over Default(). A missing file is not an error.
// A file that does not parse returns Default() together with the error so the caller can report it.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, errors.Wrap(err, "read config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Default(), errors.Wrapf(err, "parse %s", path)
	}
	if err := p.Validate(); err != nil {
		return Default(), errors.Wrapf(err, "config %s", path)
	}
	return p, nil
}

// Validate rejects values the window cannot use.
func (p Prefs) Validate() error {
	if p.Window.Width < 0 || p.Window.Height < 0 {
		return errors.Errorf("window size %dx%d is negative", p.Window.Width, p.Window.Height)
	}
	if p.Window.TargetFPS < 0 {
		return errors.Errorf("target_fps %d is negative", p.Window.TargetFPS)
	}
	if !p.Mode.Valid() {
		return errors.Errorf("invalid mode %d", int(p.Mode))
	}
	return nil
}

// Save writes preferences to path as YAML, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write config")
}
