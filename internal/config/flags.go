package config

import (
	"flag"
	"io"

	"harmonia/internal/mode"

	"github.com/pkg/errors"
)

// Flags are the command-line overrides. They win over the file and the environment.
type Flags struct {
	ConfigPath string
	Mode       string
	Layout     string
}

// ParseFlags parses args (without the program name). Usage errors go to out.
func ParseFlags(args []string, out io.Writer) (Flags, error) {
	var f Flags
	fs := flag.NewFlagSet("harmonia", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&f.ConfigPath, "config", DefaultPath, "preferences file")
	fs.StringVar(&f.Mode, "mode", "", "initial focus mode (deep-work, creative, study, sleep)")
	fs.StringVar(&f.Layout, "layout", "", "scene layout YAML overriding the built-in scene")
	if err := fs.Parse(args); err != nil {
		return Flags{}, errors.Wrap(err, "flags")
	}
	if fs.NArg() > 0 {
		return Flags{}, errors.Errorf("flags: unexpected argument %q", fs.Arg(0))
	}
	return f, nil
}

// Apply overrides p with the flags that were set.
func (f Flags) Apply(p *Prefs) error {
	if f.Mode != "" {
		m, err := mode.Parse(f.Mode)
		if err != nil {
			return errors.Wrap(err, "-mode")
		}
		p.Mode = m
	}
	if f.Layout != "" {
		p.Layout = f.Layout
	}
	return nil
}
