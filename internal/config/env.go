package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"harmonia/internal/mode"

	"github.com/pkg/errors"
)

// Environment variables that override the preferences file.
const (
	EnvMode    = "HARMONIA_MODE"
	EnvShowFPS = "HARMONIA_SHOW_FPS"
	EnvSeed    = "HARMONIA_SEED"
	EnvLayout  = "HARMONIA_LAYOUT"
)

// LoadEnv reads the given file (e.g. ".env") and sets environment variables for each
// line of the form KEY=VALUE. Empty lines and lines starting with # are skipped.
// Variables already set in the environment win over the file. The file may be missing; that is not an error.
func LoadEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "open env file")
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return errors.Wrap(scanner.Err(), "read env file")
}

func parseEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	i := strings.Index(line, "=")
	if i <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	value = strings.TrimSpace(line[i+1:])
	if key == "" {
		return "", "", false
	}
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// ApplyEnv overrides fields of p from the HARMONIA_* variables returned by getenv.
// Unset or empty variables leave the field alone.
func ApplyEnv(p *Prefs, getenv func(string) string) error {
	if v := getenv(EnvMode); v != "" {
		m, err := mode.Parse(v)
		if err != nil {
			return errors.Wrap(err, EnvMode)
		}
		p.Mode = m
	}
	if v := getenv(EnvShowFPS); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, EnvShowFPS)
		}
		p.ShowFPS = b
	}
	if v := getenv(EnvSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, EnvSeed)
		}
		p.Seed = n
	}
	if v := getenv(EnvLayout); v != "" {
		p.Layout = v
	}
	return nil
}
