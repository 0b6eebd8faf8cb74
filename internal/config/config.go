// Package config loads the optional CUE settings file for the seshat CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Output holds report rendering preferences.
type Output struct {
	Format string
	Out    string
	Pretty bool
}

// Filter holds the optional Lua predicate applied to listed words.
type Filter struct {
	Where string
}

// Settings is the validated subset of a seshat config file.
type Settings struct {
	ConfigVersion string
	Output        Output
	Filter        Filter
}

// Formats accepted by output.format.
var validFormats = map[string]bool{"json": true, "yaml": true, "lines": true}

// Parse loads a CUE file and extracts the settings it declares.
// Required fields:
//   - configVersion: string
func Parse(path string) (Settings, error) {
	if filepath.Ext(path) != ".cue" {
		return Settings{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config: %w", err)
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %v", err)
	}

	if err := requireStringField(v, "configVersion"); err != nil {
		return Settings{}, err
	}

	var s Settings
	cv := v.LookupPath(cue.ParsePath("configVersion"))
	if err := cv.Decode(&s.ConfigVersion); err != nil {
		return Settings{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}

	if err := parseOutput(v, &s.Output); err != nil {
		return Settings{}, err
	}
	if err := parseFilter(v, &s.Filter); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func parseOutput(v cue.Value, out *Output) error {
	ov := v.LookupPath(cue.ParsePath("output"))
	if !ov.Exists() {
		return nil
	}
	if err := decodeOptionalString(ov, "format", &out.Format); err != nil {
		return err
	}
	if out.Format != "" && !validFormats[out.Format] {
		return fmt.Errorf("invalid value for output.format: %q (expected json, yaml or lines)", out.Format)
	}
	if err := decodeOptionalString(ov, "out", &out.Out); err != nil {
		return err
	}
	pv := ov.LookupPath(cue.ParsePath("pretty"))
	if pv.Exists() {
		if pv.Kind() != cue.BoolKind {
			return errors.New("invalid type for field: output.pretty (expected bool)")
		}
		if err := pv.Decode(&out.Pretty); err != nil {
			return fmt.Errorf("invalid value for output.pretty: %v", err)
		}
	}
	return nil
}

func parseFilter(v cue.Value, f *Filter) error {
	fv := v.LookupPath(cue.ParsePath("filter"))
	if !fv.Exists() {
		return nil
	}
	return decodeOptionalString(fv, "where", &f.Where)
}

func decodeOptionalString(v cue.Value, name string, dst *string) error {
	fv := v.LookupPath(cue.ParsePath(name))
	if !fv.Exists() {
		return nil
	}
	if fv.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	if err := fv.Decode(dst); err != nil {
		return fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}
