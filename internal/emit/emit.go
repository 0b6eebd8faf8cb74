// Package emit renders word query reports to stdout or a file.
package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Report is the serializable result of a word query. Field order is stable
// to keep JSON deterministic in tests.
type Report struct {
	Count int      `json:"count" yaml:"count"`
	Words []string `json:"words" yaml:"words"`
}

// Options controls how a report is rendered.
type Options struct {
	// Format is one of json, yaml or lines. Empty means json.
	Format string
	// Out is the destination path; empty or "-" means stdout.
	Out string
	// Pretty indents JSON output. It has no effect on other formats.
	Pretty bool
}

// Write renders the report per opts.
func Write(r Report, opts Options) error {
	data, err := render(r, opts)
	if err != nil {
		return err
	}
	return writeTo(opts.Out, data)
}

func render(r Report, opts Options) ([]byte, error) {
	switch opts.Format {
	case "", "json":
		if opts.Pretty {
			return encodeJSONPretty(r)
		}
		return encodeJSONCompact(r)
	case "yaml":
		return yaml.Marshal(r)
	case "lines":
		var buf bytes.Buffer
		for _, w := range r.Words {
			buf.WriteString(w)
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("emit: unknown format %q", opts.Format)
	}
}

func encodeJSONCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSONPretty(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeTo(outPath string, data []byte) error {
	if outPath == "" || outPath == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("emit: %v", err)
		}
	}
	return os.WriteFile(outPath, data, 0o644)
}
