package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestParseMinimal(t *testing.T) {
	p := writeConfig(t, "seshat.cue", `configVersion: "v1"`)
	s, err := Parse(p)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.ConfigVersion != "v1" {
		t.Fatalf("configVersion = %q, want %q", s.ConfigVersion, "v1")
	}
	if s.Output.Format != "" || s.Output.Out != "" || s.Output.Pretty {
		t.Fatalf("unexpected output defaults: %+v", s.Output)
	}
}

func TestParseFull(t *testing.T) {
	p := writeConfig(t, "seshat.cue", `
configVersion: "v1"
output: {
	format: "yaml"
	out:    "words.yaml"
	pretty: true
}
filter: {
	where: "#word > 3"
}
`)
	s, err := Parse(p)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Output.Format != "yaml" || s.Output.Out != "words.yaml" || !s.Output.Pretty {
		t.Fatalf("unexpected output: %+v", s.Output)
	}
	if s.Filter.Where != "#word > 3" {
		t.Fatalf("filter.where = %q", s.Filter.Where)
	}
}

func TestParseRejectsNonCue(t *testing.T) {
	p := writeConfig(t, "seshat.yaml", `configVersion: v1`)
	if _, err := Parse(p); err == nil {
		t.Fatal("expected error for non-cue extension")
	}
}

func TestParseMissingConfigVersion(t *testing.T) {
	p := writeConfig(t, "seshat.cue", `output: format: "json"`)
	_, err := Parse(p)
	if err == nil || !strings.Contains(err.Error(), "configVersion") {
		t.Fatalf("expected missing configVersion error, got %v", err)
	}
}

func TestParseWrongTypes(t *testing.T) {
	cases := map[string]string{
		"configVersion not string": `configVersion: 2`,
		"format not string":        "configVersion: \"v1\"\noutput: format: 3",
		"pretty not bool":          "configVersion: \"v1\"\noutput: pretty: \"yes\"",
		"unknown format":           "configVersion: \"v1\"\noutput: format: \"xml\"",
	}
	for name, content := range cases {
		p := writeConfig(t, "seshat.cue", content)
		if _, err := Parse(p); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
