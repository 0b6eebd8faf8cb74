package emit

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func sample() Report {
	return Report{Count: 3, Words: []string{"the", "be", "and"}}
}

func writeToFile(t *testing.T, r Report, opts Options) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "out.txt")
	opts.Out = p
	if err := Write(r, opts); err != nil {
		t.Fatalf("Write: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(b)
}

func TestWriteJSONCompact(t *testing.T) {
	got := writeToFile(t, sample(), Options{Format: "json"})
	want := `{"count":3,"words":["the","be","and"]}` + "\n"
	if got != want {
		t.Fatalf("json output = %q, want %q", got, want)
	}
}

func TestWriteJSONDefaultFormat(t *testing.T) {
	got := writeToFile(t, sample(), Options{})
	want := `{"count":3,"words":["the","be","and"]}` + "\n"
	if got != want {
		t.Fatalf("default output = %q, want %q", got, want)
	}
}

func TestWriteJSONPretty(t *testing.T) {
	got := writeToFile(t, sample(), Options{Format: "json", Pretty: true})
	want := "{\n  \"count\": 3,\n  \"words\": [\n    \"the\",\n    \"be\",\n    \"and\"\n  ]\n}\n"
	if got != want {
		t.Fatalf("pretty output = %q, want %q", got, want)
	}
}

func TestWriteYAMLRoundTrips(t *testing.T) {
	got := writeToFile(t, sample(), Options{Format: "yaml"})
	var back Report
	if err := yaml.Unmarshal([]byte(got), &back); err != nil {
		t.Fatalf("yaml output does not parse: %v\n%s", err, got)
	}
	if back.Count != 3 || len(back.Words) != 3 || back.Words[0] != "the" {
		t.Fatalf("yaml round trip = %+v", back)
	}
}

func TestWriteLines(t *testing.T) {
	got := writeToFile(t, sample(), Options{Format: "lines"})
	want := "the\nbe\nand\n"
	if got != want {
		t.Fatalf("lines output = %q, want %q", got, want)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(sample(), Options{Format: "xml", Out: filepath.Join(t.TempDir(), "x")}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWriteCreatesParentDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "dir", "out.json")
	if err := Write(sample(), Options{Out: p}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}
