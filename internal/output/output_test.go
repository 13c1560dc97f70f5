package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type sample struct {
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// captureStdout runs f and returns everything it wrote to stdout.
func captureStdout(t *testing.T, f func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	ferr := f()
	w.Close()
	os.Stdout = old

	if ferr != nil {
		t.Fatal(ferr)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	got := captureStdout(t, func() error {
		return PrintYAML(sample{Width: 1920, Height: 1080})
	})

	var decoded sample
	if err := yaml.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Width != 1920 || decoded.Height != 1080 {
		t.Errorf("round-trip mismatch: %+v", decoded)
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	got := captureStdout(t, func() error {
		return PrintJSON(sample{Width: 1920, Height: 1080})
	})

	if strings.Count(strings.TrimRight(got, "\n"), "\n") != 0 {
		t.Errorf("compact JSON should be single-line, got:\n%s", got)
	}
	if !strings.Contains(got, `"width":1920`) {
		t.Errorf("unexpected JSON: %s", got)
	}
}

func TestPrintPrettyJSON_Indented(t *testing.T) {
	got := captureStdout(t, func() error {
		return PrintPrettyJSON(sample{Width: 1920, Height: 1080})
	})

	if !strings.Contains(got, "\n  ") {
		t.Errorf("pretty JSON should be indented, got:\n%s", got)
	}
}

func TestPrint_UnknownFormat(t *testing.T) {
	orig := OutputFormat
	defer func() { OutputFormat = orig }()

	OutputFormat = Format("toml")
	if err := Print(sample{}); err == nil {
		t.Error("unknown format should fail")
	}
}
