package output

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
}

func TestFprint_YAML(t *testing.T) {
	OutputFormat = FormatYAML
	var buf bytes.Buffer
	if err := Fprint(&buf, sample{OK: true, Action: "mouse-move"}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "ok: true") || !strings.Contains(got, "action: mouse-move") {
		t.Errorf("unexpected YAML output: %q", got)
	}
}

func TestFprint_JSON(t *testing.T) {
	OutputFormat = FormatJSON
	defer func() { OutputFormat = FormatYAML }()

	var buf bytes.Buffer
	if err := Fprint(&buf, sample{OK: true, Action: "click"}); err != nil {
		t.Fatal(err)
	}
	got := strings.TrimSpace(buf.String())
	want := `{"ok":true,"action":"click"}`
	if got != want {
		t.Errorf("JSON output = %q, want %q", got, want)
	}
}

func TestFprint_UnknownFormat(t *testing.T) {
	OutputFormat = Format("toml")
	defer func() { OutputFormat = FormatYAML }()

	if err := Fprint(&bytes.Buffer{}, sample{}); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestMarshal(t *testing.T) {
	s, err := Marshal(sample{OK: false, Action: "scroll"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, "action: scroll") {
		t.Errorf("unexpected marshal output: %q", s)
	}
}
