package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestAsk(t *testing.T) {
	t.Run("returns trimmed answer", func(t *testing.T) {
		p := New(strings.NewReader("  widget  \n"), &bytes.Buffer{})
		got, err := p.Ask("Name", "")
		if err != nil {
			t.Fatal(err)
		}
		if got != "widget" {
			t.Errorf("Ask() = %q, want widget", got)
		}
	})

	t.Run("empty answer falls back to default", func(t *testing.T) {
		var out bytes.Buffer
		p := New(strings.NewReader("\n"), &out)
		got, err := p.Ask("License", "MIT")
		if err != nil {
			t.Fatal(err)
		}
		if got != "MIT" {
			t.Errorf("Ask() = %q, want MIT", got)
		}
		if !strings.Contains(out.String(), "[MIT]") {
			t.Errorf("default not shown in label: %q", out.String())
		}
	})
}

func TestAskRequired(t *testing.T) {
	t.Run("retries until non-empty", func(t *testing.T) {
		p := New(strings.NewReader("\n\npython-pkg\n"), &bytes.Buffer{})
		got, err := p.AskRequired("Template name")
		if err != nil {
			t.Fatal(err)
		}
		if got != "python-pkg" {
			t.Errorf("AskRequired() = %q", got)
		}
	})

	t.Run("gives up after repeated blanks", func(t *testing.T) {
		p := New(strings.NewReader("\n\n\n"), &bytes.Buffer{})
		if _, err := p.AskRequired("Template name"); err == nil {
			t.Error("AskRequired() should fail on persistent blanks")
		}
	})
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}
	for _, tc := range cases {
		p := New(strings.NewReader(tc.input), &bytes.Buffer{})
		got, err := p.Confirm("Remove template 'x'?")
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("Confirm(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestSelect(t *testing.T) {
	t.Run("returns zero-based index", func(t *testing.T) {
		var out bytes.Buffer
		p := New(strings.NewReader("2\n"), &out)
		idx, err := p.Select("Select license:", []string{"MIT", "Apache-2.0"})
		if err != nil {
			t.Fatal(err)
		}
		if idx != 1 {
			t.Errorf("Select() = %d, want 1", idx)
		}
		if !strings.Contains(out.String(), "1) MIT") {
			t.Errorf("menu not rendered: %q", out.String())
		}
	})

	t.Run("rejects out-of-range", func(t *testing.T) {
		p := New(strings.NewReader("5\n"), &bytes.Buffer{})
		if _, err := p.Select("Pick:", []string{"a", "b"}); err == nil {
			t.Error("Select() should reject out-of-range input")
		}
	})

	t.Run("rejects non-numeric", func(t *testing.T) {
		p := New(strings.NewReader("abc\n"), &bytes.Buffer{})
		if _, err := p.Select("Pick:", []string{"a", "b"}); err == nil {
			t.Error("Select() should reject non-numeric input")
		}
	})
}
