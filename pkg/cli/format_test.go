package cli

import (
	"bytes"
	"os"
	"testing"
)

func TestPainter(t *testing.T) {
	off := Painter{}
	if got := off.Bold("x"); got != "x" {
		t.Errorf("disabled Bold() = %q, want %q", got, "x")
	}
	if got := off.Dim("x"); got != "x" {
		t.Errorf("disabled Dim() = %q, want %q", got, "x")
	}

	on := Painter{Enabled: true}
	if got := on.Bold("x"); got != "\033[1mx\033[0m" {
		t.Errorf("Bold() = %q", got)
	}
	if got := on.Dim("x"); got != "\033[2mx\033[0m" {
		t.Errorf("Dim() = %q", got)
	}
}

func TestColorEnabled_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if ColorEnabled(f) {
		t.Error("regular files should not get color")
	}
}

func TestColorEnabled_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ColorEnabled(os.Stderr) {
		t.Error("NO_COLOR should disable color")
	}
}

func TestPainterFor(t *testing.T) {
	if PainterFor(&bytes.Buffer{}).Enabled {
		t.Error("non-file writers should not get color")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if PainterFor(f).Enabled {
		t.Error("regular files should not get color")
	}
}
