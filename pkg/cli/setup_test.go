package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/iosgen/iosgen/pkg/ios"
	"github.com/iosgen/iosgen/pkg/settings"
	"github.com/iosgen/iosgen/pkg/util"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	out, level, formatter := util.Logger.Out, util.Logger.Level, util.Logger.Formatter
	t.Cleanup(func() {
		util.Logger.SetOutput(out)
		util.Logger.SetLevel(level)
		util.Logger.SetFormatter(formatter)
	})
	var buf bytes.Buffer
	util.SetLogOutput(&buf)
	return &buf
}

func TestInit_LogLevel(t *testing.T) {
	captureLog(t)
	path := filepath.Join(t.TempDir(), "settings.json")
	t.Setenv(settings.EnvPath, path)

	Init(false)
	if util.Logger.Level != logrus.WarnLevel {
		t.Errorf("default level = %v, want warn", util.Logger.Level)
	}

	Init(true)
	if util.Logger.Level != logrus.DebugLevel {
		t.Errorf("verbose level = %v, want debug", util.Logger.Level)
	}

	if err := (&settings.Settings{LogLevel: "error"}).SaveTo(path); err != nil {
		t.Fatal(err)
	}
	s := Init(false)
	if s.LogLevel != "error" || util.Logger.Level != logrus.ErrorLevel {
		t.Errorf("settings level not applied: %v", util.Logger.Level)
	}
}

func TestInit_BadSettings(t *testing.T) {
	buf := captureLog(t)
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(settings.EnvPath, path)

	s := Init(false)
	if s == nil {
		t.Fatal("Init() should return empty settings on error")
	}
	if !strings.Contains(buf.String(), "Could not load settings") {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "explicit.yaml")
	fallback := filepath.Join(dir, "fallback.yaml")
	os.WriteFile(explicit, []byte("domain: explicit.example.com\n"), 0644)
	os.WriteFile(fallback, []byte("domain: fallback.example.com\n"), 0644)

	s := &settings.Settings{DefaultProfile: fallback}

	p, err := LoadProfile(explicit, s)
	if err != nil || p.Domain != "explicit.example.com" {
		t.Errorf("explicit profile: %+v, %v", p, err)
	}

	p, err = LoadProfile("", s)
	if err != nil || p.Domain != "fallback.example.com" {
		t.Errorf("settings profile: %+v, %v", p, err)
	}

	p, err = LoadProfile("", &settings.Settings{})
	if err != nil || p != nil {
		t.Errorf("no profile: %+v, %v", p, err)
	}

	if _, err := LoadProfile(filepath.Join(dir, "missing.yaml"), nil); err == nil {
		t.Error("missing profile should fail")
	}
}

func TestReportDiagnostics(t *testing.T) {
	buf := captureLog(t)
	util.SetColor(false)

	ReportDiagnostics("iosboot", []ios.Diagnostic{{Field: "ssh", Message: "SSH skipped"}})

	got := buf.String()
	for _, want := range []string{"level=warning", "SSH skipped", "field=ssh", "tool=iosboot"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output missing %q: %q", want, got)
		}
	}
}
