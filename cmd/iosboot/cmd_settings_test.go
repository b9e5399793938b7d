package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iosgen/iosgen/pkg/settings"
	"github.com/iosgen/iosgen/pkg/util"
)

func TestSettingsCommands(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(profilePath, []byte("domain: from-settings.example.com\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Each run() call points $IOSGEN_SETTINGS at a fresh file, so chain
	// the steps through one shared path instead.
	settingsPath := filepath.Join(dir, "settings.json")
	exec := func(args ...string) string {
		t.Helper()
		cmd := newRootCmd()
		var out strings.Builder
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		t.Setenv("IOSGEN_SETTINGS", settingsPath)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	if got := exec("settings", "show"); !strings.Contains(got, "(not set)") {
		t.Errorf("fresh settings should be unset:\n%s", got)
	}

	exec("settings", "set", "profile", profilePath)
	got := exec("settings", "show")
	if !strings.Contains(got, profilePath) {
		t.Errorf("show should list profile:\n%s", got)
	}

	// The default profile now applies to generation.
	if got := exec("R1", "cisco", "class"); !strings.Contains(got, "ip domain-name from-settings.example.com\n") {
		t.Errorf("default profile not applied:\n%s", got)
	}

	exec("settings", "clear")
	if got := exec("R1", "cisco", "class"); strings.Contains(got, "ip domain-name") {
		t.Errorf("cleared settings should not apply a profile:\n%s", got)
	}
}

func TestSettingsSet_Unknown(t *testing.T) {
	t.Setenv("IOSGEN_SETTINGS", filepath.Join(t.TempDir(), "settings.json"))
	cmd := newRootCmd()
	cmd.SetArgs([]string{"settings", "set", "network", "x"})
	cmd.SetOut(&strings.Builder{})
	if err := cmd.Execute(); err == nil {
		t.Error("unknown setting should fail")
	}
}

func TestSettingsSet_InvalidLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	t.Setenv(settings.EnvPath, path)
	cmd := newRootCmd()
	cmd.SetArgs([]string{"settings", "set", "log_level", "loud"})
	cmd.SetOut(&strings.Builder{})
	if err := cmd.Execute(); err == nil {
		t.Error("invalid log level should fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("settings file should not be written, stat error = %v", err)
	}
}

func TestSettingsSet_ReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(settings.EnvPath, path)

	out, level, formatter := util.Logger.Out, util.Logger.Level, util.Logger.Formatter
	t.Cleanup(func() {
		util.Logger.SetOutput(out)
		util.Logger.SetLevel(level)
		util.Logger.SetFormatter(formatter)
	})
	var logBuf bytes.Buffer
	util.SetLogOutput(&logBuf)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"settings", "set", "log_level", "info"})
	cmd.SetOut(&strings.Builder{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(logBuf.String(), "Replacing unreadable settings file") {
		t.Errorf("expected a warning before overwriting, got %q", logBuf.String())
	}
	s, err := settings.LoadFrom(path)
	if err != nil {
		t.Fatalf("rewritten settings should parse: %v", err)
	}
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", s.LogLevel)
	}
}
