package cli

import (
	"os"

	"github.com/iosgen/iosgen/pkg/ios"
	"github.com/iosgen/iosgen/pkg/profile"
	"github.com/iosgen/iosgen/pkg/settings"
	"github.com/iosgen/iosgen/pkg/util"
)

// Init loads user settings and configures the logger for one run. A
// broken settings file is reported and otherwise ignored.
func Init(verbose bool) *settings.Settings {
	s, err := settings.Load()
	if err != nil {
		util.Warnf("Could not load settings: %v", err)
		s = &settings.Settings{}
	}

	level := s.GetLogLevel()
	if verbose {
		level = "debug"
	}
	if err := util.SetLogLevel(level); err != nil {
		util.Warnf("Ignoring log_level %q: %v", level, err)
		util.SetLogLevel("warn")
	}
	util.SetColor(ColorEnabled(os.Stderr))
	return s
}

// LoadProfile loads the profile at path, falling back to the settings
// default. It returns nil when neither names a profile.
func LoadProfile(path string, s *settings.Settings) (*profile.Profile, error) {
	if path == "" && s != nil {
		path = s.DefaultProfile
	}
	if path == "" {
		return nil, nil
	}
	p, err := profile.Load(path)
	if err != nil {
		return nil, err
	}
	util.WithField("profile", path).Debug("Loaded profile")
	return p, nil
}

// ReportDiagnostics logs each diagnostic as a warning tagged with the tool
// name.
func ReportDiagnostics(tool string, diags []ios.Diagnostic) {
	for _, d := range diags {
		util.WithTool(tool).WithField("field", d.Field).Warn(d.Message)
	}
}
