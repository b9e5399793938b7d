package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iosgen/iosgen/pkg/cli"
	"github.com/iosgen/iosgen/pkg/settings"
	"github.com/iosgen/iosgen/pkg/util"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage persistent settings",
		Long: `Manage persistent settings stored in ~/.iosgen/settings.json
(or the file named by $IOSGEN_SETTINGS). Both iosboot and iosintf read them.

Settings:
  - default_profile: Profile used when --profile is not specified
  - log_level:       Log level used when --verbose is not specified

Examples:
  iosboot settings show
  iosboot settings set profile /etc/iosgen/site.yaml
  iosboot settings set log_level info
  iosboot settings clear`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show current settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := settings.Load()
				if err != nil {
					return fmt.Errorf("loading settings: %w", err)
				}

				out := cmd.OutOrStdout()
				p := cli.PainterFor(out)
				fmt.Fprintf(out, "%s %s\n\n", p.Bold("Settings file:"), settings.DefaultSettingsPath())

				t := cli.NewTable(out, "SETTING", "VALUE")
				printSetting := func(name, value string) {
					if value == "" {
						value = p.Dim("(not set)")
					}
					t.Row(name, value)
				}
				printSetting("default_profile", s.DefaultProfile)
				printSetting("log_level", s.LogLevel)
				t.Flush()
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <setting> <value>",
			Short: "Set a setting value",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := settings.DefaultSettingsPath()
				s, err := settings.LoadFrom(path)
				if err != nil {
					util.Warnf("Replacing unreadable settings file %s: %v", path, err)
					s = &settings.Settings{}
				}
				if err := s.Set(args[0], args[1]); err != nil {
					return err
				}
				if err := s.SaveTo(path); err != nil {
					return fmt.Errorf("saving settings: %w", err)
				}
				util.Infof("Saved settings to %s", path)
				fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", args[0], args[1])
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Reset all settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s := &settings.Settings{}
				path := settings.DefaultSettingsPath()
				if err := s.SaveTo(path); err != nil {
					return fmt.Errorf("saving settings: %w", err)
				}
				util.Infof("Cleared settings in %s", path)
				fmt.Fprintln(cmd.OutOrStdout(), "Settings cleared")
				return nil
			},
		},
	)
	return cmd
}
