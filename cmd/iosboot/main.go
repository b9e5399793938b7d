// iosboot - Cisco IOS bootstrap configuration generator
//
// Prints the global configuration a freshly erased router or switch needs
// before it is reachable: hostname, passwords, console/aux/VTY lines and,
// optionally, a domain name, local login and SSH.
//
// Usage:
//
//	iosboot <hostname> <console-password> <enable-secret> [flags]
//
// Examples:
//
//	iosboot R1 cisco class
//	iosboot R1 cisco class -d example.com -l admin:secret -s
//	iosboot S1 cisco class -l :telnetpw -t -x
//	iosboot R1 cisco class -d lab.local -l admin:pw -s -K   # Packet Tracer
//
// Paste the output into global configuration mode.
package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iosgen/iosgen/pkg/cli"
	"github.com/iosgen/iosgen/pkg/ios"
	"github.com/iosgen/iosgen/pkg/profile"
	"github.com/iosgen/iosgen/pkg/settings"
	"github.com/iosgen/iosgen/pkg/util"
	"github.com/iosgen/iosgen/pkg/version"
)

const toolName = "iosboot"

type bootOptions struct {
	domain       string
	login        string
	telnet       bool
	ssh          bool
	noIPv6       bool
	packetTracer bool
	execTimeout  int
	rsaModulus   int
	banner       string
	hash         bool
	profilePath  string
	verbose      bool

	userSettings *settings.Settings
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &bootOptions{}

	cmd := &cobra.Command{
		Use:               toolName + " <hostname> <console-password> <enable-secret>",
		Short:             "Generate Cisco IOS device bootstrap configuration",
		Version:           version.Info(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		Long: `iosboot prints hostname, password, line and remote access configuration
for a Cisco IOS device.

SSH needs a domain name (-d) and a local account (-l user:password).
Missing prerequisites are reported on stderr and SSH is left out.`,
		Args: cobra.ExactArgs(3),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.userSettings = cli.Init(opts.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := buildDevice(cmd, opts, args)
			if err != nil {
				return err
			}
			out := dev.Render()
			cli.ReportDiagnostics(toolName, out.Diagnostics)
			fmt.Fprint(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.domain, "domain", "d", "", "Domain name")
	f.StringVarP(&opts.login, "login", "l", "", "Login credentials - username:password (\":password\" for password-only telnet)")
	f.BoolVarP(&opts.telnet, "telnet", "t", false, "Enable Telnet; use -l username:password")
	f.BoolVarP(&opts.ssh, "ssh", "s", false, "Enable SSH; use -l username:password and -d")
	f.BoolVarP(&opts.noIPv6, "noipv6", "x", false, "Disable IPv6 unicast-routing")
	f.BoolVarP(&opts.packetTracer, "packettracer", "K", false, "Packet Tracer syntax for key generation")
	f.IntVar(&opts.execTimeout, "exec-timeout", ios.DefaultExecTimeout, "Line exec-timeout")
	f.IntVar(&opts.rsaModulus, "rsa-modulus", ios.DefaultRSAModulus, "RSA key modulus for SSH")
	f.StringVar(&opts.banner, "banner", ios.DefaultBanner, "MOTD banner text")
	f.BoolVar(&opts.hash, "hash", false, "Emit enable and user secrets as type 9 hashes")
	cmd.PersistentFlags().StringVar(&opts.profilePath, "profile", "", "YAML profile of defaults")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	cmd.AddCommand(newSettingsCmd())
	return cmd
}

// buildDevice applies the profile first and then the flags, in the order
// the flags are documented.
func buildDevice(cmd *cobra.Command, opts *bootOptions, args []string) (*ios.DeviceConfig, error) {
	dev := ios.NewDeviceConfig(args[0], args[1], args[2])
	log := util.WithTool(toolName).WithField("hostname", dev.Hostname)

	prof, err := cli.LoadProfile(opts.profilePath, opts.userSettings)
	if err != nil {
		return nil, err
	}
	hash := opts.hash
	if prof != nil {
		prof.ApplyDevice(dev)
		hash = hash || prof.HashSecrets
	}

	if opts.domain != "" {
		dev.SetDomain(opts.domain)
	}
	haveLogin := opts.login != ""
	if haveLogin {
		user, pass, err := ios.ParseLogin(opts.login)
		if err != nil {
			return nil, util.NewArgumentError("--login", opts.login, "expected username:password")
		}
		dev.SetLogin(user, pass)
	}
	if opts.packetTracer {
		dev.SetPacketTracer(true)
	}
	if opts.noIPv6 {
		dev.SetIPv6Routing(false)
	}
	dev.SetTransport(ios.SelectTransport(opts.telnet, opts.ssh, haveLogin))
	if opts.telnet && opts.ssh && !haveLogin {
		log.Warn("Telnet and SSH together need -l username:password, enabling Telnet only")
	}

	flags := cmd.Flags()
	v := &util.ValidationBuilder{}
	if flags.Changed("exec-timeout") {
		if opts.execTimeout < 0 {
			v.AddErrorf("--exec-timeout must be >= 0, got %d", opts.execTimeout)
		}
		dev.ExecTimeout = opts.execTimeout
	}
	if flags.Changed("rsa-modulus") {
		if opts.rsaModulus < profile.MinRSAModulus || opts.rsaModulus > profile.MaxRSAModulus {
			v.AddErrorf("--rsa-modulus must be between %d and %d, got %d",
				profile.MinRSAModulus, profile.MaxRSAModulus, opts.rsaModulus)
		}
		dev.RSAModulus = opts.rsaModulus
	}
	if flags.Changed("banner") {
		v.Add(opts.banner != "", "--banner must not be empty")
		dev.Banner = opts.banner
	}
	if v.HasErrors() {
		return nil, v.Build()
	}

	if hash {
		if err := dev.HashSecrets(rand.Reader); err != nil {
			return nil, err
		}
	}

	log.Debugf("login=%s transport=%s hashed=%v", dev.Login, dev.Transport, dev.SecretsHashed)
	return dev, nil
}
