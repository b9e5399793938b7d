// iosintf - Cisco IOS interface configuration generator
//
// Prints the configuration block for one interface: description,
// encapsulation, IPv4/IPv6 addressing, switchport mode, VLAN, port
// security and administrative state.
//
// Usage:
//
//	iosintf <interface> [ipv4[/prefix]] [flags]
//
// Switchport modes are selected with -s followed by a letter, so the
// short forms read -sA (access), -sN (trunk with native VLAN),
// -sT (trunk) and -sP (port security, implies access).
//
// Examples:
//
//	iosintf gigabitethernet0/1 -4 10.0.0.1/24
//	iosintf gigabitethernet0/1 10.0.0.1 -m 255.255.255.0 -d uplink
//	iosintf fastethernet0/5 -sA -v 10 -sP
//	iosintf gigabitethernet0/0.20 -e dot1q -v 20 -4 10.0.20.1/24 -x
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iosgen/iosgen/pkg/cli"
	"github.com/iosgen/iosgen/pkg/ios"
	"github.com/iosgen/iosgen/pkg/util"
	"github.com/iosgen/iosgen/pkg/version"
)

const toolName = "iosintf"

type intfOptions struct {
	desc        string
	encap       string
	ipv4        string
	ipv6        string
	linkLocal   string
	netmask     string
	switchport  []string
	access      bool
	native      bool
	portSec     bool
	trunk       bool
	vlan        string
	shutdown    bool
	exit        bool
	profilePath string
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &intfOptions{}

	cmd := &cobra.Command{
		Use:               toolName + " <interface> [ipv4[/prefix]]",
		Short:             "Generate Cisco IOS interface configuration",
		Version:           version.Info(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		Long: `iosintf prints the configuration of a single Cisco IOS interface.

An IPv4 address in CIDR form derives its netmask; -m overrides it. A bare
address gets a host mask. The interface is left "no shutdown" unless -X
is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userSettings := cli.Init(opts.verbose)
			prof, err := cli.LoadProfile(opts.profilePath, userSettings)
			if err != nil {
				return err
			}

			ic, err := buildInterface(opts, args)
			if err != nil {
				return err
			}
			exit := opts.exit
			if prof != nil {
				exit = exit || prof.Interface.Exit
			}

			out := ic.Render(exit)
			cli.ReportDiagnostics(toolName, out.Diagnostics)
			fmt.Fprint(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.desc, "desc", "d", "", "Description")
	f.StringVarP(&opts.encap, "encap", "e", "", "Encapsulation mode; can use with -v")
	f.StringVarP(&opts.ipv4, "ipv4", "4", "", "IPv4 address/CIDR")
	f.StringVarP(&opts.ipv6, "ipv6", "6", "", "IPv6 address/CIDR")
	f.StringVarP(&opts.linkLocal, "llocal", "l", "", "IPv6 link-local address")
	f.StringVarP(&opts.netmask, "netmask", "m", "", "Specify IPv4 netmask instead of CIDR")
	f.StringArrayVarP(&opts.switchport, "switchport", "s", nil, "Switchport selector: A (access), N (native), P (port-security), T (trunk); repeatable")
	f.BoolVar(&opts.access, "access", false, "Switchport mode access; use with -v to specify VLAN")
	f.BoolVar(&opts.native, "native", false, "Switchport mode trunk with native VLAN; use with -v")
	f.BoolVar(&opts.portSec, "portsec", false, "Switchport port-security; enforces switchport mode access")
	f.BoolVar(&opts.trunk, "trunk", false, "Switchport mode trunk")
	f.StringVarP(&opts.vlan, "vlan", "v", "", "VLAN number; use with access, native or -e dot1q")
	f.BoolVarP(&opts.shutdown, "shutdown", "X", false, "Shutdown interface (default: no shutdown)")
	f.BoolVarP(&opts.exit, "exit", "x", false, "Add exit to end of interface configuration")
	f.StringVar(&opts.profilePath, "profile", "", "YAML profile of defaults")
	f.BoolVar(&opts.verbose, "verbose", false, "Verbose output")

	return cmd
}

// applySelectors folds -s values into the boolean switchport options.
func applySelectors(opts *intfOptions) error {
	for _, raw := range opts.switchport {
		for _, sel := range util.SplitCommaSeparated(raw) {
			switch strings.ToLower(sel) {
			case "a", "access":
				opts.access = true
			case "n", "native":
				opts.native = true
			case "p", "portsec", "port-security":
				opts.portSec = true
			case "t", "trunk":
				opts.trunk = true
			default:
				return util.NewArgumentError("-s", sel, "expected A, N, P or T")
			}
		}
	}
	return nil
}

// buildInterface applies the options in a fixed order so that later
// settings win: address, netmask, description, encapsulation, IPv6,
// link-local, access, native, trunk, VLAN, port security, shutdown.
func buildInterface(opts *intfOptions, args []string) (*ios.InterfaceConfig, error) {
	if err := applySelectors(opts); err != nil {
		return nil, err
	}

	var ic *ios.InterfaceConfig
	if len(args) == 2 {
		ic = ios.NewInterfaceConfigWithIPv4(args[0], args[1])
	} else {
		ic = ios.NewInterfaceConfig(args[0])
	}
	log := util.WithTool(toolName).WithField("interface", ic.ID)

	if opts.ipv4 != "" {
		ic.SetIPv4(opts.ipv4)
	}
	if opts.netmask != "" {
		if ic.IPv4 == "" {
			log.Warn("Ignoring --netmask without an IPv4 address")
		} else {
			ic.SetNetmask(opts.netmask)
		}
	}
	if opts.desc != "" {
		ic.SetDescription(opts.desc)
	}
	if opts.encap != "" {
		ic.SetEncapsulation(opts.encap)
	}
	if opts.ipv6 != "" {
		ic.SetIPv6(opts.ipv6)
	}
	if opts.linkLocal != "" {
		ic.SetLinkLocal(opts.linkLocal)
	}

	if opts.access {
		ic.SetSwitchport(ios.SwitchportAccess)
	}
	if opts.native {
		ic.SetSwitchport(ios.SwitchportNative)
	}
	if opts.trunk {
		ic.SetSwitchport(ios.SwitchportTrunk)
	}
	if opts.vlan != "" {
		ic.SetVLAN(opts.vlan)
	}
	if opts.portSec {
		ic.EnablePortSecurity()
	}
	if opts.shutdown {
		ic.SetShutdown(true)
	}

	log.Debugf("mode=%s vlan=%q admin-up=%v", ic.Mode, ic.VLAN, ic.AdminUp)
	return ic, nil
}
