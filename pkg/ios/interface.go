package ios

import (
	"fmt"
	"strings"

	"github.com/iosgen/iosgen/pkg/util"
)

// SwitchportMode is the layer-2 behaviour of an interface.
type SwitchportMode int

const (
	SwitchportNone SwitchportMode = iota
	SwitchportAccess
	// SwitchportNative is a trunk whose VLAN is the native VLAN.
	SwitchportNative
	SwitchportTrunk
)

func (m SwitchportMode) String() string {
	switch m {
	case SwitchportNone:
		return "none"
	case SwitchportAccess:
		return "access"
	case SwitchportNative:
		return "native"
	case SwitchportTrunk:
		return "trunk"
	}
	return fmt.Sprintf("SwitchportMode(%d)", int(m))
}

// InterfaceConfig holds the settings of a single interface. All fields
// other than ID are optional.
type InterfaceConfig struct {
	ID            string
	Description   string
	Encapsulation string
	IPv4          string
	Netmask       string
	IPv6          string
	LinkLocal     string
	AdminUp       bool
	Mode          SwitchportMode
	VLAN          string
	PortSecurity  bool

	diags []Diagnostic
}

// NewInterfaceConfig returns an administratively up interface with no
// other settings.
func NewInterfaceConfig(id string) *InterfaceConfig {
	return &InterfaceConfig{ID: id, AdminUp: true}
}

// NewInterfaceConfigWithIPv4 is NewInterfaceConfig followed by SetIPv4.
func NewInterfaceConfigWithIPv4(id, addr string) *InterfaceConfig {
	ic := NewInterfaceConfig(id)
	ic.SetIPv4(addr)
	return ic
}

func (ic *InterfaceConfig) warn(field, format string, args ...interface{}) {
	ic.diags = append(ic.diags, Diagnostic{Field: field, Message: fmt.Sprintf(format, args...)})
}

// SetIPv4 sets the address. "A.B.C.D/N" derives the netmask from N; a
// bare address gets the host mask. Either can be replaced by SetNetmask.
func (ic *InterfaceConfig) SetIPv4(addr string) {
	ip, prefix, hasPrefix := util.SplitAddrPrefix(addr)
	ic.IPv4 = ip
	if hasPrefix {
		res := CIDRToNetmask(prefix)
		ic.Netmask = res.Mask
		if res.Warning != nil {
			ic.diags = append(ic.diags, *res.Warning)
		}
	} else {
		ic.Netmask = HostMask
	}
	if !util.IsValidIPv4(ip) {
		ic.warn("ipv4", "%q is not a valid IPv4 address", ip)
	}
}

// SetNetmask overrides the netmask derived by SetIPv4.
func (ic *InterfaceConfig) SetNetmask(mask string) {
	ic.Netmask = mask
	if !util.IsValidNetmask(mask) {
		ic.warn("netmask", "%q is not a contiguous dotted-decimal netmask", mask)
	}
}

// SetDescription sets the interface description.
func (ic *InterfaceConfig) SetDescription(desc string) {
	ic.Description = desc
}

// SetEncapsulation sets the encapsulation, e.g. "dot1q" or "ppp". With
// dot1q the VLAN id is appended when one is set.
func (ic *InterfaceConfig) SetEncapsulation(encap string) {
	ic.Encapsulation = encap
}

// SetIPv6 sets the global IPv6 address, including its prefix length.
func (ic *InterfaceConfig) SetIPv6(addr string) {
	ic.IPv6 = addr
	if !util.IsValidIPv6(addr) {
		ic.warn("ipv6", "%q is not a valid IPv6 address", addr)
	}
}

// SetLinkLocal sets the IPv6 link-local address.
func (ic *InterfaceConfig) SetLinkLocal(addr string) {
	ic.LinkLocal = addr
	if !util.IsValidIPv6(addr) {
		ic.warn("link-local", "%q is not a valid IPv6 address", addr)
	}
}

// SetSwitchport sets the switchport mode.
func (ic *InterfaceConfig) SetSwitchport(mode SwitchportMode) {
	ic.Mode = mode
}

// SetVLAN sets the VLAN used by access, native and dot1q configuration.
func (ic *InterfaceConfig) SetVLAN(vlan string) {
	ic.VLAN = vlan
}

// EnablePortSecurity turns on port security, which requires access mode.
func (ic *InterfaceConfig) EnablePortSecurity() {
	ic.Mode = SwitchportAccess
	ic.PortSecurity = true
}

// SetShutdown sets the administrative state; true shuts the interface down.
func (ic *InterfaceConfig) SetShutdown(shutdown bool) {
	ic.AdminUp = !shutdown
}

// Diagnostics returns the problems recorded by the setters so far.
func (ic *InterfaceConfig) Diagnostics() []Diagnostic {
	return ic.diags
}

// Render produces the interface configuration, with a trailing " exit"
// when exit is true.
func (ic *InterfaceConfig) Render(exit bool) Rendered {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("interface %s\n", ic.ID))
	if ic.Description != "" {
		sb.WriteString(fmt.Sprintf(" description %s\n", ic.Description))
	}
	if ic.Encapsulation != "" {
		sb.WriteString(fmt.Sprintf(" encapsulation %s", ic.Encapsulation))
		if strings.EqualFold(ic.Encapsulation, "dot1q") && ic.VLAN != "" {
			sb.WriteString(" " + ic.VLAN)
		}
		sb.WriteString("\n")
	}
	if ic.IPv4 != "" {
		sb.WriteString(fmt.Sprintf(" ip address %s %s\n", ic.IPv4, ic.Netmask))
	}
	if ic.IPv6 != "" {
		sb.WriteString(fmt.Sprintf(" ipv6 address %s\n", ic.IPv6))
	}
	if ic.LinkLocal != "" {
		sb.WriteString(fmt.Sprintf(" ipv6 address %s link-local\n", ic.LinkLocal))
	}

	switch ic.Mode {
	case SwitchportTrunk:
		sb.WriteString(" switchport mode trunk\n")
	case SwitchportNative:
		sb.WriteString(" switchport mode trunk\n")
		if ic.VLAN != "" {
			sb.WriteString(fmt.Sprintf(" switchport trunk native vlan %s\n", ic.VLAN))
		}
	case SwitchportAccess:
		sb.WriteString(" switchport mode access\n")
		if ic.VLAN != "" {
			sb.WriteString(fmt.Sprintf(" switchport access vlan %s\n", ic.VLAN))
		}
	}
	if ic.PortSecurity {
		sb.WriteString(" switchport port-security\n")
	}

	if ic.AdminUp {
		sb.WriteString(" no shutdown\n")
	} else {
		sb.WriteString(" shutdown\n")
	}
	if exit {
		sb.WriteString(" exit\n")
	}

	diags := make([]Diagnostic, len(ic.diags))
	copy(diags, ic.diags)
	return Rendered{Text: sb.String(), Diagnostics: diags}
}
