package ios

import (
	"fmt"
	"io"
	"strings"
)

// Device defaults applied by NewDeviceConfig.
const (
	DefaultExecTimeout   = 5
	DefaultRSAModulus    = 2048
	DefaultLocalPassword = "cisco"
	DefaultBanner        = "Unauthorized access prohibited"
)

// LoginMode selects how VTY sessions authenticate.
type LoginMode int

const (
	// LoginNone disables authentication on the VTY lines.
	LoginNone LoginMode = iota
	// LoginPassword uses a line password.
	LoginPassword
	// LoginLocal uses the local user database.
	LoginLocal
)

func (m LoginMode) String() string {
	switch m {
	case LoginNone:
		return "none"
	case LoginPassword:
		return "password"
	case LoginLocal:
		return "local"
	}
	return fmt.Sprintf("LoginMode(%d)", int(m))
}

// Transport is the set of protocols accepted on the VTY lines. The zero
// value means "transport input none".
type Transport uint8

const (
	TransportTelnet Transport = 1 << iota
	TransportSSH
)

// Has reports whether every protocol in p is in t.
func (t Transport) Has(p Transport) bool {
	return p != 0 && t&p == p
}

// String renders t the way "transport input" expects it.
func (t Transport) String() string {
	var names []string
	if t.Has(TransportTelnet) {
		names = append(names, "telnet")
	}
	if t.Has(TransportSSH) {
		names = append(names, "ssh")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}

// SelectTransport maps the telnet/ssh toggles to a transport set. Telnet
// and SSH together need local credentials; without them only telnet is
// enabled.
func SelectTransport(telnet, ssh, haveLogin bool) Transport {
	switch {
	case telnet && ssh && haveLogin:
		return TransportTelnet | TransportSSH
	case telnet:
		return TransportTelnet
	case ssh:
		return TransportSSH
	}
	return 0
}

// ParseLogin splits "user:password". An empty user (":password") is valid
// and selects password-only VTY access.
func ParseLogin(s string) (user, pass string, err error) {
	user, pass, ok := strings.Cut(s, ":")
	if !ok {
		return "", "", fmt.Errorf("login %q: expected user:password", s)
	}
	return user, pass, nil
}

// DeviceConfig holds the global settings of one device.
type DeviceConfig struct {
	Hostname        string
	Domain          string
	IPv6Routing     bool
	EnableSecret    string
	ConsolePassword string
	LocalUser       string
	LocalPassword   string
	Login           LoginMode
	Transport       Transport
	ExecTimeout     int
	PacketTracer    bool
	RSAModulus      int
	Banner          string

	// SecretsHashed is set once EnableSecret and, for LoginLocal,
	// LocalPassword hold type 9 hashes instead of clear text.
	SecretsHashed bool

	// passwordSupplied is false while LocalPassword is still the default.
	passwordSupplied bool
}

// NewDeviceConfig returns a DeviceConfig with every default filled in.
func NewDeviceConfig(hostname, consolePassword, enableSecret string) *DeviceConfig {
	return &DeviceConfig{
		Hostname:        hostname,
		IPv6Routing:     true,
		EnableSecret:    enableSecret,
		ConsolePassword: consolePassword,
		LocalPassword:   DefaultLocalPassword,
		Login:           LoginPassword,
		ExecTimeout:     DefaultExecTimeout,
		RSAModulus:      DefaultRSAModulus,
		Banner:          DefaultBanner,
	}
}

// SetLogin stores VTY credentials. A non-empty user switches the lines to
// the local user database; an empty one keeps password-only login.
func (c *DeviceConfig) SetLogin(user, pass string) {
	c.LocalUser = user
	c.LocalPassword = pass
	c.passwordSupplied = true
	if user == "" {
		c.Login = LoginPassword
	} else {
		c.Login = LoginLocal
	}
}

// SetDomain sets the IP domain name.
func (c *DeviceConfig) SetDomain(domain string) {
	c.Domain = domain
}

// SetIPv6Routing toggles "ipv6 unicast-routing".
func (c *DeviceConfig) SetIPv6Routing(enabled bool) {
	c.IPv6Routing = enabled
}

// SetTransport sets the protocols accepted on the VTY lines.
func (c *DeviceConfig) SetTransport(t Transport) {
	c.Transport = t
}

// SetPacketTracer selects the Packet Tracer form of RSA key generation.
func (c *DeviceConfig) SetPacketTracer(enabled bool) {
	c.PacketTracer = enabled
}

// HashSecrets replaces the enable secret, and the local user's password
// when local login is configured, with type 9 hashes. Line passwords stay
// in clear text since IOS has no type 9 form for them. Calling it twice is
// a no-op.
func (c *DeviceConfig) HashSecrets(rand io.Reader) error {
	if c.SecretsHashed {
		return nil
	}
	enable, err := HashType9(c.EnableSecret, rand)
	if err != nil {
		return fmt.Errorf("hashing enable secret: %w", err)
	}
	local := c.LocalPassword
	if c.Login == LoginLocal {
		local, err = HashType9(c.LocalPassword, rand)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", c.LocalUser, err)
		}
	}
	c.EnableSecret = enable
	c.LocalPassword = local
	c.SecretsHashed = true
	return nil
}

// sshReady reports whether SSH can be configured.
func (c *DeviceConfig) sshReady() bool {
	return c.Domain != "" && c.Login == LoginLocal
}

func (c *DeviceConfig) secretLine(prefix, secret string) string {
	if c.SecretsHashed {
		return fmt.Sprintf("%s secret 9 %s\n", prefix, secret)
	}
	return fmt.Sprintf("%s algorithm-type scrypt secret %s\n", prefix, secret)
}

// Render produces the bootstrap configuration. An SSH request that lacks
// a domain or local credentials is dropped with a diagnostic.
func (c *DeviceConfig) Render() Rendered {
	var sb strings.Builder
	var diags []Diagnostic

	sb.WriteString(fmt.Sprintf("hostname %s\n", c.Hostname))
	sb.WriteString("no ip domain-lookup\n")
	sb.WriteString("service password-encryption\n")
	sb.WriteString(fmt.Sprintf("banner motd #%s#\n", c.Banner))
	if c.Domain != "" {
		sb.WriteString(fmt.Sprintf("ip domain-name %s\n", c.Domain))
	}
	if c.IPv6Routing {
		sb.WriteString("ipv6 unicast-routing\n")
	}

	sb.WriteString(c.secretLine("enable", c.EnableSecret))
	sb.WriteString("line con 0\n")
	sb.WriteString(fmt.Sprintf(" password %s\n", c.ConsolePassword))
	sb.WriteString(" logging synchronous\n")
	sb.WriteString(" login\n")
	sb.WriteString(fmt.Sprintf(" exec-timeout %d\n", c.ExecTimeout))
	sb.WriteString("line aux 0\n")
	sb.WriteString(" no exec\n")

	if c.Login == LoginLocal {
		sb.WriteString(c.secretLine("username "+c.LocalUser, c.LocalPassword))
	}
	if c.Transport.Has(TransportSSH) {
		if c.sshReady() {
			if c.PacketTracer {
				sb.WriteString(fmt.Sprintf("crypto key generate rsa\n%d\n", c.RSAModulus))
			} else {
				sb.WriteString(fmt.Sprintf("crypto key generate rsa modulus %d\n", c.RSAModulus))
			}
			sb.WriteString("ip ssh version 2\n")
		} else {
			diags = append(diags, Diagnostic{
				Field:   "ssh",
				Message: "SSH cannot be configured without credentials/domain name",
			})
		}
	}

	sb.WriteString("line vty 0 15\n")
	sb.WriteString(" logging synchronous\n")
	sb.WriteString(fmt.Sprintf(" exec-timeout %d\n", c.ExecTimeout))
	sb.WriteString(fmt.Sprintf(" transport input %s\n", c.Transport))
	switch {
	case c.Transport == 0 || c.Login == LoginNone:
		sb.WriteString(" no login\n")
	case c.Login == LoginLocal:
		sb.WriteString(" login local\n")
	default:
		sb.WriteString(fmt.Sprintf(" password %s\n", c.LocalPassword))
		sb.WriteString(" login\n")
		if !c.passwordSupplied {
			diags = append(diags, Diagnostic{
				Field:   "vty",
				Message: fmt.Sprintf("no login password supplied, VTY lines use the default password %q", c.LocalPassword),
			})
		}
	}

	return Rendered{Text: sb.String(), Diagnostics: diags}
}
