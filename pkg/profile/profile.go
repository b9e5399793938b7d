// Package profile loads YAML files of site defaults for the iosgen tools.
//
// A profile only fills in values the command line leaves unset:
//
//	domain: corp.example.com
//	banner: Authorized access only
//	exec_timeout: 10
//	rsa_modulus: 4096
//	ipv6_unicast_routing: false
//	packet_tracer: false
//	hash_secrets: true
//	interface:
//	  exit: true
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iosgen/iosgen/pkg/ios"
	"github.com/iosgen/iosgen/pkg/util"
)

// RSA modulus range accepted by "crypto key generate rsa".
const (
	MinRSAModulus = 360
	MaxRSAModulus = 4096
)

// Profile holds device and interface defaults. Pointer fields
// distinguish "not set" from the zero value.
type Profile struct {
	Domain       string           `yaml:"domain,omitempty"`
	Banner       string           `yaml:"banner,omitempty"`
	ExecTimeout  *int             `yaml:"exec_timeout,omitempty"`
	RSAModulus   *int             `yaml:"rsa_modulus,omitempty"`
	IPv6Routing  *bool            `yaml:"ipv6_unicast_routing,omitempty"`
	PacketTracer bool             `yaml:"packet_tracer,omitempty"`
	HashSecrets  bool             `yaml:"hash_secrets,omitempty"`
	Interface    InterfaceProfile `yaml:"interface,omitempty"`
}

// InterfaceProfile holds defaults for iosintf.
type InterfaceProfile struct {
	Exit bool `yaml:"exit,omitempty"`
}

// Load parses a profile YAML file and validates it.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates profile YAML. Unknown keys are rejected.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to io.EOF and is a valid empty profile.
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks numeric ranges.
func (p *Profile) Validate() error {
	v := &util.ValidationBuilder{}
	if p.ExecTimeout != nil && *p.ExecTimeout < 0 {
		v.AddErrorf("exec_timeout must be >= 0, got %d", *p.ExecTimeout)
	}
	if m := p.RSAModulus; m != nil && (*m < MinRSAModulus || *m > MaxRSAModulus) {
		v.AddErrorf("rsa_modulus must be between %d and %d, got %d", MinRSAModulus, MaxRSAModulus, *m)
	}
	return v.Build()
}

// ApplyDevice copies the profile's values onto c. Call it before applying
// command-line flags so that flags win.
func (p *Profile) ApplyDevice(c *ios.DeviceConfig) {
	if p.Domain != "" {
		c.SetDomain(p.Domain)
	}
	if p.Banner != "" {
		c.Banner = p.Banner
	}
	if p.ExecTimeout != nil {
		c.ExecTimeout = *p.ExecTimeout
	}
	if p.RSAModulus != nil {
		c.RSAModulus = *p.RSAModulus
	}
	if p.IPv6Routing != nil {
		c.SetIPv6Routing(*p.IPv6Routing)
	}
	if p.PacketTracer {
		c.SetPacketTracer(true)
	}
}
