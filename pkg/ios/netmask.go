package ios

import (
	"errors"
	"net"
	"strconv"
	"strings"
)

const (
	// HostMask is used for bare addresses and for out-of-range prefixes.
	HostMask = "255.255.255.255"

	// FallbackMask is returned when the prefix length is not a number.
	FallbackMask = "255.255.255.0"
)

// MaskResult is a derived netmask and, when the input was malformed, the
// warning explaining the fallback.
type MaskResult struct {
	Mask    string
	Warning *Diagnostic
}

// CIDRToNetmask converts a prefix length such as "24" into a dotted-decimal
// netmask. Lengths <= 0 and >= 32 both map to HostMask, so "/0" does not
// yield 0.0.0.0.
func CIDRToNetmask(prefix string) MaskResult {
	n, err := strconv.Atoi(strings.TrimSpace(prefix))
	if errors.Is(err, strconv.ErrRange) {
		return MaskResult{Mask: HostMask}
	}
	if err != nil {
		return MaskResult{
			Mask: FallbackMask,
			Warning: &Diagnostic{
				Field:   "prefix",
				Message: "prefix length " + strconv.Quote(prefix) + " is not a number, using " + FallbackMask,
			},
		}
	}
	if n <= 0 || n >= 32 {
		return MaskResult{Mask: HostMask}
	}
	return MaskResult{Mask: net.IP(net.CIDRMask(n, 32)).String()}
}
