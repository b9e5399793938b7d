package util

import (
	"net"
	"strings"
)

// SplitAddrPrefix splits "A.B.C.D/N" into the address and the raw prefix
// text. The prefix is returned unparsed so callers can decide how to treat
// malformed lengths. ok is false when there is no slash.
func SplitAddrPrefix(cidr string) (addr, prefix string, ok bool) {
	addr, prefix, ok = strings.Cut(cidr, "/")
	if !ok {
		return cidr, "", false
	}
	return addr, prefix, true
}

// IsValidIPv4 checks if a string is a valid IPv4 address
func IsValidIPv4(ipStr string) bool {
	ip := net.ParseIP(ipStr)
	return ip != nil && ip.To4() != nil && !strings.Contains(ipStr, ":")
}

// IsValidIPv6 checks if a string is a valid IPv6 address, with or without
// a prefix length.
func IsValidIPv6(s string) bool {
	if strings.Contains(s, "/") {
		ip, _, err := net.ParseCIDR(s)
		return err == nil && strings.Contains(ip.String(), ":")
	}
	ip := net.ParseIP(s)
	return ip != nil && strings.Contains(s, ":")
}

// IsValidNetmask checks that s is a dotted-decimal IPv4 mask with
// contiguous one bits.
func IsValidNetmask(s string) bool {
	if !IsValidIPv4(s) {
		return false
	}
	ip := net.ParseIP(s).To4()
	_, bits := net.IPv4Mask(ip[0], ip[1], ip[2], ip[3]).Size()
	return bits == 32
}
