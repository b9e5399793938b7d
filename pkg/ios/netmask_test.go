package ios

import (
	"strconv"
	"strings"
	"testing"

	"github.com/iosgen/iosgen/pkg/util"
)

func TestCIDRToNetmask(t *testing.T) {
	tests := []struct {
		prefix   string
		want     string
		wantWarn bool
	}{
		{"24", "255.255.255.0", false},
		{"16", "255.255.0.0", false},
		{"8", "255.0.0.0", false},
		{"1", "128.0.0.0", false},
		{"12", "255.240.0.0", false},
		{"25", "255.255.255.128", false},
		{"30", "255.255.255.252", false},
		{"31", "255.255.255.254", false},
		{" 20 ", "255.255.240.0", false},
		{"32", HostMask, false},
		{"33", HostMask, false},
		{"-4", HostMask, false},
		{"99999999999999999999", HostMask, false},
		{"-99999999999999999999", HostMask, false},
		// /0 collapses to the host mask instead of 0.0.0.0.
		{"0", HostMask, false},
		{"abc", FallbackMask, true},
		{"", FallbackMask, true},
		{"24.5", FallbackMask, true},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got := CIDRToNetmask(tt.prefix)
			if got.Mask != tt.want {
				t.Errorf("CIDRToNetmask(%q).Mask = %q, want %q", tt.prefix, got.Mask, tt.want)
			}
			if (got.Warning != nil) != tt.wantWarn {
				t.Errorf("CIDRToNetmask(%q).Warning = %v, wantWarn %v", tt.prefix, got.Warning, tt.wantWarn)
			}
		})
	}
}

func TestCIDRToNetmask_AllPrefixesWellFormed(t *testing.T) {
	for n := 1; n <= 31; n++ {
		mask := CIDRToNetmask(strconv.Itoa(n)).Mask
		if len(strings.Split(mask, ".")) != 4 {
			t.Errorf("/%d: %q is not four octets", n, mask)
		}
		if !util.IsValidNetmask(mask) {
			t.Errorf("/%d: %q is not a contiguous mask", n, mask)
		}
	}
}

func TestCIDRToNetmask_WarningText(t *testing.T) {
	res := CIDRToNetmask("x")
	if res.Warning == nil {
		t.Fatal("expected warning")
	}
	if !strings.Contains(res.Warning.String(), FallbackMask) {
		t.Errorf("warning should mention fallback mask, got %q", res.Warning.String())
	}
}
