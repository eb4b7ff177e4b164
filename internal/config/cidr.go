package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for CIDR handling. Callers match with errors.Is.
var (
	// ErrInvalidCIDR indicates a VPC CIDR that is malformed or whose prefix
	// is outside the allowed /16../28 window.
	ErrInvalidCIDR = errors.New("invalid VPC CIDR")

	// ErrMalformedCIDR indicates a CIDR that does not parse as four
	// dot-separated octets followed by /<prefix>.
	ErrMalformedCIDR = errors.New("malformed CIDR")
)

// VPC CIDR prefix bounds. AWS accepts /16 through /28 for a VPC block.
const (
	MinVPCPrefix = 16
	MaxVPCPrefix = 28
)

// SubnetPrefix is the fixed prefix length of derived subnets.
const SubnetPrefix = 24

// Subnet indices within a VPC range. Index 0 is reserved.
const (
	PublicSubnetIndex  = 1
	PrivateSubnetIndex = 2
)

// DeriveSubnetCIDR calculates a /24 subnet CIDR inside the given VPC CIDR by
// substituting the third octet with the subnet index:
//
//	10.0.0.0/16, index 1 -> 10.0.1.0/24
//
// The substitution is purely arithmetic. It assumes the parent prefix is at
// most /24 and performs no overlap or capacity checks; callers guarantee the
// parent passed ValidateVPCCIDR first.
func DeriveSubnetCIDR(vpcCIDR string, index int) (string, error) {
	octets, _, err := splitCIDR(vpcCIDR)
	if err != nil {
		return "", err
	}
	octets[2] = strconv.Itoa(index)
	return fmt.Sprintf("%s/%d", strings.Join(octets, "."), SubnetPrefix), nil
}

// ValidateVPCCIDR checks that cidr is a well-formed IPv4 CIDR whose prefix
// length falls within [MinVPCPrefix, MaxVPCPrefix].
func ValidateVPCCIDR(cidr string) error {
	_, prefix, err := splitCIDR(cidr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCIDR, cidr)
	}
	if prefix < MinVPCPrefix || prefix > MaxVPCPrefix {
		return fmt.Errorf("%w: prefix must be between /%d and /%d, got /%d",
			ErrInvalidCIDR, MinVPCPrefix, MaxVPCPrefix, prefix)
	}
	return nil
}

// splitCIDR parses cidr into its four octet strings and prefix length.
func splitCIDR(cidr string) ([]string, int, error) {
	base, prefixPart, ok := strings.Cut(cidr, "/")
	if !ok {
		return nil, 0, fmt.Errorf("%w: missing prefix in %q", ErrMalformedCIDR, cidr)
	}

	octets := strings.Split(base, ".")
	if len(octets) != 4 {
		return nil, 0, fmt.Errorf("%w: expected four octets in %q", ErrMalformedCIDR, cidr)
	}
	for _, octet := range octets {
		n, err := strconv.Atoi(octet)
		if err != nil || n < 0 || n > 255 {
			return nil, 0, fmt.Errorf("%w: bad octet %q in %q", ErrMalformedCIDR, octet, cidr)
		}
	}

	prefix, err := strconv.Atoi(prefixPart)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: bad prefix %q in %q", ErrMalformedCIDR, prefixPart, cidr)
	}

	return octets, prefix, nil
}
