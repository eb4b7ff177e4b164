package api

import (
	"fmt"
	"regexp"
	"strings"

	"vpcd/internal/config"
)

// Name must start alphanumeric and may contain hyphens and underscores.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// VPC IDs as issued by the provider.
var vpcIDRegex = regexp.MustCompile(`^vpc-[a-f0-9]{8,17}$`)

// MaxNameLength bounds VPC names.
const MaxNameLength = 255

// ValidateName checks a VPC name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("VPC name is required")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("VPC name must be %d characters or less", MaxNameLength)
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("VPC name must start with an alphanumeric character and contain only alphanumeric characters, hyphens, and underscores")
	}
	return nil
}

// ValidateVPCID checks the syntactic shape of a provider-issued VPC ID.
func ValidateVPCID(vpcID string) error {
	if vpcID == "" {
		return fmt.Errorf("VPC ID is required")
	}
	if !vpcIDRegex.MatchString(vpcID) {
		return fmt.Errorf("invalid VPC ID format (expected: vpc-xxxxxxxx)")
	}
	return nil
}

// CreateRequest is a create call after syntactic validation.
type CreateRequest struct {
	Name      string `json:"name"`
	CIDRBlock string `json:"cidr_block"`
}

// ValidateCreateRequest validates and normalizes a create request. An empty
// CIDR falls back to defaultCIDR.
func ValidateCreateRequest(name, cidrBlock, defaultCIDR string) (*CreateRequest, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	cidrBlock = strings.TrimSpace(cidrBlock)
	if cidrBlock == "" {
		cidrBlock = defaultCIDR
	}
	if err := config.ValidateVPCCIDR(cidrBlock); err != nil {
		return nil, err
	}

	return &CreateRequest{Name: name, CIDRBlock: cidrBlock}, nil
}
