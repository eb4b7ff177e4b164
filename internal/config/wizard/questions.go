package wizard

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"

	"vpcd/internal/config"
)

// DynamoDB table name rules: 3-255 characters from the documented set.
var tableNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,255}$`)

// runProviderGroup prompts for the region and metadata table.
func runProviderGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Region").
				Description("Region to provision VPCs in").
				Options(RegionsToOptions()...).
				Value(&result.Region),
			huh.NewInput().
				Title("Metadata Table").
				Description("DynamoDB table for VPC records").
				Placeholder(config.DefaultTable).
				Value(&result.Table).
				Validate(validateTableName),
		).Title("Provider"),
	).RunWithContext(ctx)
}

// runNetworkGroup prompts for the default VPC CIDR.
func runNetworkGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default CIDR Block").
				Description("Used when a create request does not specify one (prefix /16 to /28)").
				Placeholder(config.DefaultCIDR).
				Value(&result.DefaultCIDR).
				Validate(validateCIDR),
		).Title("Network"),
	).RunWithContext(ctx)
}

// runServerGroup prompts for the HTTP listen address.
func runServerGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Listen Address").
				Description("Address for the HTTP API (vpcd serve)").
				Placeholder(config.DefaultListenAddr).
				Value(&result.ListenAddr).
				Validate(validateListenAddr),
		).Title("Server"),
	).RunWithContext(ctx)
}

func validateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name is required")
	}
	if !tableNameRegex.MatchString(name) {
		return fmt.Errorf("table name must be 3-255 characters (letters, digits, '_', '.', '-')")
	}
	return nil
}

func validateCIDR(cidr string) error {
	return config.ValidateVPCCIDR(cidr)
}

func validateListenAddr(addr string) error {
	if addr == "" {
		return fmt.Errorf("listen address is required")
	}
	if !strings.Contains(addr, ":") {
		return fmt.Errorf("listen address must include a port (e.g. :8080)")
	}
	return nil
}
