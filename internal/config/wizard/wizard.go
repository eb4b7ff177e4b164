package wizard

import (
	"context"
	"fmt"

	"vpcd/internal/config"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	Region      string
	Table       string
	DefaultCIDR string
	ListenAddr  string
}

// Run walks the user through the configuration groups. The context is used
// for cancellation support (e.g., Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{
		Region:      config.DefaultRegion,
		Table:       config.DefaultTable,
		DefaultCIDR: config.DefaultCIDR,
		ListenAddr:  config.DefaultListenAddr,
	}

	if err := runProviderGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("provider: %w", err)
	}

	if err := runNetworkGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	if err := runServerGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	return result, nil
}

// BuildConfig converts wizard answers into a Config.
func BuildConfig(result *Result) *config.Config {
	return &config.Config{
		Region:      result.Region,
		Table:       result.Table,
		DefaultCIDR: result.DefaultCIDR,
		ListenAddr:  result.ListenAddr,
	}
}
