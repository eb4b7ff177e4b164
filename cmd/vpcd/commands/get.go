package commands

import (
	"github.com/spf13/cobra"

	"vpcd/cmd/vpcd/handlers"
	"vpcd/internal/config"
)

// Get returns the get command.
//
// With a VPC ID argument it prints that VPC's metadata record. Without
// arguments it lists all managed VPCs.
func Get() *cobra.Command {
	var (
		configPath string
		limit      int32
	)

	cmd := &cobra.Command{
		Use:   "get [vpc-id]",
		Short: "Show one VPC record or list all managed VPCs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return handlers.Get(cmd.Context(), configPath, args[0])
			}
			return handlers.List(cmd.Context(), configPath, limit)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "Path to configuration file")
	cmd.Flags().Int32Var(&limit, "limit", 50, "Maximum number of records to list")

	return cmd
}
