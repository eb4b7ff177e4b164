package commands

import (
	"github.com/spf13/cobra"

	"vpcd/cmd/vpcd/handlers"
	"vpcd/internal/config"
)

// Delete returns the delete command.
//
// The delete command tears down a VPC and its dependent resources in
// dependency order: subnets, route tables, internet gateways, then the VPC
// itself. The metadata record is removed afterwards.
func Delete() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "delete <vpc-id>",
		Short: "Tear down a VPC and all its dependent resources",
		Long: `Delete removes a VPC and everything it contains.

Dependents are re-discovered from the provider and deleted in order:
  - Subnets
  - Route tables (the main route table is skipped)
  - Internet gateways (detached, then deleted)
  - The VPC itself

A VPC that was already deleted out of band is treated as success. The
metadata record is removed once teardown completes.

Example:
  vpcd delete vpc-0123456789abcdef0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Delete(cmd.Context(), configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "Path to configuration file")

	return cmd
}
