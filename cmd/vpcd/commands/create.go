package commands

import (
	"github.com/spf13/cobra"

	"vpcd/cmd/vpcd/handlers"
	"vpcd/internal/config"
)

// Create returns the create command.
//
// The create command provisions a VPC with one public and one private
// subnet, an internet gateway, and a public route table, then persists a
// metadata record. On partial failure everything already created is rolled
// back.
func Create() *cobra.Command {
	var (
		configPath string
		cidrBlock  string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Provision a VPC with public and private subnets",
		Long: `Create provisions an isolated virtual network.

Resources are created in dependency order:
  - VPC with DNS support and hostnames enabled
  - Public subnet (third octet 1, /24) with auto-assigned public IPs
  - Private subnet (third octet 2, /24)
  - Internet gateway, attached to the VPC
  - Public route table with a default route, associated with the public subnet

A metadata record is written to the configured DynamoDB table. If any
step fails after the VPC exists, the resources created so far are rolled
back and the original error is reported.

Example:
  vpcd create my-vpc --cidr 10.0.0.0/16`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Create(cmd.Context(), configPath, args[0], cidrBlock)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "Path to configuration file")
	cmd.Flags().StringVar(&cidrBlock, "cidr", "", "CIDR block for the VPC (default taken from config)")

	return cmd
}
