package commands

import (
	"github.com/spf13/cobra"

	"vpcd/cmd/vpcd/handlers"
	"vpcd/internal/config"
)

// Init returns the command for interactively creating a configuration file.
//
// This command guides users through creating a vpcd configuration YAML file
// using an interactive wizard with text inputs and single-select prompts.
//
// Flags:
//
//	--output, -o: Path to output file (default "vpcd.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create a vpcd configuration file.

This command walks through the settings step by step:

  - Region
  - DynamoDB metadata table
  - Default CIDR block for new VPCs
  - HTTP listen address for vpcd serve

The result is written as commented YAML. Existing files are only
overwritten after confirmation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFile, "Output file path")

	return cmd
}
