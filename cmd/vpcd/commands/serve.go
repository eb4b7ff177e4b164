package commands

import (
	"github.com/spf13/cobra"

	"vpcd/cmd/vpcd/handlers"
	"vpcd/internal/config"
)

// Serve returns the serve command.
//
// The serve command runs the HTTP API. It exposes the same operations as
// the CLI plus Prometheus metrics:
//
//	POST   /vpcs        create a VPC
//	GET    /vpcs        list managed VPCs
//	GET    /vpcs/{id}   fetch one record
//	DELETE /vpcs/{id}   tear down a VPC
//	GET    /metrics     Prometheus metrics
func Serve() *cobra.Command {
	var (
		configPath string
		listenAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the VPC provisioning HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Serve(cmd.Context(), configPath, listenAddr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "Path to configuration file")
	cmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (overrides config)")

	return cmd
}
