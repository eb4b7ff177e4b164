// Package main is the entry point for the vpcd CLI.
//
// vpcd provisions isolated virtual networks on AWS. Each network is a VPC
// with one public and one private subnet, an internet gateway, and a public
// route table, with metadata persisted in DynamoDB.
//
// Commands: init, create, delete, get, serve, version.
//
// For detailed usage information, run:
//
//	vpcd --help
package main

import (
	"fmt"
	"os"

	"vpcd/cmd/vpcd/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
