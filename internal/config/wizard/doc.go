// Package wizard implements the interactive setup flow behind "vpcd init".
// It prompts for the region, metadata table, default CIDR, and listen
// address, then writes a commented vpcd.yaml.
package wizard
