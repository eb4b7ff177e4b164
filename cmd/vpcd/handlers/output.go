package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"vpcd/internal/provisioning"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen)
)

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// style returns s rendered with the given style on a terminal, or unchanged
// when output is piped.
func style(s lipgloss.Style, text string) string {
	if !isInteractiveTTY() {
		return text
	}
	return s.Render(text)
}

// renderRecord produces a human-readable view of a VPC record.
func renderRecord(record *provisioning.VPCRecord) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(style(titleStyle, "  "+record.Name))
	b.WriteString(style(dimStyle, "  ("+record.VPCID+")"))
	b.WriteString("\n")
	b.WriteString(style(dimStyle, "  "+strings.Repeat("─", 50)))
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %-18s %s\n", "CIDR block:", record.CIDRBlock)
	fmt.Fprintf(&b, "  %-18s %s\n", "Region:", record.Region)
	fmt.Fprintf(&b, "  %-18s %s\n", "Status:", record.Status)
	fmt.Fprintf(&b, "  %-18s %s\n", "Internet gateway:", record.InternetGatewayID)
	fmt.Fprintf(&b, "  %-18s %s\n", "Created at:", record.CreatedAt)

	if len(record.Subnets) > 0 {
		b.WriteString("\n")
		b.WriteString(style(sectionStyle, "  Subnets"))
		b.WriteString("\n")
		for _, subnet := range record.Subnets {
			fmt.Fprintf(&b, "    %-8s %-26s %-16s %s\n",
				subnet.Type, subnet.SubnetID, subnet.CIDRBlock, subnet.AvailabilityZone)
		}
	}

	if len(record.RouteTables) > 0 {
		b.WriteString("\n")
		b.WriteString(style(sectionStyle, "  Route tables"))
		b.WriteString("\n")
		for kind, id := range record.RouteTables {
			fmt.Fprintf(&b, "    %-8s %s\n", kind, id)
		}
	}

	return b.String()
}

// renderRecordList produces a one-line-per-VPC table.
func renderRecordList(records []provisioning.VPCRecord) string {
	if len(records) == 0 {
		return style(dimStyle, "No managed VPCs found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(style(dimStyle, fmt.Sprintf("  %-22s %-22s %-18s %-10s %s",
		"VPC ID", "Name", "CIDR", "Status", "Created")))
	b.WriteString("\n")
	for _, r := range records {
		fmt.Fprintf(&b, "  %-22s %-22s %-18s %-10s %s\n",
			r.VPCID, r.Name, r.CIDRBlock, r.Status, r.CreatedAt)
	}
	return b.String()
}
