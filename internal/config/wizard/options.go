package wizard

import "github.com/charmbracelet/huh"

// Region holds a selectable region with a human-readable label.
type Region struct {
	Value string
	Label string
}

// Regions lists the regions offered by the wizard. Any region can still be
// set directly in the config file.
var Regions = []Region{
	{Value: "us-east-1", Label: "US East (N. Virginia)"},
	{Value: "us-east-2", Label: "US East (Ohio)"},
	{Value: "us-west-1", Label: "US West (N. California)"},
	{Value: "us-west-2", Label: "US West (Oregon)"},
	{Value: "eu-west-1", Label: "Europe (Ireland)"},
	{Value: "eu-central-1", Label: "Europe (Frankfurt)"},
	{Value: "ap-southeast-1", Label: "Asia Pacific (Singapore)"},
	{Value: "ap-northeast-1", Label: "Asia Pacific (Tokyo)"},
}

// RegionsToOptions converts the region list into huh select options.
func RegionsToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(Regions))
	for _, r := range Regions {
		opts = append(opts, huh.NewOption(r.Label+" ("+r.Value+")", r.Value))
	}
	return opts
}
