package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// NetworkAPI defines the EC2 networking operations the orchestrator depends
// on. Every call maps to a single EC2 API request; no call retries
// automatically.
type NetworkAPI interface {
	// CreateVPC creates a VPC with the given CIDR block and tags and returns
	// its ID.
	CreateVPC(ctx context.Context, cidrBlock string, tags []types.Tag) (string, error)
	// EnableVPCDNS enables DNS support and DNS hostnames on the VPC.
	EnableVPCDNS(ctx context.Context, vpcID string) error
	// DescribeVPC returns the VPC, or nil when the provider reports it does
	// not exist.
	DescribeVPC(ctx context.Context, vpcID string) (*types.Vpc, error)
	DeleteVPC(ctx context.Context, vpcID string) error

	// CreateSubnet creates a subnet in the given VPC and availability zone
	// and returns its ID.
	CreateSubnet(ctx context.Context, vpcID, cidrBlock, zone string, tags []types.Tag) (string, error)
	// EnableAutoAssignPublicIP marks the subnet to assign public addresses to
	// launched instances.
	EnableAutoAssignPublicIP(ctx context.Context, subnetID string) error
	// SubnetsByVPC lists the subnets belonging to the VPC.
	SubnetsByVPC(ctx context.Context, vpcID string) ([]types.Subnet, error)
	DeleteSubnet(ctx context.Context, subnetID string) error

	CreateInternetGateway(ctx context.Context, tags []types.Tag) (string, error)
	AttachInternetGateway(ctx context.Context, igwID, vpcID string) error
	DetachInternetGateway(ctx context.Context, igwID, vpcID string) error
	// InternetGatewaysByVPC lists the internet gateways attached to the VPC.
	InternetGatewaysByVPC(ctx context.Context, vpcID string) ([]types.InternetGateway, error)
	DeleteInternetGateway(ctx context.Context, igwID string) error

	CreateRouteTable(ctx context.Context, vpcID string, tags []types.Tag) (string, error)
	// CreateDefaultRoute adds a 0.0.0.0/0 route pointing at the gateway.
	CreateDefaultRoute(ctx context.Context, routeTableID, igwID string) error
	AssociateRouteTable(ctx context.Context, routeTableID, subnetID string) error
	// RouteTablesByVPC lists the route tables belonging to the VPC, including
	// the main table.
	RouteTablesByVPC(ctx context.Context, vpcID string) ([]types.RouteTable, error)
	DeleteRouteTable(ctx context.Context, routeTableID string) error

	// AvailableZones returns the names of zones currently in the "available"
	// state, in provider order.
	AvailableZones(ctx context.Context) ([]string, error)
}
