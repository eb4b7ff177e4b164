package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// MockClient is a test double for NetworkAPI. Each method delegates to the
// corresponding Func field when set and returns a plausible default
// otherwise. Every call is appended to Calls, so tests can assert ordering
// and that validation failures never reach the provider.
type MockClient struct {
	Calls []string

	CreateVPCFunc                func(ctx context.Context, cidrBlock string, tags []types.Tag) (string, error)
	EnableVPCDNSFunc             func(ctx context.Context, vpcID string) error
	DescribeVPCFunc              func(ctx context.Context, vpcID string) (*types.Vpc, error)
	DeleteVPCFunc                func(ctx context.Context, vpcID string) error
	CreateSubnetFunc             func(ctx context.Context, vpcID, cidrBlock, zone string, tags []types.Tag) (string, error)
	EnableAutoAssignPublicIPFunc func(ctx context.Context, subnetID string) error
	SubnetsByVPCFunc             func(ctx context.Context, vpcID string) ([]types.Subnet, error)
	DeleteSubnetFunc             func(ctx context.Context, subnetID string) error
	CreateInternetGatewayFunc    func(ctx context.Context, tags []types.Tag) (string, error)
	AttachInternetGatewayFunc    func(ctx context.Context, igwID, vpcID string) error
	DetachInternetGatewayFunc    func(ctx context.Context, igwID, vpcID string) error
	InternetGatewaysByVPCFunc    func(ctx context.Context, vpcID string) ([]types.InternetGateway, error)
	DeleteInternetGatewayFunc    func(ctx context.Context, igwID string) error
	CreateRouteTableFunc         func(ctx context.Context, vpcID string, tags []types.Tag) (string, error)
	CreateDefaultRouteFunc       func(ctx context.Context, routeTableID, igwID string) error
	AssociateRouteTableFunc      func(ctx context.Context, routeTableID, subnetID string) error
	RouteTablesByVPCFunc         func(ctx context.Context, vpcID string) ([]types.RouteTable, error)
	DeleteRouteTableFunc         func(ctx context.Context, routeTableID string) error
	AvailableZonesFunc           func(ctx context.Context) ([]string, error)
}

// CallCount returns the total number of provider calls made.
func (m *MockClient) CallCount() int {
	return len(m.Calls)
}

func (m *MockClient) record(name string) {
	m.Calls = append(m.Calls, name)
}

// CreateVPC implements NetworkAPI.
func (m *MockClient) CreateVPC(ctx context.Context, cidrBlock string, tags []types.Tag) (string, error) {
	m.record("CreateVPC")
	if m.CreateVPCFunc != nil {
		return m.CreateVPCFunc(ctx, cidrBlock, tags)
	}
	return "vpc-0mock0000000000001", nil
}

// EnableVPCDNS implements NetworkAPI.
func (m *MockClient) EnableVPCDNS(ctx context.Context, vpcID string) error {
	m.record("EnableVPCDNS")
	if m.EnableVPCDNSFunc != nil {
		return m.EnableVPCDNSFunc(ctx, vpcID)
	}
	return nil
}

// DescribeVPC implements NetworkAPI.
func (m *MockClient) DescribeVPC(ctx context.Context, vpcID string) (*types.Vpc, error) {
	m.record("DescribeVPC")
	if m.DescribeVPCFunc != nil {
		return m.DescribeVPCFunc(ctx, vpcID)
	}
	return &types.Vpc{VpcId: &vpcID}, nil
}

// DeleteVPC implements NetworkAPI.
func (m *MockClient) DeleteVPC(ctx context.Context, vpcID string) error {
	m.record("DeleteVPC")
	if m.DeleteVPCFunc != nil {
		return m.DeleteVPCFunc(ctx, vpcID)
	}
	return nil
}

// CreateSubnet implements NetworkAPI.
func (m *MockClient) CreateSubnet(ctx context.Context, vpcID, cidrBlock, zone string, tags []types.Tag) (string, error) {
	m.record("CreateSubnet")
	if m.CreateSubnetFunc != nil {
		return m.CreateSubnetFunc(ctx, vpcID, cidrBlock, zone, tags)
	}
	return "subnet-0mock000000000001", nil
}

// EnableAutoAssignPublicIP implements NetworkAPI.
func (m *MockClient) EnableAutoAssignPublicIP(ctx context.Context, subnetID string) error {
	m.record("EnableAutoAssignPublicIP")
	if m.EnableAutoAssignPublicIPFunc != nil {
		return m.EnableAutoAssignPublicIPFunc(ctx, subnetID)
	}
	return nil
}

// SubnetsByVPC implements NetworkAPI.
func (m *MockClient) SubnetsByVPC(ctx context.Context, vpcID string) ([]types.Subnet, error) {
	m.record("SubnetsByVPC")
	if m.SubnetsByVPCFunc != nil {
		return m.SubnetsByVPCFunc(ctx, vpcID)
	}
	return nil, nil
}

// DeleteSubnet implements NetworkAPI.
func (m *MockClient) DeleteSubnet(ctx context.Context, subnetID string) error {
	m.record("DeleteSubnet")
	if m.DeleteSubnetFunc != nil {
		return m.DeleteSubnetFunc(ctx, subnetID)
	}
	return nil
}

// CreateInternetGateway implements NetworkAPI.
func (m *MockClient) CreateInternetGateway(ctx context.Context, tags []types.Tag) (string, error) {
	m.record("CreateInternetGateway")
	if m.CreateInternetGatewayFunc != nil {
		return m.CreateInternetGatewayFunc(ctx, tags)
	}
	return "igw-0mock0000000000001", nil
}

// AttachInternetGateway implements NetworkAPI.
func (m *MockClient) AttachInternetGateway(ctx context.Context, igwID, vpcID string) error {
	m.record("AttachInternetGateway")
	if m.AttachInternetGatewayFunc != nil {
		return m.AttachInternetGatewayFunc(ctx, igwID, vpcID)
	}
	return nil
}

// DetachInternetGateway implements NetworkAPI.
func (m *MockClient) DetachInternetGateway(ctx context.Context, igwID, vpcID string) error {
	m.record("DetachInternetGateway")
	if m.DetachInternetGatewayFunc != nil {
		return m.DetachInternetGatewayFunc(ctx, igwID, vpcID)
	}
	return nil
}

// InternetGatewaysByVPC implements NetworkAPI.
func (m *MockClient) InternetGatewaysByVPC(ctx context.Context, vpcID string) ([]types.InternetGateway, error) {
	m.record("InternetGatewaysByVPC")
	if m.InternetGatewaysByVPCFunc != nil {
		return m.InternetGatewaysByVPCFunc(ctx, vpcID)
	}
	return nil, nil
}

// DeleteInternetGateway implements NetworkAPI.
func (m *MockClient) DeleteInternetGateway(ctx context.Context, igwID string) error {
	m.record("DeleteInternetGateway")
	if m.DeleteInternetGatewayFunc != nil {
		return m.DeleteInternetGatewayFunc(ctx, igwID)
	}
	return nil
}

// CreateRouteTable implements NetworkAPI.
func (m *MockClient) CreateRouteTable(ctx context.Context, vpcID string, tags []types.Tag) (string, error) {
	m.record("CreateRouteTable")
	if m.CreateRouteTableFunc != nil {
		return m.CreateRouteTableFunc(ctx, vpcID, tags)
	}
	return "rtb-0mock0000000000001", nil
}

// CreateDefaultRoute implements NetworkAPI.
func (m *MockClient) CreateDefaultRoute(ctx context.Context, routeTableID, igwID string) error {
	m.record("CreateDefaultRoute")
	if m.CreateDefaultRouteFunc != nil {
		return m.CreateDefaultRouteFunc(ctx, routeTableID, igwID)
	}
	return nil
}

// AssociateRouteTable implements NetworkAPI.
func (m *MockClient) AssociateRouteTable(ctx context.Context, routeTableID, subnetID string) error {
	m.record("AssociateRouteTable")
	if m.AssociateRouteTableFunc != nil {
		return m.AssociateRouteTableFunc(ctx, routeTableID, subnetID)
	}
	return nil
}

// RouteTablesByVPC implements NetworkAPI.
func (m *MockClient) RouteTablesByVPC(ctx context.Context, vpcID string) ([]types.RouteTable, error) {
	m.record("RouteTablesByVPC")
	if m.RouteTablesByVPCFunc != nil {
		return m.RouteTablesByVPCFunc(ctx, vpcID)
	}
	return nil, nil
}

// DeleteRouteTable implements NetworkAPI.
func (m *MockClient) DeleteRouteTable(ctx context.Context, routeTableID string) error {
	m.record("DeleteRouteTable")
	if m.DeleteRouteTableFunc != nil {
		return m.DeleteRouteTableFunc(ctx, routeTableID)
	}
	return nil
}

// AvailableZones implements NetworkAPI.
func (m *MockClient) AvailableZones(ctx context.Context) ([]string, error) {
	m.record("AvailableZones")
	if m.AvailableZonesFunc != nil {
		return m.AvailableZonesFunc(ctx)
	}
	return []string{"us-east-2a", "us-east-2b"}, nil
}
