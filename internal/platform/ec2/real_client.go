package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// DefaultRouteCIDR is the destination of the default route added to public
// route tables.
const DefaultRouteCIDR = "0.0.0.0/0"

// RealClient implements NetworkAPI against the AWS EC2 API.
type RealClient struct {
	client *awsec2.Client
}

// NewRealClient creates a NetworkAPI implementation from an AWS config.
func NewRealClient(cfg aws.Config) *RealClient {
	return &RealClient{client: awsec2.NewFromConfig(cfg)}
}

// CreateVPC creates a VPC and returns its ID.
func (c *RealClient) CreateVPC(ctx context.Context, cidrBlock string, tags []types.Tag) (string, error) {
	out, err := c.client.CreateVpc(ctx, &awsec2.CreateVpcInput{
		CidrBlock: aws.String(cidrBlock),
		TagSpecifications: []types.TagSpecification{{
			ResourceType: types.ResourceTypeVpc,
			Tags:         tags,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create VPC: %w", err)
	}
	return aws.ToString(out.Vpc.VpcId), nil
}

// EnableVPCDNS enables DNS support and DNS hostnames on the VPC. Two separate
// ModifyVpcAttribute calls; the API accepts only one attribute per request.
func (c *RealClient) EnableVPCDNS(ctx context.Context, vpcID string) error {
	_, err := c.client.ModifyVpcAttribute(ctx, &awsec2.ModifyVpcAttributeInput{
		VpcId:            aws.String(vpcID),
		EnableDnsSupport: &types.AttributeBooleanValue{Value: aws.Bool(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to enable DNS support on %s: %w", vpcID, err)
	}

	_, err = c.client.ModifyVpcAttribute(ctx, &awsec2.ModifyVpcAttributeInput{
		VpcId:              aws.String(vpcID),
		EnableDnsHostnames: &types.AttributeBooleanValue{Value: aws.Bool(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to enable DNS hostnames on %s: %w", vpcID, err)
	}
	return nil
}

// DescribeVPC returns the VPC or nil when it does not exist.
func (c *RealClient) DescribeVPC(ctx context.Context, vpcID string) (*types.Vpc, error) {
	out, err := c.client.DescribeVpcs(ctx, &awsec2.DescribeVpcsInput{
		VpcIds: []string{vpcID},
	})
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to describe VPC %s: %w", vpcID, err)
	}
	if len(out.Vpcs) == 0 {
		return nil, nil
	}
	return &out.Vpcs[0], nil
}

// DeleteVPC deletes the VPC.
func (c *RealClient) DeleteVPC(ctx context.Context, vpcID string) error {
	_, err := c.client.DeleteVpc(ctx, &awsec2.DeleteVpcInput{VpcId: aws.String(vpcID)})
	return err
}

// CreateSubnet creates a subnet in the VPC and returns its ID.
func (c *RealClient) CreateSubnet(ctx context.Context, vpcID, cidrBlock, zone string, tags []types.Tag) (string, error) {
	out, err := c.client.CreateSubnet(ctx, &awsec2.CreateSubnetInput{
		VpcId:            aws.String(vpcID),
		CidrBlock:        aws.String(cidrBlock),
		AvailabilityZone: aws.String(zone),
		TagSpecifications: []types.TagSpecification{{
			ResourceType: types.ResourceTypeSubnet,
			Tags:         tags,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create subnet %s in %s: %w", cidrBlock, vpcID, err)
	}
	return aws.ToString(out.Subnet.SubnetId), nil
}

// EnableAutoAssignPublicIP enables MapPublicIpOnLaunch on the subnet.
func (c *RealClient) EnableAutoAssignPublicIP(ctx context.Context, subnetID string) error {
	_, err := c.client.ModifySubnetAttribute(ctx, &awsec2.ModifySubnetAttributeInput{
		SubnetId:            aws.String(subnetID),
		MapPublicIpOnLaunch: &types.AttributeBooleanValue{Value: aws.Bool(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to enable public IP assignment on %s: %w", subnetID, err)
	}
	return nil
}

// SubnetsByVPC lists the subnets belonging to the VPC.
func (c *RealClient) SubnetsByVPC(ctx context.Context, vpcID string) ([]types.Subnet, error) {
	out, err := c.client.DescribeSubnets(ctx, &awsec2.DescribeSubnetsInput{
		Filters: vpcFilter(vpcID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list subnets of %s: %w", vpcID, err)
	}
	return out.Subnets, nil
}

// DeleteSubnet deletes the subnet.
func (c *RealClient) DeleteSubnet(ctx context.Context, subnetID string) error {
	_, err := c.client.DeleteSubnet(ctx, &awsec2.DeleteSubnetInput{SubnetId: aws.String(subnetID)})
	return err
}

// CreateInternetGateway creates an internet gateway and returns its ID.
func (c *RealClient) CreateInternetGateway(ctx context.Context, tags []types.Tag) (string, error) {
	out, err := c.client.CreateInternetGateway(ctx, &awsec2.CreateInternetGatewayInput{
		TagSpecifications: []types.TagSpecification{{
			ResourceType: types.ResourceTypeInternetGateway,
			Tags:         tags,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create internet gateway: %w", err)
	}
	return aws.ToString(out.InternetGateway.InternetGatewayId), nil
}

// AttachInternetGateway attaches the gateway to the VPC.
func (c *RealClient) AttachInternetGateway(ctx context.Context, igwID, vpcID string) error {
	_, err := c.client.AttachInternetGateway(ctx, &awsec2.AttachInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
		VpcId:             aws.String(vpcID),
	})
	if err != nil {
		return fmt.Errorf("failed to attach %s to %s: %w", igwID, vpcID, err)
	}
	return nil
}

// DetachInternetGateway detaches the gateway from the VPC.
func (c *RealClient) DetachInternetGateway(ctx context.Context, igwID, vpcID string) error {
	_, err := c.client.DetachInternetGateway(ctx, &awsec2.DetachInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
		VpcId:             aws.String(vpcID),
	})
	return err
}

// InternetGatewaysByVPC lists gateways attached to the VPC.
func (c *RealClient) InternetGatewaysByVPC(ctx context.Context, vpcID string) ([]types.InternetGateway, error) {
	out, err := c.client.DescribeInternetGateways(ctx, &awsec2.DescribeInternetGatewaysInput{
		Filters: []types.Filter{{
			Name:   aws.String("attachment.vpc-id"),
			Values: []string{vpcID},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list internet gateways of %s: %w", vpcID, err)
	}
	return out.InternetGateways, nil
}

// DeleteInternetGateway deletes the gateway.
func (c *RealClient) DeleteInternetGateway(ctx context.Context, igwID string) error {
	_, err := c.client.DeleteInternetGateway(ctx, &awsec2.DeleteInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
	})
	return err
}

// CreateRouteTable creates a route table in the VPC and returns its ID.
func (c *RealClient) CreateRouteTable(ctx context.Context, vpcID string, tags []types.Tag) (string, error) {
	out, err := c.client.CreateRouteTable(ctx, &awsec2.CreateRouteTableInput{
		VpcId: aws.String(vpcID),
		TagSpecifications: []types.TagSpecification{{
			ResourceType: types.ResourceTypeRouteTable,
			Tags:         tags,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create route table in %s: %w", vpcID, err)
	}
	return aws.ToString(out.RouteTable.RouteTableId), nil
}

// CreateDefaultRoute adds the all-traffic route via the gateway.
func (c *RealClient) CreateDefaultRoute(ctx context.Context, routeTableID, igwID string) error {
	_, err := c.client.CreateRoute(ctx, &awsec2.CreateRouteInput{
		RouteTableId:         aws.String(routeTableID),
		DestinationCidrBlock: aws.String(DefaultRouteCIDR),
		GatewayId:            aws.String(igwID),
	})
	if err != nil {
		return fmt.Errorf("failed to create default route in %s: %w", routeTableID, err)
	}
	return nil
}

// AssociateRouteTable associates the route table with the subnet.
func (c *RealClient) AssociateRouteTable(ctx context.Context, routeTableID, subnetID string) error {
	_, err := c.client.AssociateRouteTable(ctx, &awsec2.AssociateRouteTableInput{
		RouteTableId: aws.String(routeTableID),
		SubnetId:     aws.String(subnetID),
	})
	if err != nil {
		return fmt.Errorf("failed to associate %s with %s: %w", routeTableID, subnetID, err)
	}
	return nil
}

// RouteTablesByVPC lists the route tables of the VPC.
func (c *RealClient) RouteTablesByVPC(ctx context.Context, vpcID string) ([]types.RouteTable, error) {
	out, err := c.client.DescribeRouteTables(ctx, &awsec2.DescribeRouteTablesInput{
		Filters: vpcFilter(vpcID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list route tables of %s: %w", vpcID, err)
	}
	return out.RouteTables, nil
}

// DeleteRouteTable deletes the route table.
func (c *RealClient) DeleteRouteTable(ctx context.Context, routeTableID string) error {
	_, err := c.client.DeleteRouteTable(ctx, &awsec2.DeleteRouteTableInput{
		RouteTableId: aws.String(routeTableID),
	})
	return err
}

// AvailableZones returns the zones currently reported as available.
func (c *RealClient) AvailableZones(ctx context.Context) ([]string, error) {
	out, err := c.client.DescribeAvailabilityZones(ctx, &awsec2.DescribeAvailabilityZonesInput{
		Filters: []types.Filter{{
			Name:   aws.String("state"),
			Values: []string{"available"},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe availability zones: %w", err)
	}

	var zones []string
	for _, az := range out.AvailabilityZones {
		if az.ZoneName != nil {
			zones = append(zones, *az.ZoneName)
		}
	}
	return zones, nil
}

func vpcFilter(vpcID string) []types.Filter {
	return []types.Filter{{
		Name:   aws.String("vpc-id"),
		Values: []string{vpcID},
	}}
}
