package vpc

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	platformec2 "vpcd/internal/platform/ec2"
	"vpcd/internal/provisioning"
)

func twoSubnets(_ context.Context, _ string) ([]ec2types.Subnet, error) {
	return []ec2types.Subnet{
		{SubnetId: aws.String("subnet-public")},
		{SubnetId: aws.String("subnet-private")},
	}, nil
}

func oneGateway(_ context.Context, _ string) ([]ec2types.InternetGateway, error) {
	return []ec2types.InternetGateway{{InternetGatewayId: aws.String("igw-123")}}, nil
}

func TestDelete_FullSequence(t *testing.T) {
	m := &platformec2.MockClient{
		SubnetsByVPCFunc: twoSubnets,
		RouteTablesByVPCFunc: func(_ context.Context, _ string) ([]ec2types.RouteTable, error) {
			return []ec2types.RouteTable{
				{
					RouteTableId: aws.String("rtb-main"),
					Associations: []ec2types.RouteTableAssociation{{Main: aws.Bool(true)}},
				},
				{
					RouteTableId: aws.String("rtb-public"),
					Associations: []ec2types.RouteTableAssociation{{Main: aws.Bool(false)}},
				},
			}, nil
		},
		InternetGatewaysByVPCFunc: oneGateway,
	}

	p, _ := newTestProvisioner(m)
	record, err := p.Delete(context.Background(), "vpc-123")
	require.NoError(t, err)

	assert.Equal(t, "vpc-123", record.VPCID)
	assert.Equal(t, provisioning.StatusDeleted, record.Status)
	assert.Equal(t, "2026-08-29T12:00:00Z", record.DeletedAt)
	assert.Empty(t, record.Note)

	// Dependency order: subnets, route tables, gateways, then the VPC.
	assert.Equal(t, []string{
		"SubnetsByVPC",
		"DeleteSubnet",
		"DeleteSubnet",
		"RouteTablesByVPC",
		"DeleteRouteTable",
		"InternetGatewaysByVPC",
		"DetachInternetGateway",
		"DeleteInternetGateway",
		"DeleteVPC",
	}, m.Calls)
}

func TestDelete_SkipsMainRouteTable(t *testing.T) {
	var deleted []string
	m := &platformec2.MockClient{
		RouteTablesByVPCFunc: func(_ context.Context, _ string) ([]ec2types.RouteTable, error) {
			return []ec2types.RouteTable{
				{
					RouteTableId: aws.String("rtb-main"),
					Associations: []ec2types.RouteTableAssociation{
						{Main: aws.Bool(false)},
						{Main: aws.Bool(true)},
					},
				},
				{
					RouteTableId: aws.String("rtb-public"),
					Associations: []ec2types.RouteTableAssociation{{Main: aws.Bool(false)}},
				},
			}, nil
		},
		DeleteRouteTableFunc: func(_ context.Context, routeTableID string) error {
			deleted = append(deleted, routeTableID)
			return nil
		},
	}

	p, _ := newTestProvisioner(m)
	_, err := p.Delete(context.Background(), "vpc-123")
	require.NoError(t, err)

	assert.Equal(t, []string{"rtb-public"}, deleted)
}

// A route table the provider returns without any association records is not
// recognizable as the main table, so deletion is attempted. Pins down the
// behavior for the edge case where the provider omits associations.
func TestDelete_RouteTableWithoutAssociations(t *testing.T) {
	var deleted []string
	m := &platformec2.MockClient{
		RouteTablesByVPCFunc: func(_ context.Context, _ string) ([]ec2types.RouteTable, error) {
			return []ec2types.RouteTable{{RouteTableId: aws.String("rtb-bare")}}, nil
		},
		DeleteRouteTableFunc: func(_ context.Context, routeTableID string) error {
			deleted = append(deleted, routeTableID)
			return nil
		},
	}

	p, _ := newTestProvisioner(m)
	_, err := p.Delete(context.Background(), "vpc-123")
	require.NoError(t, err)

	assert.Equal(t, []string{"rtb-bare"}, deleted)
}

func TestDelete_VPCAlreadyGone(t *testing.T) {
	m := &platformec2.MockClient{
		DeleteVPCFunc: func(_ context.Context, _ string) error {
			return apiError(platformec2.CodeVPCNotFound)
		},
	}

	p, _ := newTestProvisioner(m)
	record, err := p.Delete(context.Background(), "vpc-404")

	require.NoError(t, err, "delete must be idempotent for a missing VPC")
	assert.Equal(t, provisioning.StatusDeleted, record.Status)
	assert.Equal(t, outOfBandNote, record.Note)
}

func TestDelete_DependencyViolationPropagates(t *testing.T) {
	m := &platformec2.MockClient{
		DeleteVPCFunc: func(_ context.Context, _ string) error {
			return apiError(platformec2.CodeDependencyViolation)
		},
	}

	p, _ := newTestProvisioner(m)
	_, err := p.Delete(context.Background(), "vpc-123")

	require.Error(t, err)
	assert.True(t, platformec2.IsDependencyViolation(err))
}

func TestDelete_DependentVanishedMidTeardown(t *testing.T) {
	m := &platformec2.MockClient{
		SubnetsByVPCFunc: twoSubnets,
		DeleteSubnetFunc: func(_ context.Context, subnetID string) error {
			if subnetID == "subnet-public" {
				return apiError(platformec2.CodeSubnetNotFound)
			}
			return nil
		},
	}

	p, _ := newTestProvisioner(m)
	record, err := p.Delete(context.Background(), "vpc-123")

	require.NoError(t, err, "a dependent already gone is skipped, not an error")
	assert.Equal(t, provisioning.StatusDeleted, record.Status)
}

func TestDelete_EnumerationErrorPropagates(t *testing.T) {
	m := &platformec2.MockClient{
		SubnetsByVPCFunc: func(_ context.Context, _ string) ([]ec2types.Subnet, error) {
			return nil, apiError("InternalError")
		},
	}

	p, _ := newTestProvisioner(m)
	_, err := p.Delete(context.Background(), "vpc-123")

	require.Error(t, err)
	assert.NotContains(t, m.Calls, "DeleteVPC")
}
