package vpc

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	platformec2 "vpcd/internal/platform/ec2"
	"vpcd/internal/provisioning"
)

// outOfBandNote explains a delete normalized because the VPC was already gone.
const outOfBandNote = "VPC was not found at the provider (may have been deleted out of band)"

// Delete tears down the VPC and everything belonging to it, strictly in
// dependency order: subnets, non-main route tables, internet gateways, then
// the VPC itself. Dependents are re-discovered from the provider on every
// call, so out-of-band changes are tolerated; a dependent that disappears
// mid-teardown is skipped, any other provider error propagates.
//
// Deleting a VPC the provider no longer knows returns a successful
// DeletionRecord with an explanatory note instead of an error.
func (p *Provisioner) Delete(ctx context.Context, vpcID string) (*provisioning.DeletionRecord, error) {
	p.observer.Printf("Deleting VPC %s", vpcID)

	if err := p.deleteSubnets(ctx, vpcID); err != nil {
		return nil, err
	}
	if err := p.deleteRouteTables(ctx, vpcID); err != nil {
		return nil, err
	}
	if err := p.deleteInternetGateways(ctx, vpcID); err != nil {
		return nil, err
	}

	if err := p.api.DeleteVPC(ctx, vpcID); err != nil {
		if platformec2.IsVPCNotFound(err) {
			p.observer.Printf("VPC %s not found at provider, treating delete as successful", vpcID)
			return &provisioning.DeletionRecord{
				VPCID:     vpcID,
				Status:    provisioning.StatusDeleted,
				DeletedAt: p.now().UTC().Format(time.RFC3339),
				Note:      outOfBandNote,
			}, nil
		}
		return nil, fmt.Errorf("failed to delete VPC %s: %w", vpcID, err)
	}

	p.deleteEvent(vpcID, "VPC deleted")
	return &provisioning.DeletionRecord{
		VPCID:     vpcID,
		Status:    provisioning.StatusDeleted,
		DeletedAt: p.now().UTC().Format(time.RFC3339),
	}, nil
}

func (p *Provisioner) deleteSubnets(ctx context.Context, vpcID string) error {
	subnets, err := p.api.SubnetsByVPC(ctx, vpcID)
	if err != nil {
		return fmt.Errorf("failed to enumerate subnets of %s: %w", vpcID, err)
	}

	for _, subnet := range subnets {
		subnetID := aws.ToString(subnet.SubnetId)
		p.observer.Printf("Deleting subnet %s", subnetID)
		if err := p.api.DeleteSubnet(ctx, subnetID); err != nil {
			if platformec2.IsNotFound(err) {
				continue
			}
			return fmt.Errorf("failed to delete subnet %s: %w", subnetID, err)
		}
		p.deleteEvent(subnetID, "subnet deleted")
	}
	return nil
}

func (p *Provisioner) deleteRouteTables(ctx context.Context, vpcID string) error {
	routeTables, err := p.api.RouteTablesByVPC(ctx, vpcID)
	if err != nil {
		return fmt.Errorf("failed to enumerate route tables of %s: %w", vpcID, err)
	}

	for _, rt := range routeTables {
		// The main table cannot be deleted; it goes away with the VPC.
		if isMainRouteTable(rt) {
			continue
		}
		rtID := aws.ToString(rt.RouteTableId)
		p.observer.Printf("Deleting route table %s", rtID)
		if err := p.api.DeleteRouteTable(ctx, rtID); err != nil {
			if platformec2.IsNotFound(err) {
				continue
			}
			return fmt.Errorf("failed to delete route table %s: %w", rtID, err)
		}
		p.deleteEvent(rtID, "route table deleted")
	}
	return nil
}

func (p *Provisioner) deleteInternetGateways(ctx context.Context, vpcID string) error {
	gateways, err := p.api.InternetGatewaysByVPC(ctx, vpcID)
	if err != nil {
		return fmt.Errorf("failed to enumerate internet gateways of %s: %w", vpcID, err)
	}

	for _, igw := range gateways {
		igwID := aws.ToString(igw.InternetGatewayId)
		p.observer.Printf("Detaching and deleting internet gateway %s", igwID)
		if err := p.api.DetachInternetGateway(ctx, igwID, vpcID); err != nil {
			if platformec2.IsNotFound(err) {
				continue
			}
			return fmt.Errorf("failed to detach internet gateway %s: %w", igwID, err)
		}
		if err := p.api.DeleteInternetGateway(ctx, igwID); err != nil {
			if platformec2.IsNotFound(err) {
				continue
			}
			return fmt.Errorf("failed to delete internet gateway %s: %w", igwID, err)
		}
		p.deleteEvent(igwID, "internet gateway deleted")
	}
	return nil
}

// isMainRouteTable reports whether any association record flags the table as
// the VPC's main table. A table with no associations at all is treated as
// non-main and deletion is attempted.
func isMainRouteTable(rt ec2types.RouteTable) bool {
	for _, assoc := range rt.Associations {
		if aws.ToBool(assoc.Main) {
			return true
		}
	}
	return false
}

func (p *Provisioner) deleteEvent(resource, message string) {
	p.observer.Event(provisioning.Event{
		Type:      provisioning.EventResourceDeleted,
		Phase:     "delete",
		Resource:  resource,
		Message:   message,
		Timestamp: p.now(),
	})
}
