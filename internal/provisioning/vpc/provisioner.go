package vpc

import (
	"context"
	"fmt"
	"time"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"vpcd/internal/config"
	platformec2 "vpcd/internal/platform/ec2"
	"vpcd/internal/provisioning"
	"vpcd/internal/util/tags"
)

// Config carries the orchestrator's dependencies. Everything is explicit;
// nothing is read from process-wide state.
type Config struct {
	// API is the EC2 networking capability.
	API platformec2.NetworkAPI
	// Region is recorded on provisioned VPCs.
	Region string
	// Observer receives progress events. Defaults to a console observer.
	Observer provisioning.Observer
	// Clock supplies timestamps. Defaults to time.Now.
	Clock func() time.Time
}

// Provisioner executes the ordered create and delete sequences.
type Provisioner struct {
	api      platformec2.NetworkAPI
	region   string
	observer provisioning.Observer
	now      func() time.Time
}

// New creates a provisioner from the given config.
func New(cfg Config) *Provisioner {
	if cfg.Observer == nil {
		cfg.Observer = provisioning.NewConsoleObserver()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Provisioner{
		api:      cfg.API,
		region:   cfg.Region,
		observer: cfg.Observer,
		now:      cfg.Clock,
	}
}

// createdResources accumulates what Create has allocated so far. The rollback
// controller inspects it to decide whether cleanup is needed; actual teardown
// re-discovers dependents from the provider.
type createdResources struct {
	vpcID        string
	subnetIDs    []string
	gatewayID    string
	routeTableID string
}

// Create provisions a VPC with one public and one private subnet, an internet
// gateway, and a public route table, strictly in that order. requestID is
// propagated into every resource's tags for correlation.
//
// Validation and zone discovery fail before anything is created. Any provider
// failure after the VPC exists triggers a best-effort rollback; the original
// error is always the one returned.
func (p *Provisioner) Create(ctx context.Context, name, cidrBlock, requestID string) (*provisioning.VPCRecord, error) {
	if err := config.ValidateVPCCIDR(cidrBlock); err != nil {
		return nil, err
	}

	p.observer.Printf("Creating VPC %q with CIDR %s", name, cidrBlock)
	created := &createdResources{}

	// VPC container
	vpcID, err := p.api.CreateVPC(ctx, cidrBlock, p.tags(name, "vpc", requestID))
	if err != nil {
		return nil, p.fail(ctx, created, "vpc", err)
	}
	created.vpcID = vpcID
	p.event(provisioning.EventResourceCreated, vpcID, "VPC created")

	if err := p.api.EnableVPCDNS(ctx, vpcID); err != nil {
		return nil, p.fail(ctx, created, "vpc:dns", err)
	}

	// Zone discovery. An empty result is a precondition failure, not a
	// provider failure, and is deliberately not rolled back.
	zones, err := p.api.AvailableZones(ctx)
	if err != nil {
		return nil, p.fail(ctx, created, "zones", err)
	}
	if len(zones) == 0 {
		return nil, provisioning.ErrNoZoneAvailable
	}
	zone := zones[0]

	// Public subnet
	publicCIDR, err := config.DeriveSubnetCIDR(cidrBlock, config.PublicSubnetIndex)
	if err != nil {
		return nil, p.fail(ctx, created, "subnet:public", err)
	}
	publicID, err := p.api.CreateSubnet(ctx, vpcID, publicCIDR, zone,
		p.tags(name+"-public-subnet", provisioning.SubnetPublic, requestID))
	if err != nil {
		return nil, p.fail(ctx, created, "subnet:public", err)
	}
	created.subnetIDs = append(created.subnetIDs, publicID)
	if err := p.api.EnableAutoAssignPublicIP(ctx, publicID); err != nil {
		return nil, p.fail(ctx, created, "subnet:public", err)
	}
	p.event(provisioning.EventResourceCreated, publicID, "public subnet created")

	// Private subnet
	privateCIDR, err := config.DeriveSubnetCIDR(cidrBlock, config.PrivateSubnetIndex)
	if err != nil {
		return nil, p.fail(ctx, created, "subnet:private", err)
	}
	privateID, err := p.api.CreateSubnet(ctx, vpcID, privateCIDR, zone,
		p.tags(name+"-private-subnet", provisioning.SubnetPrivate, requestID))
	if err != nil {
		return nil, p.fail(ctx, created, "subnet:private", err)
	}
	created.subnetIDs = append(created.subnetIDs, privateID)
	p.event(provisioning.EventResourceCreated, privateID, "private subnet created")

	// Internet gateway
	igwID, err := p.api.CreateInternetGateway(ctx, p.tags(name+"-igw", "internet-gateway", requestID))
	if err != nil {
		return nil, p.fail(ctx, created, "internet-gateway", err)
	}
	created.gatewayID = igwID
	if err := p.api.AttachInternetGateway(ctx, igwID, vpcID); err != nil {
		return nil, p.fail(ctx, created, "internet-gateway:attach", err)
	}
	p.event(provisioning.EventResourceCreated, igwID, "internet gateway attached")

	// Public routing
	rtID, err := p.api.CreateRouteTable(ctx, vpcID, p.tags(name+"-public-rt", "route-table", requestID))
	if err != nil {
		return nil, p.fail(ctx, created, "route-table", err)
	}
	created.routeTableID = rtID
	if err := p.api.CreateDefaultRoute(ctx, rtID, igwID); err != nil {
		return nil, p.fail(ctx, created, "route-table:route", err)
	}
	if err := p.api.AssociateRouteTable(ctx, rtID, publicID); err != nil {
		return nil, p.fail(ctx, created, "route-table:associate", err)
	}
	p.event(provisioning.EventResourceCreated, rtID, "public route table configured")

	record := &provisioning.VPCRecord{
		VPCID:     vpcID,
		Name:      name,
		CIDRBlock: cidrBlock,
		Region:    p.region,
		Subnets: []provisioning.SubnetRecord{
			{SubnetID: publicID, CIDRBlock: publicCIDR, AvailabilityZone: zone, Type: provisioning.SubnetPublic},
			{SubnetID: privateID, CIDRBlock: privateCIDR, AvailabilityZone: zone, Type: provisioning.SubnetPrivate},
		},
		InternetGatewayID: igwID,
		RouteTables:       map[string]string{"public": rtID},
		Status:            provisioning.StatusAvailable,
		CreatedAt:         p.now().UTC().Format(time.RFC3339),
		CreatedBy:         config.CreatedBy,
	}

	p.observer.Printf("Successfully created VPC %s", vpcID)
	return record, nil
}

// Describe returns the provider's view of the VPC, or nil when it does not
// exist. A missing VPC is an outcome, not an error.
func (p *Provisioner) Describe(ctx context.Context, vpcID string) (*ec2types.Vpc, error) {
	vpc, err := p.api.DescribeVPC(ctx, vpcID)
	if err != nil {
		return nil, fmt.Errorf("failed to describe VPC %s: %w", vpcID, err)
	}
	return vpc, nil
}

// fail wraps a provider error in a ProvisioningError and, when the VPC
// container already exists, hands off to the rollback controller first. The
// returned error is always the original failure.
func (p *Provisioner) fail(ctx context.Context, created *createdResources, step string, err error) error {
	perr := &provisioning.ProvisioningError{
		Step: step,
		Code: platformec2.ErrorCode(err),
		Err:  err,
	}
	p.event(provisioning.EventResourceFailed, created.vpcID, perr.Error())

	if created.vpcID != "" {
		p.rollback(ctx, created)
	}
	return perr
}

func (p *Provisioner) tags(name, resourceType, requestID string) []ec2types.Tag {
	return tags.New(name).
		WithResourceType(resourceType).
		WithRequestID(requestID).
		Build()
}

func (p *Provisioner) event(eventType provisioning.EventType, resource, message string) {
	p.observer.Event(provisioning.Event{
		Type:      eventType,
		Phase:     "create",
		Resource:  resource,
		Message:   message,
		Timestamp: p.now(),
	})
}
