package provisioning

// VPC lifecycle states as stored in the metadata table.
const (
	StatusAvailable = "available"
	StatusDeleting  = "deleting"
	StatusDeleted   = "deleted"
)

// Subnet roles.
const (
	SubnetPublic  = "public"
	SubnetPrivate = "private"
)

// SubnetRecord describes one subnet of a provisioned VPC. A subnet never
// exists independently; it always belongs to exactly one VPCRecord.
type SubnetRecord struct {
	SubnetID         string `json:"subnet_id" dynamodbav:"subnet_id"`
	CIDRBlock        string `json:"cidr_block" dynamodbav:"cidr_block"`
	AvailabilityZone string `json:"availability_zone" dynamodbav:"availability_zone"`
	Type             string `json:"type" dynamodbav:"type"`
}

// VPCRecord is the full descriptor of a provisioned VPC. It is assembled by
// the orchestrator on a successful create and persisted to the metadata
// store, which is the system of record from then on. Only the Status field is
// ever mutated after persistence.
type VPCRecord struct {
	VPCID             string            `json:"vpc_id" dynamodbav:"vpc_id"`
	Name              string            `json:"name" dynamodbav:"name"`
	CIDRBlock         string            `json:"cidr_block" dynamodbav:"cidr_block"`
	Region            string            `json:"region" dynamodbav:"region"`
	Subnets           []SubnetRecord    `json:"subnets" dynamodbav:"subnets"`
	InternetGatewayID string            `json:"internet_gateway_id" dynamodbav:"internet_gateway_id"`
	RouteTables       map[string]string `json:"route_tables" dynamodbav:"route_tables"`
	Status            string            `json:"status" dynamodbav:"status"`
	CreatedAt         string            `json:"created_at" dynamodbav:"created_at"`
	CreatedBy         string            `json:"created_by" dynamodbav:"created_by"`
}

// DeletionRecord is the outcome of a delete call.
type DeletionRecord struct {
	VPCID     string `json:"vpc_id"`
	Status    string `json:"status"`
	DeletedAt string `json:"deleted_at"`
	// Note carries an explanation when the delete was normalized, e.g. the
	// VPC had already been removed out of band.
	Note string `json:"note,omitempty"`
}
