// Package tags provides consistent tagging utilities for EC2 resources.
//
// Every resource vpcd creates carries the same tag set, enabling
// identification and correlation of resources belonging to one provisioning
// request.
package tags

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// Standard tag keys.
const (
	KeyName         = "Name"
	KeyManagedBy    = "ManagedBy"
	KeyResourceType = "ResourceType"
	KeyCreatedAt    = "CreatedAt"
	KeyRequestID    = "RequestId"
)

// ManagedByValue identifies resources created by this system.
const ManagedByValue = "vpcd"

// Builder provides a fluent interface for building EC2 resource tags.
type Builder struct {
	tags []types.Tag
}

// New creates a tag builder pre-populated with the Name, ManagedBy and
// CreatedAt tags.
func New(name string) *Builder {
	return &Builder{
		tags: []types.Tag{
			{Key: aws.String(KeyName), Value: aws.String(name)},
			{Key: aws.String(KeyManagedBy), Value: aws.String(ManagedByValue)},
			{Key: aws.String(KeyCreatedAt), Value: aws.String(time.Now().UTC().Format(time.RFC3339))},
		},
	}
}

// WithResourceType adds the ResourceType tag.
func (b *Builder) WithResourceType(resourceType string) *Builder {
	return b.with(KeyResourceType, resourceType)
}

// WithRequestID adds the RequestId correlation tag. Empty IDs are skipped.
func (b *Builder) WithRequestID(requestID string) *Builder {
	if requestID == "" {
		return b
	}
	return b.with(KeyRequestID, requestID)
}

func (b *Builder) with(key, value string) *Builder {
	b.tags = append(b.tags, types.Tag{Key: aws.String(key), Value: aws.String(value)})
	return b
}

// Build returns the accumulated tags.
func (b *Builder) Build() []types.Tag {
	return b.tags
}

// Spec returns the tags wrapped in a TagSpecification for the given resource
// type, the form create calls expect.
func (b *Builder) Spec(resourceType types.ResourceType) []types.TagSpecification {
	return []types.TagSpecification{{
		ResourceType: resourceType,
		Tags:         b.tags,
	}}
}
