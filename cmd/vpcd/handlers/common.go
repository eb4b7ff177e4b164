// Package handlers implements the command execution logic for the vpcd CLI
// and the HTTP API.
//
// Handlers load configuration, construct the provider clients, and delegate
// to the provisioning and storage packages. Client construction goes through
// factory function variables so tests can substitute mocks.
package handlers

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/google/uuid"

	"vpcd/internal/config"
	"vpcd/internal/platform/dynamo"
	platformec2 "vpcd/internal/platform/ec2"
	"vpcd/internal/provisioning"
	"vpcd/internal/provisioning/vpc"
)

// NetworkProvisioner interface for testing - matches vpc.Provisioner.
type NetworkProvisioner interface {
	Create(ctx context.Context, name, cidrBlock, requestID string) (*provisioning.VPCRecord, error)
	Delete(ctx context.Context, vpcID string) (*provisioning.DeletionRecord, error)
}

// MetadataStore interface for testing - matches dynamo.Store.
type MetadataStore interface {
	Save(ctx context.Context, record *provisioning.VPCRecord) error
	Get(ctx context.Context, vpcID string) (*provisioning.VPCRecord, error)
	List(ctx context.Context, limit int32) ([]provisioning.VPCRecord, error)
	Delete(ctx context.Context, vpcID string) (bool, error)
	UpdateStatus(ctx context.Context, vpcID, status string) (bool, error)
}

// Factory function variables - can be replaced in tests.
var (
	// loadConfig loads the configuration file.
	loadConfig = config.LoadFile

	// newAWSConfig resolves AWS credentials and region.
	newAWSConfig = func(ctx context.Context, region string) (aws.Config, error) {
		return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	}

	// newProvisioner creates the VPC provisioner.
	newProvisioner = func(awsCfg aws.Config, region string) NetworkProvisioner {
		return vpc.New(vpc.Config{
			API:    platformec2.NewRealClient(awsCfg),
			Region: region,
		})
	}

	// newStore creates the metadata store.
	newStore = func(awsCfg aws.Config, table string) MetadataStore {
		return dynamo.NewStore(awsCfg, table)
	}

	// newRequestID generates the correlation ID stamped on resources.
	newRequestID = func() string {
		return uuid.NewString()
	}
)

// deps bundles everything a handler needs to run.
type deps struct {
	cfg         *config.Config
	provisioner NetworkProvisioner
	store       MetadataStore
}

// buildDeps loads the configuration and constructs the provider clients.
func buildDeps(ctx context.Context, configPath string) (*deps, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	awsCfg, err := newAWSConfig(ctx, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve AWS configuration: %w", err)
	}

	return &deps{
		cfg:         cfg,
		provisioner: newProvisioner(awsCfg, cfg.Region),
		store:       newStore(awsCfg, cfg.Table),
	}, nil
}
