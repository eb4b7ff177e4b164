package handlers

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"

	"vpcd/internal/config"
	"vpcd/internal/provisioning"
)

// provisionerMock implements NetworkProvisioner with per-call overrides.
type provisionerMock struct {
	CreateFunc func(ctx context.Context, name, cidrBlock, requestID string) (*provisioning.VPCRecord, error)
	DeleteFunc func(ctx context.Context, vpcID string) (*provisioning.DeletionRecord, error)

	CreateCalls int
	DeleteCalls int
}

func (m *provisionerMock) Create(ctx context.Context, name, cidrBlock, requestID string) (*provisioning.VPCRecord, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, name, cidrBlock, requestID)
	}
	return &provisioning.VPCRecord{
		VPCID:     "vpc-0123456789abcdef0",
		Name:      name,
		CIDRBlock: cidrBlock,
		Status:    provisioning.StatusAvailable,
	}, nil
}

func (m *provisionerMock) Delete(ctx context.Context, vpcID string) (*provisioning.DeletionRecord, error) {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, vpcID)
	}
	return &provisioning.DeletionRecord{VPCID: vpcID, Status: provisioning.StatusDeleted}, nil
}

// storeMock implements MetadataStore with per-call overrides.
type storeMock struct {
	SaveFunc         func(ctx context.Context, record *provisioning.VPCRecord) error
	GetFunc          func(ctx context.Context, vpcID string) (*provisioning.VPCRecord, error)
	ListFunc         func(ctx context.Context, limit int32) ([]provisioning.VPCRecord, error)
	DeleteFunc       func(ctx context.Context, vpcID string) (bool, error)
	UpdateStatusFunc func(ctx context.Context, vpcID, status string) (bool, error)

	Calls []string
}

func (m *storeMock) Save(ctx context.Context, record *provisioning.VPCRecord) error {
	m.Calls = append(m.Calls, "Save")
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return nil
}

func (m *storeMock) Get(ctx context.Context, vpcID string) (*provisioning.VPCRecord, error) {
	m.Calls = append(m.Calls, "Get")
	if m.GetFunc != nil {
		return m.GetFunc(ctx, vpcID)
	}
	return &provisioning.VPCRecord{VPCID: vpcID, Status: provisioning.StatusAvailable}, nil
}

func (m *storeMock) List(ctx context.Context, limit int32) ([]provisioning.VPCRecord, error) {
	m.Calls = append(m.Calls, "List")
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return nil, nil
}

func (m *storeMock) Delete(ctx context.Context, vpcID string) (bool, error) {
	m.Calls = append(m.Calls, "Delete")
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, vpcID)
	}
	return true, nil
}

func (m *storeMock) UpdateStatus(ctx context.Context, vpcID, status string) (bool, error) {
	m.Calls = append(m.Calls, "UpdateStatus")
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, vpcID, status)
	}
	return true, nil
}

// stubDeps replaces the factory variables for the duration of a test.
func stubDeps(t *testing.T, prov NetworkProvisioner, store MetadataStore) {
	t.Helper()

	origLoad := loadConfig
	origAWS := newAWSConfig
	origProv := newProvisioner
	origStore := newStore
	origID := newRequestID
	t.Cleanup(func() {
		loadConfig = origLoad
		newAWSConfig = origAWS
		newProvisioner = origProv
		newStore = origStore
		newRequestID = origID
	})

	loadConfig = func(string) (*config.Config, error) {
		return &config.Config{
			Region:      "us-east-2",
			Table:       "vpc-metadata",
			DefaultCIDR: "10.0.0.0/16",
			ListenAddr:  ":8080",
		}, nil
	}
	newAWSConfig = func(context.Context, string) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newProvisioner = func(aws.Config, string) NetworkProvisioner { return prov }
	newStore = func(aws.Config, string) MetadataStore { return store }
	newRequestID = func() string { return "req-test" }
}
