package handlers

import (
	"context"
	"fmt"

	"vpcd/internal/api"
)

// Get handles the get command for a single VPC.
func Get(ctx context.Context, configPath, vpcID string) error {
	d, err := buildDeps(ctx, configPath)
	if err != nil {
		return err
	}

	if err := api.ValidateVPCID(vpcID); err != nil {
		return err
	}

	record, err := d.store.Get(ctx, vpcID)
	if err != nil {
		return fmt.Errorf("failed to look up VPC record: %w", err)
	}
	if record == nil {
		return fmt.Errorf("VPC not found: %s", vpcID)
	}

	fmt.Print(renderRecord(record))
	return nil
}

// List handles the get command without arguments.
func List(ctx context.Context, configPath string, limit int32) error {
	d, err := buildDeps(ctx, configPath)
	if err != nil {
		return err
	}

	records, err := d.store.List(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list VPC records: %w", err)
	}

	fmt.Print(renderRecordList(records))
	return nil
}
