package handlers

import (
	"context"
	"fmt"
	"log"

	"vpcd/internal/api"
	"vpcd/internal/provisioning"
)

// Delete handles the delete command.
//
// It marks the record as deleting, tears down the network in dependency
// order, and removes the metadata record once teardown succeeds.
func Delete(ctx context.Context, configPath, vpcID string) error {
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

	if _, err := d.store.UpdateStatus(ctx, vpcID, provisioning.StatusDeleting); err != nil {
		return fmt.Errorf("failed to mark VPC as deleting: %w", err)
	}

	log.Printf("Deleting VPC %s", vpcID)
	deletion, err := d.provisioner.Delete(ctx, vpcID)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	if _, err := d.store.Delete(ctx, vpcID); err != nil {
		return fmt.Errorf("VPC %s deleted but metadata could not be removed: %w", vpcID, err)
	}

	fmt.Println(style(okStyle, fmt.Sprintf("VPC %s deleted", vpcID)))
	if deletion.Note != "" {
		fmt.Println(style(dimStyle, deletion.Note))
	}
	return nil
}
