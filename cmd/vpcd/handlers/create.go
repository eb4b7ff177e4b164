package handlers

import (
	"context"
	"fmt"
	"log"

	"vpcd/internal/api"
)

// Create handles the create command.
//
// It validates the request, provisions the network in dependency order, and
// persists the resulting metadata record. A persistence failure after
// provisioning is reported as an error; the provisioned resources are left
// in place.
func Create(ctx context.Context, configPath, name, cidrBlock string) error {
	d, err := buildDeps(ctx, configPath)
	if err != nil {
		return err
	}

	req, err := api.ValidateCreateRequest(name, cidrBlock, d.cfg.DefaultCIDR)
	if err != nil {
		return err
	}

	requestID := newRequestID()
	log.Printf("Creating VPC %q (request %s)", req.Name, requestID)

	record, err := d.provisioner.Create(ctx, req.Name, req.CIDRBlock, requestID)
	if err != nil {
		return fmt.Errorf("create failed: %w", err)
	}

	if err := d.store.Save(ctx, record); err != nil {
		return fmt.Errorf("VPC %s created but metadata could not be saved: %w", record.VPCID, err)
	}

	fmt.Println(style(okStyle, fmt.Sprintf("VPC %s created", record.VPCID)))
	fmt.Print(renderRecord(record))
	return nil
}
