package vpc

import (
	"context"

	"vpcd/internal/provisioning"
)

// rollback cleans up a partially created VPC by running the normal delete
// sequence. Best-effort only: an error here is logged and swallowed so the
// creation failure that triggered the rollback always reaches the caller.
// Orphaned resources from a failed rollback are not retried or reconciled.
func (p *Provisioner) rollback(ctx context.Context, created *createdResources) {
	p.observer.Printf("WARNING: attempting cleanup of failed VPC creation %s", created.vpcID)
	p.observer.Event(provisioning.Event{
		Type:      provisioning.EventRollbackStarted,
		Phase:     "rollback",
		Resource:  created.vpcID,
		Timestamp: p.now(),
	})

	if _, err := p.Delete(ctx, created.vpcID); err != nil {
		p.observer.Printf("ERROR: failed to clean up VPC %s: %v (subnets=%v gateway=%s route-table=%s may be orphaned)",
			created.vpcID, err, created.subnetIDs, created.gatewayID, created.routeTableID)
		p.observer.Event(provisioning.Event{
			Type:      provisioning.EventRollbackFailed,
			Phase:     "rollback",
			Resource:  created.vpcID,
			Message:   err.Error(),
			Timestamp: p.now(),
		})
	}
}
