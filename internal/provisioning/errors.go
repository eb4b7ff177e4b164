package provisioning

import (
	"errors"
	"fmt"
)

// ErrNoZoneAvailable indicates that zone discovery found no availability zone
// in the "available" state. Nothing has been created when this is returned.
var ErrNoZoneAvailable = errors.New("no availability zone available")

// ErrVPCNotFound indicates the target VPC does not exist, either in the
// metadata store or at the provider. Describe and delete treat this as a
// distinct outcome rather than a failure.
var ErrVPCNotFound = errors.New("VPC not found")

// ProvisioningError wraps a provider failure that occurred after partial
// resource creation. The orchestrator attempts a best-effort rollback before
// returning it; the original provider error is always preserved.
type ProvisioningError struct {
	// Step names the creation step that failed (e.g. "subnet:public").
	Step string
	// Code is the provider's machine-readable error code, if any.
	Code string
	// Err is the underlying provider error.
	Err error
}

func (e *ProvisioningError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("provisioning failed at %s (%s): %v", e.Step, e.Code, e.Err)
	}
	return fmt.Sprintf("provisioning failed at %s: %v", e.Step, e.Err)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}
