// Package provisioning provides shared types and interfaces for VPC
// provisioning.
//
// The provisioning domain is organized as:
//   - vpc/ — the orchestrator executing the ordered create/delete sequences
//     against EC2, including best-effort rollback of partial creates.
//
// This root package contains the record types persisted to the metadata
// store, the provisioning error taxonomy, and the Observer used for
// structured progress reporting.
package provisioning
