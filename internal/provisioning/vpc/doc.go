// Package vpc orchestrates VPC provisioning and teardown against EC2.
//
// Create executes a strictly ordered sequence (VPC, subnets, internet
// gateway, public routing) and rolls back best-effort when a step fails after
// the VPC exists. Delete re-discovers dependent resources from the provider
// rather than trusting any stored record, so it tolerates out-of-band
// changes, and treats an already-deleted VPC as success.
package vpc
