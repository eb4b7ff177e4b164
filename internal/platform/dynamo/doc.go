// Package dynamo persists VPC metadata records in a DynamoDB table.
//
// The table is keyed by vpc_id. The store is the system of record for a VPC
// once provisioning succeeds; only the status attribute is ever updated in
// place.
package dynamo
