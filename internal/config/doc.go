// Package config handles vpcd configuration loading and validation.
//
// Configuration is read from a YAML file (vpcd.yaml by default) and can be
// overridden by the AWS_REGION and VPC_TABLE_NAME environment variables. The
// package also owns the CIDR arithmetic used to carve subnet ranges out of a
// VPC range.
package config
