package ec2

import (
	"errors"

	"github.com/aws/smithy-go"
)

// EC2 API error codes vpcd reacts to.
const (
	CodeVPCNotFound         = "InvalidVpcID.NotFound"
	CodeSubnetNotFound      = "InvalidSubnetID.NotFound"
	CodeRouteTableNotFound  = "InvalidRouteTableID.NotFound"
	CodeGatewayNotFound     = "InvalidInternetGatewayID.NotFound"
	CodeVPCLimitExceeded    = "VpcLimitExceeded"
	CodeInvalidVPCRange     = "InvalidVpcRange"
	CodeDependencyViolation = "DependencyViolation"
)

// ErrorCode extracts the machine-readable API error code, or "" when the
// error is not an API error.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// ErrorMessage extracts the API error message, or the plain error text.
func ErrorMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorMessage()
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// IsNotFound checks if the error indicates a missing resource.
func IsNotFound(err error) bool {
	switch ErrorCode(err) {
	case CodeVPCNotFound, CodeSubnetNotFound, CodeRouteTableNotFound, CodeGatewayNotFound:
		return true
	}
	return false
}

// IsVPCNotFound checks specifically for a missing VPC. Delete uses this to
// normalize an out-of-band removal into an idempotent success.
func IsVPCNotFound(err error) bool {
	return ErrorCode(err) == CodeVPCNotFound
}

// IsDependencyViolation checks if a delete was blocked by live dependents.
func IsDependencyViolation(err error) bool {
	return ErrorCode(err) == CodeDependencyViolation
}

// IsLimitExceeded checks if the account's VPC quota was hit.
func IsLimitExceeded(err error) bool {
	return ErrorCode(err) == CodeVPCLimitExceeded
}

// IsInvalidRange checks if the provider rejected the CIDR block.
func IsInvalidRange(err error) bool {
	return ErrorCode(err) == CodeInvalidVPCRange
}
