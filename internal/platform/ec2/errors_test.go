package ec2

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func apiError(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: "boom"}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, CodeVPCNotFound, ErrorCode(apiError(CodeVPCNotFound)))
	assert.Equal(t, "", ErrorCode(errors.New("plain")))
	assert.Equal(t, "", ErrorCode(nil))
}

func TestErrorCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", apiError(CodeDependencyViolation))
	assert.Equal(t, CodeDependencyViolation, ErrorCode(wrapped))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", ErrorMessage(apiError(CodeVPCLimitExceeded)))
	assert.Equal(t, "plain", ErrorMessage(errors.New("plain")))
	assert.Equal(t, "", ErrorMessage(nil))
}

func TestIsNotFound(t *testing.T) {
	for _, code := range []string{
		CodeVPCNotFound, CodeSubnetNotFound, CodeRouteTableNotFound, CodeGatewayNotFound,
	} {
		assert.True(t, IsNotFound(apiError(code)), code)
	}
	assert.False(t, IsNotFound(apiError(CodeDependencyViolation)))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestIsVPCNotFound(t *testing.T) {
	assert.True(t, IsVPCNotFound(apiError(CodeVPCNotFound)))
	assert.False(t, IsVPCNotFound(apiError(CodeSubnetNotFound)))
}

func TestCodePredicates(t *testing.T) {
	assert.True(t, IsDependencyViolation(apiError(CodeDependencyViolation)))
	assert.True(t, IsLimitExceeded(apiError(CodeVPCLimitExceeded)))
	assert.True(t, IsInvalidRange(apiError(CodeInvalidVPCRange)))
	assert.False(t, IsDependencyViolation(nil))
}
