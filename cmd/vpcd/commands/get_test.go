package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	cmd := Get()

	require.NotNil(t, cmd)
	assert.Equal(t, "get [vpc-id]", cmd.Use)
	require.NotNil(t, cmd.RunE)

	limitFlag := cmd.Flags().Lookup("limit")
	require.NotNil(t, limitFlag)
	assert.Equal(t, "50", limitFlag.DefValue)
}

func TestGet_AcceptsAtMostOneArg(t *testing.T) {
	cmd := Get()

	assert.NoError(t, cmd.Args(cmd, []string{}))
	assert.NoError(t, cmd.Args(cmd, []string{"vpc-0123456789abcdef0"}))
	assert.Error(t, cmd.Args(cmd, []string{"a", "b"}))
}
