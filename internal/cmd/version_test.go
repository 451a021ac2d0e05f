package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	t.Run("creates version command", func(t *testing.T) {
		t.Parallel()
		cmd := NewVersionCmd("1.2.3")
		assert.NotNil(t, cmd)
		assert.Equal(t, "version", cmd.Use)
		assert.Equal(t, "Show version information", cmd.Short)
	})

	t.Run("command executes without error", func(t *testing.T) {
		t.Parallel()
		cmd := NewVersionCmd("1.2.3")
		err := cmd.Execute()
		require.NoError(t, err)
	})
}

func TestVersionCmd_EmptyVersion(t *testing.T) {
	t.Parallel()
	cmd := NewVersionCmd("")
	assert.NotNil(t, cmd)
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestVersionCmd_DevelopmentVersion(t *testing.T) {
	t.Parallel()
	cmd := NewVersionCmd("dev")
	assert.NotNil(t, cmd)
	err := cmd.Execute()
	require.NoError(t, err)
}
