package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_Use(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
	assert.Equal(t, "serve", mcpServeCmd.Use)
}

func TestMCPServeCmd_PortFlag(t *testing.T) {
	resetCommandFlags()

	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_RequiresRegistry(t *testing.T) {
	original := siteRegistry
	siteRegistry = nil
	defer func() { siteRegistry = original }()

	resetCommandFlags()
	err := runMCPServe(mcpServeCmd, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "site registry not configured")
}
