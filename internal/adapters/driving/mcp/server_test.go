package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/atsearch/internal/core/services"
)

func TestNewServer(t *testing.T) {
	t.Run("missing forms returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchForm)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server := newTestServer(t, &mockOpener{})
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	registry, err := services.NewSiteRegistry(testSites())
	require.NoError(t, err)
	forms := services.NewFormService(registry, nil)

	t.Run("missing forms", func(t *testing.T) {
		ports := &Ports{Registry: registry}
		assert.ErrorIs(t, ports.Validate(), ErrMissingSearchForm)
	})

	t.Run("missing registry", func(t *testing.T) {
		ports := &Ports{Forms: forms}
		assert.ErrorIs(t, ports.Validate(), ErrMissingRegistry)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{Forms: forms, Registry: registry}
		assert.NoError(t, ports.Validate())
	})
}

func TestServer_InitializeAndListTools(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockOpener{})

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	initResult := session.InitializeResult()
	require.NotNil(t, initResult)
	assert.Equal(t, "atsearch", initResult.ServerInfo.Name)
	assert.Equal(t, Instructions, initResult.Instructions)

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"build_search_urls", "open_search", "list_sites"}, names)
	for _, name := range []string{"build_search_urls", "open_search", "list_sites", "atsearch://sites"} {
		assert.Contains(t, Instructions, name)
	}
}
