package mcp

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/atsearch/internal/core/domain"
	"github.com/custodia-labs/atsearch/internal/core/services"
)

// mockOpener is a mock implementation of driven.URLOpener.
type mockOpener struct {
	mu     sync.Mutex
	urls   []string
	failOn map[int]bool
}

func (m *mockOpener) Open(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := len(m.urls)
	m.urls = append(m.urls, url)
	if m.failOn[i] {
		return errors.New("no browser")
	}
	return nil
}

func (m *mockOpener) opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.urls...)
}

func testSites() []domain.Site {
	return []domain.Site{
		{Name: "Greenhouse", Domain: "boards.greenhouse.io"},
		{Name: "Lever", Domain: "jobs.lever.co"},
		{Name: "Ashby", Domain: "jobs.ashbyhq.com"},
	}
}

func newTestServer(t *testing.T, opener *mockOpener) *Server {
	t.Helper()
	registry, err := services.NewSiteRegistry(testSites())
	require.NoError(t, err)
	forms := services.NewFormService(registry, services.NewDispatcher(opener, 0))
	server, err := NewServer(&Ports{Forms: forms, Registry: registry})
	require.NoError(t, err)
	return server
}
