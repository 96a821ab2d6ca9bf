package testutil

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dom/football-dashboard/internal/api"
	"github.com/dom/football-dashboard/internal/config"
	"github.com/dom/football-dashboard/internal/dataset"
	"github.com/dom/football-dashboard/internal/service"
)

// WriteCSV writes CSV content to a temp file and returns its path.
func WriteCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "players.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// LoadTable builds a dataset table from in-memory CSV content.
func LoadTable(t *testing.T, content string) *dataset.Table {
	t.Helper()

	table, err := dataset.Read(strings.NewReader(content))
	require.NoError(t, err, "failed to load fixture table")
	return table
}

// TestServer wraps a running HTTP server backed by a fixture dataset.
type TestServer struct {
	Server *httptest.Server
}

// NewTestServer starts the full router over the given CSV fixture.
func NewTestServer(t *testing.T, csvContent string) *TestServer {
	t.Helper()

	table := LoadTable(t, csvContent)
	services := service.NewServices(table)

	cfg := &config.Config{
		Port:        "0",
		Environment: "test",
		CorsOrigins: []string{"*"},
	}

	srv := httptest.NewServer(api.NewRouter(services, cfg))
	t.Cleanup(srv.Close)

	return &TestServer{Server: srv}
}

// URL builds an absolute URL for a path on the test server.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// APIURL builds an absolute URL under the /api prefix.
func (ts *TestServer) APIURL(path string) string {
	return ts.Server.URL + "/api" + path
}
