package commands

import (
	"context"
	"fmt"
	"hltvstats/lib/scrapers/hltv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunFlushesTelemetryOnFailure(t *testing.T) {
	var exported atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/traces" {
			exported.Add(1)
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	config := fmt.Sprintf(`{
		base_url: %q,
		timeout_seconds: 5,
		cloudflare_bypass: false,
		telemetry: {
			otlp: {
				traces: { http_endpoint: %q },
			},
		},
	}`, server.URL, server.URL+"/v1/traces")
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFile), []byte(config), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "teamids.txt"), []byte("Astralis 6665\nFaZe 6667\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maps.txt"), []byte("Inferno\n"), 0600))
	chdir(t, dir)

	err := run(context.Background(), []string{"history", "Astralis"})
	var fetchErr *hltv.FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	require.Positive(t, exported.Load())
}
