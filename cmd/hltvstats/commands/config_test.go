package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestDefaultClientOptions(t *testing.T) {
	opts := defaultConfig().clientOptions()
	require.Equal(t, "http://www.hltv.org", opts.BaseUrl)
	require.Equal(t, 15*time.Second, opts.Timeout)
	require.True(t, opts.CloudflareBypass)
	require.False(t, opts.RequiredPlayers)
}

func TestReadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, configFile), []byte(`{
		base_url: "http://localhost:8080",
		timeout_seconds: 3,
		cloudflare_bypass: false,
		required_players: true,
		teams_file: "teams.txt",
	}`), 0600)
	require.NoError(t, err)
	chdir(t, dir)

	cfg, err := readConfig()
	require.NoError(t, err)
	require.Equal(t, "teams.txt", cfg.TeamsFile)
	require.Equal(t, "maps.txt", cfg.MapsFile)

	opts := cfg.clientOptions()
	require.Equal(t, "http://localhost:8080", opts.BaseUrl)
	require.Equal(t, 3*time.Second, opts.Timeout)
	require.False(t, opts.CloudflareBypass)
	require.True(t, opts.RequiredPlayers)
}
