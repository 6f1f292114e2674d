package commands

import (
	"hltvstats/lib/configutil"
	"hltvstats/lib/scrapers/hltv"
	"hltvstats/lib/telemetry"
	"time"
)

const configFile = "hltvstats.json5"

type Config struct {
	BaseUrl          string `json:"base_url"`
	TimeoutSeconds   int    `json:"timeout_seconds"`
	UserAgent        string `json:"user_agent"`
	RequiredPlayers  bool   `json:"required_players"`
	CloudflareBypass *bool  `json:"cloudflare_bypass"`
	TeamsFile        string `json:"teams_file"`
	MapsFile         string `json:"maps_file"`
	Verbose          bool   `json:"verbose"`

	Telemetry telemetry.Config `json:"telemetry"`
}

func defaultConfig() Config {
	bypass := true
	return Config{
		BaseUrl:          hltv.DefaultBaseUrl,
		TimeoutSeconds:   int(hltv.DefaultTimeout / time.Second),
		UserAgent:        hltv.DefaultUserAgent,
		CloudflareBypass: &bypass,
		TeamsFile:        "teamids.txt",
		MapsFile:         "maps.txt",
	}
}

func readConfig() (Config, error) {
	return configutil.ReadWithDefaults(configFile, defaultConfig())
}

func (c Config) clientOptions() hltv.ClientOptions {
	return hltv.ClientOptions{
		BaseUrl:          c.BaseUrl,
		Timeout:          time.Duration(c.TimeoutSeconds) * time.Second,
		UserAgent:        c.UserAgent,
		RequiredPlayers:  c.RequiredPlayers,
		CloudflareBypass: c.CloudflareBypass != nil && *c.CloudflareBypass,
	}
}
