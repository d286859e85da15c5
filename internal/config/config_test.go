package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "metro-swap", cfg.NetworkID)
	assert.Equal(t, 2*time.Second, cfg.SimDelay)
	assert.Equal(t, 10*time.Second, cfg.StatusInterval)
	assert.Equal(t, DefaultDatabase, cfg.Greptime.Database)
	require.Len(t, cfg.Seed.Stations, 5)
	assert.Equal(t, "ST-001", cfg.Seed.Stations[0].ID)
	assert.Len(t, cfg.Seed.Baselines, 5)
	assert.NotEmpty(t, cfg.Seed.Failures)
	assert.False(t, cfg.Seed.Failures[0].Timestamp.IsZero())
	assert.Len(t, cfg.Locations, 5)
}

func TestLoadFileAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swapnet.yaml")
	doc := `
seed:
  stations:
    - id: ST-100
      name: Test Depot
      queue_length: 1
      arrival_rate: 2
      active_chargers: 2
      charged_battery_inventory: 12
      temperature: 25
      station_load: 40
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultNetworkID, cfg.NetworkID)
	assert.Equal(t, DefaultListen, cfg.Listen)
	assert.Equal(t, DefaultSimDelay, cfg.SimDelay)
	assert.NotEmpty(t, cfg.Locations)
	require.Len(t, cfg.Seed.Stations, 1)
	assert.Equal(t, 2.0, cfg.Seed.Stations[0].ArrivalRate)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]string{
		"unknown field": `
seed:
  stations: []
colour: blue
`,
		"bad status": `
seed:
  stations: []
  baselines:
    - {station_id: ST-001, status: exploded, alerts: 0}
`,
		"load above 100": `
seed:
  stations:
    - {id: ST-1, name: A, queue_length: 0, arrival_rate: 1, active_chargers: 1, charged_battery_inventory: 1, temperature: 20, station_load: 120}
`,
		"bad duration": `
sim_delay: soon
seed:
  stations: []
`,
		"missing seed": `network_id: x`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Validate("test.yaml", []byte(doc)))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	env := map[string]string{
		"LISTEN_ADDR":         ":9090",
		"SIM_DELAY":           "500ms",
		"GREPTIMEDB_ENDPOINT": "greptime:4001",
		"STATUS_TABLE":        "status_v2",
	}
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, 500*time.Millisecond, cfg.SimDelay)
	assert.Equal(t, "greptime:4001", cfg.Greptime.Endpoint)
	assert.Equal(t, "status_v2", cfg.Greptime.StatusTable)

	env = map[string]string{"SIM_DELAY": "later"}
	assert.Error(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	for _, tc := range []struct{ key, value string }{
		{"STATUS_INTERVAL", "0s"},
		{"STATUS_INTERVAL", "-5s"},
		{"SIM_DELAY", "0s"},
		{"SIM_DELAY", "-1s"},
	} {
		env = map[string]string{tc.key: tc.value}
		assert.Error(t, cfg.ApplyEnv(func(k string) string { return env[k] }), "%s=%s", tc.key, tc.value)
	}
	assert.Equal(t, 500*time.Millisecond, cfg.SimDelay)
	assert.Equal(t, DefaultStatusInterval, cfg.StatusInterval)
}

func TestDefaultSeed(t *testing.T) {
	seed, err := DefaultSeed()
	require.NoError(t, err)
	assert.Len(t, seed.Stations, 5)
	assert.Len(t, seed.Maintenance, 3)
	assert.Len(t, seed.Recommendations, 2)
}
