package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
dbname = "parking_test"

[storage]
bucket = "plates"
endpoint = "http://minio:9000"
use_path_style = true

[parking]
initial_slots = 10
timezone = "UTC"
default_hourly_rate = 4.5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadMergesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "plates", cfg.Storage.Bucket)
	assert.True(t, cfg.Storage.UsePathStyle)
	assert.Equal(t, 10, cfg.Parking.InitialSlots)
	assert.Equal(t, 4.5, cfg.Parking.DefaultHourlyRate)
	assert.Equal(t, 2.0, cfg.Parking.DefaultMinimumCharge)
	assert.Equal(t, "USD", cfg.Parking.DefaultCurrency)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("S3_BUCKET", "from-env")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "from-env", cfg.Storage.Bucket)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 6, cfg.Parking.InitialSlots)
}

func TestLoadRejectsInvalid(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(writeConfig(t, "[parking]\ndefault_minimum_charge = -1\n"))
	assert.Error(t, err)

	t.Setenv("DB_PORT", "not-a-number")
	_, err = Load(writeConfig(t, sample))
	assert.Error(t, err)
}

func TestParkingPricingDefaults(t *testing.T) {
	p := ParkingConfig{DefaultHourlyRate: 4.5, DefaultMinimumCharge: 2, MaxDeposit: 500}

	got := p.PricingDefaults()

	assert.Equal(t, "default", got.ID)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "4.5", got.HourlyRate.String())
	assert.Equal(t, "2", got.MinimumCharge.String())
	assert.Equal(t, "500", p.MaxDepositAmount().String())
}
