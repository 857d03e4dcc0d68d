package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 4, cfg.Worker.PoolSize)
	assert.Equal(t, 200*time.Millisecond, cfg.Worker.RetryBaseDelay)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxStatementBytes)
	assert.True(t, cfg.Matching.BankTolerance.Equal(decimal.NewFromInt(1)))
	assert.True(t, cfg.Matching.ProofTolerance.Equal(decimal.NewFromInt(100)))
	assert.False(t, cfg.Security.RequireTrustedAccount)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("STORAGE_SQLITE_PATH", "/tmp/recon.db")
	t.Setenv("WORKER_POOL_SIZE", "8")
	t.Setenv("RETRY_BASE_DELAY", "1s")
	t.Setenv("UPLOAD_MAX_SLIP_BYTES", "2048")
	t.Setenv("MATCH_PROOF_TOLERANCE", "50.5")
	t.Setenv("TRUSTED_RECIPIENT_ACCOUNT", "AO06.0040")
	t.Setenv("REQUIRE_TRUSTED_ACCOUNT", "true")

	cfg := Load()

	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/recon.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 8, cfg.Worker.PoolSize)
	assert.Equal(t, time.Second, cfg.Worker.RetryBaseDelay)
	assert.Equal(t, int64(2048), cfg.Upload.MaxSlipBytes)
	assert.True(t, cfg.Matching.ProofTolerance.Equal(decimal.RequireFromString("50.5")))
	assert.Equal(t, "AO06.0040", cfg.Security.TrustedAccount)
	assert.True(t, cfg.Security.RequireTrustedAccount)
}

func TestEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	t.Setenv("TEST_INT64", "-5")
	t.Setenv("TEST_BOOL", "sometimes")
	t.Setenv("TEST_DECIMAL", "0")
	t.Setenv("TEST_DURATION", "soon")

	assert.Equal(t, 3, getIntEnv("TEST_INT", 3))
	assert.Equal(t, int64(7), getInt64Env("TEST_INT64", 7))
	assert.True(t, getBoolEnv("TEST_BOOL", true))
	assert.True(t, getDecimalEnv("TEST_DECIMAL", decimal.NewFromInt(2)).Equal(decimal.NewFromInt(2)))
	assert.Equal(t, time.Minute, getDurationEnv("TEST_DURATION", time.Minute))
}
