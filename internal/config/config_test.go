package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"APP_ENV", "HOST", "PORT", "READ_HEADER_TIMEOUT", "SHUTDOWN_TIMEOUT", "LIVENESS_ENDPOINT",
	"CATALOG_PATH", "STRICT_SEASONS", "CURRENCY", "DEBUG", "DETERMINISTIC_IDS",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	conf, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost", conf.Host)
	assert.Equal(t, "8092", conf.Port)
	assert.Equal(t, 20*time.Second, conf.ReadHeaderTimeout)
	assert.Equal(t, 4*time.Second, conf.ShutdownTimeout)
	assert.Equal(t, "/liveness", conf.LivenessEndpoint)
	assert.Equal(t, "", conf.CatalogPath)
	assert.False(t, conf.StrictSeasons)
	assert.Equal(t, "USD", conf.Currency)
	assert.False(t, conf.Debug)
	assert.False(t, conf.DeterministicIDs)
}

func TestLoad_FilesAndEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.env"),
		[]byte("PORT=9000\nSTRICT_SEASONS=true\nREAD_HEADER_TIMEOUT=5s\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CURRENCY=eur\n"), 0o600))

	t.Setenv("DEBUG", "true")
	t.Setenv("DETERMINISTIC_IDS", "1")

	conf, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "9000", conf.Port)
	assert.True(t, conf.StrictSeasons)
	assert.Equal(t, 5*time.Second, conf.ReadHeaderTimeout)
	assert.Equal(t, "EUR", conf.Currency)
	assert.True(t, conf.Debug)
	assert.True(t, conf.DeterministicIDs)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.env"), []byte("PORT=9000\n"), 0o600))

	t.Setenv("PORT", "9100")

	conf, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "9100", conf.Port)
}

func TestLoad_InvalidCurrency(t *testing.T) {
	clearEnv(t)
	t.Setenv("CURRENCY", "DOUBLOONS")

	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrInvalid)
}
