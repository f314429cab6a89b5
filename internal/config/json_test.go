package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"display_user_email": true,
			"token_sign_key": "json-key",
			"token_issuer": "translation-server",
			"version": "2.0.0"
		},
		"storage": {"db": {"driver": "pgx", "dsn": "postgres://localhost/translations"}},
		"server": {"http_address": "localhost:9999", "request_timeout": "45s"},
		"dispatch": {"delivery_timeout": "3s"},
		"workers": {"queue_size": 32}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.True(t, cfg.App.DisplayUserEmail)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "postgres://localhost/translations", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Dispatch.DeliveryTimeout)
	assert.Equal(t, 32, cfg.Workers.QueueSize)
}

func TestParseJSON_DurationAsNumber(t *testing.T) {
	path := writeTempJSON(t, `{"dispatch": {"delivery_timeout": 5000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Dispatch.DeliveryTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"server": `)

	_, err := parseJSON(path)
	require.Error(t, err)
}
