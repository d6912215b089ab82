package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("SERVER_ENV", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SERVER_HOST", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "uuid", cfg.IDs.Generator)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9000
  env: staging
  read_timeout: 5s
slug:
  transliterate: true
email:
  smtp_host: smtp.example.com
ids:
  generator: counter
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("SERVER_HOST", "")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9100", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.True(t, cfg.Slug.Transliterate)
	assert.Equal(t, "smtp.example.com", cfg.Email.SMTPHost)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, "counter", cfg.IDs.Generator)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [oops"), 0o600))
	t.Setenv("SERVER_PORT", "")

	_, err := Load(path)

	assert.Error(t, err)
}
