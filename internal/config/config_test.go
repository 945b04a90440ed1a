package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-comp/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "INR", cfg.Engine.DefaultCurrency)
	assert.Equal(t, 50, cfg.Kafka.BatchSize)
	assert.Error(t, cfg.RequireKafka())
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 8088\nkafka:\n  broker: kafka:9092\nengine:\n  default_currency: USD\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("COMP_DB_HOST", "db.internal")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, "USD", cfg.Engine.DefaultCurrency)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.NoError(t, cfg.RequireKafka())
	assert.Contains(t, cfg.DB.DSN(), "host=db.internal")
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 0},
		DB:     config.DatabaseConfig{MaxRetries: 1},
		Engine: config.EngineConfig{DefaultCurrency: "INR"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 80
	assert.NoError(t, cfg.Validate())

	cfg.Engine.DefaultCurrency = "RUPEE"
	assert.Error(t, cfg.Validate())
}
