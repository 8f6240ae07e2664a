package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmgpulse/rmgpulse/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15, cfg.Harvester.ArticlesPerSource)
	assert.Equal(t, 30*time.Second, cfg.Harvester.FetchTimeout)
	assert.Equal(t, "https://api.deepseek.com/v1/chat/completions", cfg.AI.Endpoint)
	assert.Equal(t, "deepseek-chat", cfg.AI.Model)
	assert.False(t, cfg.AI.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("server.address", ":9090")
	v.Set("harvester.articles_per_source", 5)
	v.Set("ai.api_key", "sk-test")

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 5, cfg.Harvester.ArticlesPerSource)
	assert.True(t, cfg.AI.Enabled())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("harvester.articles_per_source", 0)

	_, err := config.Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "articles_per_source")
}

func TestDatabaseDSN(t *testing.T) {
	t.Parallel()

	d := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "pulse",
		Password: "secret",
		Name:     "news",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=pulse password=secret dbname=news sslmode=require",
		d.DSN())
}
