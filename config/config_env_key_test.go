package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"catalog": map[string]any{
			"enforceRequiredAttributes": true,
			"cacheTTL":                  "5m",
		},
		"redis": map[string]any{
			"keyPrefix": "catalog",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "CATALOG_CACHETTL", want: "catalog.cacheTTL"},
		{envKey: "CATALOG_ENFORCEREQUIREDATTRIBUTES", want: "catalog.enforceRequiredAttributes"},
		{envKey: "REDIS_KEYPREFIX", want: "redis.keyPrefix"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
		{envKey: "CATALOG__AUTOMIGRATE", want: "catalog.automigrate"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{Addr: "localhost:6379"}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultCacheTTL, cfg.Catalog.CacheTTL)
	assert.Equal(t, defaultRedisKeyPrefix, cfg.Redis.KeyPrefix)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.MaxRequestBodySize = "2MB"
	cfg.Catalog.CacheTTL = time.Minute

	applyDefaults(cfg)

	assert.Equal(t, "2MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Minute, cfg.Catalog.CacheTTL)
	assert.Nil(t, cfg.Redis)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  serviceName: catalog
catalog:
  enforceRequiredAttributes: true
  cacheTTL: 5m
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test-catalog.yaml"), content, 0o600))
	t.Chdir(dir)
	t.Setenv("CATALOG_CACHETTL", "30s")
	t.Setenv("CATALOG_ENFORCEREQUIREDATTRIBUTES", "false")

	cfg, err := LoadWithEnv[Config]("test-catalog")
	require.NoError(t, err)

	assert.Equal(t, "catalog", cfg.Env.ServiceName)
	assert.Equal(t, 30*time.Second, cfg.Catalog.CacheTTL)
	assert.False(t, cfg.Catalog.EnforceRequiredAttributes)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}
