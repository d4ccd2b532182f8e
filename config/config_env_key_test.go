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
		"secretKey": map[string]any{
			"access": "",
		},
		"storage": map[string]any{
			"bucketUrl":     "",
			"publicBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  env: test
auth:
  bcryptCost: 4
  tokenTTL: 1h
storage:
  bucketUrl: "file:///var/board"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("STORAGE_BUCKETURL", "mem://")

	cfg, err := LoadWithEnv[Config]("app")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	t.Run("empty config", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)

		assert.Equal(t, defaultMinPasswordLength, cfg.PasswordStrength.MinLength)
		assert.Equal(t, defaultAvatarPrefix, cfg.Storage.AvatarPrefix)
		assert.Equal(t, int64(defaultMaxAvatarSize), cfg.Storage.MaxAvatarSize)
		assert.Equal(t, defaultCommentMaxLength, cfg.Comment.MaxLength)
		assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
		assert.NotNil(t, cfg.Auth)
	})

	t.Run("uploads widen body limit", func(t *testing.T) {
		cfg := &Config{Storage: &StorageConfig{BucketURL: "mem://"}}
		applyDefaults(cfg)

		assert.Equal(t, defaultUploadBodySize, cfg.HTTP.MaxRequestBodySize)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		cfg := &Config{
			PasswordStrength: &PasswordStrengthConfig{MinLength: 10},
			Storage:          &StorageConfig{AvatarPrefix: "avatars/"},
		}
		cfg.HTTP.MaxRequestBodySize = "1MB"
		applyDefaults(cfg)

		assert.Equal(t, 10, cfg.PasswordStrength.MinLength)
		assert.Equal(t, "avatars/", cfg.Storage.AvatarPrefix)
		assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	})
}
