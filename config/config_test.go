package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBool(t *testing.T) {
	env := map[string]string{
		"ENABLED":  "true",
		"DISABLED": "false",
		"GARBAGE":  "maybe",
	}

	assert.True(t, GetBool(env, "ENABLED", false))
	assert.False(t, GetBool(env, "DISABLED", true))
	assert.True(t, GetBool(env, "GARBAGE", true), "unparseable values fall back to the default")
	assert.True(t, GetBool(env, "MISSING", true))
	assert.False(t, GetBool(nil, "ENABLED", false))
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(map[string]string{})

	assert.True(t, cfg.UseMock, "mock backend is the default")
	assert.Equal(t, "us-west-2", cfg.AWSRegion)
	assert.Equal(t, "botthef-content", cfg.TableName)
	assert.Equal(t, "botthef-content-bucket", cfg.BucketName)
	assert.Equal(t, "entity_type-index", cfg.ModulesIndex)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(map[string]string{
		"USE_MOCK":       "false",
		"DYNAMODB_TABLE": "content-staging",
		"S3_BUCKET":      "content-staging-bucket",
	})

	assert.False(t, cfg.UseMock)
	assert.Equal(t, "content-staging", cfg.TableName)
	assert.Equal(t, "content-staging-bucket", cfg.BucketName)
}
