package config

import (
	"os"
	"strconv"
	"strings"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func GetBool(config map[string]string, key string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}

	return asBool
}

// Config is the typed application configuration. It is built once at startup
// from the process environment and passed by injection to whatever constructs
// the content service, so backend selection stays unit-testable and nothing
// reads the environment ad hoc.
type Config struct {
	// UseMock selects the in-memory content backend. Defaults to true so
	// local development never needs live cloud credentials.
	UseMock bool

	AWSRegion    string
	TableName    string
	BucketName   string
	ModulesIndex string

	// Admin mutation client settings. The content API is a separate backend;
	// this repository only calls it.
	ContentAPIURL string
	AuthSecret    string
	AdminEmail    string
}

// FromEnv builds a Config from an environment map produced by New.
func FromEnv(c map[string]string) Config {
	return Config{
		UseMock:       GetBool(c, "USE_MOCK", true),
		AWSRegion:     GetString(c, "AWS_REGION", "us-west-2"),
		TableName:     GetString(c, "DYNAMODB_TABLE", "botthef-content"),
		BucketName:    GetString(c, "S3_BUCKET", "botthef-content-bucket"),
		ModulesIndex:  GetString(c, "DYNAMODB_ENTITY_INDEX", "entity_type-index"),
		ContentAPIURL: GetString(c, "CONTENT_API_URL", ""),
		AuthSecret:    GetString(c, "AUTH_SECRET", ""),
		AdminEmail:    GetString(c, "ADMIN_EMAIL", ""),
	}
}
