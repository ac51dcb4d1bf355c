package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Profile string

	// DataDir and DBPath override the per-OS defaults when set.
	DataDir string
	DBPath  string

	Port           string
	LogLevel       string
	RequestTimeout time.Duration

	// ListLimit caps the recency listing served to the UI.
	ListLimit int
}

func Load() *Config {
	return &Config{
		Profile:        getEnvString("JOBVAULT_PROFILE", "default"),
		DataDir:        getEnvString("JOBVAULT_DATA_DIR", ""),
		DBPath:         getEnvString("JOBVAULT_DB", ""),
		Port:           getEnvString("PORT", "8081"),
		LogLevel:       getEnvString("LOG_LEVEL", "info"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
		ListLimit:      getEnvInt("JOBVAULT_LIST_LIMIT", 1000),
	}
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
