package config

import (
	"os"
	"strconv"
	"time"
)

// Application settings
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Upload  UploadConfig
}

// Server settings
type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

// Upload ingestion settings
type UploadConfig struct {
	RatePerSecond int
	Burst         int
	MaxChunkBytes int
}

// Logging settings
type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", "30s"),
		},
		Upload: UploadConfig{
			RatePerSecond: getIntEnv("UPLOAD_RATE_PER_SECOND", 20),
			Burst:         getIntEnv("UPLOAD_BURST", 10),
			MaxChunkBytes: getIntEnv("MAX_CHUNK_BYTES", 4*1024*1024),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
