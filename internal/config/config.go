package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultDataDir           = "."
	defaultServerPort        = "0.0.0.0:3000"
	defaultHTTPTimeout       = 30 * time.Second
	defaultTMDBBaseURL       = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL  = "https://image.tmdb.org/t/p/w500"
	defaultDBFilePermissions = 0666
)

type Config struct {
	DataDir           string
	ServerPort        string
	TMDBAPIKey        string
	TMDBBaseURL       string
	TMDBImageBaseURL  string
	HTTPTimeout       time.Duration
	DBFilePermissions os.FileMode
}

func Load() (*Config, error) {
	cfg := &Config{
		DataDir:           getEnvOrDefault("DATA_DIR", defaultDataDir),
		ServerPort:        getEnvOrDefault("SERVER_PORT", defaultServerPort),
		TMDBBaseURL:       getEnvOrDefault("TMDB_BASE_URL", defaultTMDBBaseURL),
		TMDBImageBaseURL:  getEnvOrDefault("TMDB_IMAGE_BASE_URL", defaultTMDBImageBaseURL),
		HTTPTimeout:       defaultHTTPTimeout,
		DBFilePermissions: defaultDBFilePermissions,
	}

	if err := cfg.loadRequired(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadRequired() error {
	required := map[string]*string{
		"TMDB_API_KEY": &c.TMDBAPIKey,
	}

	for key, ptr := range required {
		value := os.Getenv(key)
		if value == "" {
			return fmt.Errorf("required environment variable missing: %s", key)
		}
		*ptr = value
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "movies.db")
}
