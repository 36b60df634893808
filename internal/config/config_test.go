package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		cleanup func()
		wantErr bool
	}{
		{
			name: "all required env vars set",
			setup: func() {
				os.Setenv("TMDB_API_KEY", "test_api_key")
			},
			cleanup: func() {
				os.Unsetenv("TMDB_API_KEY")
			},
			wantErr: false,
		},
		{
			name: "missing required env var",
			setup: func() {
				os.Unsetenv("TMDB_API_KEY")
			},
			cleanup: func() {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.cleanup()

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if cfg.ServerPort != defaultServerPort {
					t.Errorf("ServerPort = %v, want %v", cfg.ServerPort, defaultServerPort)
				}
				if cfg.TMDBBaseURL != defaultTMDBBaseURL {
					t.Errorf("TMDBBaseURL = %v, want %v", cfg.TMDBBaseURL, defaultTMDBBaseURL)
				}
				if cfg.HTTPTimeout != defaultHTTPTimeout {
					t.Errorf("HTTPTimeout = %v, want %v", cfg.HTTPTimeout, defaultHTTPTimeout)
				}
			}
		})
	}
}

func TestConfig_DBPath(t *testing.T) {
	cfg := &Config{
		DataDir: "/test/data",
	}

	if got := cfg.DBPath(); got != "/test/data/movies.db" {
		t.Errorf("DBPath() = %v, want /test/data/movies.db", got)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		want         string
	}{
		{
			name:         "env var set",
			key:          "TEST_VAR",
			defaultValue: "default",
			envValue:     "custom",
			want:         "custom",
		},
		{
			name:         "env var not set",
			key:          "TEST_VAR_MISSING",
			defaultValue: "default",
			envValue:     "",
			want:         "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			got := getEnvOrDefault(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvOrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}
