package config

import (
	"path/filepath"
	"testing"
	"time"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Port:          "8080",
		SQLiteDBPath:  filepath.Join(t.TempDir(), "test.db"),
		JWTSecret:     "test-secret-at-least-32-bytes-long",
		TokenDuration: 24 * time.Hour,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "non-numeric port",
			mutate:  func(c *Config) { c.Port = "abc" },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = "70000" },
			wantErr: true,
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.JWTSecret = "" },
			wantErr: true,
		},
		{
			name:    "non-positive token duration",
			mutate:  func(c *Config) { c.TokenDuration = 0 },
			wantErr: true,
		},
		{
			name:    "empty db path",
			mutate:  func(c *Config) { c.SQLiteDBPath = "" },
			wantErr: true,
		},
		{
			name:   "db directory created on demand",
			mutate: func(c *Config) { c.SQLiteDBPath = filepath.Join(c.SQLiteDBPath+"-dir", "nested", "test.db") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port == "" {
		t.Error("expected default port")
	}
	if cfg.TokenDuration <= 0 {
		t.Errorf("TokenDuration = %s, want positive default", cfg.TokenDuration)
	}
	if cfg.AMQPExchange == "" {
		t.Error("expected default AMQP exchange name")
	}
}
