package config

import (
	"testing"
	"time"

	"gorm.io/gorm/logger"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("inventory-service")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServiceName != "inventory-service" {
		t.Errorf("expected service name to be kept, got %q", cfg.ServiceName)
	}
	if cfg.DB.DBName != "inventory-service" {
		t.Errorf("expected db name to default to the service name, got %q", cfg.DB.DBName)
	}
	if cfg.Media.DefaultImage != "products/default.png" {
		t.Errorf("unexpected default image: %q", cfg.Media.DefaultImage)
	}
	if cfg.Metrics.Prefix != "inventory" {
		t.Errorf("unexpected metrics prefix: %q", cfg.Metrics.Prefix)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_LOG_LEVEL", "silent")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("MEDIA_DIR", "/var/lib/inventory/media")

	cfg, err := Load("inventory-service")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("expected port 9999, got %q", cfg.Server.Port)
	}
	if cfg.DB.LogLevel != logger.Silent {
		t.Errorf("expected silent db log level, got %v", cfg.DB.LogLevel)
	}
	if cfg.DB.ConnMaxLifetime != 30*time.Minute {
		t.Errorf("expected 30m lifetime, got %v", cfg.DB.ConnMaxLifetime)
	}
	if cfg.Media.Dir != "/var/lib/inventory/media" {
		t.Errorf("expected media dir override, got %q", cfg.Media.Dir)
	}
}
