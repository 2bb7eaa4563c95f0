package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	// No config file in an empty dir: env-only deployment with defaults.
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Mongo.DBName != "foodtrucks" {
		t.Errorf("expected default db name, got %q", cfg.Mongo.DBName)
	}
	if cfg.Admin.Email != "admin@foodtrucks.ma" {
		t.Errorf("expected default admin email, got %q", cfg.Admin.Email)
	}
	if cfg.Upload.BaseURL != "/uploads" {
		t.Errorf("expected default upload base url, got %q", cfg.Upload.BaseURL)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DATA_DIR", "/var/lib/foodtrucks")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("expected env port override, got %q", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("expected env jwt secret, got %q", cfg.JWT.Secret)
	}
	if cfg.Data.Dir != "/var/lib/foodtrucks" {
		t.Errorf("expected env data dir, got %q", cfg.Data.Dir)
	}
}
