package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"), "")
	if err != nil {
		t.Fatalf("Load() err = %v, want nil", err)
	}

	if cfg.HTTP.Addr != ":8080" || cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("HTTP = %+v, want defaults", cfg.HTTP)
	}
	if cfg.RateLimit.RPS != 2 || cfg.RateLimit.Burst != 20 {
		t.Errorf("RateLimit = %+v, want 2/20", cfg.RateLimit)
	}
	if cfg.Store.Driver != DriverMemory || cfg.Store.SeedSamples {
		t.Errorf("Store = %+v, want memory without samples", cfg.Store)
	}
	if cfg.DB.Name != "taskdb" || cfg.Board.Timezone != "UTC" || cfg.Log.Level != "info" {
		t.Errorf("Config = %+v, want defaults", cfg)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "HTTP_ADDR=:9090\nSTORE_SEED_SAMPLE_TASKS=true\nBOARD_TIMEZONE=America/Sao_Paulo\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set, so
	// register them with t.Setenv first to have them restored afterwards.
	for _, key := range []string{"HTTP_ADDR", "STORE_SEED_SAMPLE_TASKS", "BOARD_TIMEZONE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(envFile, "")
	if err != nil {
		t.Fatalf("Load() err = %v, want nil", err)
	}
	if cfg.HTTP.Addr != ":9090" || !cfg.Store.SeedSamples || cfg.Board.Timezone != "America/Sao_Paulo" {
		t.Fatalf("Load() = %+v, want values from env file", cfg)
	}
	loc, err := cfg.Board.Location()
	if err != nil || loc.String() != "America/Sao_Paulo" {
		t.Fatalf("Location() = %v, %v", loc, err)
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "http:\n  addr: \":7070\"\nstore:\n  driver: mysql\ndb:\n  user: kanban\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DB_NAME", "boards")

	cfg, err := Load("", path)
	if err != nil {
		t.Fatalf("Load() err = %v, want nil", err)
	}
	if cfg.HTTP.Addr != ":7070" || cfg.Store.Driver != DriverMySQL || cfg.DB.User != "kanban" {
		t.Fatalf("Load() = %+v, want values from file", cfg)
	}
	if cfg.DB.Name != "boards" {
		t.Fatalf("DB.Name = %q, want env override", cfg.DB.Name)
	}
	if cfg.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP.WriteTimeout = %v, want default", cfg.HTTP.WriteTimeout)
	}
}

func TestValidate(t *testing.T) {
	base, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() err = %v, want nil", err)
	}

	bad := base
	bad.Store.Driver = "postgres"
	if err := bad.Validate(); err == nil {
		t.Error("Validate() with unknown driver err = nil")
	}

	bad = base
	bad.Board.Timezone = "Mars/Olympus"
	if err := bad.Validate(); err == nil {
		t.Error("Validate() with unknown timezone err = nil")
	}

	bad = base
	bad.RateLimit.Burst = 0
	if err := bad.Validate(); err == nil {
		t.Error("Validate() with zero burst err = nil")
	}

	bad.RateLimit.RPS = 0
	if err := bad.Validate(); err != nil {
		t.Errorf("Validate() with limiter disabled err = %v, want nil", err)
	}
}
