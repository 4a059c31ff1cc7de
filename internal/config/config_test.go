package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ADDR", "LOG_LEVEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "MAX_BODY_BYTES", "CORS_ALLOWED_ORIGINS", "RESET_DRAFT_ON_CANCEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.RateLimitRPS != 10 || cfg.RateLimitBurst != 20 {
		t.Fatalf("unexpected rate limit defaults: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("unexpected max body bytes: %d", cfg.MaxBodyBytes)
	}
	if cfg.ResetDraftOnCancel {
		t.Fatal("expected draft to survive cancel by default")
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Fatalf("expected no allowed origins, got %v", cfg.AllowedOrigins)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RESET_DRAFT_ON_CANCEL", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, ,http://localhost:5173")

	cfg := Load()

	if cfg.Addr != ":9090" {
		t.Fatalf("expected APP_ADDR override, got %q", cfg.Addr)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Fatalf("expected RATE_LIMIT_RPS override, got %v", cfg.RateLimitRPS)
	}
	if !cfg.ResetDraftOnCancel {
		t.Fatal("expected RESET_DRAFT_ON_CANCEL override")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://localhost:5173" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoad_MalformedFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "lots")

	if got := Load().RateLimitBurst; got != 20 {
		t.Fatalf("expected default burst, got %d", got)
	}
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")

	if err := os.WriteFile(p, []byte("APP_ADDR=from_file\nLOG_FORMAT=text\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("APP_ADDR", "from_env")
	t.Setenv("LOG_FORMAT", "")
	os.Unsetenv("LOG_FORMAT")

	cwd, _ := os.Getwd()
	_ = os.Chdir(tmp)
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	LoadEnvFiles()

	if got := os.Getenv("APP_ADDR"); got != "from_env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
	if got := os.Getenv("LOG_FORMAT"); got != "text" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}
