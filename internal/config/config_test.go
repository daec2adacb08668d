package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("PRICING_CLAMP_NEGATIVE_NET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.HTTPAddr() != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr())
	}
	if cfg.ClampNegativeNet {
		t.Error("ClampNegativeNet should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PRICING_CLAMP_NEGATIVE_NET", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr() != ":9090" {
		t.Errorf("HTTPAddr = %q, want :9090", cfg.HTTPAddr())
	}
	if !cfg.ClampNegativeNet {
		t.Error("ClampNegativeNet should be true")
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Errorf("CORSAllowedOrigins = %v, want 2 entries", cfg.CORSAllowedOrigins)
	}
}
