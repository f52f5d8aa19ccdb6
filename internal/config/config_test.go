package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServiceEnvironment != "development" {
		t.Errorf("ServiceEnvironment = %q, want development", cfg.ServiceEnvironment)
	}
	if cfg.ServicePort != "8080" {
		t.Errorf("ServicePort = %q, want 8080", cfg.ServicePort)
	}
	if cfg.DefaultCity != "Detroit" {
		t.Errorf("DefaultCity = %q, want Detroit", cfg.DefaultCity)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVICE_ENVIRONMENT", "production")
	t.Setenv("SERVICE_PORT", "9090")
	t.Setenv("DEFAULT_CITY", "Chicago")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServiceEnvironment != "production" {
		t.Errorf("ServiceEnvironment = %q", cfg.ServiceEnvironment)
	}
	if cfg.ServicePort != "9090" {
		t.Errorf("ServicePort = %q", cfg.ServicePort)
	}
	if cfg.DefaultCity != "Chicago" {
		t.Errorf("DefaultCity = %q", cfg.DefaultCity)
	}
}
