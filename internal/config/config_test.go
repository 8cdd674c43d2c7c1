package config

import (
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "ENV", "CORS_ALLOWED_ORIGINS", "API_KEY", "CURRENCY_SYMBOL"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" || cfg.Env != "development" {
			t.Errorf("unexpected server defaults: %+v", cfg)
		}
		if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
			t.Errorf("expected wildcard origin, got %v", cfg.CORSOrigins)
		}
		if cfg.APIKey != "" {
			t.Errorf("expected no API key, got %q", cfg.APIKey)
		}
		if cfg.CurrencySymbol != "$" {
			t.Errorf("expected $ currency, got %q", cfg.CurrencySymbol)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
		t.Setenv("API_KEY", "k")
		t.Setenv("CURRENCY_SYMBOL", "Rs. ")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "9090" || cfg.APIKey != "k" || cfg.CurrencySymbol != "Rs. " {
			t.Errorf("overrides not applied: %+v", cfg)
		}
		if !reflect.DeepEqual(cfg.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
			t.Errorf("unexpected origins %v", cfg.CORSOrigins)
		}
		if Get() != cfg {
			t.Error("expected Get to return the loaded config")
		}
	})
}
