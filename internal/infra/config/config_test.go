package config

import (
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
	if cfg.FAQ.PivotLanguage != "en" {
		t.Fatalf("expected english pivot by default, got %q", cfg.FAQ.PivotLanguage)
	}
	if cfg.HTTP.ReadTimeout != 5*time.Second {
		t.Fatalf("unexpected read timeout %v", cfg.HTTP.ReadTimeout)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty address", func(c *Config) { c.HTTP.Address = "" }},
		{"empty data path", func(c *Config) { c.FAQ.DataPath = " " }},
		{"empty pivot", func(c *Config) { c.FAQ.PivotLanguage = "" }},
		{"unknown embedder", func(c *Config) { c.FAQ.EmbedderType = "tfidf" }},
		{"unknown translator", func(c *Config) { c.Translator.Provider = "google" }},
		{"libre without base url", func(c *Config) { c.Translator.BaseURL = "" }},
		{"valkey without addr", func(c *Config) { c.FAQ.Valkey.Enabled = true; c.FAQ.Valkey.Addr = "" }},
		{"rate limit zero rpm", func(c *Config) { c.HTTP.RateLimit.RequestsPerMinute = 0 }},
	}

	for _, tc := range cases {
		cfg := defaultConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
