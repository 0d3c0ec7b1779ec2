package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"FORMWIDGET_CONFIG", "FORMWIDGET_OPENAPI", "FORMWIDGET_SCHEMA",
		"FORMWIDGET_LOCALE", "FORMWIDGET_OUTPUT_FORMAT", "FORMWIDGET_LOG_LEVEL", "FORMWIDGET_VERBOSE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.App.OutputFormat != "json" {
		t.Fatalf("output format = %q", cfg.App.OutputFormat)
	}
	if cfg.Logger.Level != "warn" || cfg.Logger.Verbose {
		t.Fatalf("unexpected logger config %+v", cfg.Logger)
	}
	if cfg.App.PageConfig != "" || cfg.App.Locale != "" {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("FORMWIDGET_CONFIG", "forms.yaml")
	t.Setenv("FORMWIDGET_LOCALE", "fr")
	t.Setenv("FORMWIDGET_OUTPUT_FORMAT", "pretty")
	t.Setenv("FORMWIDGET_LOG_LEVEL", "debug")
	t.Setenv("FORMWIDGET_VERBOSE", "true")

	cfg := Load()
	if cfg.App.PageConfig != "forms.yaml" || cfg.App.Locale != "fr" || cfg.App.OutputFormat != "pretty" {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if cfg.Logger.Level != "debug" || !cfg.Logger.Verbose {
		t.Fatalf("unexpected logger config %+v", cfg.Logger)
	}
}

func TestGetEnvAsBool_InvalidFallsBack(t *testing.T) {
	t.Setenv("FORMWIDGET_VERBOSE", "sometimes")
	if getEnvAsBool("FORMWIDGET_VERBOSE", true) != true {
		t.Fatalf("expected fallback")
	}
}
