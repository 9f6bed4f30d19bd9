package config

import (
	"os"
	"testing"
)

func TestLoadReadsDotenvFile(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "ENV", "LOG_LEVEL"} {
		if os.Getenv(key) != "" {
			t.Skipf("%s set in the environment; dotenv would not override it", key)
		}
	}

	dir := t.TempDir()
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldDir); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})

	content := "HTTP_PORT=9191\nENV=production\nLOG_LEVEL=warn\n"
	if err := os.WriteFile(".env", []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("HTTP_PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg := Load()
	if cfg.HTTPPort != "9191" {
		t.Fatalf("expected port 9191 from .env, got %q", cfg.HTTPPort)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env production from .env, got %q", cfg.Env)
	}
	// The logger is built from cfg.LogLevel, so a level set only in .env
	// must land here.
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected log level warn from .env, got %q", cfg.LogLevel)
	}
}
