// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected env database URL, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("CONFIG_DIR", "/env/configs")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-config-dir", "/cli/configs"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.ConfigDir != "/cli/configs" {
		t.Errorf("CLI should override env: expected /cli/configs, got %q", cfg.ConfigDir)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8001 {
		t.Errorf("expected default port 8001, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.ConfigDir != "static/configs" {
		t.Errorf("expected default config dir, got %q", cfg.ConfigDir)
	}
	if cfg.StimuliDir != "static/stimuli_sets" {
		t.Errorf("expected default stimuli dir, got %q", cfg.StimuliDir)
	}
	if cfg.StimuliSet == "" {
		t.Error("expected a default stimuli set")
	}
}

func TestParseFlags_DatabaseURLRequired(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error without a database URL")
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-d", "file:test.db", "-t", "mongodb"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	os.Setenv("PORT", "not-a-number")
	os.Setenv("DATABASE_URL", "file:test.db")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for invalid PORT env")
	}
}

func TestDriverName(t *testing.T) {
	if got := DriverName("postgres"); got != "postgres" {
		t.Errorf("expected postgres, got %q", got)
	}
	if got := DriverName("sqlite"); got != "sqlite" {
		t.Errorf("expected sqlite, got %q", got)
	}
}
