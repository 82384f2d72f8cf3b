package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigs(t,
		"storage: postgres\npg:\n  host: db\n  port: 5432\n  user: app\n  dbname: goals\ntoken_ttl: 3600\nlog_level: debug\n",
		"jwt_key: 'k'\npg_password: 'secret'\n")

	cfg := MustLoad(dir)

	if cfg.Public.Storage != "postgres" {
		t.Errorf("storage = %q, want postgres", cfg.Public.Storage)
	}
	if cfg.TokenTTL() != time.Hour {
		t.Errorf("token ttl = %v, want 1h", cfg.TokenTTL())
	}
	if cfg.JwtKey() != "k" {
		t.Errorf("jwt key = %q, want k", cfg.JwtKey())
	}
	if cfg.PgPassword() != "secret" {
		t.Errorf("pg password = %q, want secret", cfg.PgPassword())
	}
}

func TestMustLoad_DefaultStorage(t *testing.T) {
	dir := writeConfigs(t, "token_ttl: 60\n", "jwt_key: 'k'\n")

	cfg := MustLoad(dir)

	if cfg.Public.Storage != "memory" {
		t.Errorf("storage = %q, want memory default", cfg.Public.Storage)
	}
}

func TestMustLoad_MissingJwtKey(t *testing.T) {
	dir := writeConfigs(t, "token_ttl: 60\n", "pg_password: 'x'\n")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing jwt_key, got none")
		}
	}()

	_ = MustLoad(dir)
}

func TestMustLoad_MissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing config file, got none")
		}
	}()

	_ = MustLoad(t.TempDir())
}
