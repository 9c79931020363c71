package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnv(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
}

func TestLoad(t *testing.T) {
	writeEnv(t, "MONGO_URI=mongodb://localhost:27017\nMONGO_DB=mindhaven\nSERVER_PORT=8080\nREDIS_ADDR=localhost:6379\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDB != "mindhaven" {
		t.Errorf("MongoDB = %q", cfg.MongoDB)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q", cfg.ServerPort)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
}

func TestLoadMissingRequiredField(t *testing.T) {
	writeEnv(t, "MONGO_URI=mongodb://localhost:27017\nMONGO_DB=mindhaven\n")

	if _, err := Load(); err == nil {
		t.Error("expected an error when SERVER_PORT is missing")
	}
}
