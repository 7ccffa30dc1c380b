package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()

	if err := loadDotenv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("loadDotenv(missing) = %v, expected nil", err)
	}

	good := filepath.Join(dir, "good.env")
	if err := os.WriteFile(good, []byte("CRUSH_TEST_DOTENV=ann\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CRUSH_TEST_DOTENV", "")
	os.Unsetenv("CRUSH_TEST_DOTENV")
	if err := loadDotenv(good); err != nil {
		t.Fatalf("loadDotenv(good) = %v, expected nil", err)
	}
	if got := os.Getenv("CRUSH_TEST_DOTENV"); got != "ann" {
		t.Errorf("CRUSH_TEST_DOTENV = %q, expected ann", got)
	}

	// A directory exists but cannot be read as a file.
	if err := loadDotenv(dir); err == nil {
		t.Error("loadDotenv(directory) = nil, expected an error")
	}
}
