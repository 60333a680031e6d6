package tests

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/IvanChernomyrdin/go-appointments/internal/agent/config"
)

func TestDefaultPath_ReturnsPathInHomeDir(t *testing.T) {
	p, err := config.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath returned error: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir returned error: %v", err)
	}

	want := filepath.Join(home, ".appointments", "profile.json")
	if p != want {
		t.Fatalf("expected %q, got %q", want, p)
	}
}

func TestLoad_FileNotExists_ReturnsEmptyProfile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "no-such-file.json")

	prof, err := config.Load(p)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if prof == nil {
		t.Fatalf("expected non-nil profile")
	}
	if *prof != (config.Profile{}) {
		t.Fatalf("expected empty profile, got %+v", *prof)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "profile.json") // вложенная директория

	want := &config.Profile{ServerURL: "http://127.0.0.1:8080", Username: "alice"}
	if err := config.Save(p, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := config.Load(p)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if *got != *want {
		t.Fatalf("expected %+v, got %+v", *want, *got)
	}

	if runtime.GOOS != "windows" {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatalf("Stat: %v", err)
		}
		if perm := st.Mode().Perm(); perm != 0o600 {
			t.Fatalf("expected perm 0600, got %o", perm)
		}
	}
}

func TestLoad_InvalidJSON_ReturnsError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(p, []byte("{not-json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := config.Load(p); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
