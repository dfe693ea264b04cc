package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() of a missing file failed: %v", err)
	}
	if cfg.Locking != LockingMutex {
		t.Errorf("Locking = %q, want %q", cfg.Locking, LockingMutex)
	}
	if cfg.Demo.AttackBonus != 150 {
		t.Errorf("Demo.AttackBonus = %d, want 150", cfg.Demo.AttackBonus)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busdemo.toml")
	content := `
locking = "none"

[demo]
base_damage = 5
attack_bonus = 10

[watch]
path = "/tmp"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Locking != LockingNone {
		t.Errorf("Locking = %q, want %q", cfg.Locking, LockingNone)
	}
	if cfg.Demo.BaseDamage != 5 || cfg.Demo.AttackBonus != 10 {
		t.Errorf("Demo = %+v, want {5 10}", cfg.Demo)
	}
	if cfg.Watch.Path != "/tmp" {
		t.Errorf("Watch.Path = %q, want %q", cfg.Watch.Path, "/tmp")
	}
}

func TestLoad_UnknownLocking(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busdemo.toml")
	if err := os.WriteFile(path, []byte(`locking = "spin"`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrUnknownLocking) {
		t.Errorf("Load() error = %v, want ErrUnknownLocking", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busdemo.toml")
	if err := os.WriteFile(path, []byte(`locking = `), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed TOML should fail")
	}
}
