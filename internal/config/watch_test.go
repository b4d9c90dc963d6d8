package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crossing.yaml")
	if err := os.WriteFile(path, DefaultYAML("crossing"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	updated := []byte("lanes:\n  - { speed: 0.5, cars: 1, car_width: 4 }\n")
	if err := os.WriteFile(path, updated, 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case r := <-w.Updates:
			if r.Err != nil {
				continue
			}
			if len(r.Config.Lanes) == 1 && r.Config.Lanes[0].CarWidth == 4 {
				if r.Path != w.Path() {
					t.Errorf("reload path = %q, expected %q", r.Path, w.Path())
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crossing.yaml")
	if err := os.WriteFile(path, DefaultYAML("crossing"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Updates:
		t.Errorf("unexpected reload for %s", r.Path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseClosesUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossing.yaml")
	if err := os.WriteFile(path, DefaultYAML("crossing"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	// Second close is a no-op
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}

	if _, ok := <-w.Updates; ok {
		t.Error("Updates should be closed after Close")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "crossing.yaml")); err == nil {
		t.Error("watching a file in a missing directory should fail")
	}
}
