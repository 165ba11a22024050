package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestAcquireLockIsExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), lockFileName)

	guard, err := acquireLock(path)
	if err != nil {
		t.Fatalf("acquireLock: %v", err)
	}

	if _, err := acquireLock(path); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second acquire: err = %v, want ErrAlreadyRunning", err)
	}

	if err := guard.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	guard, err = acquireLock(path)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	_ = guard.Release()
}

func TestAcquireLockRespectsLiveHolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), lockFileName)

	// The test process itself stands in for a running instance; its pid
	// must be recognised as alive on every platform.
	pid := []byte(strconv.Itoa(os.Getpid()) + "\n")
	if err := os.WriteFile(path, pid, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := acquireLock(path); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("acquire over live holder: err = %v, want ErrAlreadyRunning", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("live holder's lock file was removed: %v", err)
	}
}

func TestAcquireLockTakesOverStaleLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), lockFileName)
	if err := os.WriteFile(path, []byte("not-a-pid\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	guard, err := acquireLock(path)
	if err != nil {
		t.Fatalf("acquireLock over stale lock: %v", err)
	}
	defer guard.Release()

	if guard.Path() != path {
		t.Fatalf("guard path = %q, want %q", guard.Path(), path)
	}
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	if err := guard.Release(); err != nil {
		t.Fatalf("nil guard Release: %v", err)
	}
}
