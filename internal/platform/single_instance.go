package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const lockFileName = "instance.lock"

// InstanceGuard holds the single-instance lock file.
type InstanceGuard struct {
	path string
}

// AcquireSingleInstance creates an exclusive lock file under the user cache
// directory. A stale lock left behind by a dead process is taken over.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user cache dir: %w", err)
	}
	dir := filepath.Join(cacheDir, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	return acquireLock(filepath.Join(dir, lockFileName))
}

func acquireLock(path string) (*InstanceGuard, error) {
	for attempt := 0; attempt < 2; attempt++ {
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			_, writeErr := fmt.Fprintf(file, "%d\n", os.Getpid())
			closeErr := file.Close()
			if writeErr != nil || closeErr != nil {
				_ = os.Remove(path)
				return nil, fmt.Errorf("write lock file: %w", errors.Join(writeErr, closeErr))
			}
			return &InstanceGuard{path: path}, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create lock file: %w", err)
		}
		if lockHolderAlive(path) {
			return nil, ErrAlreadyRunning
		}
		_ = os.Remove(path)
	}
	return nil, ErrAlreadyRunning
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.path == "" {
		return nil
	}
	return os.Remove(guard.path)
}

// Path returns the lock file location.
func (guard *InstanceGuard) Path() string {
	if guard == nil {
		return ""
	}
	return guard.path
}

func lockHolderAlive(path string) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || pid <= 0 {
		return false
	}
	return processAlive(pid)
}
