package worker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LockInfo describes who holds the bootstrap lock and until when.
type LockInfo struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	AcquiredAt  time.Time `json:"acquired_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Environment string    `json:"environment"`
}

// LockManager serializes table bootstrap across instances sharing a host
// via a lock file.
type LockManager struct {
	lockFilePath string
	lockTimeout  time.Duration
	environment  string
}

// NewLockManager creates a new lock manager
func NewLockManager(lockPath string, timeout time.Duration, env string) *LockManager {
	return &LockManager{
		lockFilePath: lockPath,
		lockTimeout:  timeout,
		environment:  env,
	}
}

// AcquireLock takes the bootstrap lock for ownerID, extending it when this
// owner already holds it.
func (lm *LockManager) AcquireLock(ownerID string) (*LockInfo, error) {
	if err := os.MkdirAll(filepath.Dir(lm.lockFilePath), 0755); err != nil {
		return nil, err
	}

	if existing, err := lm.readLockFile(); err == nil {
		if time.Now().Before(existing.ExpiresAt) {
			if existing.Owner == ownerID && existing.Environment == lm.environment {
				return lm.extendLock(existing)
			}
			return nil, fmt.Errorf("lock held by %s until %s", existing.Owner, existing.ExpiresAt.Format(time.RFC3339))
		}
	}

	lockInfo := &LockInfo{
		ID:          fmt.Sprintf("bootstrap-lock-%d", time.Now().UnixNano()),
		Owner:       ownerID,
		AcquiredAt:  time.Now(),
		ExpiresAt:   time.Now().Add(lm.lockTimeout),
		Environment: lm.environment,
	}

	if err := lm.writeLockFile(lockInfo); err != nil {
		return nil, fmt.Errorf("failed to create lock file: %w", err)
	}
	return lockInfo, nil
}

func (lm *LockManager) readLockFile() (*LockInfo, error) {
	data, err := os.ReadFile(lm.lockFilePath)
	if err != nil {
		return nil, err
	}

	var lockInfo LockInfo
	if err := json.Unmarshal(data, &lockInfo); err != nil {
		return nil, fmt.Errorf("failed to parse lock file: %w", err)
	}

	return &lockInfo, nil
}

func (lm *LockManager) extendLock(existing *LockInfo) (*LockInfo, error) {
	extended := &LockInfo{
		ID:          existing.ID,
		Owner:       existing.Owner,
		AcquiredAt:  existing.AcquiredAt,
		ExpiresAt:   time.Now().Add(lm.lockTimeout),
		Environment: existing.Environment,
	}

	if err := lm.writeLockFile(extended); err != nil {
		return nil, fmt.Errorf("failed to extend lock: %w", err)
	}
	return extended, nil
}

func (lm *LockManager) writeLockFile(lockInfo *LockInfo) error {
	data, err := json.MarshalIndent(lockInfo, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize lock info: %w", err)
	}

	// Write-then-rename keeps readers from seeing a half-written file.
	tempFile := lm.lockFilePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp lock file: %w", err)
	}
	if err := os.Rename(tempFile, lm.lockFilePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp lock file: %w", err)
	}
	return nil
}

// CleanupExpiredLocks removes the lock file once it has expired.
func (lm *LockManager) CleanupExpiredLocks() error {
	lockInfo, err := lm.readLockFile()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if time.Now().After(lockInfo.ExpiresAt) {
		return os.Remove(lm.lockFilePath)
	}

	return nil
}

// ReleaseLock releases the bootstrap lock held by lockInfo's owner.
func (lm *LockManager) ReleaseLock(lockInfo *LockInfo) error {
	current, err := lm.readLockFile()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read lock file: %w", err)
	}

	if current.Owner != lockInfo.Owner {
		return fmt.Errorf("cannot release lock owned by %s", current.Owner)
	}

	if err := os.Remove(lm.lockFilePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}

	return nil
}
