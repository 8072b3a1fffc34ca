package worker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BootstrapStatus is the outcome of the most recent bootstrap pass, written
// to a JSON file next to the lock so operators can inspect it.
type BootstrapStatus struct {
	Owner       string    `json:"owner"`
	Environment string    `json:"environment"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	Tables      []string  `json:"tables"`
}

func writeStatusFile(path string, status BootstrapStatus) error {
	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bootstrap status: %w", err)
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write status file: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to move status file: %w", err)
	}

	return nil
}

func readStatusFile(path string) (*BootstrapStatus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var status BootstrapStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status file %s: %w", filepath.Base(path), err)
	}

	return &status, nil
}
