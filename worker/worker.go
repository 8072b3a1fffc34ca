package worker

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"volunteerhub-backend/dal"
	"volunteerhub-backend/models"
	"volunteerhub-backend/utils/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron"
)

// Worker runs the table bootstrap once at startup and keeps re-checking
// the tables on a cron schedule afterwards.
type Worker struct {
	config      *models.Config
	logger      logger.Logger
	bootstrap   *TableBootstrap
	lockManager *LockManager
	cronJob     *cron.Cron
	ownerID     string
	statusPath  string

	mu        sync.Mutex
	isRunning bool
	cancel    context.CancelFunc
}

// NewWorker creates the bootstrap worker over an existing DB client
func NewWorker(dbClient dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) (*Worker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname = "localhost"
	}
	ownerID := fmt.Sprintf("worker-%s-%s", hostname, uuid.New().String()[:8])

	lockPath := fmt.Sprintf("/tmp/volunteerhub-bootstrap-%s.lock", cfg.AppEnv)
	statusPath := fmt.Sprintf("/tmp/volunteerhub-bootstrap-%s.status.json", cfg.AppEnv)

	return &Worker{
		config:      cfg,
		logger:      log,
		bootstrap:   NewTableBootstrap(dbClient, cfg, log),
		lockManager: NewLockManager(lockPath, 30*time.Minute, cfg.AppEnv),
		cronJob:     cron.New(),
		ownerID:     ownerID,
		statusPath:  statusPath,
	}, nil
}

// Start runs the bootstrap once, then schedules periodic re-checks.
func (w *Worker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return fmt.Errorf("worker is already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.logger.Infof("Starting table bootstrap worker, owner %s", w.ownerID)

	if err := w.runBootstrap(ctx); err != nil {
		cancel()
		return err
	}

	schedule := cronScheduleForEnvironment(w.config.AppEnv)
	if err := w.cronJob.AddFunc(schedule, func() {
		if err := w.runBootstrap(ctx); err != nil {
			w.logger.Errorf("Scheduled table check failed: %v", err)
		}
	}); err != nil {
		cancel()
		return fmt.Errorf("failed to add cron job: %w", err)
	}
	w.cronJob.Start()

	w.isRunning = true
	w.logger.Infof("Table bootstrap worker started with schedule %q", schedule)
	return nil
}

// Stop stops the cron scheduler and cancels any in-flight bootstrap.
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.isRunning {
		return
	}

	w.cronJob.Stop()
	if w.cancel != nil {
		w.cancel()
	}
	w.isRunning = false
	w.logger.Info("Table bootstrap worker stopped")
}

func (w *Worker) runBootstrap(ctx context.Context) error {
	if err := w.lockManager.CleanupExpiredLocks(); err != nil {
		w.logger.Warnf("Failed to clean up expired locks: %v", err)
	}

	lockInfo, err := w.lockManager.AcquireLock(w.ownerID)
	if err != nil {
		// Another instance is bootstrapping; nothing to do here.
		w.logger.Infof("Skipping bootstrap: %v", err)
		return nil
	}
	defer func() {
		if err := w.lockManager.ReleaseLock(lockInfo); err != nil {
			w.logger.Warnf("Failed to release bootstrap lock: %v", err)
		}
	}()

	status := BootstrapStatus{
		Owner:       w.ownerID,
		Environment: w.config.AppEnv,
		StartedAt:   time.Now(),
		Tables:      w.config.Tables,
	}

	bootstrapErr := w.bootstrap.EnsureTables(ctx)

	status.FinishedAt = time.Now()
	status.Success = bootstrapErr == nil
	if bootstrapErr != nil {
		status.Error = bootstrapErr.Error()
	}
	if err := writeStatusFile(w.statusPath, status); err != nil {
		w.logger.Warnf("Failed to write bootstrap status: %v", err)
	}

	return bootstrapErr
}

// Status returns the outcome of the most recent bootstrap pass on this host.
func (w *Worker) Status() (*BootstrapStatus, error) {
	return readStatusFile(w.statusPath)
}

// cronScheduleForEnvironment re-checks tables aggressively in dev and
// sparingly elsewhere.
func cronScheduleForEnvironment(env string) string {
	switch env {
	case "dev", "development":
		return "@every 10m"
	default:
		return "@hourly"
	}
}
