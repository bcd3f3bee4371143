package janitor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// UploadJanitor removes stale files from the upload directory. Requests
// delete their own files; the janitor covers whatever a crashed or aborted
// request left behind.
type UploadJanitor struct {
	dir      string
	maxAge   time.Duration
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger

	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewUploadJanitor creates a new upload janitor
func NewUploadJanitor(dir string, maxAge, interval time.Duration, logger *zap.Logger) *UploadJanitor {
	return &UploadJanitor{
		dir:      dir,
		maxAge:   maxAge,
		interval: interval,
		now:      time.Now,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the background purge loop
func (j *UploadJanitor) Start() {
	go j.purgeLoop()
	j.logger.Info("Upload janitor started",
		zap.String("dir", j.dir),
		zap.Duration("maxAge", j.maxAge),
		zap.Duration("interval", j.interval))
}

// Stop ends the loop and waits for an in-progress sweep to finish
func (j *UploadJanitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChan)
		<-j.done
		j.logger.Info("Upload janitor stopped")
	})
}

func (j *UploadJanitor) purgeLoop() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.runPurge()

	for {
		select {
		case <-j.stopChan:
			return
		case <-ticker.C:
			j.runPurge()
		}
	}
}

func (j *UploadJanitor) runPurge() {
	removed, err := j.Purge()
	if err != nil {
		j.logger.Error("Failed to purge uploads", zap.Error(err))
		return
	}
	if removed > 0 {
		j.logger.Info("Purged stale uploads", zap.Int("removed", removed))
	}
}

// Purge deletes regular files in the upload directory whose modification
// time is older than maxAge, returning how many were removed. Subdirectories
// are left alone.
func (j *UploadJanitor) Purge() (int, error) {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to list %s: %w", j.dir, err)
	}

	cutoff := j.now().Add(-j.maxAge)
	removed := 0
	var errs []error

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			errs = append(errs, err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(j.dir, entry.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", path, err))
			continue
		}
		removed++
	}

	return removed, errors.Join(errs...)
}
