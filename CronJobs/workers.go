package CronJobs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-co-op/gocron"
)

// ExportJanitor removes generated export documents once they are past their
// retention window.
type ExportJanitor struct {
	Dir    string
	MaxAge time.Duration
}

// NewExportJanitor creates a janitor for the given exports directory.
func NewExportJanitor(dir string) *ExportJanitor {
	return &ExportJanitor{
		Dir:    dir,
		MaxAge: 24 * time.Hour,
	}
}

// StartCleanupCron starts the cron job that sweeps stale export files.
func (ej *ExportJanitor) StartCleanupCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Hour().Do(func() {
		log.Println("Running export cleanup sweep...")
		if err := ej.Sweep(); err != nil {
			log.Printf("Error sweeping exports: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Export cleanup cron job started")

	return scheduler
}

// Sweep deletes export files older than the retention window.
func (ej *ExportJanitor) Sweep() error {
	entries, err := os.ReadDir(ej.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read exports directory: %w", err)
	}

	cutoff := time.Now().Add(-ej.MaxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Printf("Failed to stat export %s: %v", entry.Name(), err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(ej.Dir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Printf("Failed to remove export %s: %v", path, err)
			continue
		}
		log.Printf("Removed stale export %s", path)
	}
	return nil
}
