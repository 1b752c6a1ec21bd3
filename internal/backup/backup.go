package backup

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Job copies the database file into a backup directory on a cron schedule
// and prunes copies older than the retention window. It is a best-effort
// maintenance task; failures are logged and otherwise ignored.
type Job struct {
	source    string
	dir       string
	retention time.Duration
	cron      *cron.Cron
}

func NewJob(source, dir string, retentionDays int) *Job {
	return &Job{
		source:    source,
		dir:       dir,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		cron:      cron.New(),
	}
}

func (j *Job) Start(schedule string) error {
	if _, err := j.cron.AddFunc(schedule, j.Run); err != nil {
		return err
	}
	j.cron.Start()
	log.Printf("backup job scheduled (%s): %s -> %s", schedule, j.source, j.dir)
	return nil
}

func (j *Job) Stop() {
	j.cron.Stop()
}

// Run performs one backup cycle: copy then prune.
func (j *Job) Run() {
	dest, err := j.Copy()
	if err != nil {
		log.Printf("backup copy failed: %v", err)
		return
	}
	log.Printf("backup written: %s", dest)

	removed, err := j.Prune(time.Now())
	if err != nil {
		log.Printf("backup prune failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("pruned %d expired backups", removed)
	}
}

func (j *Job) Copy() (string, error) {
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return "", err
	}

	src, err := os.Open(j.source)
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("spotless-%s.db", time.Now().Format("20060102-150405"))
	destPath := filepath.Join(j.dir, name)

	dest, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		return "", err
	}
	return destPath, nil
}

// Prune removes backup files whose modification time is older than the
// retention window relative to now.
func (j *Job) Prune(now time.Time) (int, error) {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := now.Add(-j.retention)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "spotless-") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(j.dir, e.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
