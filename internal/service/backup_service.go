package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/madhangowdaa/mak-backend/internal/db"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/ordering"
	"github.com/madhangowdaa/mak-backend/internal/repository"
)

// BackupReport lists the files written and how many documents each holds.
// Empty collections are skipped.
type BackupReport struct {
	Dir   string         `json:"dir"`
	Files map[string]int `json:"files"`
	At    time.Time      `json:"at"`
}

// BackupService dumps every collection as a pretty-printed JSON array, one
// file per collection.
type BackupService struct {
	stores *repository.Stores
	fs     afero.Fs
	dir    string
	now    func() time.Time
}

func NewBackupService(stores *repository.Stores, fs afero.Fs, dir string) *BackupService {
	return &BackupService{stores: stores, fs: fs, dir: dir, now: time.Now}
}

func (s *BackupService) Dump(ctx context.Context) (*BackupReport, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("backup dir: %w", err)
	}
	report := &BackupReport{Dir: s.dir, Files: map[string]int{}, At: s.now().UTC()}

	everything := models.ContentFilter{IncludePlaceholders: true}
	byCreation := []ordering.SortField{{Field: "createdAt"}}
	for _, kind := range []models.Kind{models.KindMovie, models.KindSeries, models.KindHDTV} {
		recs, _, err := s.stores.Content(kind).List(ctx, everything, byCreation, 0, 0)
		if err != nil {
			return nil, err
		}
		if err := s.write(report, kind.Collection(), recs, len(recs)); err != nil {
			return nil, err
		}
	}

	entries, err := s.stores.Top10.All(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.write(report, db.Top10, entries, len(entries)); err != nil {
		return nil, err
	}

	slides, err := s.stores.Carousel.All(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.write(report, db.Carousel, slides, len(slides)); err != nil {
		return nil, err
	}

	log.Printf("[backup] %d archivos escritos en %s", len(report.Files), s.dir)
	return report, nil
}

// write replaces <dir>/<name>.json through a temp file so a crash never
// leaves a half-written dump.
func (s *BackupService) write(report *BackupReport, name string, docs any, n int) error {
	if n == 0 {
		return nil
	}
	raw, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}
	final := filepath.Join(s.dir, name+".json")
	tmp := final + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, raw, 0o644); err != nil {
		return fmt.Errorf("backup %s: %w", name, err)
	}
	if err := s.fs.Rename(tmp, final); err != nil {
		return fmt.Errorf("backup %s: %w", name, err)
	}
	report.Files[name+".json"] = n
	return nil
}
