package jobs

import (
	"context"
	"log"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/service"
)

const (
	RepairTop10Name     = "repair-top10"
	RefreshMetadataName = "refresh-metadata"

	// StaleAfter is how old TMDB-sourced metadata must be before a refresh.
	StaleAfter   = 7 * 24 * time.Hour
	RefreshBatch = 200
)

// RepairTop10 drops orphaned ranks and renumbers the list.
type RepairTop10 struct {
	Top10 *service.Top10Service
}

func (RepairTop10) Name() string { return RepairTop10Name }

func (j RepairTop10) Run(ctx context.Context) error {
	report, err := j.Top10.Repair(ctx)
	if err != nil {
		return err
	}
	if len(report.Orphans) > 0 || report.Renumbered > 0 {
		log.Printf("[jobs] top10: %d huérfanos eliminados, %d renumerados", len(report.Orphans), report.Renumbered)
	}
	return nil
}

// RefreshMetadata re-fetches TMDB descriptors older than StaleAfter.
type RefreshMetadata struct {
	Metadata *service.MetadataService
	Batch    int
}

func (RefreshMetadata) Name() string { return RefreshMetadataName }

func (j RefreshMetadata) Run(ctx context.Context) error {
	batch := j.Batch
	if batch <= 0 {
		batch = RefreshBatch
	}
	report, err := j.Metadata.RefreshStale(ctx, StaleAfter, batch)
	if err != nil {
		return err
	}
	log.Printf("[jobs] metadata: revisados=%d actualizados=%d fallidos=%d", report.Checked, report.Refreshed, report.Failed)
	return nil
}

const BackupName = "backup"

// Backup dumps every collection to the backup directory.
type Backup struct {
	Backup *service.BackupService
}

func (Backup) Name() string { return BackupName }

func (j Backup) Run(ctx context.Context) error {
	_, err := j.Backup.Dump(ctx)
	return err
}
