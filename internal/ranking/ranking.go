// Package ranking maintains a contiguous 1..N rank assignment (the top-10
// list). Every mutation shifts neighbouring entries so ranks never have gaps
// or duplicates once it returns.
//
// The shifts and the final write are separate single-document operations;
// there is no transaction around them. A crash in between can leave a gap
// or a duplicated rank. Repair renumbers the list and is safe to run at any
// time.
package ranking

import (
	"context"
	"log"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
)

// Store persists entries. Get returns nil, nil for an absent id.
// ShiftRanks adds delta to every rank in [from, to]; to <= 0 means no upper
// bound.
type Store interface {
	Get(ctx context.Context, id models.ContentID) (*models.Top10Entry, error)
	Count(ctx context.Context) (int64, error)
	ShiftRanks(ctx context.Context, from, to, delta int) error
	Insert(ctx context.Context, e *models.Top10Entry) error
	SetRank(ctx context.Context, id models.ContentID, rank int) error
	Delete(ctx context.Context, id models.ContentID) error
	All(ctx context.Context) ([]models.Top10Entry, error)
}

// Catalog answers whether a ranked id still has a content record.
type Catalog interface {
	models.Finder
}

type List struct {
	store   Store
	catalog Catalog
	now     func() time.Time
}

func NewList(store Store, catalog Catalog) *List {
	return &List{store: store, catalog: catalog, now: time.Now}
}

// Insert places id at rank, pushing entries at or below it down by one.
// A rank past the end is clamped to N+1. The entry is keyed by the
// record's own id, which differs from id for an upgraded custom record.
// Placeholders cannot be ranked.
func (l *List) Insert(ctx context.Context, id models.ContentID, rank int) (*models.Top10Entry, error) {
	if rank < 1 {
		return nil, apperr.Validation("top10.insert", "rank must be >= 1")
	}
	rec, err := models.Resolve(ctx, l.catalog, id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Placeholder {
		return nil, apperr.ContentNotFound("top10.insert", id.String())
	}
	id = rec.ID
	existing, err := l.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Duplicate("top10.insert", id.String())
	}

	n, err := l.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	if int64(rank) > n+1 {
		rank = int(n + 1)
	}

	if err := l.store.ShiftRanks(ctx, rank, 0, 1); err != nil {
		return nil, err
	}
	entry := &models.Top10Entry{ContentID: id, Rank: rank, CreatedAt: l.now()}
	if err := l.store.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Move changes the rank of id, shifting the entries in between by one.
// A rank past the end is clamped to N.
func (l *List) Move(ctx context.Context, id models.ContentID, newRank int) (*models.Top10Entry, error) {
	if newRank < 1 {
		return nil, apperr.Validation("top10.move", "rank must be >= 1")
	}
	entry, err := l.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperr.NotInList("top10.move", id.String())
	}
	n, err := l.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	if int64(newRank) > n {
		newRank = int(n)
	}

	oldRank := entry.Rank
	switch {
	case newRank == oldRank:
		return entry, nil
	case newRank < oldRank:
		err = l.store.ShiftRanks(ctx, newRank, oldRank-1, 1)
	default:
		err = l.store.ShiftRanks(ctx, oldRank+1, newRank, -1)
	}
	if err != nil {
		return nil, err
	}
	if err := l.store.SetRank(ctx, id, newRank); err != nil {
		return nil, err
	}
	entry.Rank = newRank
	return entry, nil
}

// Remove deletes id and closes the gap it leaves.
func (l *List) Remove(ctx context.Context, id models.ContentID) (*models.Top10Entry, error) {
	entry, err := l.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperr.NotInList("top10.remove", id.String())
	}
	if err := l.store.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := l.store.ShiftRanks(ctx, entry.Rank+1, 0, -1); err != nil {
		return entry, err
	}
	return entry, nil
}

// Entries returns the list ordered by rank.
func (l *List) Entries(ctx context.Context) ([]models.Top10Entry, error) {
	return l.store.All(ctx)
}

// RepairReport says what Repair changed.
type RepairReport struct {
	Orphans    []models.ContentID `json:"orphans"`
	Renumbered int                `json:"renumbered"`
}

// Repair drops entries whose content record is gone (or is only an upcoming
// placeholder) and renumbers the rest
// to 1..N in their current order. Running it on a healthy list is a no-op.
func (l *List) Repair(ctx context.Context) (*RepairReport, error) {
	entries, err := l.store.All(ctx)
	if err != nil {
		return nil, err
	}
	report := &RepairReport{Orphans: []models.ContentID{}}

	rank := 0
	for _, e := range entries {
		rec, err := l.catalog.FindByID(ctx, e.ContentID)
		if err != nil {
			return report, err
		}
		if rec == nil || rec.Placeholder {
			log.Printf("[top10] repair: eliminando entrada huérfana %s (rank %d)", e.ContentID.Key(), e.Rank)
			if err := l.store.Delete(ctx, e.ContentID); err != nil {
				return report, err
			}
			report.Orphans = append(report.Orphans, e.ContentID)
			continue
		}
		rank++
		if e.Rank != rank {
			if err := l.store.SetRank(ctx, e.ContentID, rank); err != nil {
				return report, err
			}
			report.Renumbered++
		}
	}
	if len(report.Orphans) > 0 || report.Renumbered > 0 {
		log.Printf("[top10] repair: %d huérfanos eliminados, %d ranks renumerados", len(report.Orphans), report.Renumbered)
	}
	return report, nil
}
