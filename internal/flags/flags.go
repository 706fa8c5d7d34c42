// Package flags manages the trending and upcoming annotations on catalog
// records. A flag is a boolean plus an order (and, for upcoming, a release
// date) stored inside the record itself.
package flags

import (
	"context"
	"log"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
)

// DefaultOrder is used when neither the request nor the record has one.
const DefaultOrder = 999

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Store is the subset of the content repository a Set writes through.
// SetFlag returns nil, nil when the record does not exist.
type Store interface {
	models.Finder
	Insert(ctx context.Context, rec *models.ContentRecord) error
	SetFlag(ctx context.Context, id models.ContentID, kind models.FlagKind, state models.FlagState, now time.Time) (*models.ContentRecord, error)
	ListFlagged(ctx context.Context, kind models.FlagKind, limit int) ([]models.ContentRecord, error)
}

// PlaceholderBuilder produces the record inserted when an upcoming flag is
// set on an id that is not in the catalog yet.
type PlaceholderBuilder func(ctx context.Context, id models.ContentID) (*models.ContentRecord, error)

// Set is one flag over one collection.
type Set struct {
	kind        models.FlagKind
	store       Store
	placeholder PlaceholderBuilder
	now         func() time.Time
}

// NewTrending returns a flag set that only annotates existing records.
func NewTrending(store Store) *Set {
	return &Set{kind: models.FlagTrending, store: store, now: time.Now}
}

// NewUpcoming returns a flag set that creates a placeholder record when the
// id is unknown.
func NewUpcoming(store Store, build PlaceholderBuilder) *Set {
	return &Set{kind: models.FlagUpcoming, store: store, placeholder: build, now: time.Now}
}

func (s *Set) Kind() models.FlagKind { return s.kind }

// Set raises the flag on id. A nil order keeps the record's current one, or
// falls back to DefaultOrder. date is ignored by flags without a date.
func (s *Set) Set(ctx context.Context, id models.ContentID, order *int, date *time.Time) (*models.ContentRecord, error) {
	op := string(s.kind) + ".set"
	if id.IsZero() {
		return nil, apperr.Validation(op, "id is required")
	}

	rec, err := models.Resolve(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	switch {
	case rec == nil && s.placeholder != nil:
		if rec, err = s.createPlaceholder(ctx, id); err != nil {
			return nil, err
		}
	case rec == nil:
		return nil, apperr.ContentNotFound(op, id.String())
	case rec.Placeholder && s.kind != models.FlagUpcoming:
		// only upcoming may point at a record that is not released yet
		return nil, apperr.ContentNotFound(op, id.String())
	}
	id = rec.ID

	state := models.FlagState{Active: true, Order: s.resolveOrder(rec, order)}
	if s.kind.DateField() != "" {
		state.Date = date
	}

	updated, err := s.store.SetFlag(ctx, id, s.kind, state, s.now())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// deleted between the read and the write
		return nil, apperr.ContentNotFound(op, id.String())
	}
	return updated, nil
}

func (s *Set) resolveOrder(rec *models.ContentRecord, order *int) *int {
	if order != nil {
		v := *order
		return &v
	}
	// trending keeps the order it had; upcoming always resets
	if s.kind == models.FlagTrending {
		if cur := rec.Flag(s.kind).Order; cur != nil {
			v := *cur
			return &v
		}
	}
	v := DefaultOrder
	return &v
}

func (s *Set) createPlaceholder(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
	rec, err := s.placeholder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		if apperr.IsDuplicate(err) {
			// lost a race with another writer; use theirs
			return s.store.FindByID(ctx, id)
		}
		return nil, err
	}
	log.Printf("[%s] placeholder creado %s", s.kind, id.Key())
	return rec, nil
}

// Clear lowers the flag and returns the record as it is afterwards.
func (s *Set) Clear(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
	rec, err := models.Resolve(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		id = rec.ID
	}
	updated, err := s.store.SetFlag(ctx, id, s.kind, models.FlagState{}, s.now())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound(string(s.kind)+".clear", id.String())
	}
	return updated, nil
}

// ListActive returns flagged records by order asc, clicks desc, updatedAt desc.
// Placeholders are listed only by upcoming.
func (s *Set) ListActive(ctx context.Context, limit int) ([]models.ContentRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return s.store.ListFlagged(ctx, s.kind, limit)
}
