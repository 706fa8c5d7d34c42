package repository

import (
	"context"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/db"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/ordering"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentStore is what the services need from a content collection.
// ContentRepository implements it over Mongo and memstore.ContentStore in
// memory.
type ContentStore interface {
	OrderBounds(ctx context.Context) (min, max int, ok bool, err error)
	FindByID(ctx context.Context, id models.ContentID) (*models.ContentRecord, error)
	FindByTMDBID(ctx context.Context, tmdbID int) (*models.ContentRecord, error)
	FindByTitleKey(ctx context.Context, key string) (*models.ContentRecord, error)
	FindMany(ctx context.Context, ids []models.ContentID) ([]models.ContentRecord, error)
	Insert(ctx context.Context, rec *models.ContentRecord) error
	Update(ctx context.Context, id models.ContentID, patch *models.ContentPatch) (*models.ContentRecord, error)
	Delete(ctx context.Context, id models.ContentID) (*models.ContentRecord, error)
	IncrementClicks(ctx context.Context, id models.ContentID) (*models.ContentRecord, error)
	List(ctx context.Context, f models.ContentFilter, sortBy []ordering.SortField, skip, limit int64) ([]models.ContentRecord, int64, error)
	Count(ctx context.Context, f models.ContentFilter) (int64, error)
	GenreCounts(ctx context.Context) ([]models.GenreCount, error)
	ReplaceSeasons(ctx context.Context, id models.ContentID, revision int64, seasons []models.Season, now time.Time) (*models.ContentRecord, error)
	SetFlag(ctx context.Context, id models.ContentID, kind models.FlagKind, state models.FlagState, now time.Time) (*models.ContentRecord, error)
	ListFlagged(ctx context.Context, kind models.FlagKind, limit int) ([]models.ContentRecord, error)
	StaleExternal(ctx context.Context, before time.Time, limit int) ([]models.ContentRecord, error)
}

// RankStore backs the top-10 list.
type RankStore interface {
	Get(ctx context.Context, id models.ContentID) (*models.Top10Entry, error)
	Count(ctx context.Context) (int64, error)
	ShiftRanks(ctx context.Context, from, to, delta int) error
	Insert(ctx context.Context, e *models.Top10Entry) error
	SetRank(ctx context.Context, id models.ContentID, rank int) error
	Delete(ctx context.Context, id models.ContentID) error
	All(ctx context.Context) ([]models.Top10Entry, error)
}

type CarouselStore interface {
	OrderBounds(ctx context.Context) (min, max int, ok bool, err error)
	Insert(ctx context.Context, slide *models.CarouselSlide) error
	ListActive(ctx context.Context) ([]models.CarouselSlide, error)
	All(ctx context.Context) ([]models.CarouselSlide, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.CarouselSlide, error)
}

// Stores groups every collection the app uses.
type Stores struct {
	Movies   ContentStore
	Series   ContentStore
	HDTV     ContentStore
	Top10    RankStore
	Carousel CarouselStore
}

func (s *Stores) Content(kind models.Kind) ContentStore {
	switch kind {
	case models.KindSeries:
		return s.Series
	case models.KindHDTV:
		return s.HDTV
	default:
		return s.Movies
	}
}

// NewMongoStores wires every repository to one session.
func NewMongoStores(sess *db.Session) *Stores {
	return &Stores{
		Movies:   NewContentRepository(sess, models.KindMovie),
		Series:   NewContentRepository(sess, models.KindSeries),
		HDTV:     NewContentRepository(sess, models.KindHDTV),
		Top10:    NewTop10Repository(sess),
		Carousel: NewCarouselRepository(sess),
	}
}
