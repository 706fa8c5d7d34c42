package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/madhangowdaa/mak-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CarouselStore struct {
	mu     sync.Mutex
	slides []models.CarouselSlide
}

func NewCarouselStore() *CarouselStore { return &CarouselStore{} }

func (s *CarouselStore) OrderBounds(ctx context.Context) (int, int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) == 0 {
		return 0, 0, false, nil
	}
	lo, hi := s.slides[0].Order, s.slides[0].Order
	for _, sl := range s.slides[1:] {
		lo = min(lo, sl.Order)
		hi = max(hi, sl.Order)
	}
	return lo, hi, true, nil
}

func (s *CarouselStore) Insert(ctx context.Context, slide *models.CarouselSlide) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slide.ID.IsZero() {
		slide.ID = primitive.NewObjectID()
	}
	s.slides = append(s.slides, *slide)
	return nil
}

func (s *CarouselStore) ListActive(ctx context.Context) ([]models.CarouselSlide, error) {
	return s.list(true), nil
}

func (s *CarouselStore) All(ctx context.Context) ([]models.CarouselSlide, error) {
	return s.list(false), nil
}

func (s *CarouselStore) list(activeOnly bool) []models.CarouselSlide {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.CarouselSlide{}
	for _, sl := range s.slides {
		if sl.IsActive || !activeOnly {
			out = append(out, sl)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (s *CarouselStore) Delete(ctx context.Context, id primitive.ObjectID) (*models.CarouselSlide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sl := range s.slides {
		if sl.ID == id {
			s.slides = append(s.slides[:i], s.slides[i+1:]...)
			return &sl, nil
		}
	}
	return nil, nil
}
