package service

import (
	"context"
	"strings"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/ordering"
	"github.com/madhangowdaa/mak-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CarouselService struct {
	slides repository.CarouselStore
	movies repository.ContentStore
}

func NewCarouselService(slides repository.CarouselStore, movies repository.ContentStore) *CarouselService {
	return &CarouselService{slides: slides, movies: movies}
}

func (s *CarouselService) Active(ctx context.Context) ([]models.CarouselSlide, error) {
	return s.slides.ListActive(ctx)
}

// Add appends a slide (or prepends it with position f). A slide tied to a
// movie takes the movie's title when none is given.
func (s *CarouselService) Add(ctx context.Context, req models.CarouselCreateRequest) (*models.CarouselSlide, error) {
	const op = "carousel.add"
	if strings.TrimSpace(req.ImagePath) == "" {
		return nil, apperr.Validation(op, "imagePath is required")
	}
	pos, err := ordering.ParsePosition(req.Position)
	if err != nil {
		return nil, apperr.Validation(op, err.Error())
	}

	slide := &models.CarouselSlide{
		Title:     strings.TrimSpace(req.Title),
		ImagePath: strings.TrimSpace(req.ImagePath),
		ImageType: req.ImageType,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if slide.ImageType == "" {
		slide.ImageType = "backdrop"
	}
	if req.TMDBID != nil {
		rec, err := s.movies.FindByTMDBID(ctx, *req.TMDBID)
		if err != nil {
			return nil, err
		}
		if rec == nil || rec.Placeholder {
			return nil, apperr.ContentNotFound(op, models.ExternalID(*req.TMDBID).String())
		}
		id := rec.ID
		slide.ContentID = &id
		if slide.Title == "" {
			slide.Title = rec.Title
		}
	}

	if slide.Order, err = ordering.NextOrder(ctx, s.slides, pos); err != nil {
		return nil, err
	}
	if err := s.slides.Insert(ctx, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *CarouselService) Delete(ctx context.Context, rawID string) (*models.CarouselSlide, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, apperr.Validation("carousel.delete", "invalid slide id")
	}
	slide, err := s.slides.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if slide == nil {
		return nil, apperr.NotFound("carousel.delete", rawID)
	}
	return slide, nil
}
