package memstore

import (
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/repository"
)

// NewStores returns an empty in-memory catalog.
func NewStores() *repository.Stores {
	return &repository.Stores{
		Movies:   NewContentStore(models.KindMovie),
		Series:   NewContentStore(models.KindSeries),
		HDTV:     NewContentStore(models.KindHDTV),
		Top10:    NewRankStore(),
		Carousel: NewCarouselStore(),
	}
}
