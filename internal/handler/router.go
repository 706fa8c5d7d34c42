package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/madhangowdaa/mak-backend/internal/flags"
	"github.com/madhangowdaa/mak-backend/internal/live"
	"github.com/madhangowdaa/mak-backend/internal/service"
)

// Deps es todo lo que necesitan los handlers.
type Deps struct {
	Movies   *service.CatalogService
	Series   *service.CatalogService
	HDTV     *service.CatalogService
	Top10    *service.Top10Service
	Trending *flags.Set
	Upcoming *flags.Set
	Carousel *service.CarouselService
	Browse   *service.BrowseService
	Metadata *service.MetadataService
	Backup   *service.BackupService
	Auth     *service.AuthService
	DB       Pinger
	Live     *live.Hub

	// CORSOrigins vacío = cualquier origen.
	CORSOrigins []string
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Secret"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(corsOptions(d.CORSOrigins)))

	admin := AdminOnly(d.Auth)
	authH := NewAuthHandler(d.Auth)
	browseH := NewBrowseHandler(d.Browse)
	tmdbH := NewTMDBHandler(d.Metadata)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", Health(d.DB))
	r.Post("/auth/token", authH.Token)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/movies", NewContentHandler(d.Movies, d.Browse, d.Live).Routes(admin))
		r.Mount("/series", NewContentHandler(d.Series, d.Browse, d.Live).Routes(admin))
		r.Mount("/hdtv", NewContentHandler(d.HDTV, d.Browse, d.Live).Routes(admin))

		r.Mount("/top10", NewTop10Handler(d.Top10, d.Live).Routes(admin))
		r.Mount("/trending", NewFlagHandler(d.Trending, d.Live).Routes(admin))
		r.Mount("/upcoming", NewFlagHandler(d.Upcoming, d.Live).Routes(admin))
		r.Mount("/carousel", NewCarouselHandler(d.Carousel).Routes(admin))

		r.Get("/search", browseH.Search)
		r.Get("/stats", browseH.FooterStats)
		r.Get("/stats/footer", browseH.FooterStats)
		r.Get("/genres", browseH.Genres)
		r.Get("/genres/{genre}", browseH.MoviesByGenre)
		r.Get("/genres/{genre}/preview", browseH.GenrePreview)

		r.Get("/tmdb/popular", tmdbH.Popular)
		r.Get("/popularmovies", tmdbH.Popular)
		r.Get("/tmdb/{kind}/{id}", tmdbH.Lookup)

		if d.Live != nil {
			r.Get("/live", LiveFeed(d.Live))
		}

		if d.Backup != nil {
			r.With(admin).Post("/backup", NewBackupHandler(d.Backup).Dump)
		}
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	return r
}
