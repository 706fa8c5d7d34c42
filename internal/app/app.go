// Package app builds the storage, metadata and service graph shared by the
// API server and the worker.
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/madhangowdaa/mak-backend/internal/cache"
	"github.com/madhangowdaa/mak-backend/internal/config"
	"github.com/madhangowdaa/mak-backend/internal/db"
	"github.com/madhangowdaa/mak-backend/internal/flags"
	"github.com/madhangowdaa/mak-backend/internal/metadata"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/repository"
	"github.com/madhangowdaa/mak-backend/internal/repository/memstore"
	"github.com/madhangowdaa/mak-backend/internal/service"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// SetupLogging duplica el logger estándar a un archivo rotativo si path no
// está vacío. Al cerrarlo se vuelve a loguear solo a stderr.
func SetupLogging(path string) io.Closer {
	if path == "" {
		return closerFunc(func() error { return nil })
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, lj))
	log.Printf("[log] escribiendo en %s", path)
	return closerFunc(func() error {
		log.SetOutput(os.Stderr)
		return lj.Close()
	})
}

// App junta todas las dependencias de larga vida.
type App struct {
	Session *db.Session // nil with in-memory storage
	Cache   *cache.Cache
	Stores  *repository.Stores
	Fetcher metadata.Fetcher

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
}

func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	switch cfg.Storage {
	case "memory":
		log.Println("[app] usando almacenamiento en memoria; los datos se pierden al salir")
		a.Stores = memstore.NewStores()
	case "mongo":
		a.Session = db.NewSession(cfg.MongoURI, cfg.MongoDB)
		if err := a.Session.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		a.Stores = repository.NewMongoStores(a.Session)
	default:
		return nil, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}

	c, err := cache.New(ctx, cfg.RedisAddr, cfg.RedisPass)
	if err != nil {
		// el cache es opcional, se sigue sin él
		log.Printf("[app] redis no disponible, se continúa sin cache: %v", err)
	}
	a.Cache = c

	if cfg.TMDBAPIKey == "" {
		log.Println("[app] TMDB_API_KEY vacío; las consultas a TMDB van a fallar")
	}
	tmdb := metadata.NewTMDBClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL, cfg.MetadataTimeout,
		metadata.WithRate(cfg.TMDBRatePerSec))
	a.Fetcher = metadata.NewCachedFetcher(tmdb, a.Cache, cfg.MetadataCacheTTL)

	a.Movies = service.NewCatalogService(models.KindMovie, a.Stores.Movies, a.Fetcher)
	a.Series = service.NewCatalogService(models.KindSeries, a.Stores.Series, a.Fetcher)
	a.HDTV = service.NewCatalogService(models.KindHDTV, a.Stores.HDTV, a.Fetcher)
	a.Top10 = service.NewTop10Service(a.Stores.Top10, a.Stores.Movies)
	a.Trending = service.NewTrendingSet(a.Stores.Movies)
	a.Upcoming = service.NewUpcomingSet(a.Stores.Movies, a.Fetcher)
	a.Carousel = service.NewCarouselService(a.Stores.Carousel, a.Stores.Movies)
	a.Browse = service.NewBrowseService(a.Stores, a.Cache)
	a.Metadata = service.NewMetadataService(a.Fetcher, a.Stores)
	a.Backup = service.NewBackupService(a.Stores, afero.NewOsFs(), cfg.BackupDir)

	if a.Auth, err = service.NewAuthService(cfg.AdminSecret, cfg.JWTSecret); err != nil {
		return nil, err
	}
	return a, nil
}

// Close libera el cache y el cliente Mongo.
func (a *App) Close(ctx context.Context) {
	if err := a.Cache.Close(); err != nil {
		log.Printf("[app] error cerrando redis: %v", err)
	}
	if a.Session != nil {
		if err := a.Session.Close(ctx); err != nil {
			log.Printf("[app] error cerrando mongo: %v", err)
		}
	}
}
