package db

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// nombres de colecciones
const (
	Movies   = "movies"
	Series   = "series"
	HDTV     = "hdtv"
	Top10    = "top10_movies"
	Carousel = "carousel"
)

// Session es dueña del cliente Mongo. Se arma una vez en main y la comparten
// todos los repos. La conexión se abre en el primer uso; EnsureConnected se
// puede llamar las veces que haga falta.
type Session struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

func NewSession(uri, dbName string) *Session {
	return &Session{uri: uri, dbName: dbName}
}

// EnsureConnected conecta y hace ping si todavía no hay cliente.
func (s *Session) EnsureConnected(ctx context.Context) (*mongo.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	s.client = client
	s.db = client.Database(s.dbName)
	log.Printf("[mongo] conectado, DB=%s\n", s.dbName)
	return s.db, nil
}

// Collection devuelve la colección, conectando antes si hace falta.
func (s *Session) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := s.EnsureConnected(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// EnsureIndexes crea los índices secundarios que usan los repos.
// La unicidad de _id es implícita.
func (s *Session) EnsureIndexes(ctx context.Context) error {
	db, err := s.EnsureConnected(ctx)
	if err != nil {
		return err
	}

	content := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tmdbID", Value: 1}}, Options: options.Index().SetSparse(true)},
		{Keys: bson.D{{Key: "titleKey", Value: 1}}},
		{Keys: bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "genres", Value: 1}}},
		{Keys: bson.D{{Key: "trending.isTrending", Value: 1}, {Key: "trending.trendingOrder", Value: 1}}},
		{Keys: bson.D{{Key: "upcoming.isUpcoming", Value: 1}, {Key: "upcoming.upcomingOrder", Value: 1}}},
	}
	for _, name := range []string{Movies, Series, HDTV} {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, content); err != nil {
			return err
		}
	}

	if _, err := db.Collection(Top10).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "rank", Value: 1}},
	}); err != nil {
		return err
	}
	_, err = db.Collection(Carousel).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "order", Value: 1}},
	})
	return err
}

func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client, s.db = nil, nil
	return err
}

// Ping conecta si hace falta y verifica que el primario responda.
func (s *Session) Ping(ctx context.Context) error {
	db, err := s.EnsureConnected(ctx)
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, readpref.Primary())
}
