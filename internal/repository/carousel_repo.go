package repository

import (
	"context"
	"errors"

	"github.com/madhangowdaa/mak-backend/internal/db"
	"github.com/madhangowdaa/mak-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CarouselRepository struct {
	sess *db.Session
}

func NewCarouselRepository(sess *db.Session) *CarouselRepository {
	return &CarouselRepository{sess: sess}
}

func (r *CarouselRepository) col(ctx context.Context) (*mongo.Collection, error) {
	return r.sess.Collection(ctx, db.Carousel)
}

func (r *CarouselRepository) OrderBounds(ctx context.Context) (int, int, bool, error) {
	col, err := r.col(ctx)
	if err != nil {
		return 0, 0, false, err
	}
	var lo, hi models.CarouselSlide
	err = col.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "order", Value: 1}})).Decode(&lo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}
	err = col.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})).Decode(&hi)
	if err != nil {
		return 0, 0, false, err
	}
	return lo.Order, hi.Order, true, nil
}

func (r *CarouselRepository) Insert(ctx context.Context, slide *models.CarouselSlide) error {
	col, err := r.col(ctx)
	if err != nil {
		return err
	}
	if slide.ID.IsZero() {
		slide.ID = primitive.NewObjectID()
	}
	_, err = col.InsertOne(ctx, slide)
	return err
}

func (r *CarouselRepository) ListActive(ctx context.Context) ([]models.CarouselSlide, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

// All includes inactive slides.
func (r *CarouselRepository) All(ctx context.Context) ([]models.CarouselSlide, error) {
	return r.find(ctx, bson.M{})
}

func (r *CarouselRepository) find(ctx context.Context, filter bson.M) ([]models.CarouselSlide, error) {
	col, err := r.col(ctx)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}})
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return collect[models.CarouselSlide](ctx, cur)
}

func (r *CarouselRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.CarouselSlide, error) {
	col, err := r.col(ctx)
	if err != nil {
		return nil, err
	}
	var s models.CarouselSlide
	err = col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
