package repository

import (
	"context"
	"errors"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/db"
	"github.com/madhangowdaa/mak-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Top10Repository struct {
	sess *db.Session
}

func NewTop10Repository(sess *db.Session) *Top10Repository {
	return &Top10Repository{sess: sess}
}

func (r *Top10Repository) col(ctx context.Context) (*mongo.Collection, error) {
	return r.sess.Collection(ctx, db.Top10)
}

func (r *Top10Repository) Get(ctx context.Context, id models.ContentID) (*models.Top10Entry, error) {
	col, err := r.col(ctx)
	if err != nil {
		return nil, err
	}
	var e models.Top10Entry
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Top10Repository) Count(ctx context.Context) (int64, error) {
	col, err := r.col(ctx)
	if err != nil {
		return 0, err
	}
	return col.CountDocuments(ctx, bson.M{})
}

// ShiftRanks adds delta to every rank in [from, to]; to <= 0 is unbounded.
func (r *Top10Repository) ShiftRanks(ctx context.Context, from, to, delta int) error {
	col, err := r.col(ctx)
	if err != nil {
		return err
	}
	bounds := bson.M{"$gte": from}
	if to > 0 {
		bounds["$lte"] = to
	}
	_, err = col.UpdateMany(ctx, bson.M{"rank": bounds}, bson.M{"$inc": bson.M{"rank": delta}})
	return err
}

func (r *Top10Repository) Insert(ctx context.Context, e *models.Top10Entry) error {
	col, err := r.col(ctx)
	if err != nil {
		return err
	}
	if _, err := col.InsertOne(ctx, e); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Duplicate("top10.insert", e.ContentID.String())
		}
		return err
	}
	return nil
}

func (r *Top10Repository) SetRank(ctx context.Context, id models.ContentID, rank int) error {
	col, err := r.col(ctx)
	if err != nil {
		return err
	}
	_, err = col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"rank": rank}})
	return err
}

func (r *Top10Repository) Delete(ctx context.Context, id models.ContentID) error {
	col, err := r.col(ctx)
	if err != nil {
		return err
	}
	_, err = col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *Top10Repository) All(ctx context.Context) ([]models.Top10Entry, error) {
	col, err := r.col(ctx)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "rank", Value: 1},
		{Key: "createdAt", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	return collect[models.Top10Entry](ctx, cur)
}
