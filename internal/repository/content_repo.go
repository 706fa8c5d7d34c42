// internal/repository/content_repo.go
package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/db"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/ordering"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContentRepository stores one kind of record (movies, series or hdtv).
// Lookups of a missing document return nil, nil.
type ContentRepository struct {
	sess *db.Session
	kind models.Kind
}

func NewContentRepository(sess *db.Session, kind models.Kind) *ContentRepository {
	return &ContentRepository{sess: sess, kind: kind}
}

func (r *ContentRepository) col(ctx context.Context) (*mongo.Collection, error) {
	return r.sess.Collection(ctx, r.kind.Collection())
}

var notPlaceholder = bson.E{Key: "placeholder", Value: bson.M{"$ne": true}}

func (r *ContentRepository) OrderBounds(ctx context.Context) (int, int, bool, error) {
	col, err := r.col(ctx)
	if err != nil {
		return 0, 0, false, err
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{notPlaceholder}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "lo", Value: bson.M{"$min": "$order"}},
			{Key: "hi", Value: bson.M{"$max": "$order"}},
		}}},
	}
	cur, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, false, err
	}
	defer cur.Close(ctx)

	var out []struct {
		Lo int `bson:"lo"`
		Hi int `bson:"hi"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, 0, false, err
	}
	if len(out) == 0 {
		return 0, 0, false, nil
	}
	return out[0].Lo, out[0].Hi, true, nil
}

func (r *ContentRepository) findOne(ctx context.Context, filter any) (*models.ContentRecord, error) {
	col, err := r.col(ctx)
	if err != nil {
		return nil, err
	}
	var rec models.ContentRecord
	err = col.FindOne(ctx, filter).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ContentRepository) FindByID(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByTMDBID matches either the _id of an external record or the tmdbID
// of an upgraded custom one.
func (r *ContentRepository) FindByTMDBID(ctx context.Context, tmdbID int) (*models.ContentRecord, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"_id": models.ExternalID(tmdbID)},
		bson.M{"tmdbID": tmdbID},
	}})
}

func (r *ContentRepository) FindByTitleKey(ctx context.Context, key string) (*models.ContentRecord, error) {
	return r.findOne(ctx, bson.M{"titleKey": key})
}

func (r *ContentRepository) FindMany(ctx context.Context, ids []models.ContentID) ([]models.ContentRecord, error) {
	if len(ids) == 0 {
		return []models.ContentRecord{}, nil
	}
	col, err := r.col(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	return collect[models.ContentRecord](ctx, cur)
}

func (r *ContentRepository) Insert(ctx context.Context, rec *models.ContentRecord) error {
	col, err := r.col(ctx)
	if err != nil {
		return err
	}
	if _, err := col.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Duplicate(string(r.kind)+".insert", rec.ID.String())
		}
		return err
	}
	return nil
}

func patchUpdate(p *models.ContentPatch) bson.M {
	set := bson.M{}
	unset := bson.M{}
	if p.Descriptor != nil {
		set["title"] = p.Descriptor.Title
		set["overview"] = p.Descriptor.Overview
		set["poster_path"] = p.Descriptor.PosterPath
		set["release_date"] = p.Descriptor.ReleaseDate
		set["genres"] = p.Descriptor.Genres
		set["original_language"] = p.Descriptor.Language
		set["titleKey"] = models.TitleKey(p.Descriptor.Title)
	}
	if p.TMDBID.Set {
		if p.TMDBID.Null {
			unset["tmdbID"] = ""
		} else {
			set["tmdbID"] = p.TMDBID.Value
		}
	}
	if p.IsCustom != nil {
		set["isCustom"] = *p.IsCustom
	}
	if p.FileLink.Set {
		if p.FileLink.Null {
			unset["fileLink"] = ""
		} else {
			set["fileLink"] = p.FileLink.Value
		}
	}
	if p.Order != nil {
		set["order"] = *p.Order
	}
	if p.Pinned != nil {
		set["pinned"] = *p.Pinned
	}
	if p.Placeholder != nil {
		set["placeholder"] = *p.Placeholder
	}
	if !p.UpdatedAt.IsZero() {
		set["updatedAt"] = p.UpdatedAt
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

// Update applies patch with $set/$unset and returns the new document.
func (r *ContentRepository) Update(ctx context.Context, id models.ContentID, patch *models.ContentPatch) (*models.ContentRecord, error) {
	update := patchUpdate(patch)
	if len(update) == 0 {
		return r.FindByID(ctx, id)
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, update)
}

func (r *ContentRepository) findOneAndUpdate(ctx context.Context, filter, update any) (*models.ContentRecord, error) {
	col, err := r.col(ctx)
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var rec models.ContentRecord
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ContentRepository) Delete(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
	col, err := r.col(ctx)
	if err != nil {
		return nil, err
	}
	var rec models.ContentRecord
	err = col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// IncrementClicks is a single $inc; concurrent clicks are never lost.
func (r *ContentRepository) IncrementClicks(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"clicks": 1}})
}

func filterDoc(f models.ContentFilter) bson.D {
	filter := bson.D{}
	if !f.IncludePlaceholders {
		filter = append(filter, notPlaceholder)
	}
	if f.TitleContains != "" {
		filter = append(filter, bson.E{Key: "title", Value: bson.M{
			"$regex": regexp.QuoteMeta(f.TitleContains), "$options": "i",
		}})
	}
	if f.Genre != "" {
		// genres is an array; this matches any element
		filter = append(filter, bson.E{Key: "genres", Value: bson.M{
			"$regex": "^" + regexp.QuoteMeta(f.Genre) + "$", "$options": "i",
		}})
	}
	if f.Language != "" {
		filter = append(filter, bson.E{Key: "original_language", Value: f.Language})
	}
	return filter
}

func sortDoc(fields []ordering.SortField) bson.D {
	out := make(bson.D, 0, len(fields)+1)
	for _, f := range fields {
		dir := 1
		if f.Desc {
			dir = -1
		}
		out = append(out, bson.E{Key: f.Field, Value: dir})
	}
	return append(out, bson.E{Key: "_id", Value: 1})
}

func (r *ContentRepository) List(ctx context.Context, f models.ContentFilter, sortBy []ordering.SortField, skip, limit int64) ([]models.ContentRecord, int64, error) {
	col, err := r.col(ctx)
	if err != nil {
		return nil, 0, err
	}
	filter := filterDoc(f)

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(sortDoc(sortBy)).SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	out, err := collect[models.ContentRecord](ctx, cur)
	return out, total, err
}

func (r *ContentRepository) Count(ctx context.Context, f models.ContentFilter) (int64, error) {
	col, err := r.col(ctx)
	if err != nil {
		return 0, err
	}
	return col.CountDocuments(ctx, filterDoc(f))
}

func (r *ContentRepository) GenreCounts(ctx context.Context) ([]models.GenreCount, error) {
	col, err := r.col(ctx)
	if err != nil {
		return nil, err
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{notPlaceholder}}},
		{{Key: "$unwind", Value: "$genres"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genres"},
			{Key: "count", Value: bson.M{"$sum": 1}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cur, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return collect[models.GenreCount](ctx, cur)
}

// ReplaceSeasons writes the whole seasons array if the stored revision still
// equals revision. A mismatch is apperr.ErrConflict; a missing record is
// nil, nil.
func (r *ContentRepository) ReplaceSeasons(ctx context.Context, id models.ContentID, revision int64, seasons []models.Season, now time.Time) (*models.ContentRecord, error) {
	filter := bson.M{"_id": id, "revision": revision}
	if revision == 0 {
		// documents written before the counter existed
		filter = bson.M{"_id": id, "$or": bson.A{
			bson.M{"revision": 0},
			bson.M{"revision": bson.M{"$exists": false}},
		}}
	}
	update := bson.M{
		"$set": bson.M{"seasons": seasons, "updatedAt": now},
		"$inc": bson.M{"revision": 1},
	}
	rec, err := r.findOneAndUpdate(ctx, filter, update)
	if err != nil || rec != nil {
		return rec, err
	}
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	return nil, apperr.ErrConflict
}

func (r *ContentRepository) SetFlag(ctx context.Context, id models.ContentID, kind models.FlagKind, state models.FlagState, now time.Time) (*models.ContentRecord, error) {
	set := bson.M{
		kind.ActiveField(): state.Active,
		kind.OrderField():  state.Order,
		"updatedAt":        now,
	}
	if f := kind.DateField(); f != "" {
		set[f] = state.Date
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

// ListFlagged returns active records for kind. Placeholders only carry the
// upcoming flag and are skipped for every other one.
func (r *ContentRepository) ListFlagged(ctx context.Context, kind models.FlagKind, limit int) ([]models.ContentRecord, error) {
	col, err := r.col(ctx)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSort(sortDoc(ordering.FlagFields(kind.OrderField()))).
		SetLimit(int64(limit))
	filter := bson.D{{Key: kind.ActiveField(), Value: true}}
	if kind != models.FlagUpcoming {
		filter = append(filter, notPlaceholder)
	}
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return collect[models.ContentRecord](ctx, cur)
}

// StaleExternal returns records with an external metadata source whose
// updatedAt is older than before, oldest first.
func (r *ContentRepository) StaleExternal(ctx context.Context, before time.Time, limit int) ([]models.ContentRecord, error) {
	col, err := r.col(ctx)
	if err != nil {
		return nil, err
	}
	filter := bson.M{
		"updatedAt": bson.M{"$lt": before},
		"$or": bson.A{
			bson.M{"_id": bson.M{"$regex": "^tmdb:"}},
			bson.M{"tmdbID": bson.M{"$exists": true}},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: 1}}).SetLimit(int64(limit))
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return collect[models.ContentRecord](ctx, cur)
}

func collect[T any](ctx context.Context, cur *mongo.Cursor) ([]T, error) {
	defer cur.Close(ctx)

	out := []T{}
	for cur.Next(ctx) {
		var v T
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, cur.Err()
}
