package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
)

type AttemptRepo interface {
	// Upsert atomically finds the (user, game type, club) triple and
	// replaces its fields, inserting when absent. Concurrent calls for
	// the same triple converge to one row.
	Upsert(ctx context.Context, userID primitive.ObjectID, gameType model.GameType, clubID *primitive.ObjectID, update *model.AttemptUpdate) (*model.Attempt, error)
	FindByTriple(ctx context.Context, userID primitive.ObjectID, gameType model.GameType, clubID *primitive.ObjectID) (*model.Attempt, error)
	// FindLatestByTriple returns the most recent attempts for the
	// triple ordered by play date descending, capped at limit.
	FindLatestByTriple(ctx context.Context, userID primitive.ObjectID, gameType model.GameType, clubID *primitive.ObjectID, limit int) ([]*model.Attempt, error)
	FindByUserAndClub(ctx context.Context, userID primitive.ObjectID, clubID *primitive.ObjectID) ([]*model.Attempt, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Attempt, error)
	FindBestScore(ctx context.Context, userID primitive.ObjectID, gameType model.GameType) (*model.Attempt, error)
}

type attemptRepoImpl struct {
	col *mongo.Collection
}

func NewAttemptRepo(db *mongo.Database) AttemptRepo {
	return &attemptRepoImpl{
		col: db.Collection(model.CollectionAttempts),
	}
}

// IsDuplicateKey reports whether an error is a uniqueness violation
// from the store. Reachable when two inserts for the same triple race
// outside the atomic upsert path.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(errors.Cause(err))
}

func tripleFilter(userID primitive.ObjectID, gameType model.GameType, clubID *primitive.ObjectID) bson.M {
	return bson.M{
		"user_id":   userID,
		"game_type": gameType,
		"club_id":   clubID,
	}
}

func (s *attemptRepoImpl) Upsert(ctx context.Context, userID primitive.ObjectID, gameType model.GameType, clubID *primitive.ObjectID, update *model.AttemptUpdate) (*model.Attempt, error) {
	now := time.Now()
	doc := bson.M{
		"$set": bson.M{
			"date":            update.Date,
			"won":             update.Won,
			"score":           update.Score,
			"streak":          update.Streak,
			"record_score":    update.RecordScore,
			"game_data":       update.GameData,
			"time_used":       update.TimeUsed,
			"lives_remaining": update.LivesRemaining,
			"game_mode":       update.GameMode,
			"updated_at":      now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var attempt model.Attempt
	err := s.col.FindOneAndUpdate(ctx, tripleFilter(userID, gameType, clubID), doc, opts).Decode(&attempt)
	if err != nil {
		return nil, errors.Wrap(err, "upsert attempt")
	}
	return &attempt, nil
}

func (s *attemptRepoImpl) FindByTriple(ctx context.Context, userID primitive.ObjectID, gameType model.GameType, clubID *primitive.ObjectID) (*model.Attempt, error) {
	var attempt model.Attempt
	err := s.col.FindOne(ctx, tripleFilter(userID, gameType, clubID)).Decode(&attempt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find attempt by triple")
	}
	return &attempt, nil
}

func (s *attemptRepoImpl) FindLatestByTriple(ctx context.Context, userID primitive.ObjectID, gameType model.GameType, clubID *primitive.ObjectID, limit int) ([]*model.Attempt, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))

	return s.findAll(ctx, tripleFilter(userID, gameType, clubID), findOptions)
}

func (s *attemptRepoImpl) FindByUserAndClub(ctx context.Context, userID primitive.ObjectID, clubID *primitive.ObjectID) ([]*model.Attempt, error) {
	filter := bson.M{
		"user_id": userID,
		"club_id": clubID,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	return s.findAll(ctx, filter, findOptions)
}

func (s *attemptRepoImpl) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Attempt, error) {
	filter := bson.M{"user_id": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	return s.findAll(ctx, filter, findOptions)
}

func (s *attemptRepoImpl) FindBestScore(ctx context.Context, userID primitive.ObjectID, gameType model.GameType) (*model.Attempt, error) {
	filter := bson.M{
		"user_id":   userID,
		"game_type": gameType,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "record_score", Value: -1}})

	var attempt model.Attempt
	err := s.col.FindOne(ctx, filter, opts).Decode(&attempt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find best score")
	}
	return &attempt, nil
}

func (s *attemptRepoImpl) findAll(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Attempt, error) {
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find attempts")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var attempts []*model.Attempt
	if err := cursor.All(ctx, &attempts); err != nil {
		return nil, errors.Wrap(err, "decode attempts")
	}
	return attempts, nil
}
