package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
)

type CoachRepo interface {
	FindAll(ctx context.Context) ([]*model.Coach, error)
	Search(ctx context.Context, query string, limit int) ([]*model.Coach, error)
}

type coachRepoImpl struct {
	col *mongo.Collection
}

func NewCoachRepo(db *mongo.Database) CoachRepo {
	return &coachRepoImpl{
		col: db.Collection(model.CollectionCoaches),
	}
}

func (s *coachRepoImpl) FindAll(ctx context.Context) ([]*model.Coach, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_name", Value: 1}})
	return s.findAll(ctx, bson.M{}, opts)
}

func (s *coachRepoImpl) Search(ctx context.Context, query string, limit int) ([]*model.Coach, error) {
	filter := bson.M{
		"display_name": bson.M{"$regex": query, "$options": "i"},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "display_name", Value: 1}}).
		SetLimit(int64(limit))

	return s.findAll(ctx, filter, opts)
}

func (s *coachRepoImpl) findAll(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Coach, error) {
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find coaches")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var coaches []*model.Coach
	if err := cursor.All(ctx, &coaches); err != nil {
		return nil, errors.Wrap(err, "decode coaches")
	}
	return coaches, nil
}
