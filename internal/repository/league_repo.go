package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
)

type LeagueRepo interface {
	FindAll(ctx context.Context) ([]*model.League, error)
}

type leagueRepoImpl struct {
	col *mongo.Collection
}

func NewLeagueRepo(db *mongo.Database) LeagueRepo {
	return &leagueRepoImpl{
		col: db.Collection(model.CollectionLeagues),
	}
}

func (s *leagueRepoImpl) FindAll(ctx context.Context) ([]*model.League, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find leagues")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var leagues []*model.League
	if err := cursor.All(ctx, &leagues); err != nil {
		return nil, errors.Wrap(err, "decode leagues")
	}
	return leagues, nil
}
