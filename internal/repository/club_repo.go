package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
)

type ClubRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Club, error)
	// FindAll lists clubs with their league expanded.
	FindAll(ctx context.Context) ([]*model.Club, error)
	IncrementPoints(ctx context.Context, id primitive.ObjectID, delta int) error
}

type clubRepoImpl struct {
	col *mongo.Collection
}

func NewClubRepo(db *mongo.Database) ClubRepo {
	return &clubRepoImpl{
		col: db.Collection(model.CollectionClubs),
	}
}

func (s *clubRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Club, error) {
	var club model.Club
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&club)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find club")
	}
	return &club, nil
}

func (s *clubRepoImpl) FindAll(ctx context.Context) ([]*model.Club, error) {
	pipeline := expandAll(nil, []ExpandSpec{
		{From: model.CollectionLeagues, LocalField: "league_id", As: "league"},
	})
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.M{"name": 1}}})

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "list clubs")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var clubs []*model.Club
	if err := cursor.All(ctx, &clubs); err != nil {
		return nil, errors.Wrap(err, "decode clubs")
	}
	return clubs, nil
}

func (s *clubRepoImpl) IncrementPoints(ctx context.Context, id primitive.ObjectID, delta int) error {
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"points": delta}})
	return errors.Wrap(err, "increment club points")
}
