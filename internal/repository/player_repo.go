package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
)

type PlayerRepo interface {
	FindAll(ctx context.Context) ([]*model.Player, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Player, error)
	FindByCareerClub(ctx context.Context, clubID primitive.ObjectID) ([]*model.Player, error)
	// Search matches display names case-insensitively, capped at limit.
	Search(ctx context.Context, query string, limit int) ([]*model.Player, error)
}

type playerRepoImpl struct {
	col *mongo.Collection
}

func NewPlayerRepo(db *mongo.Database) PlayerRepo {
	return &playerRepoImpl{
		col: db.Collection(model.CollectionPlayers),
	}
}

func (s *playerRepoImpl) FindAll(ctx context.Context) ([]*model.Player, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.findAll(ctx, bson.M{}, opts)
}

func (s *playerRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Player, error) {
	var player model.Player
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&player)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find player")
	}
	return &player, nil
}

func (s *playerRepoImpl) FindByCareerClub(ctx context.Context, clubID primitive.ObjectID) ([]*model.Player, error) {
	filter := bson.M{"career.club_id": clubID}
	opts := options.Find().SetSort(bson.D{{Key: "display_name", Value: 1}})
	return s.findAll(ctx, filter, opts)
}

func (s *playerRepoImpl) Search(ctx context.Context, query string, limit int) ([]*model.Player, error) {
	filter := bson.M{
		"display_name": bson.M{"$regex": query, "$options": "i"},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "display_name", Value: 1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{
			"display_name":  1,
			"positions":     1,
			"nationality":   1,
			"profile_image": 1,
		})

	return s.findAll(ctx, filter, opts)
}

func (s *playerRepoImpl) findAll(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Player, error) {
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find players")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var players []*model.Player
	if err := cursor.All(ctx, &players); err != nil {
		return nil, errors.Wrap(err, "decode players")
	}
	return players, nil
}
