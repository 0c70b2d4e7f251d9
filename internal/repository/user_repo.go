package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
)

type UserRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	IncrementPoints(ctx context.Context, id primitive.ObjectID, delta int) error
}

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepoImpl{
		col: db.Collection(model.CollectionUsers),
	}
}

func (s *userRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

func (s *userRepoImpl) IncrementPoints(ctx context.Context, id primitive.ObjectID, delta int) error {
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"points": delta}})
	return errors.Wrap(err, "increment user points")
}
