package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
)

type ClubMemberRepo interface {
	Create(ctx context.Context, member *model.ClubMember) (*model.ClubMember, error)
	// FindByUserAndRole checks the global one-membership-per-role
	// invariant: any club counts.
	FindByUserAndRole(ctx context.Context, userID primitive.ObjectID, role model.ClubRole) (*model.ClubMember, error)
	FindByUserClubRole(ctx context.Context, userID, clubID primitive.ObjectID, role model.ClubRole) (*model.ClubMember, error)
	FindByUserAndClub(ctx context.Context, userID, clubID primitive.ObjectID) (*model.ClubMember, error)
	// FindByUser lists memberships with each club expanded.
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.ClubMember, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementPoints(ctx context.Context, id primitive.ObjectID, delta int) error
}

type clubMemberRepoImpl struct {
	col *mongo.Collection
}

func NewClubMemberRepo(db *mongo.Database) ClubMemberRepo {
	return &clubMemberRepoImpl{
		col: db.Collection(model.CollectionClubMembers),
	}
}

func (s *clubMemberRepoImpl) Create(ctx context.Context, member *model.ClubMember) (*model.ClubMember, error) {
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now

	res, err := s.col.InsertOne(ctx, member)
	if err != nil {
		return nil, errors.Wrap(err, "create club member")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		member.ID = oid
	}
	return member, nil
}

func (s *clubMemberRepoImpl) FindByUserAndRole(ctx context.Context, userID primitive.ObjectID, role model.ClubRole) (*model.ClubMember, error) {
	return s.findOne(ctx, bson.M{"user_id": userID, "role": role})
}

func (s *clubMemberRepoImpl) FindByUserClubRole(ctx context.Context, userID, clubID primitive.ObjectID, role model.ClubRole) (*model.ClubMember, error) {
	return s.findOne(ctx, bson.M{"user_id": userID, "club_id": clubID, "role": role})
}

func (s *clubMemberRepoImpl) FindByUserAndClub(ctx context.Context, userID, clubID primitive.ObjectID) (*model.ClubMember, error) {
	return s.findOne(ctx, bson.M{"user_id": userID, "club_id": clubID})
}

func (s *clubMemberRepoImpl) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.ClubMember, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
	}
	pipeline = append(pipeline, expandStages(model.CollectionClubs, "club_id", "club")...)

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "list club members")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var members []*model.ClubMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, errors.Wrap(err, "decode club members")
	}
	return members, nil
}

func (s *clubMemberRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return errors.Wrap(err, "delete club member")
}

func (s *clubMemberRepoImpl) IncrementPoints(ctx context.Context, id primitive.ObjectID, delta int) error {
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"points": delta}})
	return errors.Wrap(err, "increment member points")
}

func (s *clubMemberRepoImpl) findOne(ctx context.Context, filter bson.M) (*model.ClubMember, error) {
	var member model.ClubMember
	err := s.col.FindOne(ctx, filter).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find club member")
	}
	return &member, nil
}
