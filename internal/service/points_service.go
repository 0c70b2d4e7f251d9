package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LucaDevAr/futcuervo-backend/internal/api/dto"
	"github.com/LucaDevAr/futcuervo-backend/internal/repository"
)

type PointsService interface {
	// ApplyWinPoints applies the point increments for a recorded
	// attempt: one to the user, and when the user belongs to the given
	// club, one to the club and one to that membership. The increments
	// are independent writes, not a transaction; a crash mid-sequence
	// leaves them partially applied.
	ApplyWinPoints(ctx context.Context, userID primitive.ObjectID, clubID *primitive.ObjectID, won bool) (*dto.PointsAdded, error)
}

type pointsServiceImpl struct {
	userRepo       repository.UserRepo
	clubRepo       repository.ClubRepo
	clubMemberRepo repository.ClubMemberRepo
}

func NewPointsService(userRepo repository.UserRepo, clubRepo repository.ClubRepo, clubMemberRepo repository.ClubMemberRepo) PointsService {
	return &pointsServiceImpl{
		userRepo:       userRepo,
		clubRepo:       clubRepo,
		clubMemberRepo: clubMemberRepo,
	}
}

func (s *pointsServiceImpl) ApplyWinPoints(ctx context.Context, userID primitive.ObjectID, clubID *primitive.ObjectID, won bool) (*dto.PointsAdded, error) {
	added := &dto.PointsAdded{}

	if !won {
		return added, nil
	}

	if err := s.userRepo.IncrementPoints(ctx, userID, 1); err != nil {
		return added, err
	}
	added.User = 1

	if clubID == nil {
		return added, nil
	}

	member, err := s.clubMemberRepo.FindByUserAndClub(ctx, userID, *clubID)
	if err != nil {
		return added, err
	}
	if member == nil {
		return added, nil
	}

	if err := s.clubRepo.IncrementPoints(ctx, *clubID, 1); err != nil {
		return added, err
	}
	added.Club = 1

	if err := s.clubMemberRepo.IncrementPoints(ctx, member.ID, 1); err != nil {
		return added, err
	}
	added.ClubMember = 1

	return added, nil
}
