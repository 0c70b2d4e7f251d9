package service

import (
	"context"
	log "log/slog"
	"math"

	"github.com/LucaDevAr/futcuervo-backend/internal/api/dto"
	"github.com/LucaDevAr/futcuervo-backend/internal/model"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/consts"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/util"
	"github.com/LucaDevAr/futcuervo-backend/internal/repository"
)

type ClubMemberService interface {
	// Join creates a membership. A user holds at most one membership per
	// role across all clubs.
	Join(ctx context.Context, userID string, in *dto.JoinClubDTO) (*model.ClubMember, error)
	// Leave removes a membership once the minimum tenure has elapsed.
	Leave(ctx context.Context, userID string, in *dto.LeaveClubDTO) error
	ListMyClubs(ctx context.Context, userID string) ([]*model.ClubMember, error)
}

type clubMemberServiceImpl struct {
	memberRepo repository.ClubMemberRepo
	clubRepo   repository.ClubRepo
	clock      *util.DayClock
}

func NewClubMemberService(memberRepo repository.ClubMemberRepo, clubRepo repository.ClubRepo, clock *util.DayClock) ClubMemberService {
	return &clubMemberServiceImpl{
		memberRepo: memberRepo,
		clubRepo:   clubRepo,
		clock:      clock,
	}
}

func (s *clubMemberServiceImpl) Join(ctx context.Context, userID string, in *dto.JoinClubDTO) (*model.ClubMember, error) {
	role := model.ClubRole(in.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	cid, err := parseID(in.ClubID)
	if err != nil {
		return nil, err
	}

	existing, err := s.memberRepo.FindByUserAndRole(ctx, uid, role)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoleTaken
	}

	club, err := s.clubRepo.FindByID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}

	member, err := s.memberRepo.Create(ctx, &model.ClubMember{
		UserID:     uid,
		ClubID:     cid,
		Role:       role,
		JoinedDate: s.clock.Now(),
	})
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrRoleTaken
		}
		return nil, err
	}

	log.InfoContext(ctx, "User joined club",
		"user_id", userID, "club_id", in.ClubID, "role", role)
	return member, nil
}

func (s *clubMemberServiceImpl) Leave(ctx context.Context, userID string, in *dto.LeaveClubDTO) error {
	role := model.ClubRole(in.Role)
	if !role.Valid() {
		return ErrInvalidRole
	}
	uid, err := parseID(userID)
	if err != nil {
		return err
	}
	cid, err := parseID(in.ClubID)
	if err != nil {
		return err
	}

	member, err := s.memberRepo.FindByUserClubRole(ctx, uid, cid, role)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrNotMember
	}

	tenure := s.clock.Now().Sub(member.JoinedDate)
	tenureDays := tenure.Hours() / 24
	if tenureDays < consts.MinTenureDays {
		remaining := int(math.Ceil(consts.MinTenureDays - tenureDays))
		if remaining < 1 {
			remaining = 1
		}
		return &CooldownError{RemainingDays: remaining}
	}

	if err := s.memberRepo.Delete(ctx, member.ID); err != nil {
		return err
	}

	log.InfoContext(ctx, "User left club",
		"user_id", userID, "club_id", in.ClubID, "role", role)
	return nil
}

func (s *clubMemberServiceImpl) ListMyClubs(ctx context.Context, userID string) ([]*model.ClubMember, error) {
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	return s.memberRepo.FindByUser(ctx, uid)
}
