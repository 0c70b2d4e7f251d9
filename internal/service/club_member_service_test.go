package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LucaDevAr/futcuervo-backend/internal/api/dto"
	"github.com/LucaDevAr/futcuervo-backend/internal/model"
)

type memberFixture struct {
	svc     ClubMemberService
	members *fakeClubMemberRepo
	clock   *testClock
	userID  string
	club    *model.Club
}

func newMemberFixture(t *testing.T) *memberFixture {
	t.Helper()
	dayClock, tc := newTestClock(t, "2026-03-15 12:00:00")
	members := newFakeClubMemberRepo()
	club := &model.Club{ID: primitive.NewObjectID(), Name: "San Lorenzo", Slug: "futcuervo"}

	return &memberFixture{
		svc:     NewClubMemberService(members, newFakeClubRepo(club), dayClock),
		members: members,
		clock:   tc,
		userID:  primitive.NewObjectID().Hex(),
		club:    club,
	}
}

func TestJoinClub(t *testing.T) {
	f := newMemberFixture(t)

	member, err := f.svc.Join(context.Background(), f.userID, &dto.JoinClubDTO{
		ClubID: f.club.ID.Hex(),
		Role:   "partner",
	})
	require.NoError(t, err)

	assert.Equal(t, model.RolePartner, member.Role)
	assert.Equal(t, f.club.ID, member.ClubID)
	assert.Equal(t, f.clock.now(), member.JoinedDate)
}

func TestJoinRoleIsGloballyExclusive(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	_, err := f.svc.Join(ctx, f.userID, &dto.JoinClubDTO{ClubID: f.club.ID.Hex(), Role: "partner"})
	require.NoError(t, err)

	// Same role in any club is rejected, including the same club.
	_, err = f.svc.Join(ctx, f.userID, &dto.JoinClubDTO{ClubID: f.club.ID.Hex(), Role: "partner"})
	assert.ErrorIs(t, err, ErrRoleTaken)

	// A different role is still available.
	_, err = f.svc.Join(ctx, f.userID, &dto.JoinClubDTO{ClubID: f.club.ID.Hex(), Role: "supporter"})
	assert.NoError(t, err)
}

func TestJoinValidation(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	_, err := f.svc.Join(ctx, f.userID, &dto.JoinClubDTO{ClubID: f.club.ID.Hex(), Role: "president"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = f.svc.Join(ctx, f.userID, &dto.JoinClubDTO{ClubID: primitive.NewObjectID().Hex(), Role: "partner"})
	assert.ErrorIs(t, err, ErrClubNotFound)

	_, err = f.svc.Join(ctx, f.userID, &dto.JoinClubDTO{ClubID: "nope", Role: "partner"})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestLeaveBeforeCooldown(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	_, err := f.svc.Join(ctx, f.userID, &dto.JoinClubDTO{ClubID: f.club.ID.Hex(), Role: "partner"})
	require.NoError(t, err)

	// Two days in: five full days remain.
	f.clock.advance(48 * time.Hour)

	err = f.svc.Leave(ctx, f.userID, &dto.LeaveClubDTO{ClubID: f.club.ID.Hex(), Role: "partner"})
	var cooldown *CooldownError
	require.ErrorAs(t, err, &cooldown)
	assert.Equal(t, 5, cooldown.RemainingDays)

	// A partial day still rounds up to one remaining day.
	f.clock.advance(4*24*time.Hour + 12*time.Hour)

	err = f.svc.Leave(ctx, f.userID, &dto.LeaveClubDTO{ClubID: f.club.ID.Hex(), Role: "partner"})
	require.ErrorAs(t, err, &cooldown)
	assert.Equal(t, 1, cooldown.RemainingDays)
}

func TestLeaveAfterCooldown(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	_, err := f.svc.Join(ctx, f.userID, &dto.JoinClubDTO{ClubID: f.club.ID.Hex(), Role: "partner"})
	require.NoError(t, err)

	f.clock.advance(7 * 24 * time.Hour)

	err = f.svc.Leave(ctx, f.userID, &dto.LeaveClubDTO{ClubID: f.club.ID.Hex(), Role: "partner"})
	require.NoError(t, err)

	members, err := f.svc.ListMyClubs(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestLeaveWithoutMembership(t *testing.T) {
	f := newMemberFixture(t)

	err := f.svc.Leave(context.Background(), f.userID, &dto.LeaveClubDTO{
		ClubID: f.club.ID.Hex(),
		Role:   "partner",
	})
	assert.ErrorIs(t, err, ErrNotMember)
}

func TestLeaveChecksExactRole(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	_, err := f.svc.Join(ctx, f.userID, &dto.JoinClubDTO{ClubID: f.club.ID.Hex(), Role: "partner"})
	require.NoError(t, err)

	f.clock.advance(8 * 24 * time.Hour)

	err = f.svc.Leave(ctx, f.userID, &dto.LeaveClubDTO{ClubID: f.club.ID.Hex(), Role: "supporter"})
	assert.ErrorIs(t, err, ErrNotMember)
}

func TestCooldownErrorMessage(t *testing.T) {
	err := &CooldownError{RemainingDays: 3}
	assert.Contains(t, err.Error(), "3")
}
