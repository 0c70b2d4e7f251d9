package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
)

func TestApplyWinPointsLoss(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewPointsService(users, newFakeClubRepo(), newFakeClubMemberRepo())

	added, err := svc.ApplyWinPoints(context.Background(), primitive.NewObjectID(), nil, false)
	require.NoError(t, err)

	assert.Equal(t, 0, added.User)
	assert.Empty(t, users.incs)
}

func TestApplyWinPointsGlobalScope(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewPointsService(users, newFakeClubRepo(), newFakeClubMemberRepo())
	userID := primitive.NewObjectID()

	added, err := svc.ApplyWinPoints(context.Background(), userID, nil, true)
	require.NoError(t, err)

	assert.Equal(t, 1, added.User)
	assert.Equal(t, 0, added.Club)
	assert.Equal(t, 1, users.incs[userID])
}

func TestApplyWinPointsNonMemberClubScope(t *testing.T) {
	users := newFakeUserRepo()
	clubs := newFakeClubRepo(&model.Club{ID: primitive.NewObjectID()})
	svc := NewPointsService(users, clubs, newFakeClubMemberRepo())
	userID := primitive.NewObjectID()

	var clubID primitive.ObjectID
	for id := range clubs.clubs {
		clubID = id
	}

	added, err := svc.ApplyWinPoints(context.Background(), userID, &clubID, true)
	require.NoError(t, err)

	assert.Equal(t, 1, added.User)
	assert.Equal(t, 0, added.Club, "club points only for members")
	assert.Empty(t, clubs.incs)
}

func TestApplyWinPointsMemberClubScope(t *testing.T) {
	users := newFakeUserRepo()
	clubs := newFakeClubRepo(&model.Club{ID: primitive.NewObjectID()})
	members := newFakeClubMemberRepo()
	svc := NewPointsService(users, clubs, members)
	userID := primitive.NewObjectID()

	var clubID primitive.ObjectID
	for id := range clubs.clubs {
		clubID = id
	}
	member, err := members.Create(context.Background(), &model.ClubMember{
		UserID: userID,
		ClubID: clubID,
		Role:   model.RolePartner,
	})
	require.NoError(t, err)

	added, err := svc.ApplyWinPoints(context.Background(), userID, &clubID, true)
	require.NoError(t, err)

	assert.Equal(t, 1, added.User)
	assert.Equal(t, 1, added.Club)
	assert.Equal(t, 1, added.ClubMember)
	assert.Equal(t, 1, users.incs[userID])
	assert.Equal(t, 1, clubs.incs[clubID])
	assert.Equal(t, 1, members.incs[member.ID])
}
