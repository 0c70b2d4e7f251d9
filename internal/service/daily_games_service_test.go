package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/cache"
)

type dailyFixture struct {
	svc   DailyGamesService
	repo  *fakeDailyGameRepo
	store *memStore
	clock *testClock
}

func newDailyFixture(t *testing.T) *dailyFixture {
	t.Helper()
	dayClock, tc := newTestClock(t, "2026-03-15 08:00:00")
	repo := newFakeDailyGameRepo()
	store := newMemStore()

	return &dailyFixture{
		svc:   NewDailyGamesService(repo, cache.New(store, dayClock), dayClock),
		repo:  repo,
		store: store,
		clock: tc,
	}
}

func TestGetAllDailyGamesGroupsByClub(t *testing.T) {
	f := newDailyFixture(t)
	clubID := primitive.NewObjectID()

	f.repo.games[model.GameShirt] = []*model.DailyGame{
		{ID: primitive.NewObjectID(), Date: f.clock.now()},
		{ID: primitive.NewObjectID(), Date: f.clock.now(), ClubID: &clubID},
	}
	f.repo.games[model.GamePlayer] = []*model.DailyGame{
		{ID: primitive.NewObjectID(), Date: f.clock.now()},
	}

	games, fromCache, err := f.svc.GetAllDailyGames(context.Background())
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, len(model.DailyGameTypes), f.repo.calls, "one query per variant")

	require.Len(t, games, 2)
	global := games["__GLOBAL__"]
	require.NotNil(t, global)
	assert.Equal(t, 2, global.TotalGames)
	assert.Contains(t, global.LastGames, model.GameShirt)
	assert.Contains(t, global.LastGames, model.GamePlayer)

	scoped := games[clubID.Hex()]
	require.NotNil(t, scoped)
	assert.Equal(t, 1, scoped.TotalGames)
}

func TestGetAllDailyGamesServesCacheSameDay(t *testing.T) {
	f := newDailyFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.GetAllDailyGames(ctx)
	require.NoError(t, err)
	queries := f.repo.calls

	_, fromCache, err := f.svc.GetAllDailyGames(ctx)
	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Equal(t, queries, f.repo.calls, "cache hit must not query")
}

func TestGetAllDailyGamesRecomputesAfterMidnight(t *testing.T) {
	f := newDailyFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.GetAllDailyGames(ctx)
	require.NoError(t, err)
	queries := f.repo.calls

	f.clock.advance(24 * time.Hour)

	_, fromCache, err := f.svc.GetAllDailyGames(ctx)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Greater(t, f.repo.calls, queries)
}

func TestGetAllDailyGamesKeepsFirstOnDuplicate(t *testing.T) {
	f := newDailyFixture(t)

	first := &model.DailyGame{ID: primitive.NewObjectID(), Date: f.clock.now()}
	second := &model.DailyGame{ID: primitive.NewObjectID(), Date: f.clock.now()}
	f.repo.games[model.GameShirt] = []*model.DailyGame{first, second}

	games, _, err := f.svc.GetAllDailyGames(context.Background())
	require.NoError(t, err)

	global := games["__GLOBAL__"]
	require.NotNil(t, global)
	assert.Equal(t, 1, global.TotalGames)
	assert.Equal(t, first.ID, global.LastGames[model.GameShirt].ID)
}

func TestRefreshReplacesCachedEntry(t *testing.T) {
	f := newDailyFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.GetAllDailyGames(ctx)
	require.NoError(t, err)

	// A game published mid-day is invisible until a refresh.
	f.repo.games[model.GameShirt] = []*model.DailyGame{
		{ID: primitive.NewObjectID(), Date: f.clock.now()},
	}

	games, fromCache, err := f.svc.GetAllDailyGames(ctx)
	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Empty(t, games)

	require.NoError(t, f.svc.Refresh(ctx))

	games, fromCache, err = f.svc.GetAllDailyGames(ctx)
	require.NoError(t, err)
	assert.True(t, fromCache)
	require.Contains(t, games, "__GLOBAL__")
	assert.Equal(t, 1, games["__GLOBAL__"].TotalGames)
}
