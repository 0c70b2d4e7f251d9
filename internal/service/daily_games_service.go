package service

import (
	"context"
	log "log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/LucaDevAr/futcuervo-backend/internal/api/dto"
	"github.com/LucaDevAr/futcuervo-backend/internal/model"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/cache"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/consts"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/util"
	"github.com/LucaDevAr/futcuervo-backend/internal/repository"
)

type DailyGamesService interface {
	// GetAllDailyGames returns today's published games grouped by club
	// scope, serving the day-stamped cache when it is fresh.
	GetAllDailyGames(ctx context.Context) (map[string]*dto.ClubDailyGames, bool, error)
	// Refresh recomputes today's set and replaces the cached entry.
	Refresh(ctx context.Context) error
}

type dailyGamesServiceImpl struct {
	dailyGameRepo repository.DailyGameRepo
	cache         *cache.Cache
	clock         *util.DayClock
}

func NewDailyGamesService(dailyGameRepo repository.DailyGameRepo, c *cache.Cache, clock *util.DayClock) DailyGamesService {
	return &dailyGamesServiceImpl{
		dailyGameRepo: dailyGameRepo,
		cache:         c,
		clock:         clock,
	}
}

func (s *dailyGamesServiceImpl) GetAllDailyGames(ctx context.Context) (map[string]*dto.ClubDailyGames, bool, error) {
	return cache.GetOrCompute(ctx, s.cache, consts.DailyGamesEntity, consts.DailyGamesAllKey, 0, s.computeToday)
}

func (s *dailyGamesServiceImpl) Refresh(ctx context.Context) error {
	s.cache.Invalidate(ctx, consts.DailyGamesEntity, consts.DailyGamesAllKey)
	_, _, err := s.GetAllDailyGames(ctx)
	return err
}

// computeToday fans out one query per game variant and groups the
// results by club scope. A variant with no published game today simply
// contributes nothing.
func (s *dailyGamesServiceImpl) computeToday(ctx context.Context) (map[string]*dto.ClubDailyGames, error) {
	start, end, err := s.clock.DayRange(s.clock.TodayStamp())
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	games := make([]*model.DailyGame, 0, len(model.DailyGameTypes))

	g, ctx := errgroup.WithContext(ctx)
	for _, gameType := range model.DailyGameTypes {
		g.Go(func() error {
			expand := append(repository.SubjectExpand(gameType), repository.ClubExpand())
			found, err := s.dailyGameRepo.FindByDateRange(ctx, gameType, start, end, expand)
			if err != nil {
				return err
			}
			mu.Lock()
			games = append(games, found...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byClub := make(map[string]*dto.ClubDailyGames)
	for _, game := range games {
		key := game.ClubKey()
		group, ok := byClub[key]
		if !ok {
			group = &dto.ClubDailyGames{
				LastGames:   make(map[model.GameType]*model.DailyGame),
				LastUpdated: s.clock.Now(),
			}
			byClub[key] = group
		}
		if _, ok := group.LastGames[game.GameType]; ok {
			log.WarnContext(ctx, "Multiple daily games published for same scope",
				"game_type", game.GameType, "club_key", key, "date", s.clock.TodayStamp())
			continue
		}
		group.LastGames[game.GameType] = game
		group.TotalGames++
	}

	return byClub, nil
}
