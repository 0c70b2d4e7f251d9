package service

import (
	"context"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/cache"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/consts"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/searchcache"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/util"
	"github.com/LucaDevAr/futcuervo-backend/internal/repository"
)

const searchLimit = 20

// CatalogService serves the reference data the games are built from:
// players, coaches, clubs and leagues. Full listings go through the
// day-stamped cache; name search goes through a small in-process cache
// since typeahead queries churn too fast to be worth a round trip.
type CatalogService interface {
	ListPlayers(ctx context.Context) ([]*model.Player, bool, error)
	ListCoaches(ctx context.Context) ([]*model.Coach, bool, error)
	ListClubs(ctx context.Context) ([]*model.Club, bool, error)
	ListLeagues(ctx context.Context) ([]*model.League, bool, error)
	SearchPlayers(ctx context.Context, query string) ([]*model.Player, error)
	SearchCoaches(ctx context.Context, query string) ([]*model.Coach, error)
	// InvalidateEntity drops the cached listing for one entity type.
	InvalidateEntity(ctx context.Context, entityType string)
}

type catalogServiceImpl struct {
	playerRepo repository.PlayerRepo
	coachRepo  repository.CoachRepo
	clubRepo   repository.ClubRepo
	leagueRepo repository.LeagueRepo
	cache      *cache.Cache
	search     *searchcache.Cache
}

func NewCatalogService(playerRepo repository.PlayerRepo, coachRepo repository.CoachRepo, clubRepo repository.ClubRepo, leagueRepo repository.LeagueRepo, c *cache.Cache, search *searchcache.Cache) CatalogService {
	return &catalogServiceImpl{
		playerRepo: playerRepo,
		coachRepo:  coachRepo,
		clubRepo:   clubRepo,
		leagueRepo: leagueRepo,
		cache:      c,
		search:     search,
	}
}

func (s *catalogServiceImpl) ListPlayers(ctx context.Context) ([]*model.Player, bool, error) {
	return cache.GetOrCompute(ctx, s.cache, consts.PlayersEntity, consts.GlobalIdentifier, 0, func(ctx context.Context) ([]*model.Player, error) {
		return s.playerRepo.FindAll(ctx)
	})
}

func (s *catalogServiceImpl) ListCoaches(ctx context.Context) ([]*model.Coach, bool, error) {
	return cache.GetOrCompute(ctx, s.cache, consts.CoachesEntity, consts.GlobalIdentifier, 0, func(ctx context.Context) ([]*model.Coach, error) {
		return s.coachRepo.FindAll(ctx)
	})
}

func (s *catalogServiceImpl) ListClubs(ctx context.Context) ([]*model.Club, bool, error) {
	return cache.GetOrCompute(ctx, s.cache, consts.ClubsEntity, consts.GlobalIdentifier, 0, func(ctx context.Context) ([]*model.Club, error) {
		return s.clubRepo.FindAll(ctx)
	})
}

func (s *catalogServiceImpl) ListLeagues(ctx context.Context) ([]*model.League, bool, error) {
	return cache.GetOrCompute(ctx, s.cache, consts.LeaguesEntity, consts.GlobalIdentifier, 0, func(ctx context.Context) ([]*model.League, error) {
		return s.leagueRepo.FindAll(ctx)
	})
}

func (s *catalogServiceImpl) SearchPlayers(ctx context.Context, query string) ([]*model.Player, error) {
	normalized := util.NormalizeQuery(query)
	if normalized == "" {
		return nil, ErrParamInvalid
	}

	key := "players:" + normalized
	if hit, ok := s.search.Get(key); ok {
		if players, ok := hit.([]*model.Player); ok {
			return players, nil
		}
	}

	players, err := s.playerRepo.Search(ctx, normalized, searchLimit)
	if err != nil {
		return nil, err
	}
	s.search.Set(key, players)
	return players, nil
}

func (s *catalogServiceImpl) SearchCoaches(ctx context.Context, query string) ([]*model.Coach, error) {
	normalized := util.NormalizeQuery(query)
	if normalized == "" {
		return nil, ErrParamInvalid
	}

	key := "coaches:" + normalized
	if hit, ok := s.search.Get(key); ok {
		if coaches, ok := hit.([]*model.Coach); ok {
			return coaches, nil
		}
	}

	coaches, err := s.coachRepo.Search(ctx, normalized, searchLimit)
	if err != nil {
		return nil, err
	}
	s.search.Set(key, coaches)
	return coaches, nil
}

func (s *catalogServiceImpl) InvalidateEntity(ctx context.Context, entityType string) {
	s.cache.ClearAll(ctx, entityType)
}
