package service

import (
	"context"
	log "log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LucaDevAr/futcuervo-backend/internal/api/dto"
	"github.com/LucaDevAr/futcuervo-backend/internal/model"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/cache"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/consts"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/util"
	"github.com/LucaDevAr/futcuervo-backend/internal/repository"
)

// streakLookback is how many prior attempts the streak computation
// fetches. Only yesterday's matters, the second row is slack for
// legacy data.
const streakLookback = 2

type GameStatsService interface {
	RecordAttempt(ctx context.Context, userID string, in *dto.RecordAttemptDTO) (*dto.AttemptResult, error)
	GetLastAttempts(ctx context.Context, userID string, clubID *string) (*dto.UserStats, error)
	GetAllAttempts(ctx context.Context, userID string) (*dto.AllUserStats, error)
	GetGameProgress(ctx context.Context, userID, gameType string, clubID *string) (*dto.GameProgress, error)
}

type gameStatsServiceImpl struct {
	attemptRepo repository.AttemptRepo
	clubRepo    repository.ClubRepo
	pointsSvc   PointsService
	cache       *cache.Cache
	clock       *util.DayClock
}

func NewGameStatsService(attemptRepo repository.AttemptRepo, clubRepo repository.ClubRepo, pointsSvc PointsService, c *cache.Cache, clock *util.DayClock) GameStatsService {
	return &gameStatsServiceImpl{
		attemptRepo: attemptRepo,
		clubRepo:    clubRepo,
		pointsSvc:   pointsSvc,
		cache:       c,
		clock:       clock,
	}
}

// RecordAttempt upserts the latest attempt for the (user, game type,
// club) triple. Streak and record score are recomputed server-side;
// when a concurrent duplicate insert loses the race it recovers by
// returning the already stored row.
func (s *gameStatsServiceImpl) RecordAttempt(ctx context.Context, userID string, in *dto.RecordAttemptDTO) (*dto.AttemptResult, error) {
	gameType := model.GameType(in.GameType)
	if !gameType.Valid() {
		return nil, ErrParamInvalid
	}

	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	cid, err := parseOptionalID(in.ClubID)
	if err != nil {
		return nil, err
	}

	clubKey := "general"
	if cid != nil {
		club, err := s.clubRepo.FindByID(ctx, *cid)
		if err != nil {
			return nil, err
		}
		if club == nil {
			return nil, ErrClubNotFound
		}
		clubKey = club.GameKey()
	}
	if !model.IsValidGameType(clubKey, gameType) {
		return nil, ErrInvalidGameType
	}

	playedAt := s.clock.Now()
	if in.Date != nil {
		playedAt = *in.Date
	}
	todayKey := s.clock.DateOnly(playedAt)

	prior, err := s.attemptRepo.FindLatestByTriple(ctx, uid, gameType, cid, streakLookback)
	if err != nil {
		return nil, err
	}

	priorByDay := make(map[string]*model.Attempt, len(prior))
	for _, attempt := range prior {
		day := s.clock.DateOnly(attempt.Date)
		if _, ok := priorByDay[day]; !ok {
			priorByDay[day] = attempt
		}
	}

	recordScore := in.Score
	for _, attempt := range prior {
		if attempt.RecordScore > recordScore {
			recordScore = attempt.RecordScore
		}
	}

	gameData := in.GameData
	if gameData == nil {
		gameData = map[string]any{}
	}
	gameMode := in.GameMode
	if gameMode == "" {
		gameMode = "daily"
	}

	update := &model.AttemptUpdate{
		Date:           playedAt,
		Won:            in.Won,
		Score:          in.Score,
		Streak:         computeStreak(in.Won, todayKey, priorByDay),
		RecordScore:    recordScore,
		GameData:       gameData,
		TimeUsed:       in.TimeUsed,
		LivesRemaining: in.LivesRemaining,
		GameMode:       gameMode,
	}

	attempt, err := s.attemptRepo.Upsert(ctx, uid, gameType, cid, update)
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return s.recoverDuplicate(ctx, uid, gameType, cid, userID, in.ClubID)
		}
		return nil, err
	}

	points, err := s.pointsSvc.ApplyWinPoints(ctx, uid, cid, in.Won)
	if err != nil {
		return nil, err
	}

	s.invalidateUserStats(ctx, userID, in.ClubID)

	return &dto.AttemptResult{
		Attempt:     attempt,
		PointsAdded: points,
	}, nil
}

// recoverDuplicate handles a uniqueness violation from the store: the
// row already exists, so re-read it and report "already played" instead
// of failing.
func (s *gameStatsServiceImpl) recoverDuplicate(ctx context.Context, uid primitive.ObjectID, gameType model.GameType, cid *primitive.ObjectID, userID string, clubID *string) (*dto.AttemptResult, error) {
	existing, err := s.attemptRepo.FindByTriple(ctx, uid, gameType, cid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, UnExpectedError
	}

	log.InfoContext(ctx, "Duplicate attempt recovered",
		"user_id", userID, "game_type", gameType, "club_id", clubID)

	return &dto.AttemptResult{
		Attempt:       existing,
		AlreadyPlayed: true,
	}, nil
}

func (s *gameStatsServiceImpl) GetLastAttempts(ctx context.Context, userID string, clubID *string) (*dto.UserStats, error) {
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	cid, err := parseOptionalID(clubID)
	if err != nil {
		return nil, err
	}

	identifier := userID
	if clubID != nil {
		identifier = userID + ":" + *clubID
	}

	stats, fromCache, err := cache.GetOrCompute(ctx, s.cache, consts.UserStatsEntity, identifier, consts.UserStatsTTL, func(ctx context.Context) (*dto.UserStats, error) {
		attempts, err := s.attemptRepo.FindByUserAndClub(ctx, uid, cid)
		if err != nil {
			return nil, err
		}
		return s.buildStats(attempts), nil
	})
	if err != nil {
		return nil, err
	}

	stats.FromCache = fromCache
	return stats, nil
}

func (s *gameStatsServiceImpl) GetAllAttempts(ctx context.Context, userID string) (*dto.AllUserStats, error) {
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	identifier := userID + ":all"

	stats, fromCache, err := cache.GetOrCompute(ctx, s.cache, consts.UserStatsEntity, identifier, consts.UserStatsTTL, func(ctx context.Context) (*dto.AllUserStats, error) {
		attempts, err := s.attemptRepo.FindByUser(ctx, uid)
		if err != nil {
			return nil, err
		}

		byClub := make(map[string]*dto.UserStats)
		for _, attempt := range attempts {
			key := attempt.ClubKey()
			group, ok := byClub[key]
			if !ok {
				group = &dto.UserStats{
					LastAttempts: make(map[model.GameType]*model.Attempt),
					LastUpdated:  s.clock.Now(),
				}
				byClub[key] = group
			}
			if _, ok := group.LastAttempts[attempt.GameType]; !ok {
				group.LastAttempts[attempt.GameType] = attempt
			}
			group.TotalGames++
		}

		return &dto.AllUserStats{
			AttemptsByClub: byClub,
			TotalAttempts:  len(attempts),
			LastUpdated:    s.clock.Now(),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	stats.FromCache = fromCache
	return stats, nil
}

func (s *gameStatsServiceImpl) GetGameProgress(ctx context.Context, userID, gameType string, clubID *string) (*dto.GameProgress, error) {
	gt := model.GameType(gameType)
	if !gt.Valid() {
		return nil, ErrParamInvalid
	}
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	cid, err := parseOptionalID(clubID)
	if err != nil {
		return nil, err
	}

	progress := &dto.GameProgress{}

	attempt, err := s.attemptRepo.FindByTriple(ctx, uid, gt, cid)
	if err != nil {
		return nil, err
	}
	if attempt != nil {
		today := s.clock.TodayStamp()
		day := s.clock.DateOnly(attempt.Date)
		if day == today {
			progress.HasPlayed = true
			progress.GameResult = attempt
			progress.CurrentStreak = attempt.Streak
		} else if yesterday, err := util.PreviousDay(today); err == nil && day == yesterday && attempt.Won {
			progress.CurrentStreak = attempt.Streak
		}
	}

	best, err := s.attemptRepo.FindBestScore(ctx, uid, gt)
	if err != nil {
		return nil, err
	}
	if best != nil {
		progress.CurrentRecord = best.RecordScore
	}

	return progress, nil
}

func (s *gameStatsServiceImpl) buildStats(attempts []*model.Attempt) *dto.UserStats {
	lastAttempts := make(map[model.GameType]*model.Attempt)
	for _, attempt := range attempts {
		if _, ok := lastAttempts[attempt.GameType]; !ok {
			lastAttempts[attempt.GameType] = attempt
		}
	}
	return &dto.UserStats{
		LastAttempts: lastAttempts,
		TotalGames:   len(attempts),
		LastUpdated:  s.clock.Now(),
	}
}

// invalidateUserStats drops every cached stats entry for the user so
// the next read recomputes. Best-effort; a cache failure never fails
// the write that triggered it.
func (s *gameStatsServiceImpl) invalidateUserStats(ctx context.Context, userID string, clubID *string) {
	s.cache.Invalidate(ctx, consts.UserStatsEntity, userID+":all")
	if clubID != nil {
		s.cache.Invalidate(ctx, consts.UserStatsEntity, userID+":"+*clubID)
	}
	s.cache.InvalidateByPrefix(ctx, consts.UserStatsEntity, userID)
}

// computeStreak derives the new streak from yesterday's attempt only:
// a loss resets to 0, a win extends an unbroken winning yesterday by
// one, any gap restarts at 1.
func computeStreak(won bool, todayKey string, priorByDay map[string]*model.Attempt) int {
	if !won {
		return 0
	}

	yesterdayKey, err := util.PreviousDay(todayKey)
	if err != nil {
		return 1
	}

	if prev, ok := priorByDay[yesterdayKey]; ok && prev.Won {
		streak := prev.Streak
		if streak < 1 {
			streak = 1
		}
		return streak + 1
	}

	return 1
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func parseOptionalID(id *string) (*primitive.ObjectID, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	oid, err := primitive.ObjectIDFromHex(*id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return &oid, nil
}
