package job

import (
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/consts"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/logger"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/redis"
	"github.com/LucaDevAr/futcuervo-backend/internal/service"
)

const rolloverLockTTL = 5 * time.Minute

// DailyGamesJob rebuilds the daily games cache right after the local
// midnight rollover, so the first request of the day does not pay the
// aggregation cost. A Redis lock keeps multiple instances from
// refreshing at once.
type DailyGamesJob struct {
	dailyGamesSvc service.DailyGamesService
}

func NewDailyGamesJob(dailyGamesSvc service.DailyGamesService) *DailyGamesJob {
	return &DailyGamesJob{
		dailyGamesSvc: dailyGamesSvc,
	}
}

func (s *DailyGamesJob) Run() {
	traceID := "job-daily-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.DailyGamesRolloverLock, lockValue, rolloverLockTTL, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire rollover lock error", "err", err)
		return
	}
	if !locked {
		log.InfoContext(ctx, "Rollover already handled by another instance")
		return
	}
	defer redis.UnLock(ctx, consts.DailyGamesRolloverLock, lockValue)

	if err := s.dailyGamesSvc.Refresh(ctx); err != nil {
		log.ErrorContext(ctx, "refresh daily games error", "err", err)
		return
	}
	log.InfoContext(ctx, "Daily games cache refreshed")
}
