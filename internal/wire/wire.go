package wire

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/LucaDevAr/futcuervo-backend/internal/api"
	"github.com/LucaDevAr/futcuervo-backend/internal/api/config"
	"github.com/LucaDevAr/futcuervo-backend/internal/api/handler"
	"github.com/LucaDevAr/futcuervo-backend/internal/job"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/cache"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/cron"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/searchcache"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/util"
	"github.com/LucaDevAr/futcuervo-backend/internal/repository"
	"github.com/LucaDevAr/futcuervo-backend/internal/service"
)

// ApplicationContainer bundles the top-level components the app runs.
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	loc, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		return nil, err
	}
	clock := util.NewDayClock(loc)

	dayCache := cache.New(cache.NewRedisStore(), clock)
	searchCache := searchcache.New(
		time.Duration(cfg.Search.TTLSeconds)*time.Second,
		cfg.Search.MaxEntries,
	)

	attemptRepo := repository.NewAttemptRepo(db)
	clubMemberRepo := repository.NewClubMemberRepo(db)
	userRepo := repository.NewUserRepo(db)
	clubRepo := repository.NewClubRepo(db)
	dailyGameRepo := repository.NewDailyGameRepo(db)
	playerRepo := repository.NewPlayerRepo(db)
	coachRepo := repository.NewCoachRepo(db)
	leagueRepo := repository.NewLeagueRepo(db)

	pointsService := service.NewPointsService(userRepo, clubRepo, clubMemberRepo)
	gameStatsService := service.NewGameStatsService(attemptRepo, clubRepo, pointsService, dayCache, clock)
	dailyGamesService := service.NewDailyGamesService(dailyGameRepo, dayCache, clock)
	clubMemberService := service.NewClubMemberService(clubMemberRepo, clubRepo, clock)
	catalogService := service.NewCatalogService(playerRepo, coachRepo, clubRepo, leagueRepo, dayCache, searchCache)

	handlers := &api.HandlersGroup{
		GameStatsHandler:  handler.NewGameStatsHandler(gameStatsService),
		DailyGamesHandler: handler.NewDailyGamesHandler(dailyGamesService),
		ClubMemberHandler: handler.NewClubMemberHandler(clubMemberService),
		CatalogHandler:    handler.NewCatalogHandler(catalogService),
		CacheAdminHandler: handler.NewCacheAdminHandler(catalogService, dailyGamesService),
	}

	router := api.SetupRouter(handlers)

	dailyGamesJob := job.NewDailyGamesJob(dailyGamesService)
	cronMgr := cron.NewCronManager(loc, dailyGamesJob)

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
	}, nil
}
