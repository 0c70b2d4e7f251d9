package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LucaDevAr/futcuervo-backend/internal/api/middleware"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/logger"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		gamesGroup := apiGroup.Group("/games")
		{
			gamesGroup.GET("/daily/all", group.DailyGamesHandler.GetAllDailyGames)
		}

		statsGroup := apiGroup.Group("/game-stats")
		statsGroup.Use(middleware.AuthMiddleware())
		{
			statsGroup.POST("", group.GameStatsHandler.RecordAttempt)
			statsGroup.GET("", group.GameStatsHandler.GetLastAttempts)
			statsGroup.GET("/all", group.GameStatsHandler.GetAllAttempts)
		}

		progressGroup := apiGroup.Group("/game-progress")
		progressGroup.Use(middleware.AuthMiddleware())
		{
			progressGroup.GET("", group.GameStatsHandler.GetGameProgress)
		}

		memberGroup := apiGroup.Group("/club-members")
		memberGroup.Use(middleware.AuthMiddleware())
		{
			memberGroup.POST("", group.ClubMemberHandler.Join)
			memberGroup.DELETE("", group.ClubMemberHandler.Leave)
			memberGroup.GET("/mine", group.ClubMemberHandler.ListMyClubs)
		}

		playersGroup := apiGroup.Group("/players")
		{
			playersGroup.GET("", group.CatalogHandler.ListPlayers)
			playersGroup.GET("/search", group.CatalogHandler.SearchPlayers)
		}

		coachesGroup := apiGroup.Group("/coaches")
		{
			coachesGroup.GET("", group.CatalogHandler.ListCoaches)
			coachesGroup.GET("/search", group.CatalogHandler.SearchCoaches)
		}

		apiGroup.GET("/clubs", group.CatalogHandler.ListClubs)
		apiGroup.GET("/leagues", group.CatalogHandler.ListLeagues)

		cacheGroup := apiGroup.Group("/cache")
		cacheGroup.Use(middleware.AuthMiddleware())
		{
			cacheGroup.DELETE("/:entity", group.CacheAdminHandler.InvalidateEntity)
			cacheGroup.POST("/daily/refresh", group.CacheAdminHandler.RefreshDailyGames)
		}
	}

	return r
}
