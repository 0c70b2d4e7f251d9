package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/response"
	"github.com/LucaDevAr/futcuervo-backend/internal/service"
)

type DailyGamesHandler struct {
	dailyGamesSvc service.DailyGamesService
}

func NewDailyGamesHandler(dailyGamesSvc service.DailyGamesService) *DailyGamesHandler {
	return &DailyGamesHandler{
		dailyGamesSvc: dailyGamesSvc,
	}
}

func (s *DailyGamesHandler) GetAllDailyGames(c *gin.Context) {
	games, fromCache, err := s.dailyGamesSvc.GetAllDailyGames(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"gamesByClub": games,
		"fromCache":   fromCache,
	})
}
