package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/LucaDevAr/futcuervo-backend/internal/api/dto"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/response"
	"github.com/LucaDevAr/futcuervo-backend/internal/service"
)

type GameStatsHandler struct {
	gameStatsSvc service.GameStatsService
}

func NewGameStatsHandler(gameStatsSvc service.GameStatsService) *GameStatsHandler {
	return &GameStatsHandler{
		gameStatsSvc: gameStatsSvc,
	}
}

func (s *GameStatsHandler) RecordAttempt(c *gin.Context) {
	var recordDTO dto.RecordAttemptDTO
	if err := c.ShouldBind(&recordDTO); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.gameStatsSvc.RecordAttempt(c.Request.Context(), c.GetString("user_id"), &recordDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *GameStatsHandler) GetLastAttempts(c *gin.Context) {
	var clubID *string
	if v, ok := c.GetQuery("clubId"); ok && v != "" {
		clubID = &v
	}

	stats, err := s.gameStatsSvc.GetLastAttempts(c.Request.Context(), c.GetString("user_id"), clubID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *GameStatsHandler) GetAllAttempts(c *gin.Context) {
	stats, err := s.gameStatsSvc.GetAllAttempts(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *GameStatsHandler) GetGameProgress(c *gin.Context) {
	gameType := c.Query("gameType")
	if gameType == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var clubID *string
	if v, ok := c.GetQuery("clubId"); ok && v != "" {
		clubID = &v
	}

	progress, err := s.gameStatsSvc.GetGameProgress(c.Request.Context(), c.GetString("user_id"), gameType, clubID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, progress)
}
