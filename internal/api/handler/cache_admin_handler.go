package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/consts"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/response"
	"github.com/LucaDevAr/futcuervo-backend/internal/service"
)

// CacheAdminHandler exposes manual invalidation for operators, used
// after editorial catalog changes that should show up before the next
// midnight rollover.
type CacheAdminHandler struct {
	catalogSvc    service.CatalogService
	dailyGamesSvc service.DailyGamesService
}

func NewCacheAdminHandler(catalogSvc service.CatalogService, dailyGamesSvc service.DailyGamesService) *CacheAdminHandler {
	return &CacheAdminHandler{
		catalogSvc:    catalogSvc,
		dailyGamesSvc: dailyGamesSvc,
	}
}

var entityTypes = map[string]string{
	"players": consts.PlayersEntity,
	"coaches": consts.CoachesEntity,
	"clubs":   consts.ClubsEntity,
	"leagues": consts.LeaguesEntity,
}

func (s *CacheAdminHandler) InvalidateEntity(c *gin.Context) {
	entityType, ok := entityTypes[c.Param("entity")]
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	s.catalogSvc.InvalidateEntity(c.Request.Context(), entityType)
	response.Success(c, nil)
}

func (s *CacheAdminHandler) RefreshDailyGames(c *gin.Context) {
	if err := s.dailyGamesSvc.Refresh(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
