package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/response"
	"github.com/LucaDevAr/futcuervo-backend/internal/service"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogSvc: catalogSvc,
	}
}

func (s *CatalogHandler) ListPlayers(c *gin.Context) {
	players, fromCache, err := s.catalogSvc.ListPlayers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"players": players, "fromCache": fromCache})
}

func (s *CatalogHandler) SearchPlayers(c *gin.Context) {
	players, err := s.catalogSvc.SearchPlayers(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, players)
}

func (s *CatalogHandler) ListCoaches(c *gin.Context) {
	coaches, fromCache, err := s.catalogSvc.ListCoaches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"coaches": coaches, "fromCache": fromCache})
}

func (s *CatalogHandler) SearchCoaches(c *gin.Context) {
	coaches, err := s.catalogSvc.SearchCoaches(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, coaches)
}

func (s *CatalogHandler) ListClubs(c *gin.Context) {
	clubs, fromCache, err := s.catalogSvc.ListClubs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"clubs": clubs, "fromCache": fromCache})
}

func (s *CatalogHandler) ListLeagues(c *gin.Context) {
	leagues, fromCache, err := s.catalogSvc.ListLeagues(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"leagues": leagues, "fromCache": fromCache})
}
