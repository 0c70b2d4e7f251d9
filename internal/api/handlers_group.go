package api

import "github.com/LucaDevAr/futcuervo-backend/internal/api/handler"

// HandlersGroup bundles every initialized handler instance.
type HandlersGroup struct {
	GameStatsHandler  *handler.GameStatsHandler
	DailyGamesHandler *handler.DailyGamesHandler
	ClubMemberHandler *handler.ClubMemberHandler
	CatalogHandler    *handler.CatalogHandler
	CacheAdminHandler *handler.CacheAdminHandler
}
