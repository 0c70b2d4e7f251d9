package dto

import (
	"time"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
)

// ClubDailyGames is one club scope's slice of today's games.
type ClubDailyGames struct {
	LastGames   map[model.GameType]*model.DailyGame `json:"lastGames"`
	TotalGames  int                                 `json:"totalGames"`
	LastUpdated time.Time                           `json:"lastUpdated"`
}
