package dto

import (
	"time"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
)

// RecordAttemptDTO is the client payload for a finished play. Streak
// and record score are never taken from the client.
type RecordAttemptDTO struct {
	GameType       string         `json:"gameType" binding:"required"`
	ClubID         *string        `json:"clubId"`
	Won            bool           `json:"won"`
	Score          int            `json:"score"`
	Date           *time.Time     `json:"date"`
	GameMode       string         `json:"gameMode"`
	TimeUsed       int            `json:"timeUsed"`
	LivesRemaining int            `json:"livesRemaining"`
	GameData       map[string]any `json:"gameData"`
}

// AttemptResult is the outcome of recording a play. AlreadyPlayed is
// set when a concurrent duplicate submission was recovered; the caller
// gets the previously stored attempt, not an error.
type AttemptResult struct {
	Attempt       *model.Attempt `json:"attempt"`
	AlreadyPlayed bool           `json:"alreadyPlayed,omitempty"`
	PointsAdded   *PointsAdded   `json:"pointsAdded,omitempty"`
}

// PointsAdded reports the increments applied for a won attempt.
type PointsAdded struct {
	User       int `json:"user"`
	Club       int `json:"club"`
	ClubMember int `json:"clubMember"`
}

// UserStats is the latest attempt per game type within one club scope.
type UserStats struct {
	LastAttempts map[model.GameType]*model.Attempt `json:"lastAttempts"`
	TotalGames   int                               `json:"totalGames"`
	LastUpdated  time.Time                         `json:"lastUpdated"`
	FromCache    bool                              `json:"fromCache"`
}

// AllUserStats groups a user's stats by every club scope played under.
type AllUserStats struct {
	AttemptsByClub map[string]*UserStats `json:"attemptsByClub"`
	TotalAttempts  int                   `json:"totalAttempts"`
	LastUpdated    time.Time             `json:"lastUpdated"`
	FromCache      bool                  `json:"fromCache"`
}

// GameProgress is today's state of one game type for a user.
type GameProgress struct {
	HasPlayed     bool           `json:"hasPlayed"`
	GameResult    *model.Attempt `json:"gameResult"`
	CurrentStreak int            `json:"currentStreak"`
	CurrentRecord int            `json:"currentRecord"`
}
