package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attempt is the single stored record of a user's latest play of one
// game type within one club scope. A nil ClubID means the global scope.
// The (user_id, game_type, club_id) triple carries a unique index; a
// new play upserts the existing row, it never appends.
type Attempt struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID  `bson:"user_id" json:"userId"`
	GameType       GameType            `bson:"game_type" json:"gameType"`
	ClubID         *primitive.ObjectID `bson:"club_id" json:"clubId"`
	Date           time.Time           `bson:"date" json:"date"`
	Won            bool                `bson:"won" json:"won"`
	Score          int                 `bson:"score" json:"score"`
	Streak         int                 `bson:"streak" json:"streak"`
	RecordScore    int                 `bson:"record_score" json:"recordScore"`
	GameData       map[string]any      `bson:"game_data" json:"gameData"`
	TimeUsed       int                 `bson:"time_used" json:"timeUsed"`
	LivesRemaining int                 `bson:"lives_remaining" json:"livesRemaining"`
	GameMode       string              `bson:"game_mode" json:"gameMode"`
	CreatedAt      time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updatedAt"`
}

// ClubKey returns the grouping key for the attempt's club scope.
func (s *Attempt) ClubKey() string {
	return ClubKeyOf(s.ClubID)
}

// AttemptUpdate carries the server-computed fields written on upsert.
type AttemptUpdate struct {
	Date           time.Time
	Won            bool
	Score          int
	Streak         int
	RecordScore    int
	GameData       map[string]any
	TimeUsed       int
	LivesRemaining int
	GameMode       string
}
