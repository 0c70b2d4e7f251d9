package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyGame is one published trivia game, normalized across the six
// per-type collections. Data carries the variant-specific payload plus
// any expanded relations (player, shirt, song, video, club).
type DailyGame struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Date     time.Time           `bson:"date" json:"date"`
	ClubID   *primitive.ObjectID `bson:"club_id" json:"clubId"`
	GameType GameType            `bson:"-" json:"gameType"`
	Data     bson.M              `bson:",inline" json:"data,omitempty"`
}

// ClubKey returns the grouping key for the game's club scope.
func (s *DailyGame) ClubKey() string {
	return ClubKeyOf(s.ClubID)
}
