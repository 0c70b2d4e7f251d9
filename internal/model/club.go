package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/consts"
)

// Club is a trivia club. Slug is the stable key used by the per-club
// game-type table.
type Club struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name     string              `bson:"name" json:"name"`
	Slug     string              `bson:"slug" json:"slug"`
	Logo     string              `bson:"logo,omitempty" json:"logo,omitempty"`
	LeagueID *primitive.ObjectID `bson:"league_id,omitempty" json:"leagueId,omitempty"`

	// Points accumulated by all members' won attempts.
	Points int `bson:"points" json:"points"`

	// Members caches the member count.
	Members int `bson:"members" json:"members"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`

	League *League `bson:"league,omitempty" json:"league,omitempty"`
}

// GameKey returns the club key used for game-type validation.
func (s *Club) GameKey() string {
	if s == nil || s.Slug == "" {
		return "general"
	}
	return s.Slug
}

// ClubKeyOf maps an optional club reference to its grouping key.
func ClubKeyOf(clubID *primitive.ObjectID) string {
	if clubID == nil {
		return consts.GlobalClubKey
	}
	return clubID.Hex()
}
