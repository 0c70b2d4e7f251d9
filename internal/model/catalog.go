package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CareerEntry is one stop in a player's career.
type CareerEntry struct {
	ClubID   primitive.ObjectID `bson:"club_id" json:"clubId"`
	FromYear int                `bson:"from_year" json:"fromYear"`
	ToYear   int                `bson:"to_year,omitempty" json:"toYear,omitempty"`

	Club *Club `bson:"club,omitempty" json:"club,omitempty"`
}

type Player struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DisplayName  string             `bson:"display_name" json:"displayName"`
	Positions    []string           `bson:"positions,omitempty" json:"positions,omitempty"`
	Nationality  string             `bson:"nationality,omitempty" json:"nationality,omitempty"`
	ProfileImage string             `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	Career       []CareerEntry      `bson:"career,omitempty" json:"career,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

type Coach struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DisplayName  string             `bson:"display_name" json:"displayName"`
	Nationality  string             `bson:"nationality,omitempty" json:"nationality,omitempty"`
	ProfileImage string             `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

type League struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Country string             `bson:"country,omitempty" json:"country,omitempty"`
}
