package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClubRole is a membership role. A user holds at most one membership
// per role value globally, not per club.
type ClubRole string

const (
	RolePartner   ClubRole = "partner"
	RoleSupporter ClubRole = "supporter"
)

func (r ClubRole) Valid() bool {
	return r == RolePartner || r == RoleSupporter
}

// ClubMember links a user to a club under one role. JoinedDate is set
// at creation and never updated; it drives the leave cooldown.
type ClubMember struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"userId"`
	ClubID primitive.ObjectID `bson:"club_id" json:"clubId"`
	Role   ClubRole           `bson:"role" json:"role"`

	// Points this member contributed to the club.
	Points int `bson:"points" json:"points"`

	JoinedDate time.Time `bson:"joined_date" json:"joinedDate"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`

	Club *Club `bson:"club,omitempty" json:"club,omitempty"`
}
