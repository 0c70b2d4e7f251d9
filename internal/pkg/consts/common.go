package consts

import "time"

const (
	// GlobalClubKey groups attempts and daily games that are not scoped
	// to any club.
	GlobalClubKey = "__GLOBAL__"

	// UserStatsTTL is the physical TTL band for per-user stats entries.
	// Stats mutate on every recorded attempt, so they get a short
	// rolling TTL instead of the until-midnight one; the day-stamp check
	// still invalidates them at rollover.
	UserStatsTTL = 30 * time.Minute

	// MinTenureDays is the minimum club membership tenure before a user
	// may leave.
	MinTenureDays = 7
)
