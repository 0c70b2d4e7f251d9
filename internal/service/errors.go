package service

import (
	"errors"
	"fmt"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid    = errors.New("invalid parameters")
	ErrInvalidID       = errors.New("malformed id")
	ErrInvalidGameType = errors.New("game type not available for this club")
	ErrInvalidRole     = errors.New("invalid club role")
	ErrRoleTaken       = errors.New("already joined a club with this role")
	ErrNotMember       = errors.New("not a member of this club")
	ErrClubNotFound    = errors.New("club not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrPlayerNotFound  = errors.New("player not found")
	UnExpectedError    = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrInvalidID:       BadRequest,
	ErrInvalidGameType: BadRequest,
	ErrInvalidRole:     BadRequest,
	ErrRoleTaken:       BadRequest,
	ErrNotMember:       NotFound,
	ErrClubNotFound:    NotFound,
	ErrUserNotFound:    NotFound,
	ErrPlayerNotFound:  NotFound,
	UnExpectedError:    InternalServerError,
}

// CooldownError rejects a club leave before the minimum tenure.
type CooldownError struct {
	RemainingDays int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("must wait %d more day(s) before leaving this club", e.RemainingDays)
}
