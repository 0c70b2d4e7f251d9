package dto

type JoinClubDTO struct {
	ClubID string `json:"clubId" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=partner supporter"`
}

type LeaveClubDTO struct {
	ClubID string `json:"clubId" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=partner supporter"`
}
