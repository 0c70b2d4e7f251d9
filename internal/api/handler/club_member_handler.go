package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/LucaDevAr/futcuervo-backend/internal/api/dto"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/response"
	"github.com/LucaDevAr/futcuervo-backend/internal/service"
)

type ClubMemberHandler struct {
	clubMemberSvc service.ClubMemberService
}

func NewClubMemberHandler(clubMemberSvc service.ClubMemberService) *ClubMemberHandler {
	return &ClubMemberHandler{
		clubMemberSvc: clubMemberSvc,
	}
}

func (s *ClubMemberHandler) Join(c *gin.Context) {
	var joinDTO dto.JoinClubDTO
	if err := c.ShouldBind(&joinDTO); err != nil {
		response.Error(c, err)
		return
	}

	member, err := s.clubMemberSvc.Join(c.Request.Context(), c.GetString("user_id"), &joinDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, member)
}

func (s *ClubMemberHandler) Leave(c *gin.Context) {
	var leaveDTO dto.LeaveClubDTO
	if err := c.ShouldBind(&leaveDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.clubMemberSvc.Leave(c.Request.Context(), c.GetString("user_id"), &leaveDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ClubMemberHandler) ListMyClubs(c *gin.Context) {
	members, err := s.clubMemberSvc.ListMyClubs(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, members)
}
