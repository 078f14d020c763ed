package handler

import "github.com/bagdasarian/member-directory/internal/service"

type Handler struct {
	memberService service.MemberService
	statsService  service.StatsService
}

func NewHandler(
	memberService service.MemberService,
	statsService service.StatsService,
) *Handler {
	return &Handler{
		memberService: memberService,
		statsService:  statsService,
	}
}
