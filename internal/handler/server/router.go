package server

import (
	"net/http"

	"github.com/bagdasarian/member-directory/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /members/register", h.RegisterMember)
	mux.HandleFunc("GET /members/list", h.ListMembers)
	mux.HandleFunc("GET /members/get", h.GetMember)
	mux.HandleFunc("POST /members/update", h.UpdateMember)
	mux.HandleFunc("POST /members/delete", h.DeleteMember)
	mux.HandleFunc("POST /members/seed", h.SeedMembers)
	mux.HandleFunc("GET /members/stats", h.GetStats)
}
