package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/member-directory/internal/directory"
	"github.com/bagdasarian/member-directory/internal/domain"
)

func (h *Handler) RegisterMember(w http.ResponseWriter, r *http.Request) {
	var req RegisterMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	member, err := h.memberService.Register(r.Context(), domain.MemberInput{
		Name:     req.Name,
		Position: req.Position,
		Birthday: req.Birthday,
		Nickname: req.Nickname,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(RegisterMemberResponse{
		Member: domainMemberToHTTP(member),
	})
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.handleError(w, &domain.DomainError{
				Code:    "BAD_REQUEST",
				Message: "page must be an integer",
			})
			return
		}
		page = parsed
	}

	members, err := h.memberService.ListAll(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	totalPages := directory.TotalPages(len(members))
	page = directory.ClampPage(page, totalPages)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListMembersResponse{
		Members:      domainMembersToHTTP(directory.Slice(members, page)),
		Page:         page,
		TotalPages:   totalPages,
		PageNumbers:  directory.PageNumbers(totalPages),
		TotalMembers: len(members),
	})
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	member, err := h.memberService.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(GetMemberResponse{
		Member: domainMemberToHTTP(member),
	})
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	member, err := h.memberService.Update(r.Context(), req.ID, domain.MemberInput{
		Name:     req.Name,
		Position: req.Position,
		Birthday: req.Birthday,
		Nickname: req.Nickname,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(UpdateMemberResponse{
		Member: domainMemberToHTTP(member),
	})
}

func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	var req DeleteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.memberService.Delete(r.Context(), req.ID); err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(DeleteMemberResponse{ID: req.ID})
}

func (h *Handler) SeedMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.Seed(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SeedMembersResponse{
		Members: domainMembersToHTTP(members),
	})
}

func parseID(raw string) (int64, error) {
	if raw == "" {
		return 0, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "id parameter is required",
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "id must be an integer",
		}
	}

	return id, nil
}
