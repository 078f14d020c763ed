package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MemberResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Birthday string `json:"birthday"`
	Nickname string `json:"nickname"`
}

type RegisterMemberRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Birthday string `json:"birthday"`
	Nickname string `json:"nickname"`
}

type RegisterMemberResponse struct {
	Member MemberResponse `json:"member"`
}

type ListMembersResponse struct {
	Members      []MemberResponse `json:"members"`
	Page         int              `json:"page"`
	TotalPages   int              `json:"total_pages"`
	PageNumbers  []int            `json:"page_numbers"`
	TotalMembers int              `json:"total_members"`
}

type GetMemberResponse struct {
	Member MemberResponse `json:"member"`
}

type UpdateMemberRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Birthday string `json:"birthday"`
	Nickname string `json:"nickname"`
}

type UpdateMemberResponse struct {
	Member MemberResponse `json:"member"`
}

type DeleteMemberRequest struct {
	ID int64 `json:"id"`
}

type DeleteMemberResponse struct {
	ID int64 `json:"id"`
}

type SeedMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

type StatsResponse struct {
	TotalMembers int `json:"total_members"`
	TotalPages   int `json:"total_pages"`
}
