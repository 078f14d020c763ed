package handler

import "github.com/bagdasarian/member-directory/internal/domain"

func domainMemberToHTTP(member *domain.Member) MemberResponse {
	return MemberResponse{
		ID:       member.ID,
		Name:     member.Name,
		Position: member.Position,
		Birthday: member.Birthday,
		Nickname: member.Nickname,
	}
}

func domainMembersToHTTP(members []*domain.Member) []MemberResponse {
	responses := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, domainMemberToHTTP(member))
	}
	return responses
}
