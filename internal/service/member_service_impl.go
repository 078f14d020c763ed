package service

import (
	"context"
	"strings"
	"time"

	"github.com/bagdasarian/member-directory/internal/directory"
	"github.com/bagdasarian/member-directory/internal/domain"
	"github.com/bagdasarian/member-directory/internal/repository"
)

const birthdayLayout = "2006-01-02"

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

// validateInput возвращает обрезанные поля или ошибку VALIDATION_FAILED.
// Инвариант: все четыре поля непустые на момент записи в хранилище.
func validateInput(input domain.MemberInput) (domain.MemberInput, error) {
	trimmed := domain.MemberInput{
		Name:     strings.TrimSpace(input.Name),
		Position: strings.TrimSpace(input.Position),
		Birthday: strings.TrimSpace(input.Birthday),
		Nickname: strings.TrimSpace(input.Nickname),
	}

	switch {
	case trimmed.Name == "":
		return domain.MemberInput{}, domain.NewValidationError("name")
	case trimmed.Position == "":
		return domain.MemberInput{}, domain.NewValidationError("position")
	case trimmed.Birthday == "":
		return domain.MemberInput{}, domain.NewValidationError("birthday")
	case trimmed.Nickname == "":
		return domain.MemberInput{}, domain.NewValidationError("nickname")
	}

	if _, err := time.Parse(birthdayLayout, trimmed.Birthday); err != nil {
		return domain.MemberInput{}, &domain.DomainError{
			Code:    "VALIDATION_FAILED",
			Message: "birthday must be a calendar date (YYYY-MM-DD)",
		}
	}

	return trimmed, nil
}

func (s *memberService) Register(ctx context.Context, input domain.MemberInput) (*domain.Member, error) {
	trimmed, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		Name:     trimmed.Name,
		Position: trimmed.Position,
		Birthday: trimmed.Birthday,
		Nickname: trimmed.Nickname,
	}

	if err := s.memberRepo.Insert(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

func (s *memberService) ListAll(ctx context.Context) ([]*domain.Member, error) {
	members, err := s.memberRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Хранилище порядка не гарантирует, сортируем здесь
	return directory.SortByNewest(members), nil
}

func (s *memberService) Get(ctx context.Context, id int64) (*domain.Member, error) {
	members, err := s.memberRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, member := range members {
		if member.ID == id {
			return member, nil
		}
	}

	return nil, domain.NewNotFoundError("member")
}

func (s *memberService) Update(ctx context.Context, id int64, input domain.MemberInput) (*domain.Member, error) {
	trimmed, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	merged := &domain.Member{
		ID:       id,
		Name:     trimmed.Name,
		Position: trimmed.Position,
		Birthday: trimmed.Birthday,
		Nickname: trimmed.Nickname,
	}

	if err := s.memberRepo.Update(ctx, merged); err != nil {
		return nil, err
	}

	return merged, nil
}

func (s *memberService) Delete(ctx context.Context, id int64) error {
	return s.memberRepo.Delete(ctx, id)
}

func (s *memberService) Seed(ctx context.Context) ([]*domain.Member, error) {
	inserted := make([]*domain.Member, 0, len(sampleMembers))

	// Строго последовательно: каждая вставка завершается до начала следующей
	for _, input := range sampleMembers {
		member, err := s.Register(ctx, input)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, member)
	}

	return inserted, nil
}
