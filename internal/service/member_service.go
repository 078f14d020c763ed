package service

import (
	"context"

	"github.com/bagdasarian/member-directory/internal/domain"
)

type MemberService interface {
	// Register проверяет поля формы и добавляет нового участника,
	// id присваивается хранилищем
	Register(ctx context.Context, input domain.MemberInput) (*domain.Member, error)

	// ListAll возвращает всех участников, отсортированных по убыванию id
	// (новые впереди)
	ListAll(ctx context.Context) ([]*domain.Member, error)

	// Get возвращает участника по id
	Get(ctx context.Context, id int64) (*domain.Member, error)

	// Update заменяет запись с данным id объединением id и полей формы
	Update(ctx context.Context, id int64, input domain.MemberInput) (*domain.Member, error)

	// Delete удаляет участника; отсутствующий id не считается ошибкой
	Delete(ctx context.Context, id int64) error

	// Seed последовательно вставляет фиксированный список примеров
	Seed(ctx context.Context) ([]*domain.Member, error)
}
