package directory

import (
	"context"
	"strings"

	"github.com/bagdasarian/member-directory/internal/domain"
)

// MemberService - операции сервисного слоя, нужные контроллеру
type MemberService interface {
	Register(ctx context.Context, input domain.MemberInput) (*domain.Member, error)
	ListAll(ctx context.Context) ([]*domain.Member, error)
	Update(ctx context.Context, id int64, input domain.MemberInput) (*domain.Member, error)
	Delete(ctx context.Context, id int64) error
	Seed(ctx context.Context) ([]*domain.Member, error)
}

// Controller связывает действия пользователя с хранилищем и владеет State.
// Рассчитан на один цикл событий: не безопасен для параллельных вызовов.
// При ошибке хранилища состояние остается прежним, перезагрузка не выполняется.
type Controller struct {
	members MemberService
	state   State
}

func NewController(members MemberService) *Controller {
	return &Controller{
		members: members,
		state:   State{Page: 1},
	}
}

// State возвращает текущее значение состояния
func (c *Controller) State() State {
	return c.state
}

// View возвращает производное представление текущей страницы
func (c *Controller) View() PageView {
	totalPages := TotalPages(len(c.state.Members))
	return PageView{
		Members:     Slice(c.state.Members, c.state.Page),
		Page:        c.state.Page,
		TotalPages:  totalPages,
		PageNumbers: PageNumbers(totalPages),
	}
}

// Load перечитывает полный набор из хранилища
func (c *Controller) Load(ctx context.Context) error {
	members, err := c.members.ListAll(ctx)
	if err != nil {
		return err
	}

	next := c.state
	next.Members = members
	c.state = next
	return nil
}

// SetCreateForm заменяет буфер формы регистрации
func (c *Controller) SetCreateForm(form domain.MemberInput) {
	next := c.state
	next.CreateForm = form
	c.state = next
}

// SetEditForm заменяет буфер формы редактирования
func (c *Controller) SetEditForm(form domain.MemberInput) {
	next := c.state
	next.EditForm = form
	c.state = next
}

// formFilled - локальная проверка формы: все поля непусты после обрезки
func formFilled(form domain.MemberInput) bool {
	return strings.TrimSpace(form.Name) != "" &&
		strings.TrimSpace(form.Position) != "" &&
		strings.TrimSpace(form.Birthday) != "" &&
		strings.TrimSpace(form.Nickname) != ""
}

// Add отправляет форму регистрации. Пустое поле - тихий отказ без вставки.
// При успехе форма очищается, набор перечитывается, страница сбрасывается на 1.
func (c *Controller) Add(ctx context.Context) error {
	if !formFilled(c.state.CreateForm) {
		return nil
	}

	if _, err := c.members.Register(ctx, c.state.CreateForm); err != nil {
		return err
	}

	members, err := c.members.ListAll(ctx)
	if err != nil {
		return err
	}

	next := c.state
	next.CreateForm = domain.MemberInput{}
	next.Members = members
	next.Page = 1
	c.state = next
	return nil
}

// SeedAll вставляет список примеров и сбрасывает страницу на 1
func (c *Controller) SeedAll(ctx context.Context) error {
	if _, err := c.members.Seed(ctx); err != nil {
		return err
	}

	members, err := c.members.ListAll(ctx)
	if err != nil {
		return err
	}

	next := c.state
	next.Members = members
	next.Page = 1
	c.state = next
	return nil
}

// Delete удаляет запись и перечитывает набор.
// Страница намеренно не пересчитывается: если удаление опустошило последнюю
// страницу, она остается вне диапазона до следующей навигации.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if err := c.members.Delete(ctx, id); err != nil {
		return err
	}

	members, err := c.members.ListAll(ctx)
	if err != nil {
		return err
	}

	next := c.state
	next.Members = members
	c.state = next
	return nil
}

// Select открывает детальный просмотр записи из текущего набора.
// Флаг EditMode намеренно не трогается (поведение исходного интерфейса).
func (c *Controller) Select(id int64) {
	for _, member := range c.state.Members {
		if member.ID == id {
			next := c.state
			next.Selected = member
			c.state = next
			return
		}
	}
}

// EnterEdit копирует поля выбранной записи в буфер редактирования
func (c *Controller) EnterEdit() {
	if c.state.Selected == nil {
		return
	}

	next := c.state
	next.EditForm = domain.MemberInput{
		Name:     c.state.Selected.Name,
		Position: c.state.Selected.Position,
		Birthday: c.state.Selected.Birthday,
		Nickname: c.state.Selected.Nickname,
	}
	next.EditMode = true
	c.state = next
}

// SaveEdit отправляет форму редактирования. Пустое поле - тихий отказ.
// При успехе выбранная запись заменяется объединенной, режим
// редактирования снимается, набор перечитывается.
func (c *Controller) SaveEdit(ctx context.Context) error {
	if c.state.Selected == nil {
		return nil
	}
	if !formFilled(c.state.EditForm) {
		return nil
	}

	merged, err := c.members.Update(ctx, c.state.Selected.ID, c.state.EditForm)
	if err != nil {
		return err
	}

	members, err := c.members.ListAll(ctx)
	if err != nil {
		return err
	}

	next := c.state
	next.Selected = merged
	next.EditMode = false
	next.Members = members
	c.state = next
	return nil
}

// CloseDetail закрывает детальный просмотр.
// EditMode намеренно не сбрасывается (поведение исходного интерфейса).
func (c *Controller) CloseDetail() {
	next := c.state
	next.Selected = nil
	c.state = next
}

// FirstPage переходит на первую страницу
func (c *Controller) FirstPage() {
	c.goTo(1)
}

// PrevPage переходит на предыдущую страницу
func (c *Controller) PrevPage() {
	c.goTo(c.state.Page - 1)
}

// NextPage переходит на следующую страницу
func (c *Controller) NextPage() {
	c.goTo(c.state.Page + 1)
}

// LastPage переходит на последнюю страницу
func (c *Controller) LastPage() {
	c.goTo(TotalPages(len(c.state.Members)))
}

// GoToPage переходит на страницу по номеру
func (c *Controller) GoToPage(page int) {
	c.goTo(page)
}

func (c *Controller) goTo(page int) {
	next := c.state
	next.Page = ClampPage(page, TotalPages(len(c.state.Members)))
	c.state = next
}
