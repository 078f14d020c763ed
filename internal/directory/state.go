package directory

import "github.com/bagdasarian/member-directory/internal/domain"

// State - все видимое состояние справочника одним неизменяемым значением.
// Каждый переход строит новое значение и заменяет его целиком.
type State struct {
	// Members - полный набор, отсортированный по убыванию id;
	// после каждой мутации перечитывается из хранилища целиком
	Members []*domain.Member

	// Page - текущая страница, нумерация с 1
	Page int

	// CreateForm - буфер формы регистрации
	CreateForm domain.MemberInput

	// EditForm - буфер формы редактирования
	EditForm domain.MemberInput

	// Selected - выбранная запись для детального просмотра, nil если закрыто
	Selected *domain.Member

	// EditMode - флаг режима редактирования детального просмотра
	EditMode bool
}

// PageView - производное представление текущей страницы
type PageView struct {
	Members     []*domain.Member
	Page        int
	TotalPages  int
	PageNumbers []int
}
