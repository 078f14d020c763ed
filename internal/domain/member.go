package domain

type Member struct {
	ID       int64
	Name     string
	Position string
	Birthday string
	Nickname string
}

// MemberInput - запись без id: буфер формы регистрации/редактирования
type MemberInput struct {
	Name     string
	Position string
	Birthday string
	Nickname string
}
