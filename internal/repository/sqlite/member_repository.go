package sqlite

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/member-directory/internal/domain"
)

type memberRepository struct {
	executor DBExecutor
}

func NewMemberRepository(db *sql.DB) *memberRepository {
	return &memberRepository{executor: db}
}

func NewMemberRepositoryWithTx(tx *sql.Tx) *memberRepository {
	return &memberRepository{executor: tx}
}

func (r *memberRepository) Insert(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (name, position, birthday, nickname)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		member.Name,
		member.Position,
		member.Birthday,
		member.Nickname,
	).Scan(&member.ID)

	if err != nil {
		return domain.NewWriteFailedError("insert member", err)
	}

	return nil
}

func (r *memberRepository) ListAll(ctx context.Context) ([]*domain.Member, error) {
	// Порядок не задается: сортировку накладывает вызывающая сторона
	query := `
		SELECT id, name, position, birthday, nickname
		FROM members
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.NewReadFailedError("list members", err)
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		member := &domain.Member{}
		err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Position,
			&member.Birthday,
			&member.Nickname,
		)
		if err != nil {
			return nil, domain.NewReadFailedError("scan member", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewReadFailedError("list members", err)
	}

	return members, nil
}

func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	// Upsert: запись с отсутствующим id создается заново
	query := `
		INSERT INTO members (id, name, position, birthday, nickname)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET name = excluded.name,
			position = excluded.position,
			birthday = excluded.birthday,
			nickname = excluded.nickname
	`

	_, err := r.executor.ExecContext(
		ctx,
		query,
		member.ID,
		member.Name,
		member.Position,
		member.Birthday,
		member.Nickname,
	)
	if err != nil {
		return domain.NewWriteFailedError("update member", err)
	}

	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id int64) error {
	// Удаление отсутствующей записи не считается ошибкой
	query := `
		DELETE FROM members
		WHERE id = ?
	`

	_, err := r.executor.ExecContext(ctx, query, id)
	if err != nil {
		return domain.NewWriteFailedError("delete member", err)
	}

	return nil
}
