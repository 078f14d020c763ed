package directory

import (
	"testing"

	"github.com/bagdasarian/member-directory/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeMembers(n int) []*domain.Member {
	members := make([]*domain.Member, 0, n)
	for i := 1; i <= n; i++ {
		members = append(members, &domain.Member{ID: int64(i)})
	}
	return members
}

func TestTotalPages(t *testing.T) {
	// Пустой набор все равно дает одну страницу
	assert.Equal(t, 1, TotalPages(0))
	assert.Equal(t, 1, TotalPages(1))
	assert.Equal(t, 1, TotalPages(10))
	assert.Equal(t, 2, TotalPages(11))
	assert.Equal(t, 3, TotalPages(25))
	assert.Equal(t, 10, TotalPages(100))
	assert.Equal(t, 11, TotalPages(101))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-5, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(99, 3))
	assert.Equal(t, 1, ClampPage(1, 1))
}

func TestSortByNewest(t *testing.T) {
	members := []*domain.Member{{ID: 2}, {ID: 7}, {ID: 1}}

	sorted := SortByNewest(members)

	require.Len(t, sorted, 3)
	assert.Equal(t, int64(7), sorted[0].ID)
	assert.Equal(t, int64(2), sorted[1].ID)
	assert.Equal(t, int64(1), sorted[2].ID)
	// Исходный срез не меняется
	assert.Equal(t, int64(2), members[0].ID)
}

func TestSlice(t *testing.T) {
	t.Run("25 записей: страница 1 - ранги 1-10, страница 3 - пять младших id", func(t *testing.T) {
		sorted := SortByNewest(makeMembers(25))

		page1 := Slice(sorted, 1)
		require.Len(t, page1, 10)
		assert.Equal(t, int64(25), page1[0].ID)
		assert.Equal(t, int64(16), page1[9].ID)

		page3 := Slice(sorted, 3)
		require.Len(t, page3, 5)
		assert.Equal(t, int64(5), page3[0].ID)
		assert.Equal(t, int64(1), page3[4].ID)
	})

	t.Run("страница за пределами набора пуста", func(t *testing.T) {
		sorted := SortByNewest(makeMembers(5))
		assert.Empty(t, Slice(sorted, 2))
		assert.Empty(t, Slice(sorted, 0))
	})

	t.Run("объединение всех страниц равно полному набору без дублей", func(t *testing.T) {
		sorted := SortByNewest(makeMembers(37))
		totalPages := TotalPages(len(sorted))

		var union []*domain.Member
		for page := 1; page <= totalPages; page++ {
			union = append(union, Slice(sorted, page)...)
		}

		require.Len(t, union, len(sorted))
		seen := make(map[int64]bool)
		for i, member := range union {
			assert.Equal(t, sorted[i].ID, member.ID)
			assert.False(t, seen[member.ID], "id не должен повторяться")
			seen[member.ID] = true
		}
	})
}

func TestPageNumbers(t *testing.T) {
	assert.Equal(t, []int{1}, PageNumbers(1))
	assert.Equal(t, []int{1, 2, 3}, PageNumbers(3))

	// Известное ограничение: не больше первых 10 номеров
	capped := PageNumbers(25)
	require.Len(t, capped, 10)
	assert.Equal(t, 1, capped[0])
	assert.Equal(t, 10, capped[9])
}
