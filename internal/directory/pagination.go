package directory

import (
	"sort"

	"github.com/bagdasarian/member-directory/internal/domain"
)

const (
	// PageSize - фиксированный размер страницы
	PageSize = 10

	// MaxPageButtons - кнопки нумерации показывают не более первых 10 страниц,
	// дальше только next/last (известное ограничение, не исправлять)
	MaxPageButtons = 10
)

// SortByNewest возвращает копию набора, отсортированную по убыванию id
func SortByNewest(members []*domain.Member) []*domain.Member {
	sorted := make([]*domain.Member, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID > sorted[j].ID
	})
	return sorted
}

// TotalPages = max(1, ceil(count / PageSize))
func TotalPages(count int) int {
	pages := (count + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage приводит целевую страницу к диапазону [1, totalPages]
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Slice возвращает срез [(page-1)*PageSize, page*PageSize) отсортированного набора
func Slice(sorted []*domain.Member, page int) []*domain.Member {
	start := (page - 1) * PageSize
	if start < 0 || start >= len(sorted) {
		return nil
	}
	end := start + PageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end]
}

// PageNumbers возвращает номера для кнопок страниц: 1..min(totalPages, MaxPageButtons)
func PageNumbers(totalPages int) []int {
	n := totalPages
	if n > MaxPageButtons {
		n = MaxPageButtons
	}
	numbers := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		numbers = append(numbers, i)
	}
	return numbers
}
