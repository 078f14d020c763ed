package service

import "context"

// DirectoryStats - сводка по справочнику
type DirectoryStats struct {
	TotalMembers int
	TotalPages   int
}

type StatsService interface {
	// GetDirectoryStats возвращает число участников и число страниц
	GetDirectoryStats(ctx context.Context) (*DirectoryStats, error)
}
