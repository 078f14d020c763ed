package service

import (
	"context"

	"github.com/bagdasarian/member-directory/internal/directory"
	"github.com/bagdasarian/member-directory/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetDirectoryStats(ctx context.Context) (*DirectoryStats, error) {
	count, err := s.statsRepo.CountMembers(ctx)
	if err != nil {
		return nil, err
	}

	return &DirectoryStats{
		TotalMembers: count,
		TotalPages:   directory.TotalPages(count),
	}, nil
}
