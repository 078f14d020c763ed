package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/member-directory/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetDirectoryStats(t *testing.T) {
	t.Run("страницы считаются от числа участников", func(t *testing.T) {
		mockRepo := new(MockStatsRepository)
		svc := NewStatsService(mockRepo)

		mockRepo.On("CountMembers", mock.Anything).Return(25, nil).Once()

		stats, err := svc.GetDirectoryStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 25, stats.TotalMembers)
		assert.Equal(t, 3, stats.TotalPages)
		mockRepo.AssertExpectations(t)
	})

	t.Run("пустой справочник дает одну страницу", func(t *testing.T) {
		mockRepo := new(MockStatsRepository)
		svc := NewStatsService(mockRepo)

		mockRepo.On("CountMembers", mock.Anything).Return(0, nil).Once()

		stats, err := svc.GetDirectoryStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalMembers)
		assert.Equal(t, 1, stats.TotalPages)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ошибка чтения пробрасывается наружу", func(t *testing.T) {
		mockRepo := new(MockStatsRepository)
		svc := NewStatsService(mockRepo)

		mockRepo.On("CountMembers", mock.Anything).Return(0, domain.ErrReadFailed).Once()

		stats, err := svc.GetDirectoryStats(context.Background())

		require.Error(t, err)
		assert.Nil(t, stats)
		assert.True(t, errors.Is(err, domain.ErrReadFailed))
		mockRepo.AssertExpectations(t)
	})
}
