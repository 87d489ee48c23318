package summarizing

import (
	"testing"
	"time"

	"github.com/smartmart/smartmart-api/infrastructure/repository/mocks"
	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetMonthlySummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMonthlySummaryRepository(ctrl)
	service := NewService(mockRepo)

	older := time.Date(2024, 6, 1, 5, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 7, 1, 5, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().List().Return([]*domain.MonthlySummary{
		{ID: 1, Month: "2024-06", Revenue: 1000, UpdatedAt: older},
		{ID: 2, Month: "2024-07", Revenue: 500, UpdatedAt: newer},
	}, nil)

	response, err := service.GetMonthlySummaries()

	require.NoError(t, err)
	assert.Len(t, response.Summaries, 2)
	assert.Equal(t, newer, response.LastUpdate)
}

func TestGetMonthlySummaries_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMonthlySummaryRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().List().Return([]*domain.MonthlySummary{}, nil)

	response, err := service.GetMonthlySummaries()

	require.NoError(t, err)
	assert.Empty(t, response.Summaries)
	assert.True(t, response.LastUpdate.IsZero())
}
