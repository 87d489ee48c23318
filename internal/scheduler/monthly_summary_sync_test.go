package scheduler

import (
	"testing"
	"time"

	"github.com/smartmart/smartmart-api/infrastructure/repository/mocks"
	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMonthlySummarySyncService_buildSummaries(t *testing.T) {
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lookback int
		sales    []*domain.Sale
		validate func(t *testing.T, summaries []*domain.MonthlySummary)
	}{
		{
			name:     "Agrupa vendas por mês dentro da janela",
			lookback: 3,
			sales: []*domain.Sale{
				{ID: 1, Quantity: 2, TotalPrice: 100, Date: "2024-07-01"},
				{ID: 2, Quantity: 1, TotalPrice: 50, Date: "2024-07-10"},
				{ID: 3, Quantity: 3, TotalPrice: 300, Date: "2024-06-20"},
			},
			validate: func(t *testing.T, summaries []*domain.MonthlySummary) {
				require.Len(t, summaries, 2)

				byMonth := make(map[string]*domain.MonthlySummary)
				for _, s := range summaries {
					byMonth[s.Month] = s
				}

				require.Contains(t, byMonth, "2024-07")
				assert.Equal(t, 150.0, byMonth["2024-07"].Revenue)
				assert.Equal(t, 3, byMonth["2024-07"].Quantity)
				assert.Equal(t, 2, byMonth["2024-07"].SalesCount)

				require.Contains(t, byMonth, "2024-06")
				assert.Equal(t, 300.0, byMonth["2024-06"].Revenue)
				assert.Equal(t, 1, byMonth["2024-06"].SalesCount)
			},
		},
		{
			name:     "Vendas fora da janela de lookback são ignoradas",
			lookback: 2,
			sales: []*domain.Sale{
				{ID: 1, Quantity: 1, TotalPrice: 100, Date: "2024-07-01"},
				{ID: 2, Quantity: 1, TotalPrice: 200, Date: "2024-03-01"},
			},
			validate: func(t *testing.T, summaries []*domain.MonthlySummary) {
				require.Len(t, summaries, 1)
				assert.Equal(t, "2024-07", summaries[0].Month)
			},
		},
		{
			name:     "Data malformada não derruba a materialização",
			lookback: 3,
			sales: []*domain.Sale{
				{ID: 1, Quantity: 1, TotalPrice: 100, Date: "2024-07-01"},
				{ID: 2, Quantity: 1, TotalPrice: 200, Date: "x"},
			},
			validate: func(t *testing.T, summaries []*domain.MonthlySummary) {
				require.Len(t, summaries, 1)
				assert.Equal(t, 100.0, summaries[0].Revenue)
			},
		},
		{
			name:     "Sem vendas na janela retorna vazio",
			lookback: 1,
			sales:    []*domain.Sale{},
			validate: func(t *testing.T, summaries []*domain.MonthlySummary) {
				assert.Empty(t, summaries)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MonthlySummarySyncService{
				config: MonthlySummarySyncConfig{MonthLookBack: tt.lookback},
			}

			tt.validate(t, service.buildSummaries(tt.sales, now))
		})
	}
}

func TestMonthlySummarySyncService_SyncMonthlySummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockSummaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)

	service := &MonthlySummarySyncService{
		saleRepo:    mockSaleRepo,
		summaryRepo: mockSummaryRepo,
		config:      MonthlySummarySyncConfig{MonthLookBack: 24},
	}

	currentMonth := time.Now().Format("2006-01")

	mockSaleRepo.EXPECT().List().Return([]*domain.Sale{
		{ID: 1, Quantity: 2, TotalPrice: 500, Date: currentMonth + "-05"},
	}, nil)

	mockSummaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(summary *domain.MonthlySummary) error {
		assert.Equal(t, currentMonth, summary.Month)
		assert.Equal(t, 500.0, summary.Revenue)
		assert.Equal(t, 2, summary.Quantity)
		return nil
	})

	err := service.SyncMonthlySummaries()

	require.NoError(t, err)

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotNil(t, status.LastSyncStartedAt)
	assert.NotNil(t, status.LastSyncCompletedAt)
}
