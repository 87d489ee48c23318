package dashboarding

import (
	"errors"
	"testing"

	"github.com/smartmart/smartmart-api/infrastructure/repository/mocks"
	"github.com/smartmart/smartmart-api/internal/config"
	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_GetDashboardData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	service := NewService(nil, mockProductRepo, mockCategoryRepo, mockSaleRepo)

	mockSaleRepo.EXPECT().List().Return(fixtureSales(), nil)
	mockProductRepo.EXPECT().List().Return(fixtureProducts(), nil)
	mockCategoryRepo.EXPECT().List().Return(fixtureCategories(), nil)

	filter := &domain.DashboardFilter{Brand: "Samsung"}
	data, err := service.GetDashboardData(filter)

	require.NoError(t, err)
	assert.Equal(t, filter, data.Filters)
	assert.Equal(t, 1700.0, data.Metrics.TotalRevenue)
	assert.Equal(t, 19, data.Metrics.TotalSalesQuantity)
	assert.Equal(t, 510.0, data.Metrics.EstimatedProfit)

	require.Len(t, data.SalesByBrand, 1)
	assert.Equal(t, "Samsung", data.SalesByBrand[0].Brand)
}

func TestService_GetDashboardData_NoMatchIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	service := NewService(nil, mockProductRepo, mockCategoryRepo, mockSaleRepo)

	mockSaleRepo.EXPECT().List().Return(fixtureSales(), nil)
	mockProductRepo.EXPECT().List().Return(fixtureProducts(), nil)
	mockCategoryRepo.EXPECT().List().Return(fixtureCategories(), nil)

	data, err := service.GetDashboardData(&domain.DashboardFilter{Brand: "Inexistente"})

	require.NoError(t, err)
	assert.Empty(t, data.ChartData)
	assert.Empty(t, data.TopProducts)
	assert.Empty(t, data.SalesByBrand)
	assert.Equal(t, 0.0, data.Metrics.TotalRevenue)
}

func TestService_GetDashboardData_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	service := NewService(nil, mockProductRepo, mockCategoryRepo, mockSaleRepo)

	mockSaleRepo.EXPECT().List().Return(nil, errors.New("conexão perdida"))

	data, err := service.GetDashboardData(nil)

	assert.Error(t, err)
	assert.Nil(t, data)
}

func TestService_ProfitMarginFallsBackToDefault(t *testing.T) {
	service := &Service{}
	assert.Equal(t, DefaultProfitMargin, service.profitMargin())

	service = &Service{cfg: &config.Config{Dashboard: config.Dashboard{ProfitMargin: 0.45}}}
	assert.Equal(t, 0.45, service.profitMargin())
}
