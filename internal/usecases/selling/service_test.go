package selling

import (
	"testing"

	"github.com/smartmart/smartmart-api/infrastructure/repository/mocks"
	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSalesServiceForTest(t *testing.T) (*Service, *mocks.MockSaleRepository, *mocks.MockProductRepository, *mocks.MockCategoryRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)

	service := &Service{
		saleRepository:     mockSaleRepo,
		productRepository:  mockProductRepo,
		categoryRepository: mockCategoryRepo,
	}

	return service, mockSaleRepo, mockProductRepo, mockCategoryRepo
}

func TestGetSalesHistory(t *testing.T) {
	service, saleRepo, productRepo, categoryRepo := newSalesServiceForTest(t)

	saleRepo.EXPECT().List().Return([]*domain.Sale{
		{ID: 1, ProductID: 1, Quantity: 2, TotalPrice: 200, Date: "2025-01-10"},
		{ID: 2, ProductID: 99, Quantity: 1, TotalPrice: 50, Date: "2025-01-20"},
	}, nil)
	productRepo.EXPECT().List().Return([]*domain.Product{
		{ID: 1, Name: "Smartphone", Brand: "Samsung", CategoryID: 1},
	}, nil)
	categoryRepo.EXPECT().List().Return([]*domain.Category{
		{ID: 1, Name: "Eletrônicos"},
	}, nil)

	history, err := service.GetSalesHistory()

	require.NoError(t, err)
	require.Len(t, history, 2)

	// Mais recente primeiro, produto excluído com rótulo de fallback
	assert.Equal(t, 2, history[0].ID)
	assert.Equal(t, domain.DeletedProductLabel, history[0].ProductName)
	assert.Equal(t, domain.DefaultCategoryLabel, history[0].CategoryName)

	assert.Equal(t, "Smartphone", history[1].ProductName)
	assert.Equal(t, "Eletrônicos", history[1].CategoryName)
	assert.Equal(t, 100.0, history[1].UnitPrice)
}

func TestCreateSale(t *testing.T) {
	t.Run("Atribui o próximo id quando não informado", func(t *testing.T) {
		service, saleRepo, _, _ := newSalesServiceForTest(t)

		saleRepo.EXPECT().NextID().Return(61, nil)
		saleRepo.EXPECT().Create(gomock.Any()).Return(nil)

		sale := &domain.Sale{ProductID: 1, Quantity: 2, TotalPrice: 100, Date: "2025-01-10"}
		err := service.CreateSale(sale)

		require.NoError(t, err)
		assert.Equal(t, 61, sale.ID)
	})

	t.Run("Rejeita quantidade não positiva", func(t *testing.T) {
		service, _, _, _ := newSalesServiceForTest(t)

		err := service.CreateSale(&domain.Sale{ProductID: 1, Quantity: 0, TotalPrice: 100, Date: "2025-01-10"})

		assert.ErrorIs(t, err, ErrInvalidSale)
	})

	t.Run("Rejeita data malformada", func(t *testing.T) {
		service, _, _, _ := newSalesServiceForTest(t)

		err := service.CreateSale(&domain.Sale{ProductID: 1, Quantity: 1, TotalPrice: 100, Date: "10/01/2025"})

		assert.ErrorIs(t, err, ErrInvalidSaleDate)
	})
}

func TestUpdateSale_NotFound(t *testing.T) {
	service, saleRepo, _, _ := newSalesServiceForTest(t)

	saleRepo.EXPECT().GetByID(7).Return(nil, nil)

	err := service.UpdateSale(&domain.Sale{ID: 7, ProductID: 1, Quantity: 1, TotalPrice: 10, Date: "2025-01-10"})

	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestDeleteSale(t *testing.T) {
	service, saleRepo, _, _ := newSalesServiceForTest(t)

	saleRepo.EXPECT().GetByID(4).Return(&domain.Sale{ID: 4}, nil)
	saleRepo.EXPECT().Delete(4).Return(nil)

	err := service.DeleteSale(4)

	assert.NoError(t, err)
}
