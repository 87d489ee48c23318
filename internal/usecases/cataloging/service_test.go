package cataloging

import (
	"testing"

	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateProduct(t *testing.T) {
	t.Run("Atribui o próximo id quando não informado", func(t *testing.T) {
		service, productRepo, categoryRepo := newCatalogServiceForTest(t)

		categoryRepo.EXPECT().GetByID(1).Return(&domain.Category{ID: 1, Name: "Eletrônicos"}, nil)
		productRepo.EXPECT().NextID().Return(16, nil)
		productRepo.EXPECT().Create(gomock.Any()).Return(nil)

		product := &domain.Product{Name: "Novo", Price: 10, CategoryID: 1}
		err := service.CreateProduct(product)

		require.NoError(t, err)
		assert.Equal(t, 16, product.ID)
	})

	t.Run("Rejeita produto sem nome", func(t *testing.T) {
		service, _, _ := newCatalogServiceForTest(t)

		err := service.CreateProduct(&domain.Product{Price: 10, CategoryID: 1})

		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("Rejeita categoria inexistente", func(t *testing.T) {
		service, _, categoryRepo := newCatalogServiceForTest(t)

		categoryRepo.EXPECT().GetByID(99).Return(nil, nil)

		err := service.CreateProduct(&domain.Product{Name: "Novo", Price: 10, CategoryID: 99})

		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestUpdateProduct_NotFound(t *testing.T) {
	service, productRepo, categoryRepo := newCatalogServiceForTest(t)

	categoryRepo.EXPECT().GetByID(1).Return(&domain.Category{ID: 1}, nil)
	productRepo.EXPECT().GetByID(5).Return(nil, nil)

	err := service.UpdateProduct(&domain.Product{ID: 5, Name: "Fantasma", Price: 10, CategoryID: 1})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	service, productRepo, _ := newCatalogServiceForTest(t)

	productRepo.EXPECT().GetByID(3).Return(&domain.Product{ID: 3}, nil)
	productRepo.EXPECT().Delete(3).Return(nil)

	err := service.DeleteProduct(3)

	assert.NoError(t, err)
}

func TestCreateCategory_RejectsBlankName(t *testing.T) {
	service, _, _ := newCatalogServiceForTest(t)

	err := service.CreateCategory(&domain.Category{Name: "   "})

	assert.ErrorIs(t, err, ErrInvalidCategory)
}
