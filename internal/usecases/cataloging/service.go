package cataloging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/smartmart/smartmart-api/infrastructure/repository"
	"github.com/smartmart/smartmart-api/internal/domain"
)

// CatalogService concentra o catálogo de produtos e categorias
type CatalogService interface {
	ListCategories() ([]*domain.Category, error)
	CreateCategory(category *domain.Category) error
	ListProducts(categoryID *int) ([]*domain.Product, error)
	GetProduct(id int) (*domain.Product, error)
	CreateProduct(product *domain.Product) error
	UpdateProduct(product *domain.Product) error
	DeleteProduct(id int) error
	NextProductID() (int, error)
	ImportProductsCSV(reader io.Reader) (*domain.ImportReport, error)
}

type Service struct {
	productRepository  repository.ProductRepository
	categoryRepository repository.CategoryRepository
}

func NewService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) CatalogService {
	return &Service{
		productRepository:  productRepo,
		categoryRepository: categoryRepo,
	}
}

func (s *Service) ListCategories() ([]*domain.Category, error) {
	return s.categoryRepository.List()
}

func (s *Service) CreateCategory(category *domain.Category) error {
	if category == nil || strings.TrimSpace(category.Name) == "" {
		return ErrInvalidCategory
	}

	return s.categoryRepository.Create(category)
}

func (s *Service) ListProducts(categoryID *int) ([]*domain.Product, error) {
	if categoryID != nil {
		return s.productRepository.ListByCategory(*categoryID)
	}

	return s.productRepository.List()
}

func (s *Service) GetProduct(id int) (*domain.Product, error) {
	product, err := s.productRepository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

func (s *Service) CreateProduct(product *domain.Product) error {
	if err := s.validateProduct(product); err != nil {
		return err
	}

	if product.ID == 0 {
		nextID, err := s.productRepository.NextID()
		if err != nil {
			return err
		}
		product.ID = nextID
	}

	return s.productRepository.Create(product)
}

func (s *Service) UpdateProduct(product *domain.Product) error {
	if err := s.validateProduct(product); err != nil {
		return err
	}

	existing, err := s.productRepository.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	return s.productRepository.Update(product)
}

func (s *Service) DeleteProduct(id int) error {
	existing, err := s.productRepository.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	logrus.WithField("product_id", id).Info("Removendo produto do catálogo")

	return s.productRepository.Delete(id)
}

func (s *Service) NextProductID() (int, error) {
	return s.productRepository.NextID()
}

func (s *Service) validateProduct(product *domain.Product) error {
	if product == nil || strings.TrimSpace(product.Name) == "" || product.Price < 0 {
		return ErrInvalidProduct
	}

	category, err := s.categoryRepository.GetByID(product.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	return nil
}
