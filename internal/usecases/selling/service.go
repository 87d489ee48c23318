package selling

import (
	"github.com/sirupsen/logrus"
	"github.com/smartmart/smartmart-api/infrastructure/repository"
	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/smartmart/smartmart-api/internal/usecases/dashboarding"
	"github.com/smartmart/smartmart-api/pkg/utils"
)

// SalesService define as operações de vendas e do histórico denormalizado
type SalesService interface {
	GetSalesHistory() ([]*domain.DenormalizedSale, error)
	CreateSale(sale *domain.Sale) error
	UpdateSale(sale *domain.Sale) error
	DeleteSale(id int) error
	NextSaleID() (int, error)
}

type Service struct {
	saleRepository     repository.SaleRepository
	productRepository  repository.ProductRepository
	categoryRepository repository.CategoryRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) SalesService {
	return &Service{
		saleRepository:     saleRepo,
		productRepository:  productRepo,
		categoryRepository: categoryRepo,
	}
}

// GetSalesHistory retorna todas as vendas enriquecidas com produto e
// categoria, da mais recente para a mais antiga. Reusa o join do motor de
// agregação sem filtros, garantindo os mesmos fallbacks em todas as telas
func (s *Service) GetSalesHistory() ([]*domain.DenormalizedSale, error) {
	sales, err := s.saleRepository.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar vendas para o histórico")
		return nil, err
	}

	products, err := s.productRepository.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar produtos para o histórico de vendas")
		return nil, err
	}

	categories, err := s.categoryRepository.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar categorias para o histórico de vendas")
		return nil, err
	}

	return dashboarding.FilterSales(sales, products, categories, nil), nil
}

func (s *Service) CreateSale(sale *domain.Sale) error {
	if err := validateSale(sale); err != nil {
		return err
	}

	if sale.ID == 0 {
		nextID, err := s.saleRepository.NextID()
		if err != nil {
			return err
		}
		sale.ID = nextID
	}

	return s.saleRepository.Create(sale)
}

func (s *Service) UpdateSale(sale *domain.Sale) error {
	if err := validateSale(sale); err != nil {
		return err
	}

	existing, err := s.saleRepository.GetByID(sale.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSaleNotFound
	}

	return s.saleRepository.Update(sale)
}

func (s *Service) DeleteSale(id int) error {
	existing, err := s.saleRepository.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSaleNotFound
	}

	return s.saleRepository.Delete(id)
}

func (s *Service) NextSaleID() (int, error) {
	return s.saleRepository.NextID()
}

func validateSale(sale *domain.Sale) error {
	if sale == nil {
		return ErrInvalidSale
	}

	if sale.Quantity <= 0 || sale.TotalPrice < 0 {
		return ErrInvalidSale
	}

	if _, err := utils.ParseDate(sale.Date); err != nil || sale.Date == "" {
		return ErrInvalidSaleDate
	}

	return nil
}
