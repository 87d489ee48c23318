package dashboarding

import (
	"github.com/sirupsen/logrus"
	"github.com/smartmart/smartmart-api/infrastructure/repository"
	"github.com/smartmart/smartmart-api/internal/config"
	"github.com/smartmart/smartmart-api/internal/domain"
)

// Service implementa a interface Dashboarder sobre os repositórios de
// leitura. O motor é stateless: cada chamada lê um snapshot e computa as
// visões do zero, sem guardar nada entre invocações
type Service struct {
	cfg                *config.Config
	productRepository  repository.ProductRepository
	categoryRepository repository.CategoryRepository
	saleRepository     repository.SaleRepository
}

// NewService cria uma nova instância do motor de agregação do dashboard
func NewService(
	cfg *config.Config,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	saleRepo repository.SaleRepository,
) Dashboarder {
	return &Service{
		cfg:                cfg,
		productRepository:  productRepo,
		categoryRepository: categoryRepo,
		saleRepository:     saleRepo,
	}
}

// GetDashboardData lê o snapshot atual (apenas operações List) e roda o
// pipeline de join/filtro seguido da agregação. Filtro que não casa com nada produz
// visões vazias, nunca um erro
func (s *Service) GetDashboardData(filter *domain.DashboardFilter) (*domain.DashboardData, error) {
	sales, err := s.saleRepository.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar vendas para o dashboard")
		return nil, err
	}

	products, err := s.productRepository.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar produtos para o dashboard")
		return nil, err
	}

	categories, err := s.categoryRepository.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar categorias para o dashboard")
		return nil, err
	}

	filtered := FilterSales(sales, products, categories, filter)

	data := Aggregate(filtered, products, s.profitMargin())
	data.Filters = filter

	logrus.WithFields(logrus.Fields{
		"filtered_sales": len(filtered),
		"months":         len(data.ChartData),
		"total_revenue":  data.Metrics.TotalRevenue,
	}).Debug("Dashboard computado")

	return data, nil
}

func (s *Service) profitMargin() float64 {
	if s.cfg != nil && s.cfg.Dashboard.ProfitMargin > 0 {
		return s.cfg.Dashboard.ProfitMargin
	}
	return DefaultProfitMargin
}
