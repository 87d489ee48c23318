package dashboarding

import (
	"sort"

	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/smartmart/smartmart-api/pkg/utils"
)

const (
	// DefaultProfitMargin é a margem assumida quando nenhuma foi configurada.
	// Lucro estimado = receita * margem; quem precisar de margem real deve
	// fornecer custo por produto, que este motor não modela.
	DefaultProfitMargin = 0.30

	topProductsLimit = 5
	monthKeyLength   = 7 // YYYY-MM
)

// Estrutura para acumular quantidade e receita por produto durante o ranking
type productAggregator struct {
	name     string
	quantity int
	total    float64
}

// FilterSales junta cada venda com seu produto e categoria e aplica o
// conjunto de filtros (todos opcionais, combinados com AND). O join nunca
// falha: venda de produto excluído recebe os rótulos de fallback e continua
// no resultado. A saída é ordenada da data mais recente para a mais antiga.
func FilterSales(
	sales []*domain.Sale,
	products []*domain.Product,
	categories []*domain.Category,
	filter *domain.DashboardFilter,
) []*domain.DenormalizedSale {
	productByID := make(map[int]*domain.Product, len(products))
	for _, product := range products {
		productByID[product.ID] = product
	}

	categoryByID := make(map[int]*domain.Category, len(categories))
	for _, category := range categories {
		categoryByID[category.ID] = category
	}

	filtered := make([]*domain.DenormalizedSale, 0, len(sales))

	for _, sale := range sales {
		product := productByID[sale.ProductID]

		// O intervalo de datas só é aplicado com os dois limites presentes.
		// Comparação lexicográfica é válida para datas YYYY-MM-DD.
		if filter.HasDateRange() {
			if sale.Date < filter.StartDate || sale.Date > filter.EndDate {
				continue
			}
		}

		// Filtros de categoria e marca consultam o produto original, não os
		// campos denormalizados, para não depender de nomes ambíguos
		if filter != nil && filter.CategoryID != nil {
			if product == nil || product.CategoryID != *filter.CategoryID {
				continue
			}
		}

		if filter != nil && filter.Brand != "" {
			if product == nil || product.Brand != filter.Brand {
				continue
			}
		}

		filtered = append(filtered, denormalize(sale, product, categoryByID))
	}

	// Mais recente primeiro, empates preservam a ordem de entrada
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})

	return filtered
}

// denormalize enriquece a venda com os campos do produto e da categoria,
// degradando para os rótulos de fallback quando a referência não existe mais
func denormalize(
	sale *domain.Sale,
	product *domain.Product,
	categoryByID map[int]*domain.Category,
) *domain.DenormalizedSale {
	denormalized := &domain.DenormalizedSale{
		Sale:         *sale,
		ProductName:  domain.DeletedProductLabel,
		CategoryName: domain.DefaultCategoryLabel,
	}

	if product != nil {
		denormalized.ProductName = product.Name
		denormalized.ProductDescription = product.Description
		denormalized.Brand = product.Brand

		if category := categoryByID[product.CategoryID]; category != nil {
			denormalized.CategoryName = category.Name
		}
	}

	// Preço unitário é derivado para exibição; total_price é o valor
	// autoritativo registrado na venda
	if sale.Quantity > 0 {
		denormalized.UnitPrice = utils.RoundWithTwoDecimalPlace(sale.TotalPrice / float64(sale.Quantity))
	}

	return denormalized
}

// Aggregate computa as quatro visões do dashboard em uma única passada sobre
// a lista filtrada. As visões são sempre consistentes entre si: todas saem
// do mesmo input. A função é pura e idempotente.
//
// O ranking de top produtos agrupa por nome de produto (pós-join): dois
// produtos distintos com o mesmo nome caem no mesmo bucket. Aproximação
// aceita do comportamento original, não corrigir silenciosamente.
func Aggregate(
	filteredSales []*domain.DenormalizedSale,
	products []*domain.Product,
	profitMargin float64,
) *domain.DashboardData {
	productByID := make(map[int]*domain.Product, len(products))
	for _, product := range products {
		productByID[product.ID] = product
	}

	monthBuckets := make(map[string]*domain.MonthlyPoint)
	productBuckets := make(map[string]*productAggregator)
	productOrder := make([]string, 0)
	brandBuckets := make(map[string]float64)
	brandOrder := make([]string, 0)

	var totalRevenue float64
	var totalQuantity int

	for _, sale := range filteredSales {
		totalRevenue += sale.TotalPrice
		totalQuantity += sale.Quantity

		// Série mensal: bucket pelo prefixo YYYY-MM da data
		month := sale.Date
		if len(month) >= monthKeyLength {
			month = month[:monthKeyLength]
		}

		point, exists := monthBuckets[month]
		if !exists {
			point = &domain.MonthlyPoint{Month: month}
			monthBuckets[month] = point
		}
		point.Revenue += sale.TotalPrice
		point.Quantity += sale.Quantity

		// Top produtos: bucket pelo nome pós-join
		aggregator, exists := productBuckets[sale.ProductName]
		if !exists {
			aggregator = &productAggregator{name: sale.ProductName}
			productBuckets[sale.ProductName] = aggregator
			productOrder = append(productOrder, sale.ProductName)
		}
		aggregator.quantity += sale.Quantity
		aggregator.total += sale.TotalPrice

		// Share por marca: rederiva a marca do produto original para
		// tolerar joins parciais. Venda de produto excluído entra nos KPIs
		// e na série mensal, mas não tem marca para contabilizar
		if product := productByID[sale.ProductID]; product != nil {
			if _, exists := brandBuckets[product.Brand]; !exists {
				brandOrder = append(brandOrder, product.Brand)
			}
			brandBuckets[product.Brand] += sale.TotalPrice
		}
	}

	return &domain.DashboardData{
		ChartData:    buildChartData(monthBuckets),
		TopProducts:  buildTopProducts(productBuckets, productOrder, totalRevenue),
		SalesByBrand: buildBrandShare(brandBuckets, brandOrder),
		Metrics: domain.DashboardKPIs{
			TotalRevenue:       utils.RoundWithTwoDecimalPlace(totalRevenue),
			TotalSalesQuantity: totalQuantity,
			EstimatedProfit:    utils.RoundWithTwoDecimalPlace(totalRevenue * profitMargin),
		},
	}
}

// buildChartData ordena os buckets mensais de forma ascendente. Ordenação
// lexicográfica é correta para chaves YYYY-MM
func buildChartData(monthBuckets map[string]*domain.MonthlyPoint) []domain.MonthlyPoint {
	months := make([]string, 0, len(monthBuckets))
	for month := range monthBuckets {
		months = append(months, month)
	}
	sort.Strings(months)

	chartData := make([]domain.MonthlyPoint, 0, len(months))
	for _, month := range months {
		point := monthBuckets[month]
		chartData = append(chartData, domain.MonthlyPoint{
			Month:    point.Month,
			Revenue:  utils.RoundWithTwoDecimalPlace(point.Revenue),
			Quantity: point.Quantity,
		})
	}

	return chartData
}

// buildTopProducts ranqueia os buckets por receita decrescente, corta no
// top 5 e anexa o percentual sobre a receita total (0 quando não há receita,
// nunca NaN). Empates preservam a ordem de chegada
func buildTopProducts(
	productBuckets map[string]*productAggregator,
	productOrder []string,
	totalRevenue float64,
) []domain.TopProduct {
	ranked := make([]*productAggregator, 0, len(productOrder))
	for _, name := range productOrder {
		ranked = append(ranked, productBuckets[name])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total > ranked[j].total
	})

	if len(ranked) > topProductsLimit {
		ranked = ranked[:topProductsLimit]
	}

	topProducts := make([]domain.TopProduct, 0, len(ranked))
	for _, aggregator := range ranked {
		percentage := 0.0
		if totalRevenue > 0 {
			percentage = aggregator.total / totalRevenue * 100
		}

		topProducts = append(topProducts, domain.TopProduct{
			Name:       aggregator.name,
			Quantity:   aggregator.quantity,
			Total:      utils.RoundWithTwoDecimalPlace(aggregator.total),
			Percentage: utils.RoundWithTwoDecimalPlace(percentage),
		})
	}

	return topProducts
}

// buildBrandShare emite os buckets de marca na ordem de chegada, sem corte:
// a cardinalidade de marcas é assumida pequena
func buildBrandShare(brandBuckets map[string]float64, brandOrder []string) []domain.BrandShare {
	shares := make([]domain.BrandShare, 0, len(brandOrder))
	for _, brand := range brandOrder {
		shares = append(shares, domain.BrandShare{
			Brand:   brand,
			Revenue: utils.RoundWithTwoDecimalPlace(brandBuckets[brand]),
		})
	}

	return shares
}
