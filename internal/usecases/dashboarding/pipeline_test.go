package dashboarding

import (
	"testing"

	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func fixtureCategories() []*domain.Category {
	return []*domain.Category{
		{ID: 1, Name: "Eletrônicos"},
		{ID: 2, Name: "Informática"},
	}
}

func fixtureProducts() []*domain.Product {
	return []*domain.Product{
		{ID: 1, Name: "Smartphone", Price: 100, Brand: "Samsung", CategoryID: 1},
		{ID: 2, Name: "Notebook", Price: 200, Brand: "Lenovo", CategoryID: 2},
		{ID: 3, Name: "Fone", Price: 50, Brand: "Samsung", CategoryID: 1},
	}
}

func fixtureSales() []*domain.Sale {
	return []*domain.Sale{
		{ID: 1, ProductID: 1, Quantity: 10, TotalPrice: 1000, Date: "2025-01-15"},
		{ID: 2, ProductID: 1, Quantity: 5, TotalPrice: 500, Date: "2025-02-10"},
		{ID: 3, ProductID: 2, Quantity: 2, TotalPrice: 400, Date: "2025-02-20"},
		{ID: 4, ProductID: 3, Quantity: 4, TotalPrice: 200, Date: "2025-01-20"},
	}
}

func TestFilterSales(t *testing.T) {
	tests := []struct {
		name     string
		filter   *domain.DashboardFilter
		validate func(t *testing.T, result []*domain.DenormalizedSale)
	}{
		{
			name:   "Sem filtros retorna todas as vendas da mais recente para a mais antiga",
			filter: nil,
			validate: func(t *testing.T, result []*domain.DenormalizedSale) {
				require.Len(t, result, 4)
				assert.Equal(t, "2025-02-20", result[0].Date)
				assert.Equal(t, "2025-02-10", result[1].Date)
				assert.Equal(t, "2025-01-20", result[2].Date)
				assert.Equal(t, "2025-01-15", result[3].Date)
			},
		},
		{
			name:   "Intervalo de datas com os dois limites filtra por inclusão",
			filter: &domain.DashboardFilter{StartDate: "2025-02-01", EndDate: "2025-02-28"},
			validate: func(t *testing.T, result []*domain.DenormalizedSale) {
				require.Len(t, result, 2)
				assert.Equal(t, 3, result[0].ID)
				assert.Equal(t, 2, result[1].ID)
			},
		},
		{
			name:   "Limite de data sozinho é ignorado",
			filter: &domain.DashboardFilter{StartDate: "2025-02-01"},
			validate: func(t *testing.T, result []*domain.DenormalizedSale) {
				assert.Len(t, result, 4)
			},
		},
		{
			name:   "Filtro de categoria consulta o produto original",
			filter: &domain.DashboardFilter{CategoryID: intPtr(1)},
			validate: func(t *testing.T, result []*domain.DenormalizedSale) {
				require.Len(t, result, 3)
				for _, sale := range result {
					assert.Equal(t, "Eletrônicos", sale.CategoryName)
				}
			},
		},
		{
			name:   "Filtro de marca",
			filter: &domain.DashboardFilter{Brand: "Lenovo"},
			validate: func(t *testing.T, result []*domain.DenormalizedSale) {
				require.Len(t, result, 1)
				assert.Equal(t, "Notebook", result[0].ProductName)
			},
		},
		{
			name:   "Filtros combinados com AND",
			filter: &domain.DashboardFilter{StartDate: "2025-01-01", EndDate: "2025-01-31", Brand: "Samsung"},
			validate: func(t *testing.T, result []*domain.DenormalizedSale) {
				require.Len(t, result, 2)
				assert.Equal(t, "2025-01-20", result[0].Date)
				assert.Equal(t, "2025-01-15", result[1].Date)
			},
		},
		{
			name:   "Filtro que não casa com nada retorna lista vazia",
			filter: &domain.DashboardFilter{CategoryID: intPtr(99)},
			validate: func(t *testing.T, result []*domain.DenormalizedSale) {
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterSales(fixtureSales(), fixtureProducts(), fixtureCategories(), tt.filter)
			tt.validate(t, result)
		})
	}
}

func TestFilterSales_JoinDegradation(t *testing.T) {
	sales := []*domain.Sale{
		{ID: 1, ProductID: 99, Quantity: 2, TotalPrice: 100, Date: "2025-03-01"},
	}

	result := FilterSales(sales, fixtureProducts(), fixtureCategories(), nil)

	require.Len(t, result, 1)
	assert.Equal(t, domain.DeletedProductLabel, result[0].ProductName)
	assert.Equal(t, domain.DefaultCategoryLabel, result[0].CategoryName)
	assert.Empty(t, result[0].Brand)
	assert.Equal(t, 50.0, result[0].UnitPrice)
}

func TestFilterSales_CategoryFilterExcludesDeletedProducts(t *testing.T) {
	sales := []*domain.Sale{
		{ID: 1, ProductID: 99, Quantity: 1, TotalPrice: 100, Date: "2025-03-01"},
		{ID: 2, ProductID: 1, Quantity: 1, TotalPrice: 100, Date: "2025-03-02"},
	}

	result := FilterSales(sales, fixtureProducts(), fixtureCategories(), &domain.DashboardFilter{CategoryID: intPtr(1)})

	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].ID)
}

func TestFilterSales_ProductWithUnknownCategory(t *testing.T) {
	products := []*domain.Product{
		{ID: 1, Name: "Órfão", Brand: "Acme", CategoryID: 42},
	}
	sales := []*domain.Sale{
		{ID: 1, ProductID: 1, Quantity: 1, TotalPrice: 10, Date: "2025-03-01"},
	}

	result := FilterSales(sales, products, fixtureCategories(), nil)

	require.Len(t, result, 1)
	assert.Equal(t, "Órfão", result[0].ProductName)
	assert.Equal(t, domain.DefaultCategoryLabel, result[0].CategoryName)
}

func TestFilterSales_ZeroQuantityHasZeroUnitPrice(t *testing.T) {
	sales := []*domain.Sale{
		{ID: 1, ProductID: 1, Quantity: 0, TotalPrice: 100, Date: "2025-03-01"},
	}

	result := FilterSales(sales, fixtureProducts(), fixtureCategories(), nil)

	require.Len(t, result, 1)
	assert.Equal(t, 0.0, result[0].UnitPrice)
}

func TestAggregate_BasicScenario(t *testing.T) {
	products := []*domain.Product{
		{ID: 1, Name: "Smartphone", Brand: "Samsung", CategoryID: 1},
	}
	sales := []*domain.Sale{
		{ID: 1, ProductID: 1, Quantity: 10, TotalPrice: 1000, Date: "2025-01-15"},
		{ID: 2, ProductID: 1, Quantity: 5, TotalPrice: 500, Date: "2025-02-10"},
	}

	filtered := FilterSales(sales, products, fixtureCategories(), nil)
	data := Aggregate(filtered, products, DefaultProfitMargin)

	require.Len(t, data.ChartData, 2)
	assert.Equal(t, domain.MonthlyPoint{Month: "2025-01", Revenue: 1000, Quantity: 10}, data.ChartData[0])
	assert.Equal(t, domain.MonthlyPoint{Month: "2025-02", Revenue: 500, Quantity: 5}, data.ChartData[1])

	assert.Equal(t, 1500.0, data.Metrics.TotalRevenue)
	assert.Equal(t, 15, data.Metrics.TotalSalesQuantity)
	assert.Equal(t, 450.0, data.Metrics.EstimatedProfit)

	require.Len(t, data.TopProducts, 1)
	assert.Equal(t, domain.TopProduct{Name: "Smartphone", Quantity: 15, Total: 1500, Percentage: 100}, data.TopProducts[0])

	require.Len(t, data.SalesByBrand, 1)
	assert.Equal(t, domain.BrandShare{Brand: "Samsung", Revenue: 1500}, data.SalesByBrand[0])
}

func TestAggregate_EmptyInputYieldsZeroedViews(t *testing.T) {
	data := Aggregate(nil, fixtureProducts(), DefaultProfitMargin)

	assert.Empty(t, data.ChartData)
	assert.Empty(t, data.TopProducts)
	assert.Empty(t, data.SalesByBrand)
	assert.Equal(t, 0.0, data.Metrics.TotalRevenue)
	assert.Equal(t, 0, data.Metrics.TotalSalesQuantity)
	assert.Equal(t, 0.0, data.Metrics.EstimatedProfit)
}

func TestAggregate_ViewsAreConsistent(t *testing.T) {
	filtered := FilterSales(fixtureSales(), fixtureProducts(), fixtureCategories(), nil)
	data := Aggregate(filtered, fixtureProducts(), DefaultProfitMargin)

	var chartRevenue float64
	var chartQuantity int
	for _, point := range data.ChartData {
		chartRevenue += point.Revenue
		chartQuantity += point.Quantity
	}
	assert.Equal(t, data.Metrics.TotalRevenue, chartRevenue)
	assert.Equal(t, data.Metrics.TotalSalesQuantity, chartQuantity)

	var brandRevenue float64
	for _, share := range data.SalesByBrand {
		brandRevenue += share.Revenue
	}
	assert.Equal(t, data.Metrics.TotalRevenue, brandRevenue)

	var percentageSum float64
	for _, top := range data.TopProducts {
		percentageSum += top.Percentage
	}
	assert.LessOrEqual(t, percentageSum, 100.0)
}

func TestAggregate_TopProductsRankingAndLimit(t *testing.T) {
	products := make([]*domain.Product, 0, 7)
	sales := make([]*domain.Sale, 0, 7)
	names := []string{"A", "B", "C", "D", "E", "F", "G"}

	for i, name := range names {
		products = append(products, &domain.Product{ID: i + 1, Name: name, Brand: "Acme", CategoryID: 1})
		sales = append(sales, &domain.Sale{
			ID:         i + 1,
			ProductID:  i + 1,
			Quantity:   1,
			TotalPrice: float64((i + 1) * 100),
			Date:       "2025-01-10",
		})
	}

	filtered := FilterSales(sales, products, fixtureCategories(), nil)
	data := Aggregate(filtered, products, DefaultProfitMargin)

	require.Len(t, data.TopProducts, 5)
	assert.Equal(t, "G", data.TopProducts[0].Name)
	assert.Equal(t, "F", data.TopProducts[1].Name)
	assert.Equal(t, "C", data.TopProducts[4].Name)

	for i := 1; i < len(data.TopProducts); i++ {
		assert.GreaterOrEqual(t, data.TopProducts[i-1].Total, data.TopProducts[i].Total)
	}
}

func TestAggregate_TopProductsTieKeepsEncounterOrder(t *testing.T) {
	products := []*domain.Product{
		{ID: 1, Name: "Primeiro", Brand: "Acme", CategoryID: 1},
		{ID: 2, Name: "Segundo", Brand: "Acme", CategoryID: 1},
	}
	sales := []*domain.Sale{
		{ID: 1, ProductID: 1, Quantity: 1, TotalPrice: 100, Date: "2025-01-10"},
		{ID: 2, ProductID: 2, Quantity: 1, TotalPrice: 100, Date: "2025-01-09"},
	}

	filtered := FilterSales(sales, products, fixtureCategories(), nil)
	data := Aggregate(filtered, products, DefaultProfitMargin)

	// A lista filtrada chega em ordem reversa de data, o empate preserva essa ordem
	require.Len(t, data.TopProducts, 2)
	assert.Equal(t, "Primeiro", data.TopProducts[0].Name)
	assert.Equal(t, "Segundo", data.TopProducts[1].Name)
}

func TestAggregate_DeletedProductCountsInKPIsButNotInBrands(t *testing.T) {
	products := []*domain.Product{
		{ID: 1, Name: "Smartphone", Brand: "Samsung", CategoryID: 1},
	}
	sales := []*domain.Sale{
		{ID: 1, ProductID: 1, Quantity: 1, TotalPrice: 100, Date: "2025-01-10"},
		{ID: 2, ProductID: 99, Quantity: 2, TotalPrice: 300, Date: "2025-01-11"},
	}

	filtered := FilterSales(sales, products, fixtureCategories(), nil)
	data := Aggregate(filtered, products, DefaultProfitMargin)

	assert.Equal(t, 400.0, data.Metrics.TotalRevenue)
	assert.Equal(t, 3, data.Metrics.TotalSalesQuantity)

	require.Len(t, data.SalesByBrand, 1)
	assert.Equal(t, "Samsung", data.SalesByBrand[0].Brand)
	assert.Equal(t, 100.0, data.SalesByBrand[0].Revenue)

	// No ranking o produto excluído aparece com o rótulo de fallback
	require.Len(t, data.TopProducts, 2)
	assert.Equal(t, domain.DeletedProductLabel, data.TopProducts[0].Name)
}

func TestAggregate_SameBrandAccumulates(t *testing.T) {
	filtered := FilterSales(fixtureSales(), fixtureProducts(), fixtureCategories(), nil)
	data := Aggregate(filtered, fixtureProducts(), DefaultProfitMargin)

	brands := make(map[string]float64, len(data.SalesByBrand))
	for _, share := range data.SalesByBrand {
		brands[share.Brand] = share.Revenue
	}

	// Smartphone (1000 + 500) + Fone (200) na mesma marca
	assert.Equal(t, 1700.0, brands["Samsung"])
	assert.Equal(t, 400.0, brands["Lenovo"])
}

func TestAggregate_IsIdempotent(t *testing.T) {
	filtered := FilterSales(fixtureSales(), fixtureProducts(), fixtureCategories(), nil)

	first := Aggregate(filtered, fixtureProducts(), DefaultProfitMargin)
	second := Aggregate(filtered, fixtureProducts(), DefaultProfitMargin)

	assert.Equal(t, first, second)
}

func TestAggregate_ProfitUsesConfiguredMargin(t *testing.T) {
	filtered := FilterSales(fixtureSales(), fixtureProducts(), fixtureCategories(), nil)
	data := Aggregate(filtered, fixtureProducts(), 0.25)

	assert.Equal(t, 2100.0, data.Metrics.TotalRevenue)
	assert.Equal(t, 525.0, data.Metrics.EstimatedProfit)
}
