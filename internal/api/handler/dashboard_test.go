package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboarder struct {
	data *domain.DashboardData
	err  error

	receivedFilter *domain.DashboardFilter
}

func (s *stubDashboarder) GetDashboardData(filter *domain.DashboardFilter) (*domain.DashboardData, error) {
	s.receivedFilter = filter
	return s.data, s.err
}

func TestGetDashboard(t *testing.T) {
	t.Run("Repassa os filtros da query string para o serviço", func(t *testing.T) {
		stub := &stubDashboarder{data: domain.NewEmptyDashboardData(nil)}
		handler := GetDashboard(stub)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?start_date=2025-01-01&end_date=2025-01-31&category_id=2&brand=Samsung", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, stub.receivedFilter)
		assert.Equal(t, "2025-01-01", stub.receivedFilter.StartDate)
		assert.Equal(t, "2025-01-31", stub.receivedFilter.EndDate)
		assert.Equal(t, "Samsung", stub.receivedFilter.Brand)
		require.NotNil(t, stub.receivedFilter.CategoryID)
		assert.Equal(t, 2, *stub.receivedFilter.CategoryID)
	})

	t.Run("Filtro malformado responde dashboard vazio sem consultar o serviço", func(t *testing.T) {
		stub := &stubDashboarder{}
		handler := GetDashboard(stub)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?start_date=not-a-date&end_date=2025-01-31", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, stub.receivedFilter)

		var data domain.DashboardData
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
		assert.Empty(t, data.ChartData)
		assert.Empty(t, data.TopProducts)
		assert.Empty(t, data.SalesByBrand)
		assert.Equal(t, 0.0, data.Metrics.TotalRevenue)
	})

	t.Run("category_id não numérico também degrada para dashboard vazio", func(t *testing.T) {
		stub := &stubDashboarder{}
		handler := GetDashboard(stub)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?category_id=abc", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, stub.receivedFilter)
	})

	t.Run("Resposta usa os nomes de campo do contrato", func(t *testing.T) {
		stub := &stubDashboarder{data: &domain.DashboardData{
			ChartData: []domain.MonthlyPoint{{Month: "2025-01", Revenue: 1000, Quantity: 10}},
			Metrics:   domain.DashboardKPIs{TotalRevenue: 1000, TotalSalesQuantity: 10, EstimatedProfit: 300},
			TopProducts: []domain.TopProduct{
				{Name: "Smartphone", Quantity: 10, Total: 1000, Percentage: 100},
			},
			SalesByBrand: []domain.BrandShare{{Brand: "Samsung", Revenue: 1000}},
		}}
		handler := GetDashboard(stub)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

		assert.Contains(t, payload, "chart_data")
		assert.Contains(t, payload, "metrics")
		assert.Contains(t, payload, "top_products")
		assert.Contains(t, payload, "sales_by_brand")

		metrics := payload["metrics"].(map[string]any)
		assert.Equal(t, 1000.0, metrics["total_revenue"])
		assert.Equal(t, 10.0, metrics["total_sales"])
		assert.Equal(t, 300.0, metrics["total_profit"])

		point := payload["chart_data"].([]any)[0].(map[string]any)
		assert.Equal(t, "2025-01", point["name"])
	})
}
