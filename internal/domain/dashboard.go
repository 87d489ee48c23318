package domain

import "time"

// DashboardFilter agrupa os três filtros do dashboard em um único objeto,
// passado de forma atômica a cada recomputação. Todos os campos são
// opcionais e combinados com AND.
type DashboardFilter struct {
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	CategoryID *int   `json:"category_id,omitempty"`
	Brand      string `json:"brand,omitempty"`
}

// HasDateRange indica se o intervalo de datas deve ser aplicado. Os dois
// limites precisam estar presentes, um limite sozinho é ignorado.
func (f *DashboardFilter) HasDateRange() bool {
	return f != nil && f.StartDate != "" && f.EndDate != ""
}

type MonthlyPoint struct {
	Month    string  `json:"name"` // formato YYYY-MM
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
}

type TopProduct struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

type BrandShare struct {
	Brand   string  `json:"name"`
	Revenue float64 `json:"value"`
}

type DashboardKPIs struct {
	TotalRevenue       float64 `json:"total_revenue"`
	TotalSalesQuantity int     `json:"total_sales"`
	EstimatedProfit    float64 `json:"total_profit"`
}

type DashboardData struct {
	ChartData    []MonthlyPoint   `json:"chart_data"`
	Metrics      DashboardKPIs    `json:"metrics"`
	TopProducts  []TopProduct     `json:"top_products"`
	SalesByBrand []BrandShare     `json:"sales_by_brand"`
	Filters      *DashboardFilter `json:"filters,omitempty"`
}

// NewEmptyDashboardData monta uma resposta vazia porém bem formada. Filtros
// que não casam com nada (ou malformados) produzem este resultado, nunca um
// erro.
func NewEmptyDashboardData(filter *DashboardFilter) *DashboardData {
	return &DashboardData{
		ChartData:    make([]MonthlyPoint, 0),
		TopProducts:  make([]TopProduct, 0),
		SalesByBrand: make([]BrandShare, 0),
		Filters:      filter,
	}
}

// MonthlySummary é o agregado mensal materializado pelo agendador
type MonthlySummary struct {
	ID         int64     `json:"id"`
	Month      string    `json:"month"` // formato YYYY-MM
	Revenue    float64   `json:"revenue"`
	Quantity   int       `json:"quantity"`
	SalesCount int       `json:"sales_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type MonthlySummariesResponse struct {
	Summaries  []*MonthlySummary `json:"summaries"`
	LastUpdate time.Time         `json:"last_update"`
}
