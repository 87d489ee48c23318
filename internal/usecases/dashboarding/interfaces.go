package dashboarding

import (
	"github.com/smartmart/smartmart-api/internal/domain"
)

// Dashboarder define a interface do motor de agregação do dashboard
type Dashboarder interface {
	// GetDashboardData computa as quatro visões do dashboard (série mensal,
	// top produtos, share por marca e KPIs) sobre o snapshot atual,
	// aplicando o conjunto de filtros recebido
	GetDashboardData(filter *domain.DashboardFilter) (*domain.DashboardData, error)
}
