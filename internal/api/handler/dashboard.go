package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/smartmart/smartmart-api/internal/usecases/dashboarding"
	"github.com/smartmart/smartmart-api/internal/usecases/summarizing"
	"github.com/smartmart/smartmart-api/pkg/apiErrors"
	"github.com/smartmart/smartmart-api/pkg/log"
	"github.com/smartmart/smartmart-api/pkg/utils"
)

// GetDashboard monta a visão agregada do dashboard a partir dos filtros da
// query string. Filtro malformado não é erro: a resposta é o dashboard vazio,
// com os filtros ecoados, para a tela renderizar o estado "sem resultados"
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, ok := parseDashboardFilter(r)
		if !ok {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
			}).Warn("dashboard: filtro malformado, retornando dashboard vazio")

			writeJSON(w, domain.NewEmptyDashboardData(filter))
			return
		}

		data, err := service.GetDashboardData(filter)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao montar visão agregada")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dados do dashboard", nil)
			return
		}

		logger.WithFields(log.Fields{
			"months":    len(data.ChartData),
			"brands":    len(data.SalesByBrand),
			"top_items": len(data.TopProducts),
		}).Info("dashboard: visão agregada montada com sucesso")

		writeJSON(w, data)
	})
}

// GetMonthlySummaries retorna os agregados mensais materializados pelo agendador
func GetMonthlySummaries(service summarizing.SummaryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		response, err := service.GetMonthlySummaries()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao buscar resumos mensais")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar resumos mensais", nil)
			return
		}

		writeJSON(w, response)
	})
}

// parseDashboardFilter lê os filtros da query string. O segundo retorno
// indica se todos os valores presentes são bem formados
func parseDashboardFilter(r *http.Request) (*domain.DashboardFilter, bool) {
	query := r.URL.Query()

	filter := &domain.DashboardFilter{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		Brand:     query.Get("brand"),
	}

	if _, err := utils.ParseDate(filter.StartDate); err != nil {
		return filter, false
	}

	if _, err := utils.ParseDate(filter.EndDate); err != nil {
		return filter, false
	}

	if raw := query.Get("category_id"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			return filter, false
		}
		filter.CategoryID = &categoryID
	}

	return filter, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}
