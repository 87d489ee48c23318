package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/smartmart/smartmart-api/internal/scheduler"
	"github.com/smartmart/smartmart-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMonthlySummary = "monthly-summary"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MonthlySummarySyncService *scheduler.MonthlySummarySyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMonthlySummary, CronJobTypeAll:
			if services.MonthlySummarySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de materialização de resumos mensais não disponível", nil)
				return
			}

			if err := services.MonthlySummarySyncService.TriggerManualSync(); err != nil {
				logrus.WithError(err).Error("Erro na execução manual da materialização de resumos mensais")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro na execução da cron job", nil)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: monthly-summary, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job executada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.MonthlySummarySyncService != nil {
			status[CronJobTypeMonthlySummary] = services.MonthlySummarySyncService.Status()
		}

		writeJSON(w, status)
	}
}
