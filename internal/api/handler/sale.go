package handler

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/smartmart/smartmart-api/internal/usecases/selling"
	"github.com/smartmart/smartmart-api/pkg/apiErrors"
	"github.com/smartmart/smartmart-api/pkg/log"
)

// ListSales retorna o histórico denormalizado de vendas, da mais recente
// para a mais antiga
func ListSales(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		history, err := service.GetSalesHistory()
		if err != nil {
			logger.WithError(err).Error("sales: erro ao montar histórico de vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de vendas", nil)
			return
		}

		writeJSON(w, history)
	})
}

func CreateSale(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var sale domain.Sale
		if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
			err = errors.Wrap(err, "decodificando corpo da requisição de venda")
			logger.WithError(err).Warn("sales: corpo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.CreateSale(&sale); err != nil {
			writeSaleError(w, logger, err, "sales: erro ao criar venda")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sale)
	})
}

func UpdateSale(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := paramAsInt(r, "id")
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador da venda deve ser numérico", nil)
			return
		}

		var sale domain.Sale
		if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
			err = errors.Wrap(err, "decodificando corpo da requisição de venda")
			logger.WithError(err).Warn("sales: corpo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}
		sale.ID = id

		if err := service.UpdateSale(&sale); err != nil {
			writeSaleError(w, logger, err, "sales: erro ao atualizar venda")
			return
		}

		writeJSON(w, sale)
	})
}

func DeleteSale(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := paramAsInt(r, "id")
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador da venda deve ser numérico", nil)
			return
		}

		if err := service.DeleteSale(id); err != nil {
			writeSaleError(w, logger, err, "sales: erro ao remover venda")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func NextSaleID(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		nextID, err := service.NextSaleID()
		if err != nil {
			logger.WithError(err).Error("sales: erro ao calcular próximo id")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular próximo id de venda", nil)
			return
		}

		writeJSON(w, map[string]int{"next_id": nextID})
	})
}

// ExportSalesCSV gera um CSV do histórico denormalizado para download
func ExportSalesCSV(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		history, err := service.GetSalesHistory()
		if err != nil {
			logger.WithError(err).Error("sales: erro ao exportar histórico de vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de vendas", nil)
			return
		}

		filename := fmt.Sprintf("vendas-%s.csv", time.Now().Format(time.DateOnly))

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		writer := csv.NewWriter(w)
		defer writer.Flush()

		header := []string{"id", "date", "product", "brand", "category", "quantity", "unit_price", "total_price"}
		if err := writer.Write(header); err != nil {
			logger.WithError(err).Error("sales: erro ao escrever CSV de vendas")
			return
		}

		for _, sale := range history {
			record := []string{
				strconv.Itoa(sale.ID),
				sale.Date,
				sale.ProductName,
				sale.Brand,
				sale.CategoryName,
				strconv.Itoa(sale.Quantity),
				strconv.FormatFloat(sale.UnitPrice, 'f', 2, 64),
				strconv.FormatFloat(sale.TotalPrice, 'f', 2, 64),
			}

			if err := writer.Write(record); err != nil {
				logger.WithError(err).Error("sales: erro ao escrever CSV de vendas")
				return
			}
		}
	})
}

func writeSaleError(w http.ResponseWriter, logger log.Logger, err error, logMsg string) {
	switch {
	case errors.Is(err, selling.ErrSaleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Venda não encontrada", nil)

	case errors.Is(err, selling.ErrInvalidSale):
		apiErrors.WriteError(w, apiErrors.ErrInvalidSale, "Venda com quantidade ou valor inválido", nil)

	case errors.Is(err, selling.ErrInvalidSaleDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidSale, "Data da venda inválida, use o formato YYYY-MM-DD", nil)

	default:
		logger.WithError(err).Error(logMsg)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro de operação em vendas", nil)
	}
}
