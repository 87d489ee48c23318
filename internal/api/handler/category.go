package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/smartmart/smartmart-api/internal/usecases/cataloging"
	"github.com/smartmart/smartmart-api/pkg/apiErrors"
	"github.com/smartmart/smartmart-api/pkg/log"
)

func ListCategories(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		categories, err := service.ListCategories()
		if err != nil {
			logger.WithError(err).Error("categories: erro ao listar categorias")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar categorias", nil)
			return
		}

		writeJSON(w, categories)
	})
}

func CreateCategory(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var category domain.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			err = errors.Wrap(err, "decodificando corpo da requisição de categoria")
			logger.WithError(err).Warn("categories: corpo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.CreateCategory(&category); err != nil {
			if errors.Is(err, cataloging.ErrInvalidCategory) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Categoria com nome inválido", nil)
				return
			}

			logger.WithError(err).Error("categories: erro ao criar categoria")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar categoria", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(category)
	})
}
