package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/smartmart/smartmart-api/internal/usecases/cataloging"
	"github.com/smartmart/smartmart-api/pkg/apiErrors"
	"github.com/smartmart/smartmart-api/pkg/log"
)

// limite de 5MB para upload de CSV de produtos
const maxCSVUploadSize = 5 << 20

func ListProducts(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var categoryID *int
		if raw := r.URL.Query().Get("category_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "category_id deve ser numérico", nil)
				return
			}
			categoryID = &id
		}

		products, err := service.ListProducts(categoryID)
		if err != nil {
			logger.WithError(err).Error("products: erro ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar produtos", nil)
			return
		}

		writeJSON(w, products)
	})
}

func CreateProduct(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			err = errors.Wrap(err, "decodificando corpo da requisição de produto")
			logger.WithError(err).Warn("products: corpo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.CreateProduct(&product); err != nil {
			writeCatalogError(w, logger, err, "products: erro ao criar produto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(product)
	})
}

func UpdateProduct(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := paramAsInt(r, "id")
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador do produto deve ser numérico", nil)
			return
		}

		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			err = errors.Wrap(err, "decodificando corpo da requisição de produto")
			logger.WithError(err).Warn("products: corpo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}
		product.ID = id

		if err := service.UpdateProduct(&product); err != nil {
			writeCatalogError(w, logger, err, "products: erro ao atualizar produto")
			return
		}

		writeJSON(w, product)
	})
}

func DeleteProduct(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := paramAsInt(r, "id")
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador do produto deve ser numérico", nil)
			return
		}

		if err := service.DeleteProduct(id); err != nil {
			writeCatalogError(w, logger, err, "products: erro ao remover produto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func NextProductID(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		nextID, err := service.NextProductID()
		if err != nil {
			logger.WithError(err).Error("products: erro ao calcular próximo id")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular próximo id de produto", nil)
			return
		}

		writeJSON(w, map[string]int{"next_id": nextID})
	})
}

// UploadProductsCSV recebe um multipart com o campo "file" e importa os
// produtos do CSV. Linhas inválidas entram no relatório, não derrubam o upload
func UploadProductsCSV(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := r.ParseMultipartForm(maxCSVUploadSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Upload inválido, esperado multipart com campo file", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo file ausente no upload", nil)
			return
		}
		defer file.Close()

		logger.WithFields(log.Fields{
			"filename": header.Filename,
			"size":     header.Size,
		}).Info("products: iniciando importação de CSV")

		report, err := service.ImportProductsCSV(file)
		if err != nil {
			if errors.Is(err, cataloging.ErrEmptyCSV) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCSV, "Arquivo CSV vazio", nil)
				return
			}

			logger.WithError(err).Error("products: erro na importação de CSV")
			apiErrors.WriteError(w, apiErrors.ErrInvalidCSV, err.Error(), nil)
			return
		}

		writeJSON(w, report)
	})
}

func writeCatalogError(w http.ResponseWriter, logger log.Logger, err error, logMsg string) {
	switch {
	case errors.Is(err, cataloging.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)

	case errors.Is(err, cataloging.ErrCategoryNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCategoryNotFound, "Categoria não encontrada", nil)

	case errors.Is(err, cataloging.ErrInvalidProduct):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Produto com nome ou preço inválido", nil)

	case errors.Is(err, cataloging.ErrInvalidCategory):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Categoria com nome inválido", nil)

	default:
		logger.WithError(err).Error(logMsg)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro de operação no catálogo", nil)
	}
}

func paramAsInt(r *http.Request, name string) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return value, true
}
