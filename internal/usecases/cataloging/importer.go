package cataloging

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/smartmart/smartmart-api/internal/domain"
	"github.com/smartmart/smartmart-api/pkg/utils"
)

var requiredColumns = []string{"name", "price", "category_id"}

// ImportProductsCSV processa um CSV de produtos linha a linha. Linhas com erro
// são reportadas individualmente e não interrompem a importação das demais.
// Produto com id já existente é atualizado, os demais são inseridos
func (s *Service) ImportProductsCSV(reader io.Reader) (*domain.ImportReport, error) {
	batchID, err := utils.ShortID()
	if err != nil {
		return nil, err
	}

	log := logrus.WithField("import_batch_id", batchID)

	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o cabeçalho do CSV: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepository.List()
	if err != nil {
		return nil, err
	}

	knownCategories := make(map[int]bool, len(categories))
	for _, category := range categories {
		knownCategories[category.ID] = true
	}

	report := &domain.ImportReport{Errors: []string{}}
	line := 1

	for {
		line++

		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("linha %d: %v", line, err))
			continue
		}

		product, err := parseRow(record, columns)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("linha %d: %v", line, err))
			continue
		}

		if !knownCategories[product.CategoryID] {
			report.Errors = append(report.Errors,
				fmt.Sprintf("linha %d: categoria %d não encontrada", line, product.CategoryID))
			continue
		}

		if err := s.upsertProduct(product); err != nil {
			log.WithError(err).WithField("line", line).Error("Erro ao persistir produto importado")
			report.Errors = append(report.Errors, fmt.Sprintf("linha %d: %v", line, err))
			continue
		}

		report.SuccessCount++
	}

	report.Message = fmt.Sprintf("%d produtos importados com sucesso", report.SuccessCount)

	log.WithFields(logrus.Fields{
		"success_count": report.SuccessCount,
		"error_count":   len(report.Errors),
	}).Info("Importação de produtos concluída")

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		log.Debugf("Relatório da importação: %s", utils.PrettyJson(report))
	}

	return report, nil
}

func (s *Service) upsertProduct(product *domain.Product) error {
	if product.ID > 0 {
		existing, err := s.productRepository.GetByID(product.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return s.productRepository.Update(product)
		}

		return s.productRepository.Create(product)
	}

	nextID, err := s.productRepository.NextID()
	if err != nil {
		return err
	}
	product.ID = nextID

	return s.productRepository.Create(product)
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("coluna obrigatória ausente no CSV: %s", required)
		}
	}

	return columns, nil
}

func parseRow(record []string, columns map[string]int) (*domain.Product, error) {
	product := &domain.Product{
		Name:        field(record, columns, "name"),
		Description: field(record, columns, "description"),
		Brand:       field(record, columns, "brand"),
	}

	if product.Name == "" {
		return nil, fmt.Errorf("nome do produto é obrigatório")
	}

	if raw := field(record, columns, "id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("id inválido: %q", raw)
		}
		product.ID = id
	}

	price, err := strconv.ParseFloat(field(record, columns, "price"), 64)
	if err != nil {
		return nil, fmt.Errorf("preço inválido: %q", field(record, columns, "price"))
	}
	if price < 0 {
		return nil, fmt.Errorf("preço não pode ser negativo")
	}
	product.Price = price

	categoryID, err := strconv.Atoi(field(record, columns, "category_id"))
	if err != nil {
		return nil, fmt.Errorf("category_id inválido: %q", field(record, columns, "category_id"))
	}
	product.CategoryID = categoryID

	return product, nil
}

func field(record []string, columns map[string]int, name string) string {
	index, ok := columns[name]
	if !ok || index >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[index])
}
