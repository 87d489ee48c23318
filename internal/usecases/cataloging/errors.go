package cataloging

import "errors"

var (
	ErrProductNotFound  = errors.New("produto não encontrado")
	ErrCategoryNotFound = errors.New("categoria não encontrada")
	ErrInvalidProduct   = errors.New("produto inválido")
	ErrInvalidCategory  = errors.New("categoria inválida")
	ErrEmptyCSV         = errors.New("arquivo CSV vazio")
)
