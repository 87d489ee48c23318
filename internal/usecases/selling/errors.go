package selling

import "errors"

var (
	ErrSaleNotFound    = errors.New("venda não encontrada")
	ErrInvalidSale     = errors.New("venda inválida")
	ErrInvalidSaleDate = errors.New("data da venda inválida")
)
