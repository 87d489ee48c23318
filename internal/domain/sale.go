package domain

// Rótulos usados quando o join de uma venda não encontra o produto ou a
// categoria. A venda nunca é descartada: ela continua entrando em todos os
// somatórios do dashboard.
const (
	DeletedProductLabel  = "Produto Excluído"
	DefaultCategoryLabel = "Geral"
)

type Sale struct {
	ID         int     `json:"id"`
	ProductID  int     `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Date       string  `json:"date"` // formato YYYY-MM-DD
}

// DenormalizedSale é uma venda enriquecida com os campos do produto e da
// categoria relacionados, para exibição e agregação
type DenormalizedSale struct {
	Sale

	ProductName        string  `json:"product_name"`
	ProductDescription string  `json:"product_description"`
	Brand              string  `json:"brand,omitempty"`
	CategoryName       string  `json:"category_name"`
	UnitPrice          float64 `json:"unit_price"`
}
