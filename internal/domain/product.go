package domain

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Brand       string  `json:"brand"`
	CategoryID  int     `json:"category_id"`

	// CategoryName é preenchido pelo join na listagem, não é persistido
	CategoryName string `json:"category_name,omitempty"`
}

// ImportReport resume o resultado de uma importação de produtos via CSV
type ImportReport struct {
	Message      string   `json:"message"`
	SuccessCount int      `json:"success_count"`
	Errors       []string `json:"errors"`
}
