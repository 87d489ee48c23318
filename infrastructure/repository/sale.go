package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/smartmart/smartmart-api/infrastructure/database/postgres"
	"github.com/smartmart/smartmart-api/internal/domain"
)

const salesTable = "sales s"

type SaleRepository interface {
	List() ([]*domain.Sale, error)
	GetByID(id int) (*domain.Sale, error)
	Create(sale *domain.Sale) error
	Update(sale *domain.Sale) error
	Delete(id int) error
	NextID() (int, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) List() ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("s.id, s.product_id, s.quantity, s.total_price, s.date").
		From(salesTable).
		OrderBy("s.date DESC", "s.id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) GetByID(id int) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select("s.id, s.product_id, s.quantity, s.total_price, s.date").
		From(salesTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale := &domain.Sale{}
	var date time.Time

	err = r.conn.QueryRow(query, args...).Scan(
		&sale.ID,
		&sale.ProductID,
		&sale.Quantity,
		&sale.TotalPrice,
		&date,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	sale.Date = date.Format(time.DateOnly)

	return sale, nil
}

func (r *saleRepository) Create(sale *domain.Sale) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("sales").
		Columns("id", "product_id", "quantity", "total_price", "date").
		Values(
			sale.ID,
			sale.ProductID,
			sale.Quantity,
			sale.TotalPrice,
			sale.Date,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *saleRepository) Update(sale *domain.Sale) error {
	query, args, err := squirrel.
		Update("sales").
		Set("product_id", sale.ProductID).
		Set("quantity", sale.Quantity).
		Set("total_price", sale.TotalPrice).
		Set("date", sale.Date).
		Where(squirrel.Eq{"id": sale.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *saleRepository) Delete(id int) error {
	query, args, err := squirrel.
		Delete("sales").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *saleRepository) NextID() (int, error) {
	query, _, err := squirrel.
		Select("COALESCE(MAX(s.id), 0) + 1").
		From(salesTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var nextID int
	if err := r.conn.QueryRow(query).Scan(&nextID); err != nil {
		return 0, fmt.Errorf("erro ao buscar o próximo ID: %w", err)
	}

	return nextID, nil
}

func scanSale(rows *sql.Rows) (*domain.Sale, error) {
	sale := &domain.Sale{}
	var date time.Time

	err := rows.Scan(
		&sale.ID,
		&sale.ProductID,
		&sale.Quantity,
		&sale.TotalPrice,
		&date,
	)
	if err != nil {
		return nil, err
	}

	sale.Date = date.Format(time.DateOnly)

	return sale, nil
}
