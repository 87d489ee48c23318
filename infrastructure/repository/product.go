package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/smartmart/smartmart-api/infrastructure/database/postgres"
	"github.com/smartmart/smartmart-api/internal/domain"
)

const productsTable = "products p"

type ProductRepository interface {
	List() ([]*domain.Product, error)
	ListByCategory(categoryID int) ([]*domain.Product, error)
	GetByID(id int) (*domain.Product, error)
	Create(product *domain.Product) error
	Update(product *domain.Product) error
	Delete(id int) error
	NextID() (int, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) List() ([]*domain.Product, error) {
	return r.list(nil)
}

func (r *productRepository) ListByCategory(categoryID int) ([]*domain.Product, error) {
	return r.list(&categoryID)
}

func (r *productRepository) list(categoryID *int) ([]*domain.Product, error) {
	builder := squirrel.
		Select("p.id, p.name, p.description, p.price, p.brand, p.category_id, c.name").
		From(productsTable).
		LeftJoin("categories c ON c.id = p.category_id").
		OrderBy("p.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if categoryID != nil {
		builder = builder.Where(squirrel.Eq{"p.category_id": *categoryID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetByID(id int) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.description, p.price, p.brand, p.category_id, c.name").
		From(productsTable).
		LeftJoin("categories c ON c.id = p.category_id").
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	product := &domain.Product{}
	var description, brand, categoryName sql.NullString

	err = row.Scan(
		&product.ID,
		&product.Name,
		&description,
		&product.Price,
		&brand,
		&product.CategoryID,
		&categoryName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	product.Description = description.String
	product.Brand = brand.String
	product.CategoryName = categoryName.String

	return product, nil
}

func (r *productRepository) Create(product *domain.Product) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("products").
		Columns("id", "name", "description", "price", "brand", "category_id").
		Values(
			product.ID,
			product.Name,
			product.Description,
			product.Price,
			product.Brand,
			product.CategoryID,
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

func (r *productRepository) Update(product *domain.Product) error {
	query, args, err := squirrel.
		Update("products").
		Set("name", product.Name).
		Set("description", product.Description).
		Set("price", product.Price).
		Set("brand", product.Brand).
		Set("category_id", product.CategoryID).
		Where(squirrel.Eq{"id": product.ID}).
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

func (r *productRepository) Delete(id int) error {
	query, args, err := squirrel.
		Delete("products").
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

func (r *productRepository) NextID() (int, error) {
	query, _, err := squirrel.
		Select("COALESCE(MAX(p.id), 0) + 1").
		From(productsTable).
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

func scanProduct(rows *sql.Rows) (*domain.Product, error) {
	product := &domain.Product{}
	var description, brand, categoryName sql.NullString

	err := rows.Scan(
		&product.ID,
		&product.Name,
		&description,
		&product.Price,
		&brand,
		&product.CategoryID,
		&categoryName,
	)
	if err != nil {
		return nil, err
	}

	product.Description = description.String
	product.Brand = brand.String
	product.CategoryName = categoryName.String

	return product, nil
}
