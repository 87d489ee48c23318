package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/smartmart/smartmart-api/infrastructure/database/postgres"
	"github.com/smartmart/smartmart-api/internal/domain"
)

const categoriesTable = "categories c"

type CategoryRepository interface {
	List() ([]*domain.Category, error)
	GetByID(id int) (*domain.Category, error)
	Create(category *domain.Category) error
	Update(category *domain.Category) error
	Delete(id int) error
}

type categoryRepository struct {
	conn *postgres.Connection
}

func NewCategoryRepository(conn *postgres.Connection) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) List() ([]*domain.Category, error) {
	query, args, err := squirrel.
		Select("c.id, c.name").
		From(categoriesTable).
		OrderBy("c.id ASC").
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

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(id int) (*domain.Category, error) {
	query, args, err := squirrel.
		Select("c.id, c.name").
		From(categoriesTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	category := &domain.Category{}
	err = r.conn.QueryRow(query, args...).Scan(&category.ID, &category.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) Create(category *domain.Category) error {
	builder := squirrel.StatementBuilder.
		Insert("categories").
		Columns("name").
		Values(category.Name).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	if category.ID > 0 {
		builder = squirrel.StatementBuilder.
			Insert("categories").
			Columns("id", "name").
			Values(category.ID, category.Name).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&category.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *categoryRepository) Update(category *domain.Category) error {
	query, args, err := squirrel.
		Update("categories").
		Set("name", category.Name).
		Where(squirrel.Eq{"id": category.ID}).
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

func (r *categoryRepository) Delete(id int) error {
	query, args, err := squirrel.
		Delete("categories").
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
