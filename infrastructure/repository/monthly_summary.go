package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/smartmart/smartmart-api/infrastructure/database/postgres"
	"github.com/smartmart/smartmart-api/internal/domain"
)

const monthlySummariesTable = "monthly_summaries ms"

type MonthlySummaryRepository interface {
	List() ([]*domain.MonthlySummary, error)
	SaveOrUpdate(summary *domain.MonthlySummary) error
}

type monthlySummaryRepository struct {
	conn *postgres.Connection
}

func NewMonthlySummaryRepository(conn *postgres.Connection) MonthlySummaryRepository {
	return &monthlySummaryRepository{
		conn: conn,
	}
}

func (r *monthlySummaryRepository) List() ([]*domain.MonthlySummary, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.month, ms.revenue, ms.quantity, ms.sales_count, ms.created_at, ms.updated_at").
		From(monthlySummariesTable).
		OrderBy("ms.month ASC").
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

	summaries := make([]*domain.MonthlySummary, 0)
	for rows.Next() {
		summary := &domain.MonthlySummary{}
		err := rows.Scan(
			&summary.ID,
			&summary.Month,
			&summary.Revenue,
			&summary.Quantity,
			&summary.SalesCount,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo mensal: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *monthlySummaryRepository) SaveOrUpdate(summary *domain.MonthlySummary) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("monthly_summaries").
		Columns("month", "revenue", "quantity", "sales_count").
		Values(
			summary.Month,
			summary.Revenue,
			summary.Quantity,
			summary.SalesCount,
		).
		Suffix(`
			ON CONFLICT (month) DO UPDATE SET
				revenue = EXCLUDED.revenue,
				quantity = EXCLUDED.quantity,
				sales_count = EXCLUDED.sales_count,
				updated_at = NOW()
		`).
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
