package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/pkg/utils"
)

//go:generate mockgen -source=offday.go -destination=mocks/offday.go -package=mocks

const offDaysTable = "off_days"

var offDayColumns = []string{"id", "store_id", "employee_id", "date", "created_at"}

type OffDayRepository interface {
	Create(ctx context.Context, offDay *domain.OffDay) error
	GetByID(ctx context.Context, offDayID string) (*domain.OffDay, error)
	Delete(ctx context.Context, offDayID string) error
	// ListByStore retorna as folgas da loja no período [from, to)
	ListByStore(ctx context.Context, storeID string, from, to time.Time) ([]*domain.OffDay, error)
}

type offDayRepository struct {
	conn *postgres.Connection
}

func NewOffDayRepository(conn *postgres.Connection) OffDayRepository {
	return &offDayRepository{
		conn: conn,
	}
}

// Create agenda a folga. Agendar duas vezes o mesmo dia mantém o registro existente.
func (r *offDayRepository) Create(ctx context.Context, offDay *domain.OffDay) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id da folga: %w", err)
	}

	query, args, err := squirrel.
		Insert(offDaysTable).
		Columns("id", "store_id", "employee_id", "date").
		Values(id, offDay.StoreID, offDay.EmployeeID, offDay.Date.Format(time.DateOnly)).
		Suffix(`
			ON CONFLICT (employee_id, date) DO UPDATE SET store_id = EXCLUDED.store_id
			RETURNING id, created_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&offDay.ID, &offDay.CreatedAt); err != nil {
		return fmt.Errorf("erro ao agendar folga: %w", err)
	}

	return nil
}

func (r *offDayRepository) GetByID(ctx context.Context, offDayID string) (*domain.OffDay, error) {
	query, args, err := squirrel.
		Select(offDayColumns...).
		From(offDaysTable).
		Where(squirrel.Eq{"id": offDayID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	offDay, err := scanOffDay(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar folga %s: %w", offDayID, err)
	}

	return offDay, nil
}

func (r *offDayRepository) Delete(ctx context.Context, offDayID string) error {
	query, args, err := squirrel.
		Delete(offDaysTable).
		Where(squirrel.Eq{"id": offDayID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover folga %s: %w", offDayID, err)
	}

	return nil
}

func (r *offDayRepository) ListByStore(ctx context.Context, storeID string, from, to time.Time) ([]*domain.OffDay, error) {
	query, args, err := squirrel.
		Select(offDayColumns...).
		From(offDaysTable).
		Where(squirrel.Eq{"store_id": storeID}).
		Where(squirrel.GtOrEq{"date": from.Format(time.DateOnly)}).
		Where(squirrel.Lt{"date": to.Format(time.DateOnly)}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar folgas da loja %s: %w", storeID, err)
	}
	defer rows.Close()

	offDays := make([]*domain.OffDay, 0)
	for rows.Next() {
		offDay, err := scanOffDay(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear folga: %w", err)
		}
		offDays = append(offDays, offDay)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return offDays, nil
}

func scanOffDay(row scanner) (*domain.OffDay, error) {
	offDay := &domain.OffDay{}

	err := row.Scan(
		&offDay.ID,
		&offDay.StoreID,
		&offDay.EmployeeID,
		&offDay.Date,
		&offDay.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	offDay.Date = utils.DateOnly(offDay.Date)
	return offDay, nil
}
