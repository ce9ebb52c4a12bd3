package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/pkg/utils"
)

//go:generate mockgen -source=gincana.go -destination=mocks/gincana.go -package=mocks

const (
	gincanasTable     = "gincanas"
	participantsTable = "gincana_participants gp"
)

var gincanaColumns = []string{"id", "store_id", "week_reference", "title", "prize", "target_value", "super_target_value", "created_at"}

type GincanaRepository interface {
	Create(ctx context.Context, gincana *domain.Gincana) error
	GetByID(ctx context.Context, gincanaID string) (*domain.Gincana, error)
	ListByStore(ctx context.Context, storeID string) ([]*domain.Gincana, error)
}

type gincanaRepository struct {
	conn *postgres.Connection
}

func NewGincanaRepository(conn *postgres.Connection) GincanaRepository {
	return &gincanaRepository{
		conn: conn,
	}
}

// Create grava a gincana e as participantes na mesma transação
func (r *gincanaRepository) Create(ctx context.Context, gincana *domain.Gincana) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id da gincana: %w", err)
	}
	gincana.ID = id

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert(gincanasTable).
			Columns("id", "store_id", "week_reference", "title", "prize", "target_value", "super_target_value").
			Values(gincana.ID, gincana.StoreID, gincana.WeekReference, gincana.Title, gincana.Prize, gincana.TargetValue, gincana.SuperTargetValue).
			Suffix("RETURNING created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&gincana.CreatedAt); err != nil {
			return fmt.Errorf("erro ao gravar gincana: %w", err)
		}

		if len(gincana.Participants) == 0 {
			return nil
		}

		insert := squirrel.
			Insert("gincana_participants").
			Columns("gincana_id", "employee_id", "target_value", "super_target_value").
			PlaceholderFormat(squirrel.Dollar)

		for _, p := range gincana.Participants {
			insert = insert.Values(gincana.ID, p.EmployeeID, p.TargetValue, p.SuperTargetValue)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de participantes: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao gravar participantes: %w", err)
		}

		return nil
	})
}

func (r *gincanaRepository) GetByID(ctx context.Context, gincanaID string) (*domain.Gincana, error) {
	query, args, err := squirrel.
		Select(gincanaColumns...).
		From(gincanasTable).
		Where(squirrel.Eq{"id": gincanaID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	gincana, err := scanGincana(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar gincana %s: %w", gincanaID, err)
	}

	gincana.Participants, err = r.listParticipants(ctx, gincana.ID)
	if err != nil {
		return nil, err
	}

	return gincana, nil
}

// ListByStore retorna as gincanas sem participantes; a ordenação por semana fica com o chamador
func (r *gincanaRepository) ListByStore(ctx context.Context, storeID string) ([]*domain.Gincana, error) {
	query, args, err := squirrel.
		Select(gincanaColumns...).
		From(gincanasTable).
		Where(squirrel.Eq{"store_id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar gincanas da loja %s: %w", storeID, err)
	}
	defer rows.Close()

	gincanas := make([]*domain.Gincana, 0)
	for rows.Next() {
		gincana, err := scanGincana(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear gincana: %w", err)
		}
		gincanas = append(gincanas, gincana)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return gincanas, nil
}

func (r *gincanaRepository) listParticipants(ctx context.Context, gincanaID string) ([]domain.GincanaParticipant, error) {
	query, args, err := squirrel.
		Select("gp.employee_id", "e.name", "gp.target_value", "gp.super_target_value").
		From(participantsTable).
		Join("employees e ON e.id = gp.employee_id").
		Where(squirrel.Eq{"gp.gincana_id": gincanaID}).
		OrderBy("e.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar participantes da gincana %s: %w", gincanaID, err)
	}
	defer rows.Close()

	participants := make([]domain.GincanaParticipant, 0)
	for rows.Next() {
		var p domain.GincanaParticipant
		if err := rows.Scan(&p.EmployeeID, &p.EmployeeName, &p.TargetValue, &p.SuperTargetValue); err != nil {
			return nil, fmt.Errorf("erro ao escanear participante: %w", err)
		}
		participants = append(participants, p)
	}

	return participants, rows.Err()
}

func scanGincana(row scanner) (*domain.Gincana, error) {
	gincana := &domain.Gincana{}

	err := row.Scan(
		&gincana.ID,
		&gincana.StoreID,
		&gincana.WeekReference,
		&gincana.Title,
		&gincana.Prize,
		&gincana.TargetValue,
		&gincana.SuperTargetValue,
		&gincana.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return gincana, nil
}
