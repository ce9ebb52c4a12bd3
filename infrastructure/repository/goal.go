package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/pkg/utils"
)

//go:generate mockgen -source=goal.go -destination=mocks/goal.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const monthlyGoalsTable = "monthly_goals"

var monthlyGoalColumns = []string{
	"id",
	"store_id",
	"employee_id",
	"month_reference",
	"target_value",
	"super_target_value",
	"daily_weights",
	"created_at",
	"updated_at",
}

type GoalRepository interface {
	GetStoreGoal(ctx context.Context, storeID, monthReference string) (*domain.MonthlyGoal, error)
	GetEmployeeGoal(ctx context.Context, storeID, employeeID, monthReference string) (*domain.MonthlyGoal, error)
	ListEmployeeGoals(ctx context.Context, storeID, monthReference string) ([]*domain.MonthlyGoal, error)
	ListStoreGoals(ctx context.Context, storeID string, monthReferences []string) ([]*domain.MonthlyGoal, error)
	ListMonthReferences(ctx context.Context, storeID string) ([]string, error)
	Upsert(ctx context.Context, goal *domain.MonthlyGoal) error
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) GetStoreGoal(ctx context.Context, storeID, monthReference string) (*domain.MonthlyGoal, error) {
	return r.getOne(ctx, squirrel.Eq{
		"store_id":        storeID,
		"employee_id":     nil,
		"month_reference": monthReference,
	})
}

func (r *goalRepository) GetEmployeeGoal(ctx context.Context, storeID, employeeID, monthReference string) (*domain.MonthlyGoal, error) {
	return r.getOne(ctx, squirrel.Eq{
		"store_id":        storeID,
		"employee_id":     employeeID,
		"month_reference": monthReference,
	})
}

func (r *goalRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.MonthlyGoal, error) {
	query, args, err := squirrel.
		Select(monthlyGoalColumns...).
		From(monthlyGoalsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal, err := scanMonthlyGoal(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar meta mensal: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) ListEmployeeGoals(ctx context.Context, storeID, monthReference string) ([]*domain.MonthlyGoal, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"store_id": storeID, "month_reference": monthReference},
		squirrel.NotEq{"employee_id": nil},
	})
}

func (r *goalRepository) ListStoreGoals(ctx context.Context, storeID string, monthReferences []string) ([]*domain.MonthlyGoal, error) {
	if len(monthReferences) == 0 {
		return []*domain.MonthlyGoal{}, nil
	}

	return r.list(ctx, squirrel.Eq{
		"store_id":        storeID,
		"employee_id":     nil,
		"month_reference": monthReferences,
	})
}

func (r *goalRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.MonthlyGoal, error) {
	query, args, err := squirrel.
		Select(monthlyGoalColumns...).
		From(monthlyGoalsTable).
		Where(where).
		OrderBy("month_reference ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar metas mensais: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.MonthlyGoal, 0)
	for rows.Next() {
		goal, err := scanMonthlyGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta mensal: %w", err)
		}
		goals = append(goals, goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}

func (r *goalRepository) ListMonthReferences(ctx context.Context, storeID string) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT month_reference").
		From(monthlyGoalsTable).
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("month_reference DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar períodos: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	return periods, rows.Err()
}

// Upsert grava a meta do mês. Existe uma única meta por loja, colaboradora e mês.
func (r *goalRepository) Upsert(ctx context.Context, goal *domain.MonthlyGoal) error {
	if goal.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da meta: %w", err)
		}
		goal.ID = id
	}

	var weights any
	if len(goal.DailyWeights) > 0 {
		raw, err := json.Marshal(goal.DailyWeights)
		if err != nil {
			return fmt.Errorf("erro ao serializar pesos diários: %w", err)
		}
		weights = string(raw)
	}

	query, args, err := squirrel.
		Insert(monthlyGoalsTable).
		Columns("id", "store_id", "employee_id", "month_reference", "target_value", "super_target_value", "daily_weights").
		Values(goal.ID, goal.StoreID, goal.EmployeeID, goal.MonthReference, goal.TargetValue, goal.SuperTargetValue, weights).
		Suffix(`
			ON CONFLICT (store_id, employee_id, month_reference) DO UPDATE SET
				target_value = EXCLUDED.target_value,
				super_target_value = EXCLUDED.super_target_value,
				daily_weights = EXCLUDED.daily_weights,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar meta mensal: %w", err)
	}

	return nil
}

func scanMonthlyGoal(row scanner) (*domain.MonthlyGoal, error) {
	goal := &domain.MonthlyGoal{}
	var weights []byte

	err := row.Scan(
		&goal.ID,
		&goal.StoreID,
		&goal.EmployeeID,
		&goal.MonthReference,
		&goal.TargetValue,
		&goal.SuperTargetValue,
		&weights,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(weights) > 0 {
		if err := json.Unmarshal(weights, &goal.DailyWeights); err != nil {
			return nil, fmt.Errorf("pesos diários inválidos na meta %s: %w", goal.ID, err)
		}
	}

	return goal, nil
}
