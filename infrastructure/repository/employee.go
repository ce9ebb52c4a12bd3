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
)

//go:generate mockgen -source=employee.go -destination=mocks/employee.go -package=mocks

const employeesTable = "employees"

var employeeColumns = []string{"id", "store_id", "name", "phone", "active", "deactivated_at", "created_at", "updated_at"}

type EmployeeRepository interface {
	GetByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	// ListByStore retorna as colaboradoras ativas e as desligadas a partir de since
	ListByStore(ctx context.Context, storeID string, since time.Time) ([]*domain.Employee, error)
}

type employeeRepository struct {
	conn *postgres.Connection
}

func NewEmployeeRepository(conn *postgres.Connection) EmployeeRepository {
	return &employeeRepository{
		conn: conn,
	}
}

func (r *employeeRepository) GetByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query, args, err := squirrel.
		Select(employeeColumns...).
		From(employeesTable).
		Where(squirrel.Eq{"id": employeeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	employee, err := scanEmployee(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar colaboradora %s: %w", employeeID, err)
	}

	return employee, nil
}

func (r *employeeRepository) ListByStore(ctx context.Context, storeID string, since time.Time) ([]*domain.Employee, error) {
	query, args, err := squirrel.
		Select(employeeColumns...).
		From(employeesTable).
		Where(squirrel.Eq{"store_id": storeID}).
		Where(squirrel.Or{
			squirrel.Eq{"deactivated_at": nil},
			squirrel.GtOrEq{"deactivated_at": since.Format(time.DateOnly)},
		}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar colaboradoras da loja %s: %w", storeID, err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear colaboradora: %w", err)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return employees, nil
}

func scanEmployee(row scanner) (*domain.Employee, error) {
	employee := &domain.Employee{}

	err := row.Scan(
		&employee.ID,
		&employee.StoreID,
		&employee.Name,
		&employee.Phone,
		&employee.Active,
		&employee.DeactivatedAt,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return employee, nil
}
