package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/pkg/utils"
)

//go:generate mockgen -source=sale.go -destination=mocks/sale.go -package=mocks

const salesTable = "sales s"

// Vendas registradas depois do desligamento da colaboradora não entram no realizado
var activeSellerCutoff = squirrel.Expr("(e.deactivated_at IS NULL OR s.sold_at < e.deactivated_at)")

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	SumByStore(ctx context.Context, filter domain.SalesFilter) (decimal.Decimal, error)
	SumByEmployee(ctx context.Context, filter domain.SalesFilter) ([]domain.EmployeeSales, error)
	DailyTotals(ctx context.Context, filter domain.SalesFilter) ([]domain.DailySales, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	if sale.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da venda: %w", err)
		}
		sale.ID = id
	}

	query, args, err := squirrel.
		Insert("sales").
		Columns("id", "store_id", "employee_id", "amount", "sold_at").
		Values(sale.ID, sale.StoreID, sale.EmployeeID, sale.Amount, sale.SoldAt.Format(time.DateOnly)).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&sale.CreatedAt); err != nil {
		return fmt.Errorf("erro ao registrar venda: %w", err)
	}

	return nil
}

// SumByStore soma as vendas da loja (ou da colaboradora, se informada) no período [From, To)
func (r *saleRepository) SumByStore(ctx context.Context, filter domain.SalesFilter) (decimal.Decimal, error) {
	query, args, err := r.filtered(squirrel.Select("COALESCE(SUM(s.amount), 0)"), filter).ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar vendas da loja %s: %w", filter.StoreID, err)
	}

	return total, nil
}

func (r *saleRepository) SumByEmployee(ctx context.Context, filter domain.SalesFilter) ([]domain.EmployeeSales, error) {
	query, args, err := r.filtered(squirrel.Select("s.employee_id", "COALESCE(SUM(s.amount), 0)"), filter).
		GroupBy("s.employee_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar vendas por colaboradora: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.EmployeeSales, 0)
	for rows.Next() {
		var item domain.EmployeeSales
		if err := rows.Scan(&item.EmployeeID, &item.Amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear soma de vendas: %w", err)
		}
		totals = append(totals, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func (r *saleRepository) DailyTotals(ctx context.Context, filter domain.SalesFilter) ([]domain.DailySales, error) {
	query, args, err := r.filtered(squirrel.Select("s.sold_at", "COALESCE(SUM(s.amount), 0)"), filter).
		GroupBy("s.sold_at").
		OrderBy("s.sold_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas diárias: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.DailySales, 0)
	for rows.Next() {
		var item domain.DailySales
		if err := rows.Scan(&item.Date, &item.Amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda diária: %w", err)
		}
		item.Date = utils.DateOnly(item.Date)
		totals = append(totals, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func (r *saleRepository) filtered(builder squirrel.SelectBuilder, filter domain.SalesFilter) squirrel.SelectBuilder {
	builder = builder.
		From(salesTable).
		Join("employees e ON e.id = s.employee_id").
		Where(squirrel.Eq{"s.store_id": filter.StoreID}).
		Where(squirrel.GtOrEq{"s.sold_at": filter.From.Format(time.DateOnly)}).
		Where(squirrel.Lt{"s.sold_at": filter.To.Format(time.DateOnly)}).
		Where(activeSellerCutoff).
		PlaceholderFormat(squirrel.Dollar)

	if filter.EmployeeID != "" {
		builder = builder.Where(squirrel.Eq{"s.employee_id": filter.EmployeeID})
	}

	return builder
}
