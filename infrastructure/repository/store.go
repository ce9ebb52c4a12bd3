// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/internal/domain"
)

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

const storesTable = "stores"

var storeColumns = []string{"id", "name", "whatsapp_phone", "active", "created_at", "updated_at"}

type StoreRepository interface {
	GetByID(ctx context.Context, storeID string) (*domain.Store, error)
	ListActive(ctx context.Context) ([]*domain.Store, error)
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) GetByID(ctx context.Context, storeID string) (*domain.Store, error) {
	query, args, err := squirrel.
		Select(storeColumns...).
		From(storesTable).
		Where(squirrel.Eq{"id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store, err := scanStore(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar loja %s: %w", storeID, err)
	}

	return store, nil
}

func (r *storeRepository) ListActive(ctx context.Context) ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select(storeColumns...).
		From(storesTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lojas: %w", err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

// scanner é satisfeito por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanStore(row scanner) (*domain.Store, error) {
	store := &domain.Store{}

	err := row.Scan(
		&store.ID,
		&store.Name,
		&store.WhatsappPhone,
		&store.Active,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return store, nil
}
