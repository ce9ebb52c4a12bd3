package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID         string          `json:"id"`
	StoreID    string          `json:"store_id"`
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	SoldAt     time.Time       `json:"sold_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

type RegisterSaleRequest struct {
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	SoldAt     string          `json:"sold_at"` // Formato YYYY-MM-DD, vazio para hoje
}

// SalesFilter delimita o período [From, To) das somas do razão de vendas
type SalesFilter struct {
	StoreID    string
	EmployeeID string
	From       time.Time
	To         time.Time
}

// DailySales é o total vendido em um dia do mês
type DailySales struct {
	Date   time.Time
	Amount decimal.Decimal
}

// EmployeeSales é o total vendido por uma colaboradora no período
type EmployeeSales struct {
	EmployeeID string
	Amount     decimal.Decimal
}
