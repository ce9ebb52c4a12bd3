package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyGoal é a meta mensal de uma loja (EmployeeID nulo) ou de uma colaboradora
type MonthlyGoal struct {
	ID               string              `json:"id"`
	StoreID          string              `json:"store_id"`
	EmployeeID       *string             `json:"employee_id"`
	MonthReference   string              `json:"month_reference"` // Formato YYYYMM (ex: 202511)
	TargetValue      decimal.Decimal     `json:"target_value"`
	SuperTargetValue decimal.NullDecimal `json:"super_target_value"`
	DailyWeights     map[string]float64  `json:"daily_weights,omitempty"` // data YYYY-MM-DD -> pontos percentuais
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// IsStoreGoal indica se a meta é da loja inteira
func (g *MonthlyGoal) IsStoreGoal() bool {
	return g.EmployeeID == nil || *g.EmployeeID == ""
}

// Target retorna a meta como float64 para o cálculo
func (g *MonthlyGoal) Target() float64 {
	return g.TargetValue.InexactFloat64()
}

// SuperTarget retorna a super meta, zero quando não cadastrada
func (g *MonthlyGoal) SuperTarget() float64 {
	if !g.SuperTargetValue.Valid {
		return 0
	}
	return g.SuperTargetValue.Decimal.InexactFloat64()
}

type UpsertGoalRequest struct {
	EmployeeID       *string            `json:"employee_id"`
	MonthReference   string             `json:"month_reference"`
	TargetValue      decimal.Decimal    `json:"target_value"`
	SuperTargetValue *decimal.Decimal   `json:"super_target_value"`
	DailyWeights     map[string]float64 `json:"daily_weights"`
}

// MonthReference monta a referência YYYYMM
func MonthReference(year int, month time.Month) string {
	return fmt.Sprintf("%04d%02d", year, int(month))
}

// MonthReferenceOf monta a referência YYYYMM do mês da data
func MonthReferenceOf(date time.Time) string {
	return MonthReference(date.Year(), date.Month())
}

// ParseMonthReference separa a referência YYYYMM em ano e mês
func ParseMonthReference(ref string) (int, time.Month, error) {
	if len(ref) != 6 {
		return 0, 0, fmt.Errorf("referência de mês %q deve estar no formato YYYYMM", ref)
	}

	year, err := strconv.Atoi(ref[0:4])
	if err != nil {
		return 0, 0, fmt.Errorf("ano inválido na referência %q: %w", ref, err)
	}

	month, err := strconv.Atoi(ref[4:6])
	if err != nil {
		return 0, 0, fmt.Errorf("mês inválido na referência %q: %w", ref, err)
	}

	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("mês %d fora do intervalo 1-12 na referência %q", month, ref)
	}

	return year, time.Month(month), nil
}
