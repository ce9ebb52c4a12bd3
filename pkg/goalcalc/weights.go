// Package goalcalc calcula a meta diária dinâmica de lojas e colaboradoras.
//
// Todas as funções são puras: recebem a meta mensal, a curva de pesos diários,
// o realizado do mês e a data de referência ("hoje") já resolvidos pelo chamador.
// Nenhuma função do pacote lê o relógio do sistema ou acessa dados externos.
package goalcalc

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidCalendarInput indica mês fora de 1-12 ou data fora do mês da tabela de pesos
var ErrInvalidCalendarInput = errors.New("entrada de calendário inválida")

// WeightTable é a tabela completa de pesos do mês, em pontos percentuais por dia.
// O índice 0 corresponde ao dia 1.
type WeightTable struct {
	year       int
	month      time.Month
	weights    []float64
	configured []bool
	uniform    bool
}

// DaysInMonth retorna a quantidade de dias corridos do mês
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ResolveWeights monta a tabela de pesos do mês.
//
// Sem mapa (ou mapa vazio) cada dia recebe 100/diasNoMês. Com mapa, cada dia recebe
// exatamente o peso informado para a sua data (YYYY-MM-DD) e zero quando ausente:
// os dias não listados não são redistribuídos.
func ResolveWeights(year int, month time.Month, sparse map[string]float64) (WeightTable, error) {
	if month < time.January || month > time.December {
		return WeightTable{}, fmt.Errorf("%w: mês %d fora do intervalo 1-12", ErrInvalidCalendarInput, int(month))
	}

	days := DaysInMonth(year, month)
	table := WeightTable{
		year:       year,
		month:      month,
		weights:    make([]float64, days),
		configured: make([]bool, days),
	}

	if len(sparse) == 0 {
		share := 100 / float64(days)
		for i := range table.weights {
			table.weights[i] = share
			table.configured[i] = true
		}
		table.uniform = true
		return table, nil
	}

	for i := range table.weights {
		key := time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
		weight, ok := sparse[key]
		if !ok {
			continue
		}

		table.configured[i] = true
		if weight > 0 && !math.IsInf(weight, 1) {
			table.weights[i] = weight
		}
	}

	return table, nil
}

// Year retorna o ano da tabela
func (t WeightTable) Year() int { return t.year }

// Month retorna o mês da tabela
func (t WeightTable) Month() time.Month { return t.month }

// Days retorna a quantidade de dias do mês da tabela
func (t WeightTable) Days() int { return len(t.weights) }

// IsUniform indica se a tabela foi gerada sem mapa de pesos
func (t WeightTable) IsUniform() bool { return t.uniform }

// Weight retorna o peso do dia (1..Days). Dias fora do mês pesam zero.
func (t WeightTable) Weight(day int) float64 {
	if day < 1 || day > len(t.weights) {
		return 0
	}
	return t.weights[day-1]
}

// IsConfigured indica se o dia possui peso explícito na tabela
func (t WeightTable) IsConfigured(day int) bool {
	if day < 1 || day > len(t.configured) {
		return false
	}
	return t.configured[day-1]
}

// Weights retorna uma cópia dos pesos, dia 1 no índice 0
func (t WeightTable) Weights() []float64 {
	out := make([]float64, len(t.weights))
	copy(out, t.weights)
	return out
}

// Total retorna a soma dos pesos do mês
func (t WeightTable) Total() float64 {
	if t.uniform {
		return 100
	}

	var total float64
	for _, w := range t.weights {
		total += w
	}
	return total
}

// Contains indica se a data pertence ao mês da tabela
func (t WeightTable) Contains(date time.Time) bool {
	return date.Year() == t.year && date.Month() == t.month
}

// dayOf converte a data no dia do mês, exigindo que pertença ao mês da tabela
func (t WeightTable) dayOf(date time.Time) (int, error) {
	if len(t.weights) == 0 {
		return 0, fmt.Errorf("%w: tabela de pesos vazia", ErrInvalidCalendarInput)
	}

	if !t.Contains(date) {
		return 0, fmt.Errorf("%w: data %s fora do mês %04d-%02d",
			ErrInvalidCalendarInput, date.Format(time.DateOnly), t.year, int(t.month))
	}

	return date.Day(), nil
}
