package goalcalc

import "time"

// MonthPlan é a meta de um mês com a sua tabela de pesos
type MonthPlan struct {
	Target      float64
	SuperTarget float64
	Weights     WeightTable
}

// DaySuggestion é a fatia base de um dia dentro de um intervalo
type DaySuggestion struct {
	Date        time.Time `json:"date"`
	Weight      float64   `json:"weight"`
	Target      float64   `json:"target"`
	SuperTarget float64   `json:"super_target"`
	Covered     bool      `json:"covered"` // falso quando não há meta cadastrada para o mês do dia
}

// RangeSuggestion soma as metas base de um intervalo de dias
type RangeSuggestion struct {
	Target      float64         `json:"target"`
	SuperTarget float64         `json:"super_target"`
	Days        []DaySuggestion `json:"days"`
}

// SuggestRange soma as metas base diárias de from até to (inclusive). Cada dia usa o plano
// do próprio mês, então uma semana que cruza a virada do mês combina as duas metas.
func SuggestRange(from, to time.Time, plans []MonthPlan) RangeSuggestion {
	var suggestion RangeSuggestion

	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		day := DaySuggestion{Date: date}

		for _, plan := range plans {
			if !plan.Weights.Contains(date) {
				continue
			}

			day.Covered = true
			day.Weight = plan.Weights.Weight(date.Day())
			day.Target = BaseDailyTarget(plan.Target, plan.Weights, date.Day())
			day.SuperTarget = BaseDailyTarget(plan.SuperTarget, plan.Weights, date.Day())
			break
		}

		suggestion.Target += day.Target
		suggestion.SuperTarget += day.SuperTarget
		suggestion.Days = append(suggestion.Days, day)
	}

	return suggestion
}
