package goalcalc

import (
	"math"
	"time"
)

// Situation é o ritmo da loja ou colaboradora em relação à curva do mês
type Situation string

const (
	SituationAhead   Situation = "ahead"
	SituationBehind  Situation = "behind"
	SituationNeutral Situation = "neutral"
)

// CeilingShare é a fração máxima da meta mensal que uma meta diária pode atingir
const CeilingShare = 0.5

// DailyTarget é o resultado do cálculo da meta diária dinâmica
type DailyTarget struct {
	Day            int       `json:"day"`
	MonthlyTarget  float64   `json:"monthly_target"`
	AchievedToDate float64   `json:"achieved_to_date"`
	Base           float64   `json:"base"`
	Expected       Expected  `json:"expected"`
	Delta          float64   `json:"delta"`
	Target         float64   `json:"target"`
	Situation      Situation `json:"situation"`
	RemainingDays  int       `json:"remaining_days"`
}

// BaseDailyTarget é a fatia bruta da meta mensal para o dia, conforme o peso do dia.
// Dia sem peso configurado usa a divisão uniforme meta/diasNoMês.
func BaseDailyTarget(monthlyTarget float64, table WeightTable, day int) float64 {
	if monthlyTarget <= 0 || day < 1 || day > table.Days() {
		return 0
	}

	if table.uniform || !table.IsConfigured(day) {
		return monthlyTarget / float64(table.Days())
	}

	return table.Weight(day) / 100 * monthlyTarget
}

// DynamicDailyTarget calcula a meta do dia ajustada pelo ritmo do mês.
//
//   - adiantada (delta >= 0 e esperado > 0): base * (1 + delta/esperado)
//   - atrasada (delta < 0): base + déficit/diasRestantes, contando hoje
//   - neutra (esperado == 0 ou meta <= 0): base
//
// O resultado nunca fica abaixo da base nem acima de CeilingShare * meta mensal.
func DynamicDailyTarget(monthlyTarget, achievedToDate float64, today time.Time, table WeightTable) (DailyTarget, error) {
	day, err := table.dayOf(today)
	if err != nil {
		return DailyTarget{}, err
	}

	return dynamicForDay(monthlyTarget, achievedToDate, table, day), nil
}

func dynamicForDay(monthlyTarget, achievedToDate float64, table WeightTable, day int) DailyTarget {
	result := DailyTarget{
		Day:            day,
		MonthlyTarget:  monthlyTarget,
		AchievedToDate: achievedToDate,
		Situation:      SituationNeutral,
		RemainingDays:  table.Days() - day + 1,
	}

	if monthlyTarget <= 0 {
		return result
	}

	result.Base = BaseDailyTarget(monthlyTarget, table, day)
	result.Expected = expectedBefore(monthlyTarget, table, day)
	result.Delta = achievedToDate - result.Expected.Value

	target := result.Base
	switch {
	case result.Expected.Value <= 0:
		// dia 1 ou curva sem peso acumulado
	case result.Delta >= 0:
		result.Situation = SituationAhead
		target = result.Base * (1 + result.Delta/result.Expected.Value)
	default:
		result.Situation = SituationBehind
		target = result.Base + (-result.Delta)/float64(result.RemainingDays)
	}

	target = math.Max(target, result.Base)
	target = math.Min(target, CeilingShare*monthlyTarget)
	result.Target = target

	return result
}
