package goalcalc

import "time"

// Expected é o quanto já deveria ter sido vendido até ontem
type Expected struct {
	Percent float64 `json:"percent"` // Pontos percentuais acumulados dos dias anteriores
	Value   float64 `json:"value"`   // Valor monetário correspondente
}

// ExpectedToDate soma os pesos dos dias 1..(hoje-1). O próprio dia de hoje não entra
// na conta, então no dia 1 o esperado é exatamente zero.
func ExpectedToDate(monthlyTarget float64, table WeightTable, today time.Time) (Expected, error) {
	day, err := table.dayOf(today)
	if err != nil {
		return Expected{}, err
	}

	return expectedBefore(monthlyTarget, table, day), nil
}

func expectedBefore(monthlyTarget float64, table WeightTable, day int) Expected {
	elapsed := day - 1
	if elapsed <= 0 {
		return Expected{}
	}

	if table.uniform {
		days := float64(table.Days())
		return Expected{
			Percent: 100 / days * float64(elapsed),
			Value:   monthlyTarget / days * float64(elapsed),
		}
	}

	var percent float64
	for d := 1; d < day; d++ {
		percent += table.Weight(d)
	}

	return Expected{
		Percent: percent,
		Value:   monthlyTarget * percent / 100,
	}
}
