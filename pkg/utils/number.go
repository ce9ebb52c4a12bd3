package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percent retorna part/total em pontos percentuais, zero quando total não é positivo
func Percent(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return RoundWithTwoDecimalPlace(part / total * 100)
}
