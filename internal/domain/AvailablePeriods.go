package domain

// AvailablePeriods representa os meses com meta cadastrada para a loja
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de referências no formato YYYYMM, mais recente primeiro
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
}
