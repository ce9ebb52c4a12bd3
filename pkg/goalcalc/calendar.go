package goalcalc

import "time"

// DayStatus classifica o dia do calendário em relação a hoje
type DayStatus string

const (
	DayPast    DayStatus = "past"
	DayCurrent DayStatus = "current"
	DayFuture  DayStatus = "future"
)

// CalendarDay é uma célula do calendário de metas
type CalendarDay struct {
	Date      time.Time `json:"date"`
	Day       int       `json:"day"`
	Weight    float64   `json:"weight"`
	Base      float64   `json:"base_target"`
	Target    float64   `json:"target"`
	Sold      float64   `json:"sold"`
	Hit       bool      `json:"hit"`
	Situation Situation `json:"situation"`
	Status    DayStatus `json:"status"`
}

// BuildCalendar monta o calendário do mês com a meta de cada dia.
//
// Dias passados são recalculados com o realizado acumulado até a véspera de cada um,
// reproduzindo a meta dinâmica que valia naquele dia. Hoje usa o realizado até ontem.
// Dias futuros mostram apenas a meta base. dailySales é indexado pelo dia do mês.
func BuildCalendar(monthlyTarget float64, table WeightTable, dailySales map[int]float64, today time.Time) []CalendarDay {
	todayDay := 0
	switch {
	case today.Year() > table.year || (today.Year() == table.year && today.Month() > table.month):
		todayDay = table.Days() + 1
	case table.Contains(today):
		todayDay = today.Day()
	}

	days := make([]CalendarDay, 0, table.Days())
	var achieved float64

	for day := 1; day <= table.Days(); day++ {
		cell := CalendarDay{
			Date:   time.Date(table.year, table.month, day, 0, 0, 0, 0, time.UTC),
			Day:    day,
			Weight: table.Weight(day),
			Base:   BaseDailyTarget(monthlyTarget, table, day),
		}

		switch {
		case day < todayDay:
			cell.Status = DayPast
		case day == todayDay:
			cell.Status = DayCurrent
		default:
			cell.Status = DayFuture
		}

		if cell.Status == DayFuture {
			cell.Target = cell.Base
			cell.Situation = SituationNeutral
		} else {
			dynamic := dynamicForDay(monthlyTarget, achieved, table, day)
			cell.Target = dynamic.Target
			cell.Situation = dynamic.Situation
			cell.Sold = dailySales[day]
			cell.Hit = cell.Target > 0 && cell.Sold >= cell.Target
		}

		achieved += dailySales[day]
		days = append(days, cell)
	}

	return days
}
