package domain

import (
	"time"

	"github.com/vfg2006/sales-goals-api/pkg/goalcalc"
)

// GoalPace é a meta dinâmica de um valor (meta ou super meta) no dia
type GoalPace struct {
	MonthlyTarget  float64            `json:"monthly_target"`
	AchievedToDate float64            `json:"achieved_to_date"`
	Expected       float64            `json:"expected_to_date"`
	Base           float64            `json:"base_daily_target"`
	Dynamic        float64            `json:"dynamic_daily_target"`
	Situation      goalcalc.Situation `json:"situation"`
	PercentReached float64            `json:"percent_reached"`
	RemainingDays  int                `json:"remaining_days"`
}

// StoreDailyGoal é o painel do dia da loja
type StoreDailyGoal struct {
	StoreID        string                  `json:"store_id"`
	StoreName      string                  `json:"store_name"`
	Date           time.Time               `json:"date"`
	MonthReference string                  `json:"month_reference"`
	Target         GoalPace                `json:"target"`
	SuperTarget    *GoalPace               `json:"super_target,omitempty"`
	SoldToday      float64                 `json:"sold_today"`
	Distribution   goalcalc.Redistribution `json:"distribution"`
	Employees      []EmployeeGoalView      `json:"employees"`
}

// EmployeeGoalView é a meta do dia de uma colaboradora
type EmployeeGoalView struct {
	EmployeeID     string             `json:"employee_id"`
	EmployeeName   string             `json:"employee_name"`
	HasGoal        bool               `json:"has_goal"`
	OnLeave        bool               `json:"on_leave"`
	MonthlyTarget  float64            `json:"monthly_target"`
	AchievedToDate float64            `json:"achieved_to_date"`
	PercentReached float64            `json:"percent_reached"`
	Base           float64            `json:"base_daily_target"`
	Dynamic        float64            `json:"dynamic_daily_target"`
	Final          float64            `json:"final_target"`
	SoldToday      float64            `json:"sold_today"`
	Situation      goalcalc.Situation `json:"situation"`
}

// EmployeePerformanceReport é o desempenho das colaboradoras no mês
type EmployeePerformanceReport struct {
	StoreID        string             `json:"store_id"`
	Date           time.Time          `json:"date"`
	MonthReference string             `json:"month_reference"`
	IncludeAll     bool               `json:"include_all"`
	Employees      []EmployeeGoalView `json:"employees"`
}

// WeeklyGoalSuggestion é a meta sugerida para uma semana
type WeeklyGoalSuggestion struct {
	StoreID       string                   `json:"store_id"`
	WeekReference string                   `json:"week_reference"`
	Week          int                      `json:"week"`
	Year          int                      `json:"year"`
	StartDate     time.Time                `json:"start_date"`
	EndDate       time.Time                `json:"end_date"`
	Target        float64                  `json:"target"`
	SuperTarget   float64                  `json:"super_target"`
	Days          []goalcalc.DaySuggestion `json:"days"`
}

// GoalCalendar é o calendário de metas do mês, da loja ou de uma colaboradora
type GoalCalendar struct {
	StoreID        string          `json:"store_id"`
	EmployeeID     *string         `json:"employee_id"`
	MonthReference string          `json:"month_reference"`
	MonthlyTarget  float64         `json:"monthly_target"`
	TotalSold      float64         `json:"total_sold"`
	UniformWeights bool            `json:"uniform_weights"`
	WeightTotal    float64         `json:"weight_total"` // Abaixo de 100 quando a curva deixa dias sem peso
	Days           []CalendarEntry `json:"days"`
}

type CalendarEntry struct {
	goalcalc.CalendarDay
	OffDay bool `json:"off_day"`
}

// DailyGoalDigest é o resumo enviado todas as manhãs para a loja
type DailyGoalDigest struct {
	Store       *Store          `json:"store"`
	Date        time.Time       `json:"date"`
	Goal        *StoreDailyGoal `json:"goal"`
	GeneratedAt time.Time       `json:"generated_at"`
}
