package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-goals-api/internal/usecases/goaling"
	"github.com/vfg2006/sales-goals-api/pkg/weekref"
)

// GetStoreDailyGoal retorna a meta dinâmica do dia da loja com a distribuição entre as colaboradoras
func GetStoreDailyGoal(service goaling.Goaler, today TodayFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeFromRequest(w, r)
		if !ok {
			return
		}

		date, ok := todayFromRequest(w, r, today)
		if !ok {
			return
		}

		goal, err := service.GetStoreDailyGoal(r.Context(), storeID, date)
		if err != nil {
			handleServiceError(w, err, "Erro ao calcular meta do dia")
			return
		}

		writeJSON(w, http.StatusOK, goal)
	}
}

// GetEmployeePerformance lista o desempenho individual. Com ?all=true inclui quem não tem meta.
func GetEmployeePerformance(service goaling.Goaler, today TodayFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeFromRequest(w, r)
		if !ok {
			return
		}

		date, ok := todayFromRequest(w, r, today)
		if !ok {
			return
		}

		includeAll := r.URL.Query().Get("all") == "true"

		report, err := service.GetEmployeePerformance(r.Context(), storeID, date, includeAll)
		if err != nil {
			handleServiceError(w, err, "Erro ao calcular desempenho das colaboradoras")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// SuggestWeeklyGoal sugere a meta da semana em ?week=WWYYYY; sem o parâmetro usa a semana de hoje
func SuggestWeeklyGoal(service goaling.Goaler, today TodayFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeFromRequest(w, r)
		if !ok {
			return
		}

		week := r.URL.Query().Get("week")
		if week == "" {
			date, ok := todayFromRequest(w, r, today)
			if !ok {
				return
			}
			week = weekref.Of(date).Token()
		}

		suggestion, err := service.SuggestWeeklyGoal(r.Context(), storeID, week)
		if err != nil {
			handleServiceError(w, err, "Erro ao sugerir meta semanal")
			return
		}

		writeJSON(w, http.StatusOK, suggestion)
	}
}

// GetGoalCalendar monta o calendário do mês da loja ou, com ?employee_id=, da colaboradora
func GetGoalCalendar(service goaling.Goaler, today TodayFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeFromRequest(w, r)
		if !ok {
			return
		}

		year, ok := intQuery(w, r, "year")
		if !ok {
			return
		}

		month, ok := intQuery(w, r, "month")
		if !ok {
			return
		}

		date, ok := todayFromRequest(w, r, today)
		if !ok {
			return
		}

		employeeID := r.URL.Query().Get("employee_id")

		calendar, err := service.GetGoalCalendar(r.Context(), storeID, employeeID, year, time.Month(month), date)
		if err != nil {
			handleServiceError(w, err, "Erro ao montar calendário de metas")
			return
		}

		writeJSON(w, http.StatusOK, calendar)
	}
}

func GetAvailableGoalPeriods(service goaling.Goaler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeFromRequest(w, r)
		if !ok {
			return
		}

		periods, err := service.GetAvailablePeriods(r.Context(), storeID)
		if err != nil {
			handleServiceError(w, err, "Erro ao listar períodos com meta")
			return
		}

		writeJSON(w, http.StatusOK, periods)
	}
}
