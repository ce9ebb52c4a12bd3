package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/recording"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
)

// UpsertGoal cadastra ou substitui a meta mensal da loja ou de uma colaboradora
func UpsertGoal(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertGoal")

		storeID, ok := storeFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.UpsertGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		goal, err := service.UpsertGoal(r.Context(), storeID, &req)
		if err != nil {
			handleServiceError(w, err, "Erro ao salvar meta")
			return
		}

		writeJSON(w, http.StatusOK, goal)
	}
}

func RegisterSale(service recording.Recorder, today TodayFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeFromRequest(w, r)
		if !ok {
			return
		}

		date, ok := todayFromRequest(w, r, today)
		if !ok {
			return
		}

		var req domain.RegisterSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		sale, err := service.RegisterSale(r.Context(), storeID, &req, date)
		if err != nil {
			handleServiceError(w, err, "Erro ao registrar venda")
			return
		}

		writeJSON(w, http.StatusCreated, sale)
	}
}

// ListOffDays lista as folgas do mês informado em ?year=&month=
func ListOffDays(service recording.Recorder) http.HandlerFunc {
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

		offDays, err := service.ListOffDays(r.Context(), storeID, year, time.Month(month))
		if err != nil {
			handleServiceError(w, err, "Erro ao listar folgas")
			return
		}

		writeJSON(w, http.StatusOK, offDays)
	}
}

func ScheduleOffDay(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.ScheduleOffDayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		offDay, err := service.ScheduleOffDay(r.Context(), storeID, &req)
		if err != nil {
			handleServiceError(w, err, "Erro ao agendar folga")
			return
		}

		writeJSON(w, http.StatusCreated, offDay)
	}
}

func RemoveOffDay(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeFromRequest(w, r)
		if !ok {
			return
		}

		offDayID := httprouter.ParamsFromContext(r.Context()).ByName("offDayId")
		if offDayID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da folga não fornecido", nil)
			return
		}

		if err := service.RemoveOffDay(r.Context(), storeID, offDayID); err != nil {
			handleServiceError(w, err, "Erro ao remover folga")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
