package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/contesting"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
)

func CreateGincana(service contesting.Contester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateGincana")

		storeID, ok := storeFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.CreateGincanaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		gincana, err := service.CreateGincana(r.Context(), storeID, &req)
		if err != nil {
			handleServiceError(w, err, "Erro ao criar gincana")
			return
		}

		writeJSON(w, http.StatusCreated, gincana)
	}
}

// ListGincanas retorna as gincanas da loja, da semana mais recente para a mais antiga
func ListGincanas(service contesting.Contester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeFromRequest(w, r)
		if !ok {
			return
		}

		gincanas, err := service.ListGincanas(r.Context(), storeID)
		if err != nil {
			handleServiceError(w, err, "Erro ao listar gincanas")
			return
		}

		writeJSON(w, http.StatusOK, gincanas)
	}
}

func GetGincanaProgress(service contesting.Contester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, ok := storeFromRequest(w, r)
		if !ok {
			return
		}

		gincanaID := httprouter.ParamsFromContext(r.Context()).ByName("gincanaId")
		if gincanaID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da gincana não fornecido", nil)
			return
		}

		progress, err := service.GetGincanaProgress(r.Context(), storeID, gincanaID)
		if err != nil {
			handleServiceError(w, err, "Erro ao calcular progresso da gincana")
			return
		}

		writeJSON(w, http.StatusOK, progress)
	}
}
