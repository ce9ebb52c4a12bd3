package handler

import (
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-goals-api/internal/usecases/contesting"
	"github.com/vfg2006/sales-goals-api/internal/usecases/goaling"
	"github.com/vfg2006/sales-goals-api/internal/usecases/recording"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goals-api/pkg/middleware"
	"github.com/vfg2006/sales-goals-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TodayFunc fornece a data de referência quando a requisição não informa ?today=
type TodayFunc func() time.Time

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// storeFromRequest lê o :id da loja e confere se o usuário do token pode acessá-la.
// Em caso de falha a resposta já foi escrita.
func storeFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}

	storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if storeID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
		return "", false
	}

	if !userClaims.CanAccessStore(storeID) {
		logrus.WithFields(logrus.Fields{
			"user_id":  userClaims.UserID,
			"store_id": storeID,
		}).Warn("Acesso negado à loja")
		apiErrors.WriteError(w, apiErrors.ErrStoreAccessDenied, "Você não tem acesso a esta loja", nil)
		return "", false
	}

	return storeID, true
}

// todayFromRequest aceita ?today=YYYY-MM-DD para consultar outra data de referência
func todayFromRequest(w http.ResponseWriter, r *http.Request, today TodayFunc) (time.Time, bool) {
	date, err := utils.ParseDate(r.URL.Query().Get("today"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return time.Time{}, false
	}

	if date == nil {
		return today(), true
	}

	return *date, true
}

// intQuery lê um parâmetro inteiro obrigatório da query string
func intQuery(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro obrigatório: "+name, nil)
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro inválido: "+name, nil)
		return 0, false
	}

	return value, true
}

// handleServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func handleServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	var goalErr *goaling.GoalError
	if errors.As(err, &goalErr) {
		apiErrors.WriteError(w, goalErr.Code, goalErr.Error(), detailsOf("store_id", goalErr.StoreID))
		return
	}

	var recordErr *recording.RecordError
	if errors.As(err, &recordErr) {
		apiErrors.WriteError(w, recordErr.Code, recordErr.Error(), detailsOf("store_id", recordErr.StoreID))
		return
	}

	var gincanaErr *contesting.GincanaError
	if errors.As(err, &gincanaErr) {
		apiErrors.WriteError(w, gincanaErr.Code, gincanaErr.Error(), detailsOf("gincana_id", gincanaErr.GincanaID))
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), detailsOf("user_id", authErr.UserID))
		return
	}

	logrus.WithError(err).Error(fallbackMessage)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
}

func detailsOf(key, value string) any {
	if value == "" {
		return nil
	}
	return map[string]any{key: value}
}
