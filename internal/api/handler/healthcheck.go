package handler

import (
	"net/http"
	"time"
)

func HealthcheckHandler(today TodayFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
			"today":  today().Format(time.DateOnly),
		})
	})
}
