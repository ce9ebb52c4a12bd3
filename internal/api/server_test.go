package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/sales-goals-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-goals-api/internal/config"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/scheduler"
	authmocks "github.com/vfg2006/sales-goals-api/internal/usecases/authenticating/mocks"
	gincanamocks "github.com/vfg2006/sales-goals-api/internal/usecases/contesting/mocks"
	goalmocks "github.com/vfg2006/sales-goals-api/internal/usecases/goaling/mocks"
	recordmocks "github.com/vfg2006/sales-goals-api/internal/usecases/recording/mocks"
	"go.uber.org/mock/gomock"
)

func TestServer_CadeiaDeMiddlewares(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "8000"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
		App:    config.App{Location: time.UTC},
	}

	goaler := goalmocks.NewMockGoaler(ctrl)
	authenticator := authmocks.NewMockAuthenticator(ctrl)
	digest := scheduler.NewDailyGoalDigestService(repomocks.NewMockStoreRepository(ctrl), goaler, scheduler.NewLogNotifier(), cfg)

	srv, err := New(
		cfg,
		goaler,
		recordmocks.NewMockRecorder(ctrl),
		gincanamocks.NewMockContester(ctrl),
		authenticator,
		digest,
	)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8000", srv.httpServer.Addr)

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		srv.httpServer.Handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Healthcheck é público", func(t *testing.T) {
		rec := serve(httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Rota protegida sem token", func(t *testing.T) {
		rec := serve(httptest.NewRequest(http.MethodGet, "/v1/stores/loja-1/goals/daily", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token válido chega ao caso de uso", func(t *testing.T) {
		storeID := "loja-1"
		authenticator.EXPECT().
			ValidateToken("token-valido").
			Return(&domain.Claims{UserID: "user-3", UserRoleID: domain.RoleSeller, UserStoreID: &storeID}, nil)
		goaler.EXPECT().
			GetStoreDailyGoal(gomock.Any(), "loja-1", time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC)).
			Return(&domain.StoreDailyGoal{StoreID: "loja-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/stores/loja-1/goals/daily?today=2025-11-11", nil)
		req.Header.Set("Authorization", "Bearer token-valido")
		req.Header.Set("Origin", "http://localhost:3000")

		rec := serve(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
