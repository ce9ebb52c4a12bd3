package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-goals-api/internal/api/handler/router"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/sales-goals-api/internal/usecases/authenticating/mocks"
	gincanamocks "github.com/vfg2006/sales-goals-api/internal/usecases/contesting/mocks"
	"github.com/vfg2006/sales-goals-api/internal/usecases/goaling"
	goalmocks "github.com/vfg2006/sales-goals-api/internal/usecases/goaling/mocks"
	"github.com/vfg2006/sales-goals-api/internal/usecases/recording"
	recordmocks "github.com/vfg2006/sales-goals-api/internal/usecases/recording/mocks"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goals-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var hoje = time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC)

func fixedToday() time.Time {
	return hoje
}

func lojaPtr(id string) *string {
	return &id
}

var (
	vendedoraLoja1 = &domain.Claims{UserID: "user-3", UserRoleID: domain.RoleSeller, UserStoreID: lojaPtr("loja-1")}
	gerenteLoja1   = &domain.Claims{UserID: "user-2", UserRoleID: domain.RoleManager, UserStoreID: lojaPtr("loja-1")}
	gerenteLoja2   = &domain.Claims{UserID: "user-4", UserRoleID: domain.RoleManager, UserStoreID: lojaPtr("loja-2")}
	administrador  = &domain.Claims{UserID: "user-1", UserRoleID: domain.RoleAdmin}
)

type fixture struct {
	goaler     *goalmocks.MockGoaler
	recorder   *recordmocks.MockRecorder
	contester  *gincanamocks.MockContester
	authMock   *authmocks.MockAuthenticator
	cronJob    *fakeCronJob
	httpRouter router.Router
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() {
	f.triggered++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"running": false}
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		goaler:    goalmocks.NewMockGoaler(ctrl),
		recorder:  recordmocks.NewMockRecorder(ctrl),
		contester: gincanamocks.NewMockContester(ctrl),
		authMock:  authmocks.NewMockAuthenticator(ctrl),
		cronJob:   &fakeCronJob{},
	}

	f.httpRouter = router.New(
		router.WithRoutes(Healthcheck(fixedToday)...),
		router.WithRoutes(Authentication(f.authMock)...),
		router.WithRoutes(Goals(f.goaler, fixedToday)...),
		router.WithRoutes(Recording(f.recorder, fixedToday)...),
		router.WithRoutes(Gincanas(f.contester)...),
		router.WithRoutes(CronJobs(CronJobServices{CronJobTypeDailyGoalDigest: f.cronJob})...),
	)

	return f
}

// do executa a requisição como se o AuthMiddleware já tivesse validado o token
func (f *fixture) do(method, target, body string, claims *domain.Claims) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	f.httpRouter.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetStoreDailyGoal(t *testing.T) {
	t.Run("Vendedora consulta a própria loja com data informada", func(t *testing.T) {
		f := newFixture(t)
		dia := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)

		f.goaler.EXPECT().
			GetStoreDailyGoal(gomock.Any(), "loja-1", dia).
			Return(&domain.StoreDailyGoal{StoreID: "loja-1", Target: domain.GoalPace{Dynamic: 230}}, nil)

		rec := f.do(http.MethodGet, "/v1/stores/loja-1/goals/daily?today=2025-11-20", "", vendedoraLoja1)

		require.Equal(t, http.StatusOK, rec.Code)
		var body domain.StoreDailyGoal
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "loja-1", body.StoreID)
		assert.Equal(t, 230.0, body.Target.Dynamic)
	})

	t.Run("Sem data usa o dia da operação", func(t *testing.T) {
		f := newFixture(t)

		f.goaler.EXPECT().
			GetStoreDailyGoal(gomock.Any(), "loja-1", hoje).
			Return(&domain.StoreDailyGoal{StoreID: "loja-1"}, nil)

		rec := f.do(http.MethodGet, "/v1/stores/loja-1/goals/daily", "", administrador)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Gerente de outra loja", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/v1/stores/loja-1/goals/daily", "", gerenteLoja2)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrStoreAccessDenied, decodeError(t, rec).Code)
	})

	t.Run("Data inválida", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/v1/stores/loja-1/goals/daily?today=11/11/2025", "", vendedoraLoja1)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Loja sem meta no mês", func(t *testing.T) {
		f := newFixture(t)

		f.goaler.EXPECT().
			GetStoreDailyGoal(gomock.Any(), "loja-1", hoje).
			Return(nil, goaling.NewGoalError(goaling.ErrGoalNotFound, apiErrors.ErrGoalNotFound, "loja-1", "202511"))

		rec := f.do(http.MethodGet, "/v1/stores/loja-1/goals/daily", "", vendedoraLoja1)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrGoalNotFound, apiErr.Code)
		assert.Equal(t, map[string]any{"store_id": "loja-1"}, apiErr.Details)
	})
}

func TestGoalQueries(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setup          func(f *fixture)
		expectedStatus int
	}{
		{
			name:   "Desempenho com todas as colaboradoras",
			target: "/v1/stores/loja-1/goals/employees?all=true",
			setup: func(f *fixture) {
				f.goaler.EXPECT().
					GetEmployeePerformance(gomock.Any(), "loja-1", hoje, true).
					Return(&domain.EmployeePerformanceReport{IncludeAll: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Semana ausente usa a semana de hoje",
			target: "/v1/stores/loja-1/goals/weekly",
			setup: func(f *fixture) {
				f.goaler.EXPECT().
					SuggestWeeklyGoal(gomock.Any(), "loja-1", "462025").
					Return(&domain.WeeklyGoalSuggestion{WeekReference: "462025", Week: 46, Year: 2025}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Semana ausente com hoje informado",
			target: "/v1/stores/loja-1/goals/weekly?today=2025-12-30",
			setup: func(f *fixture) {
				f.goaler.EXPECT().
					SuggestWeeklyGoal(gomock.Any(), "loja-1", "012026").
					Return(&domain.WeeklyGoalSuggestion{WeekReference: "012026", Week: 1, Year: 2026}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Semana ausente com data inválida",
			target:         "/v1/stores/loja-1/goals/weekly?today=30-12-2025",
			setup:          func(f *fixture) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Semana inválida",
			target: "/v1/stores/loja-1/goals/weekly?week=992025",
			setup: func(f *fixture) {
				f.goaler.EXPECT().
					SuggestWeeklyGoal(gomock.Any(), "loja-1", "992025").
					Return(nil, goaling.NewGoalError(goaling.ErrInvalidWeekToken, apiErrors.ErrInvalidWeekToken, "loja-1", "992025"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Calendário da colaboradora",
			target: "/v1/stores/loja-1/goals/calendar?year=2025&month=11&employee_id=emp-ana",
			setup: func(f *fixture) {
				f.goaler.EXPECT().
					GetGoalCalendar(gomock.Any(), "loja-1", "emp-ana", 2025, time.November, hoje).
					Return(&domain.GoalCalendar{MonthReference: "202511"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Calendário com mês não numérico",
			target:         "/v1/stores/loja-1/goals/calendar?year=2025&month=novembro",
			setup:          func(f *fixture) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Períodos com meta",
			target: "/v1/stores/loja-1/goals/periods",
			setup: func(f *fixture) {
				f.goaler.EXPECT().
					GetAvailablePeriods(gomock.Any(), "loja-1").
					Return(&domain.AvailablePeriods{Periods: []string{"202511"}, Years: []string{"2025"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			rec := f.do(http.MethodGet, tt.target, "", vendedoraLoja1)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRecordingRoutes(t *testing.T) {
	t.Run("Vendedora não cadastra meta", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/v1/stores/loja-1/goals", `{"month_reference":"202511"}`, vendedoraLoja1)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
	})

	t.Run("Gerente cadastra meta da loja", func(t *testing.T) {
		f := newFixture(t)

		f.recorder.EXPECT().
			UpsertGoal(gomock.Any(), "loja-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req *domain.UpsertGoalRequest) (*domain.MonthlyGoal, error) {
				assert.Equal(t, "202511", req.MonthReference)
				assert.Equal(t, "6000", req.TargetValue.String())
				return &domain.MonthlyGoal{ID: "goal-1", StoreID: "loja-1", MonthReference: "202511", TargetValue: req.TargetValue}, nil
			})

		rec := f.do(http.MethodPut, "/v1/stores/loja-1/goals", `{"month_reference":"202511","target_value":"6000"}`, gerenteLoja1)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Pesos inválidos", func(t *testing.T) {
		f := newFixture(t)

		f.recorder.EXPECT().
			UpsertGoal(gomock.Any(), "loja-1", gomock.Any()).
			Return(nil, recording.NewRecordError(recording.ErrInvalidWeights, apiErrors.ErrInvalidWeights, "loja-1", "2025-12-01"))

		rec := f.do(http.MethodPut, "/v1/stores/loja-1/goals", `{"month_reference":"202511","daily_weights":{"2025-12-01":5}}`, administrador)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidWeights, decodeError(t, rec).Code)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/v1/stores/loja-1/sales", `{"amount":`, vendedoraLoja1)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("Registra venda", func(t *testing.T) {
		f := newFixture(t)

		f.recorder.EXPECT().
			RegisterSale(gomock.Any(), "loja-1", gomock.Any(), hoje).
			Return(&domain.Sale{ID: "sale-1", StoreID: "loja-1", EmployeeID: "emp-ana"}, nil)

		rec := f.do(http.MethodPost, "/v1/stores/loja-1/sales", `{"employee_id":"emp-ana","amount":"150.50"}`, vendedoraLoja1)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Lista folgas do mês", func(t *testing.T) {
		f := newFixture(t)

		f.recorder.EXPECT().
			ListOffDays(gomock.Any(), "loja-1", 2025, time.November).
			Return([]*domain.OffDay{}, nil)

		rec := f.do(http.MethodGet, "/v1/stores/loja-1/offdays?year=2025&month=11", "", vendedoraLoja1)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("Remove folga", func(t *testing.T) {
		f := newFixture(t)

		f.recorder.EXPECT().RemoveOffDay(gomock.Any(), "loja-1", "off-1").Return(nil)

		rec := f.do(http.MethodDelete, "/v1/stores/loja-1/offdays/off-1", "", gerenteLoja1)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Folga inexistente", func(t *testing.T) {
		f := newFixture(t)

		f.recorder.EXPECT().
			RemoveOffDay(gomock.Any(), "loja-1", "off-9").
			Return(recording.NewRecordError(recording.ErrOffDayNotFound, apiErrors.ErrOffDayNotFound, "loja-1", "off-9"))

		rec := f.do(http.MethodDelete, "/v1/stores/loja-1/offdays/off-9", "", gerenteLoja1)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGincanaRoutes(t *testing.T) {
	t.Run("Progresso da gincana", func(t *testing.T) {
		f := newFixture(t)

		f.contester.EXPECT().
			GetGincanaProgress(gomock.Any(), "loja-1", "ginc-1").
			Return(&domain.GincanaProgress{StoreSold: 1200}, nil)

		rec := f.do(http.MethodGet, "/v1/stores/loja-1/gincanas/ginc-1/progress", "", vendedoraLoja1)

		require.Equal(t, http.StatusOK, rec.Code)
		var body domain.GincanaProgress
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1200.0, body.StoreSold)
	})

	t.Run("Gerente cria gincana", func(t *testing.T) {
		f := newFixture(t)

		f.contester.EXPECT().
			CreateGincana(gomock.Any(), "loja-1", gomock.Any()).
			Return(&domain.Gincana{ID: "ginc-2", WeekReference: "462025"}, nil)

		rec := f.do(http.MethodPost, "/v1/stores/loja-1/gincanas", `{"title":"Semana 46","week_reference":"462025"}`, gerenteLoja1)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Lista gincanas", func(t *testing.T) {
		f := newFixture(t)

		f.contester.EXPECT().ListGincanas(gomock.Any(), "loja-1").Return([]*domain.Gincana{{ID: "ginc-1"}}, nil)

		rec := f.do(http.MethodGet, "/v1/stores/loja-1/gincanas", "", vendedoraLoja1)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthenticationRoutes(t *testing.T) {
	t.Run("Login com credenciais inválidas", func(t *testing.T) {
		f := newFixture(t)

		f.authMock.EXPECT().
			LoginUser(gomock.Any(), "bia@loja.com", "errada").
			Return("", authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "user-3", "Senha incorreta"))

		rec := f.do(http.MethodPost, "/v1/login", `{"email":"bia@loja.com","password":"errada"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rec).Code)
	})

	t.Run("Login válido", func(t *testing.T) {
		f := newFixture(t)

		f.authMock.EXPECT().LoginUser(gomock.Any(), "bia@loja.com", "vendas2025").Return("token-jwt", nil)

		rec := f.do(http.MethodPost, "/v1/login", `{"email":"bia@loja.com","password":"vendas2025"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"token-jwt"}`, rec.Body.String())
	})

	t.Run("Perfil do usuário logado", func(t *testing.T) {
		f := newFixture(t)

		f.authMock.EXPECT().GetUserProfile(gomock.Any(), "user-3").Return(&domain.User{ID: "user-3", Name: "Bia"}, nil)

		rec := f.do(http.MethodGet, "/v1/me", "", vendedoraLoja1)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Somente administrador cadastra usuários", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/v1/users", `{"name":"Bia"}`, gerenteLoja1)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCronRoutes(t *testing.T) {
	t.Run("Dispara o resumo diário", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/v1/cron/daily-goal-digest/run", "", administrador)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, f.cronJob.triggered)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/v1/cron/meta/run", "", administrador)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, f.cronJob.triggered)
	})

	t.Run("Status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/v1/cron/status", "", administrador)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"daily-goal-digest":{"running":false}}`, rec.Body.String())
	})
}

func TestRouterFallbacks(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/inexistente", "", administrador)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)

	rec = f.do(http.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"today":"2025-11-11"`)
}
