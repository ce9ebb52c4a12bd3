package handler

import (
	"net/http"

	"github.com/vfg2006/sales-goals-api/internal/api/handler/router"
	"github.com/vfg2006/sales-goals-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-goals-api/internal/usecases/contesting"
	"github.com/vfg2006/sales-goals-api/internal/usecases/goaling"
	"github.com/vfg2006/sales-goals-api/internal/usecases/recording"
	"github.com/vfg2006/sales-goals-api/pkg/middleware"
)

func Healthcheck(today TodayFunc) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(today),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Goals(service goaling.Goaler, today TodayFunc) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:id/goals/daily",
			Method:      http.MethodGet,
			Handler:     GetStoreDailyGoal(service, today),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id/goals/employees",
			Method:      http.MethodGet,
			Handler:     GetEmployeePerformance(service, today),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id/goals/weekly",
			Method:      http.MethodGet,
			Handler:     SuggestWeeklyGoal(service, today),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id/goals/calendar",
			Method:      http.MethodGet,
			Handler:     GetGoalCalendar(service, today),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id/goals/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailableGoalPeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Recording(service recording.Recorder, today TodayFunc) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:id/goals",
			Method:      http.MethodPut,
			Handler:     UpsertGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/stores/:id/sales",
			Method:      http.MethodPost,
			Handler:     RegisterSale(service, today),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id/offdays",
			Method:      http.MethodGet,
			Handler:     ListOffDays(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id/offdays",
			Method:      http.MethodPost,
			Handler:     ScheduleOffDay(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/stores/:id/offdays/:offDayId",
			Method:      http.MethodDelete,
			Handler:     RemoveOffDay(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Gincanas(service contesting.Contester) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:id/gincanas",
			Method:      http.MethodGet,
			Handler:     ListGincanas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id/gincanas",
			Method:      http.MethodPost,
			Handler:     CreateGincana(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/stores/:id/gincanas/:gincanaId/progress",
			Method:      http.MethodGet,
			Handler:     GetGincanaProgress(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
