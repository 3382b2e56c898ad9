package handler

import (
	"net/http"

	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/nmbrs"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/odoo"
	"github.com/wakuli/retail-analytics-api/internal/api/handler/router"
	"github.com/wakuli/retail-analytics-api/internal/usecases/authenticating"
	"github.com/wakuli/retail-analytics-api/internal/usecases/reporting"
	"github.com/wakuli/retail-analytics-api/internal/usecases/storing"
	"github.com/wakuli/retail-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
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
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/kpi/summary",
			Method:      http.MethodGet,
			Handler:     GetSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/roi",
			Method:      http.MethodGet,
			Handler:     GetStoreROI(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/kpi/break-even",
			Method:      http.MethodGet,
			Handler:     GetBreakEven(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/kpi/profitability",
			Method:      http.MethodGet,
			Handler:     GetProfitability(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/profitability/stores",
			Method:      http.MethodGet,
			Handler:     GetProfitabilityByStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/revenue",
			Method:      http.MethodGet,
			Handler:     GetRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/revenue/periods",
			Method:      http.MethodGet,
			Handler:     GetRevenueByPeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/costs",
			Method:      http.MethodGet,
			Handler:     GetCosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/customers",
			Method:      http.MethodGet,
			Handler:     GetCustomers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/labor",
			Method:      http.MethodGet,
			Handler:     GetLabor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/inventory",
			Method:      http.MethodGet,
			Handler:     GetInventory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/cash-flow",
			Method:      http.MethodGet,
			Handler:     GetCashFlow(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
		},
		{
			Path:        "/v1/kpi/impact",
			Method:      http.MethodGet,
			Handler:     GetImpact(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Stores(service storing.StoreService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores",
			Method:      http.MethodGet,
			Handler:     ListStores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:code/investment",
			Method:      http.MethodPut,
			Handler:     UpsertInvestment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Connections(odooService odoo.OdooIntegrator, nmbrsService nmbrs.NmbrsIntegrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/connections/status",
			Method:      http.MethodGet,
			Handler:     GetConnectionStatus(odooService, nmbrsService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFinance()},
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
