package handler

import (
	"net/http"

	"github.com/vfg2006/finance-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/finance-dashboard-api/pkg/middleware"
)

func Healthcheck(now Clock) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(now),
		},
	}
}

func Reports(service reporting.ReportingService, now Clock) []router.Route {
	readers := []func(http.Handler) http.Handler{middleware.AllRoles()}

	return []router.Route{
		{Path: "/v1/reports/profit-and-loss", Method: http.MethodGet, Handler: GetProfitAndLoss(service, now), Middlewares: readers},
		{Path: "/v1/reports/balance", Method: http.MethodGet, Handler: GetBalance(service, now), Middlewares: readers},
		{Path: "/v1/reports/aging/receivables", Method: http.MethodGet, Handler: GetReceivablesAging(service, now), Middlewares: readers},
		{Path: "/v1/reports/aging/payables", Method: http.MethodGet, Handler: GetPayablesAging(service, now), Middlewares: readers},
		{Path: "/v1/reports/cashflow", Method: http.MethodGet, Handler: GetCashFlow(service, now), Middlewares: readers},
		{Path: "/v1/reports/liquidity", Method: http.MethodGet, Handler: GetLiquidity(service, now), Middlewares: readers},
		{Path: "/v1/reports/cash-available", Method: http.MethodGet, Handler: GetCashAvailable(service, now), Middlewares: readers},
		{Path: "/v1/reports/monthly-profit", Method: http.MethodGet, Handler: GetMonthlyProfit(service, now), Middlewares: readers},
		{Path: "/v1/reports/forecast", Method: http.MethodGet, Handler: GetForecast(service, now), Middlewares: readers},
		{Path: "/v1/reports/dashboard", Method: http.MethodGet, Handler: GetDashboard(service, now), Middlewares: readers},
	}
}

// CronJobs registra uma rota estática de execução por tarefa, ao lado de /v1/cron/status.
func CronJobs(services CronJobServices) []router.Route {
	admin := []func(http.Handler) http.Handler{middleware.AdminOnly()}

	routes := []router.Route{
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: admin,
		},
	}

	for cronType, job := range services {
		if job == nil {
			continue
		}
		routes = append(routes, router.Route{
			Path:        "/v1/cron/" + cronType + "/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(cronType, job),
			Middlewares: admin,
		})
	}

	return routes
}
