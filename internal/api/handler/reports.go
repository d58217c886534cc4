package handler

import (
	"errors"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/liquidity"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/finance-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/finance-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Clock permite fixar a data corrente nos testes.
type Clock func() time.Time

// reportFunc executa o relatório com os parâmetros já validados.
type reportFunc func(r *http.Request, query reportQuery, now time.Time) (any, error)

func isInvalidInput(err error) bool {
	return errors.Is(err, domain.ErrInvalidWindow) ||
		errors.Is(err, liquidity.ErrUnknownPolicy) ||
		errors.Is(err, forecasting.ErrInvalidHorizon)
}

func reportHandler(name string, now Clock, fn reportFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", name)

		query, err := parseQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := fn(r, query, now())
		if err != nil {
			if isInvalidInput(err) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			logger.WithError(err).Error("reports: report failed")
			apiErrors.WriteFromError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
		}
	})
}

func GetProfitAndLoss(service reporting.ReportingService, now Clock) http.Handler {
	return reportHandler("profit_and_loss", now, func(r *http.Request, q reportQuery, today time.Time) (any, error) {
		window, err := q.window(today)
		if err != nil {
			return nil, err
		}
		return service.ProfitAndLoss(r.Context(), window, q.basis())
	})
}

func GetBalance(service reporting.ReportingService, now Clock) http.Handler {
	return reportHandler("balance", now, func(r *http.Request, q reportQuery, today time.Time) (any, error) {
		asOf, err := q.asOf(today)
		if err != nil {
			return nil, err
		}
		return service.Balance(r.Context(), asOf)
	})
}

func GetReceivablesAging(service reporting.ReportingService, now Clock) http.Handler {
	return reportHandler("receivables_aging", now, func(r *http.Request, q reportQuery, today time.Time) (any, error) {
		window, err := q.optionalWindow(today)
		if err != nil {
			return nil, err
		}
		return service.ReceivablesAging(r.Context(), window)
	})
}

func GetPayablesAging(service reporting.ReportingService, now Clock) http.Handler {
	return reportHandler("payables_aging", now, func(r *http.Request, q reportQuery, today time.Time) (any, error) {
		window, err := q.optionalWindow(today)
		if err != nil {
			return nil, err
		}
		return service.PayablesAging(r.Context(), window)
	})
}

func GetCashFlow(service reporting.ReportingService, now Clock) http.Handler {
	return reportHandler("cash_flow", now, func(r *http.Request, q reportQuery, today time.Time) (any, error) {
		window, err := q.window(today)
		if err != nil {
			return nil, err
		}
		return service.CashFlow(r.Context(), window)
	})
}

func GetLiquidity(service reporting.ReportingService, now Clock) http.Handler {
	return reportHandler("liquidity", now, func(r *http.Request, q reportQuery, today time.Time) (any, error) {
		window, err := q.window(today)
		if err != nil {
			return nil, err
		}
		return service.Liquidity(r.Context(), window)
	})
}

func GetCashAvailable(service reporting.ReportingService, now Clock) http.Handler {
	return reportHandler("cash_available", now, func(r *http.Request, q reportQuery, today time.Time) (any, error) {
		window, err := q.window(today)
		if err != nil {
			return nil, err
		}
		opts, err := q.cashOptions()
		if err != nil {
			return nil, err
		}
		return service.CashAvailable(r.Context(), window, opts)
	})
}

func GetMonthlyProfit(service reporting.ReportingService, now Clock) http.Handler {
	return reportHandler("monthly_profit", now, func(r *http.Request, q reportQuery, today time.Time) (any, error) {
		window, err := q.window(today)
		if err != nil {
			return nil, err
		}
		return service.MonthlyProfit(r.Context(), window)
	})
}

func GetForecast(service reporting.ReportingService, now Clock) http.Handler {
	return reportHandler("forecast", now, func(r *http.Request, q reportQuery, today time.Time) (any, error) {
		return service.Forecast(r.Context(), q.horizon())
	})
}

func GetDashboard(service reporting.ReportingService, now Clock) http.Handler {
	return reportHandler("dashboard", now, func(r *http.Request, q reportQuery, today time.Time) (any, error) {
		window, err := q.window(today)
		if err != nil {
			return nil, err
		}
		opts, err := q.dashboardOptions()
		if err != nil {
			return nil, err
		}
		return service.Dashboard(r.Context(), window, opts)
	})
}
