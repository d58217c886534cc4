package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/liquidity"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/finance-dashboard-api/pkg/utils"
)

var validate = validator.New()

// reportQuery reúne todos os parâmetros aceitos pelas rotas de relatório.
type reportQuery struct {
	From    string `mapstructure:"from" validate:"omitempty,datetime=2006-01-02"`
	To      string `mapstructure:"to" validate:"omitempty,datetime=2006-01-02"`
	Basis   string `mapstructure:"basis" validate:"omitempty,oneof=cash accrual"`
	Reserve string `mapstructure:"reserve" validate:"omitempty,numeric"`
	Policy  string `mapstructure:"policy" validate:"omitempty,oneof=canonical with_receivables bank_ceiling"`
	Horizon string `mapstructure:"horizon" validate:"omitempty,oneof=30 45 60 90"`
}

func parseQuery(r *http.Request) (reportQuery, error) {
	flat := make(map[string]string, len(r.URL.Query()))
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			flat[key] = values[0]
		}
	}

	var query reportQuery
	if err := mapstructure.Decode(flat, &query); err != nil {
		return reportQuery{}, err
	}

	if err := validate.Struct(query); err != nil {
		return reportQuery{}, err
	}

	return query, nil
}

// window devolve a janela informada; sem datas, o mês corrente até hoje.
func (q reportQuery) window(now time.Time) (domain.QueryWindow, error) {
	if q.From == "" && q.To == "" {
		return domain.MonthToDate(now), nil
	}

	to := now
	if q.To != "" {
		parsed, err := utils.ParseDate(q.To)
		if err != nil {
			return domain.QueryWindow{}, err
		}
		to = parsed
	}

	from := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	if q.From != "" {
		parsed, err := utils.ParseDate(q.From)
		if err != nil {
			return domain.QueryWindow{}, err
		}
		from = parsed
	}

	return domain.NewQueryWindow(from, to)
}

// optionalWindow devolve nil quando nenhuma data foi informada.
func (q reportQuery) optionalWindow(now time.Time) (*domain.QueryWindow, error) {
	if q.From == "" && q.To == "" {
		return nil, nil
	}
	w, err := q.window(now)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (q reportQuery) asOf(now time.Time) (time.Time, error) {
	if q.To == "" {
		return utils.StartOfDay(now), nil
	}
	return utils.ParseDate(q.To)
}

func (q reportQuery) basis() domain.Basis {
	if q.Basis == "" {
		return domain.BasisAccrual
	}
	return domain.Basis(q.Basis)
}

func (q reportQuery) horizon() int {
	days, _ := strconv.Atoi(q.Horizon)
	return days
}

func (q reportQuery) cashOptions() (reporting.CashOptions, error) {
	opts := reporting.CashOptions{Policy: liquidity.Policy(q.Policy)}
	if q.Reserve != "" {
		reserve, err := decimal.NewFromString(q.Reserve)
		if err != nil {
			return reporting.CashOptions{}, err
		}
		opts.Reserve = &reserve
	}
	return opts, nil
}

func (q reportQuery) dashboardOptions() (reporting.DashboardOptions, error) {
	cash, err := q.cashOptions()
	if err != nil {
		return reporting.DashboardOptions{}, err
	}
	return reporting.DashboardOptions{CashOptions: cash, HorizonDays: q.horizon()}, nil
}
