package zohoclient

import (
	"context"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	zohodomain "github.com/vfg2006/finance-dashboard-api/infrastructure/integrator/zoho/domain"
)

const (
	endpointProfitAndLoss = "reports/profitandloss"
	endpointBalanceSheet  = "reports/balancesheet"
	endpointCashFlow      = "reports/cashflow"
)

// decodeRoot decodifica o campo raiz do payload em out.
func decodeRoot(payload []byte, endpoint, root string, out any) error {
	var envelope map[string]jsoniter.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return &zohodomain.MalformedPayloadError{Err: err, Endpoint: endpoint, Root: root}
	}

	raw, ok := envelope[root]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return &zohodomain.MalformedPayloadError{Err: zohodomain.ErrMissingRoot, Endpoint: endpoint, Root: root}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &zohodomain.MalformedPayloadError{Err: err, Endpoint: endpoint, Root: root}
	}

	return nil
}

func (c *ZohoClient) GetProfitAndLoss(ctx context.Context, fromDate, toDate string, cashBased, required bool) ([]zohodomain.ReportNode, error) {
	params := url.Values{}
	params.Set("from_date", fromDate)
	params.Set("to_date", toDate)
	params.Set("cash_based", strconv.FormatBool(cashBased))

	var sections []zohodomain.ReportNode
	_, err := c.Dispatcher.Call(ctx, Request{
		Endpoint: endpointProfitAndLoss,
		Params:   params,
		Required: required,
		Decode: func(payload []byte) error {
			return decodeRoot(payload, endpointProfitAndLoss, zohodomain.RootProfitAndLoss, &sections)
		},
	})
	if err != nil {
		return nil, err
	}

	return sections, nil
}

func (c *ZohoClient) GetBalanceSheet(ctx context.Context, toDate string, required bool) ([]zohodomain.ReportNode, error) {
	params := url.Values{}
	params.Set("to_date", toDate)
	params.Set("show_rows", "non_zero")

	var sections []zohodomain.ReportNode
	_, err := c.Dispatcher.Call(ctx, Request{
		Endpoint: endpointBalanceSheet,
		Params:   params,
		Required: required,
		Decode: func(payload []byte) error {
			return decodeRoot(payload, endpointBalanceSheet, zohodomain.RootBalanceSheet, &sections)
		},
	})
	if err != nil {
		return nil, err
	}

	return sections, nil
}

func (c *ZohoClient) GetCashFlow(ctx context.Context, fromDate, toDate string, required bool) ([]zohodomain.CashFlowSection, error) {
	params := url.Values{}
	params.Set("from_date", fromDate)
	params.Set("to_date", toDate)

	var sections []zohodomain.CashFlowSection
	_, err := c.Dispatcher.Call(ctx, Request{
		Endpoint: endpointCashFlow,
		Params:   params,
		Required: required,
		Decode: func(payload []byte) error {
			return decodeRoot(payload, endpointCashFlow, zohodomain.RootCashFlow, &sections)
		},
	})
	if err != nil {
		return nil, err
	}

	return sections, nil
}
