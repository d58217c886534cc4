package zohoclient

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zohodomain "github.com/vfg2006/finance-dashboard-api/infrastructure/integrator/zoho/domain"
)

func TestClient_GetProfitAndLoss(t *testing.T) {
	var query url.Values
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		jsonHandler(http.StatusOK, `{"code":0,"profit_and_loss":[
			{"name":"Gross Profit","total":"1,500.50","account_transactions":[
				{"name":"Operating Income","total":2000},
				{"name":"Cost of Goods Sold","total":"499.50"}
			]}
		]}`)(w, r)
	}, nil, nil)

	sections, err := h.client.GetProfitAndLoss(context.Background(), "2026-01-01", "2026-01-31", true, true)
	require.NoError(t, err)

	require.Len(t, sections, 1)
	assert.Equal(t, "1500.5", sections[0].Total.String())
	require.Len(t, sections[0].AccountTransactions, 2)
	assert.Equal(t, "499.5", sections[0].AccountTransactions[1].Total.String())

	assert.Equal(t, "2026-01-01", query.Get("from_date"))
	assert.Equal(t, "2026-01-31", query.Get("to_date"))
	assert.Equal(t, "true", query.Get("cash_based"))
}

func TestClient_MissingRoot(t *testing.T) {
	h := newHarness(t, jsonHandler(http.StatusOK, `{"code":0,"message":"success"}`), nil, nil)

	_, err := h.client.GetBalanceSheet(context.Background(), "2026-01-31", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, zohodomain.ErrMissingRoot)
	var malformed *zohodomain.MalformedPayloadError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, zohodomain.RootBalanceSheet, malformed.Root)
}

func TestClient_PayloadWithoutRootIsNotCached(t *testing.T) {
	h := newHarness(t, sequence(
		jsonHandler(http.StatusOK, `{"code":0,"message":"success"}`),
		jsonHandler(http.StatusOK, `{"code":0,"profit_and_loss":[{"name":"Net Profit/Loss","total":10}]}`),
	), nil, nil)

	_, err := h.client.GetProfitAndLoss(context.Background(), "2026-01-01", "2026-01-31", false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, zohodomain.ErrMissingRoot)
	assert.Zero(t, h.session.Cache.Len())

	sections, err := h.client.GetProfitAndLoss(context.Background(), "2026-01-01", "2026-01-31", false, false)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, int32(2), h.apiCalls.Load())
	assert.Equal(t, 1, h.session.Cache.Len())
}

func TestClient_RequiredMissingRootCarriesCallContext(t *testing.T) {
	h := newHarness(t, jsonHandler(http.StatusOK, `{"code":0,"message":"success"}`), nil, nil)

	_, err := h.client.GetBalanceSheet(context.Background(), "2026-01-31", true)

	require.Error(t, err)
	var required *zohodomain.RequiredCallError
	require.ErrorAs(t, err, &required)
	assert.Equal(t, "reports/balancesheet", required.Endpoint)
	assert.Equal(t, "2026-01-31", required.Params.Get("to_date"))
	assert.True(t, zohodomain.IsMalformedPayloadError(err))
}

func TestClient_ListPageWithoutRootIsNotCached(t *testing.T) {
	h := newHarness(t, sequence(
		jsonHandler(http.StatusOK, `{"code":0}`),
		jsonHandler(http.StatusOK, `{"code":0,"bills":[{"bill_id":"b1","total":10}],"page_context":{"has_more_page":false}}`),
	), nil, nil)

	_, err := h.client.ListBills(context.Background(), nil)
	require.Error(t, err)

	bills, err := h.client.ListBills(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, int32(2), h.apiCalls.Load())
}

func TestClient_CashFlowSections(t *testing.T) {
	h := newHarness(t, jsonHandler(http.StatusOK, `{"code":0,"cash_flow":[
		{"section_name":"Cash Flow from Operating Activities","total":4200,"account_transactions":[{"name":"Net Income","total":4200}]}
	]}`), nil, nil)

	sections, err := h.client.GetCashFlow(context.Background(), "2026-01-01", "2026-01-31", false)
	require.NoError(t, err)

	require.Len(t, sections, 1)
	assert.Equal(t, "Cash Flow from Operating Activities", sections[0].SectionName)
	assert.Equal(t, "4200", sections[0].Total.String())
}

func TestClient_Pagination(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			jsonHandler(http.StatusOK, `{"code":0,"invoices":[
				{"invoice_id":"1","invoice_number":"INV-1","total":100,"balance":"100"},
				{"invoice_id":"2","invoice_number":"INV-2","total":"200"}
			],"page_context":{"page":1,"per_page":2,"has_more_page":true}}`)(w, r)
		default:
			jsonHandler(http.StatusOK, `{"code":0,"invoices":[
				{"invoice_id":"3","invoice_number":"INV-3","total":300,"payment_made":null}
			],"page_context":{"page":2,"per_page":2,"has_more_page":false}}`)(w, r)
		}
	}, nil, nil)

	invoices, err := h.client.ListInvoices(context.Background(), url.Values{"status": []string{"unpaid"}})
	require.NoError(t, err)

	require.Len(t, invoices, 3)
	assert.Equal(t, "INV-3", invoices[2].InvoiceNumber)
	require.NotNil(t, invoices[0].Balance)
	assert.Equal(t, "100", invoices[0].Balance.String())
	assert.Nil(t, invoices[1].Balance)
	assert.Equal(t, int32(2), h.apiCalls.Load())
	assert.True(t, h.queryContains(0, "per_page=2"))
	assert.True(t, h.queryContains(1, "status=unpaid"))
}

func TestClient_DocumentPaidFields(t *testing.T) {
	h := newHarness(t, jsonHandler(http.StatusOK, `{"code":0,"invoices":[
		{"invoice_id":"1","status":"partially_paid","total":1000,"amount_paid":400,"due_date":"2026-01-01"},
		{"invoice_id":"2","status":"partially_paid","total":500,"payment_made":"125.50"},
		{"invoice_id":"3","status":"sent","total":50}
	],"page_context":{"has_more_page":false}}`), nil, nil)

	invoices, err := h.client.ListInvoices(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, invoices, 3)

	require.NotNil(t, invoices[0].Paid())
	assert.Equal(t, "400", invoices[0].Paid().String())
	assert.Nil(t, invoices[0].Balance)
	require.NotNil(t, invoices[1].Paid())
	assert.Equal(t, "125.5", invoices[1].Paid().String())
	assert.Nil(t, invoices[2].Paid())
}

func TestClient_PaginationStopsAtMaxPages(t *testing.T) {
	h := newHarness(t, jsonHandler(http.StatusOK, `{"code":0,"contacts":[{"contact_id":"c"}],"page_context":{"has_more_page":true}}`), nil, nil)

	contacts, err := h.client.ListContacts(context.Background(), nil)
	require.NoError(t, err)

	assert.Len(t, contacts, h.cfg.Dispatcher.MaxPages)
	assert.Equal(t, int32(h.cfg.Dispatcher.MaxPages), h.apiCalls.Load())
}

func TestClient_ListErrorIsReturned(t *testing.T) {
	h := newHarness(t, jsonHandler(http.StatusServiceUnavailable, `{"code":1}`), nil, nil)

	_, err := h.client.ListBills(context.Background(), nil)

	require.Error(t, err)
	assert.False(t, zohodomain.IsRequiredCallError(err))
	assert.Equal(t, http.StatusServiceUnavailable, zohodomain.StatusOf(err))
}

func TestClient_CloseDropsCacheAndToken(t *testing.T) {
	h := newHarness(t, jsonHandler(http.StatusOK, balancePayload), nil, nil)

	_, err := h.client.GetBalanceSheet(context.Background(), "2026-01-31", true)
	require.NoError(t, err)
	require.Equal(t, 1, h.session.Cache.Len())

	h.client.Close()
	assert.Equal(t, 0, h.session.Cache.Len())

	_, err = h.client.GetBalanceSheet(context.Background(), "2026-01-31", true)
	require.NoError(t, err)
	assert.Equal(t, int32(2), h.tokenCalls.Load())
	assert.Equal(t, int32(2), h.apiCalls.Load())
}
