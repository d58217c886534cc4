package zohoclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	zohodomain "github.com/vfg2006/finance-dashboard-api/infrastructure/integrator/zoho/domain"
)

// listAll percorre as páginas de uma listagem até has_more_page ser falso ou o limite
// de páginas ser atingido. Listagens nunca são obrigatórias.
func listAll[T any](ctx context.Context, c *ZohoClient, endpoint string, params url.Values) ([]T, error) {
	var all []T

	for page := 1; page <= c.maxPages; page++ {
		pageParams := url.Values{}
		for k, v := range params {
			pageParams[k] = append([]string(nil), v...)
		}
		pageParams.Set("page", strconv.Itoa(page))
		pageParams.Set("per_page", strconv.Itoa(c.pageSize))

		var items []T
		payload, err := c.Dispatcher.Call(ctx, Request{
			Endpoint: endpoint,
			Params:   pageParams,
			Decode: func(payload []byte) error {
				return decodeRoot(payload, endpoint, endpoint, &items)
			},
		})
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		var envelope struct {
			PageContext *zohodomain.PageContext `json:"page_context"`
		}
		if err := json.Unmarshal(payload, &envelope); err != nil || envelope.PageContext == nil || !envelope.PageContext.HasMorePage {
			return all, nil
		}
	}

	logrus.WithFields(logrus.Fields{
		"endpoint":  endpoint,
		"max_pages": c.maxPages,
	}).Warn("zoho: page limit reached, list truncated")

	return all, nil
}

func (c *ZohoClient) ListInvoices(ctx context.Context, params url.Values) ([]zohodomain.Invoice, error) {
	return listAll[zohodomain.Invoice](ctx, c, zohodomain.ListInvoices, params)
}

func (c *ZohoClient) ListBills(ctx context.Context, params url.Values) ([]zohodomain.Bill, error) {
	return listAll[zohodomain.Bill](ctx, c, zohodomain.ListBills, params)
}

func (c *ZohoClient) ListCustomerPayments(ctx context.Context, params url.Values) ([]zohodomain.CustomerPayment, error) {
	return listAll[zohodomain.CustomerPayment](ctx, c, zohodomain.ListCustomerPayments, params)
}

func (c *ZohoClient) ListVendorPayments(ctx context.Context, params url.Values) ([]zohodomain.VendorPayment, error) {
	return listAll[zohodomain.VendorPayment](ctx, c, zohodomain.ListVendorPayments, params)
}

func (c *ZohoClient) ListExpenses(ctx context.Context, params url.Values) ([]zohodomain.Expense, error) {
	return listAll[zohodomain.Expense](ctx, c, zohodomain.ListExpenses, params)
}

func (c *ZohoClient) ListBankAccounts(ctx context.Context) ([]zohodomain.BankAccount, error) {
	return listAll[zohodomain.BankAccount](ctx, c, zohodomain.ListBankAccounts, nil)
}

func (c *ZohoClient) ListBankTransactions(ctx context.Context, params url.Values) ([]zohodomain.BankTransaction, error) {
	return listAll[zohodomain.BankTransaction](ctx, c, zohodomain.ListBankTransactions, params)
}

func (c *ZohoClient) ListContacts(ctx context.Context, params url.Values) ([]zohodomain.Contact, error) {
	return listAll[zohodomain.Contact](ctx, c, zohodomain.ListContacts, params)
}
