package aging

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

func march(t *testing.T) domain.QueryWindow {
	t.Helper()
	window, err := domain.NewQueryWindow(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return window
}

func TestTopOverdue(t *testing.T) {
	report := domain.AgingReport{Records: []domain.AgingRecord{
		{Entity: "A", DaysOverdue: 10, Outstanding: decimal.NewFromInt(100), Overdue: true},
		{Entity: "B", DaysOverdue: 40, Outstanding: decimal.NewFromInt(50), Overdue: true},
		{Entity: "C", DaysOverdue: 10, Outstanding: decimal.NewFromInt(300), Overdue: true},
		{Entity: "D", DaysOverdue: 0, Outstanding: decimal.NewFromInt(900)},
	}}

	top := TopOverdue(report, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Entity)
	assert.Equal(t, "C", top[1].Entity)
	assert.Len(t, TopOverdue(report, 0), 3)
}

func TestVendorSpend(t *testing.T) {
	window := march(t)
	outside := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		bills    []domain.Document
		expenses []domain.Transaction
		limit    int
		validate func(t *testing.T, spend []domain.EntityAmount)
	}{
		{
			name: "Contas e despesas do mesmo fornecedor somam",
			bills: []domain.Document{
				{Entity: "DEWA", Status: "open", Date: daysAgo(5), Total: decimal.NewFromInt(200)},
				{Entity: "Supplier", Status: "paid", Date: daysAgo(3), Total: decimal.NewFromInt(100), CurrencyCode: "USD"},
			},
			expenses: []domain.Transaction{
				{Source: domain.SourceExpense, Counterparty: "DEWA", Date: daysAgo(1), Amount: decimal.NewFromInt(-50)},
			},
			validate: func(t *testing.T, spend []domain.EntityAmount) {
				require.Len(t, spend, 2)
				assert.Equal(t, "Supplier", spend[0].Entity)
				assert.True(t, spend[0].Amount.Equal(decimal.RequireFromString("367.25")), "got %s", spend[0].Amount)
				assert.Equal(t, "DEWA", spend[1].Entity)
				assert.True(t, spend[1].Amount.Equal(decimal.NewFromInt(250)))
				assert.Equal(t, 2, spend[1].Count)
			},
		},
		{
			name: "Fora da janela, anuladas e pagamentos não entram",
			bills: []domain.Document{
				{Entity: "Old", Status: "open", Date: &outside, Total: decimal.NewFromInt(500)},
				{Entity: "Void", Status: "void", Date: daysAgo(2), Total: decimal.NewFromInt(500)},
				{Entity: "NoDate", Status: "open", Total: decimal.NewFromInt(500)},
			},
			expenses: []domain.Transaction{
				{Source: domain.SourceVendorPayment, Counterparty: "Supplier", Date: daysAgo(1), Amount: decimal.NewFromInt(-80)},
				{Source: domain.SourceExpense, Date: daysAgo(1), Amount: decimal.NewFromInt(-20)},
			},
			validate: func(t *testing.T, spend []domain.EntityAmount) {
				require.Len(t, spend, 1)
				assert.Equal(t, "Expenses", spend[0].Entity)
				assert.True(t, spend[0].Amount.Equal(decimal.NewFromInt(20)))
			},
		},
		{
			name: "Ranking limitado aos maiores",
			bills: func() []domain.Document {
				var bills []domain.Document
				for i := 1; i <= 12; i++ {
					bills = append(bills, domain.Document{Entity: fmt.Sprintf("V%02d", i), Status: "open", Date: daysAgo(1), Total: decimal.NewFromInt(int64(i))})
				}
				return bills
			}(),
			limit: TopLimit,
			validate: func(t *testing.T, spend []domain.EntityAmount) {
				require.Len(t, spend, TopLimit)
				assert.Equal(t, "V12", spend[0].Entity)
				assert.Equal(t, "V03", spend[TopLimit-1].Entity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, newBucketizer(t).VendorSpend(window, tt.bills, tt.expenses, tt.limit))
		})
	}
}

func TestCustomerInsights(t *testing.T) {
	b := newBucketizer(t)
	window := march(t)

	invoices := []domain.Document{
		{Entity: "Acme", Number: "INV-1", Status: "overdue", Date: daysAgo(20), DueDate: daysAgo(10), Total: decimal.NewFromInt(1000)},
		{Entity: "Acme", Number: "INV-2", Status: "overdue", Date: daysAgo(25), DueDate: daysAgo(5), Total: decimal.NewFromInt(500)},
		{Entity: "Globex", Number: "INV-3", Status: "paid", Date: daysAgo(2), DueDate: daysAgo(1), Total: decimal.NewFromInt(300), AmountPaid: paid(300)},
		{Entity: "Initech", Number: "INV-4", Status: "draft", Date: daysAgo(1), Total: decimal.NewFromInt(9000)},
	}
	receivables := b.Build(domain.AgingReceivables, today, invoices, Options{})
	contacts := domain.ContactsSummary{Customers: 3, ActiveCustomers: 2}

	insights := b.CustomerInsights(window, invoices, receivables, contacts)

	assert.Equal(t, 3, insights.TotalCustomers)
	assert.Equal(t, 2, insights.ActiveCustomers)
	assert.Equal(t, 3, insights.InvoiceCount)
	assert.True(t, insights.RevenuePeriod.Equal(decimal.NewFromInt(1800)), "got %s", insights.RevenuePeriod)
	assert.True(t, insights.AverageInvoice.Equal(decimal.NewFromInt(600)), "got %s", insights.AverageInvoice)
	assert.True(t, insights.Overdue.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 1, insights.OverdueCustomers)
	require.Len(t, insights.TopOverdue, 2)
	assert.Equal(t, "INV-1", insights.TopOverdue[0].DocumentNumber)
}

func TestCustomerInsightsWithoutInvoices(t *testing.T) {
	insights := newBucketizer(t).CustomerInsights(march(t), nil, domain.AgingReport{}, domain.ContactsSummary{})

	assert.True(t, insights.AverageInvoice.IsZero())
	assert.NotNil(t, insights.TopOverdue)
	assert.Zero(t, insights.OverdueCustomers)
}

func TestVendorInsights(t *testing.T) {
	b := newBucketizer(t)
	bills := []domain.Document{
		{Entity: "DEWA", Status: "overdue", Date: daysAgo(40), DueDate: daysAgo(20), Total: decimal.NewFromInt(400)},
		{Entity: "Landlord", Status: "open", Date: daysAgo(3), DueDate: daysAgo(-10), Total: decimal.NewFromInt(600)},
	}
	expenses := []domain.Transaction{
		{Source: domain.SourceExpense, Counterparty: "ENOC", Date: daysAgo(4), Amount: decimal.NewFromInt(-100)},
	}
	payables := b.Build(domain.AgingPayables, today, bills, Options{})

	insights := b.VendorInsights(march(t), bills, expenses, payables, domain.ContactsSummary{Vendors: 4, ActiveVendors: 3})

	assert.Equal(t, 4, insights.TotalVendors)
	assert.True(t, insights.SpendPeriod.Equal(decimal.NewFromInt(700)), "got %s", insights.SpendPeriod)
	assert.True(t, insights.Outstanding.Equal(decimal.NewFromInt(1000)))
	assert.True(t, insights.Overdue.Equal(decimal.NewFromInt(400)))
	require.Len(t, insights.TopSpend, 2)
	assert.Equal(t, "Landlord", insights.TopSpend[0].Entity)
}
