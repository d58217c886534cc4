package aging

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/converting"
)

var today = time.Date(2026, 3, 31, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	d := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -n)
	return &d
}

func paid(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func newBucketizer(t *testing.T) *Bucketizer {
	t.Helper()
	converter, err := converting.NewConverter("AED", map[string]decimal.Decimal{"USD": decimal.RequireFromString("3.6725")})
	require.NoError(t, err)
	return NewBucketizer(converter)
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		days     int
		expected domain.Bucket
	}{
		{days: 0, expected: domain.BucketCurrent},
		{days: 1, expected: domain.Bucket1To15},
		{days: 15, expected: domain.Bucket1To15},
		{days: 16, expected: domain.Bucket16To30},
		{days: 30, expected: domain.Bucket16To30},
		{days: 31, expected: domain.Bucket31To45},
		{days: 45, expected: domain.Bucket31To45},
		{days: 46, expected: domain.BucketOver45},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BucketFor(tt.days), "dias %d", tt.days)
	}
}

func TestDaysOverdue(t *testing.T) {
	future := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysOverdue(today, daysAgo(0)))
	assert.Equal(t, 1, DaysOverdue(today, daysAgo(1)))
	assert.Equal(t, 16, DaysOverdue(today, daysAgo(16)))
	assert.Equal(t, 0, DaysOverdue(today, &future))
	assert.Equal(t, 0, DaysOverdue(today, nil))
}

func TestBucketizerBuild(t *testing.T) {
	tests := []struct {
		name      string
		documents []domain.Document
		opts      Options
		validate  func(t *testing.T, r domain.AgingReport)
	}{
		{
			name: "Vence hoje é Current, ontem é 1-15 e há 16 dias é 16-30",
			documents: []domain.Document{
				{Number: "INV-1", Entity: "Acme", Total: decimal.NewFromInt(100), DueDate: daysAgo(0)},
				{Number: "INV-2", Entity: "Beta", Total: decimal.NewFromInt(200), DueDate: daysAgo(1)},
				{Number: "INV-3", Entity: "Gama", Total: decimal.NewFromInt(300), DueDate: daysAgo(16)},
			},
			validate: func(t *testing.T, r domain.AgingReport) {
				require.Len(t, r.Records, 3)
				assert.Equal(t, "INV-3", r.Records[0].DocumentNumber)
				assert.Equal(t, domain.Bucket16To30, r.Records[0].Bucket)
				assert.Equal(t, domain.Bucket1To15, r.Records[1].Bucket)
				assert.Equal(t, domain.BucketCurrent, r.Records[2].Bucket)
				assert.False(t, r.Records[2].Overdue)
				assert.True(t, r.Outstanding.Equal(decimal.NewFromInt(600)))
				assert.True(t, r.Overdue.Equal(decimal.NewFromInt(500)))
			},
		},
		{
			name: "Pago, cancelado, rascunho e quitado são ignorados",
			documents: []domain.Document{
				{Entity: "A", Status: "paid", Total: decimal.NewFromInt(100)},
				{Entity: "B", Status: "VOID", Total: decimal.NewFromInt(100)},
				{Entity: "C", Status: "draft", Total: decimal.NewFromInt(100)},
				{Entity: "D", Status: "sent", Total: decimal.NewFromInt(100), AmountPaid: paid(100)},
				{Entity: "E", Status: "sent", Total: decimal.NewFromInt(100), Balance: decimal.NewNullDecimal(decimal.Zero)},
			},
			validate: func(t *testing.T, r domain.AgingReport) {
				assert.Empty(t, r.Records)
				assert.True(t, r.Outstanding.IsZero())
				assert.Len(t, r.Buckets, len(domain.Buckets))
			},
		},
		{
			name: "Valor em aberto desconta o pago e usa o saldo quando não há pagamento",
			documents: []domain.Document{
				{Entity: "A", Total: decimal.NewFromInt(1000), AmountPaid: paid(400), DueDate: daysAgo(50)},
				{Entity: "B", Total: decimal.NewFromInt(500), Balance: decimal.NewNullDecimal(decimal.NewFromInt(120)), DueDate: daysAgo(40)},
			},
			validate: func(t *testing.T, r domain.AgingReport) {
				require.Len(t, r.Records, 2)
				assert.True(t, r.Records[0].Outstanding.Equal(decimal.NewFromInt(600)))
				assert.Equal(t, domain.BucketOver45, r.Records[0].Bucket)
				assert.True(t, r.Records[1].Outstanding.Equal(decimal.NewFromInt(120)))
				assert.Equal(t, domain.Bucket31To45, r.Records[1].Bucket)
			},
		},
		{
			name: "Moeda estrangeira é convertida antes da faixa",
			documents: []domain.Document{
				{Entity: "US Corp", CurrencyCode: "usd", Total: decimal.NewFromInt(100), DueDate: daysAgo(3)},
				{Entity: "Euro SA", CurrencyCode: "EUR", Total: decimal.NewFromInt(10), DueDate: daysAgo(3)},
			},
			validate: func(t *testing.T, r domain.AgingReport) {
				require.Len(t, r.Records, 2)
				assert.Equal(t, "Euro SA", r.Records[0].Entity)
				assert.True(t, r.Records[0].Outstanding.Equal(decimal.NewFromInt(10)))
				assert.True(t, r.Records[1].Outstanding.Equal(decimal.RequireFromString("367.25")))
				assert.Equal(t, "USD", r.Records[1].Currency)
				assert.Equal(t, []string{"EUR"}, r.Unconverted)
			},
		},
		{
			name: "Agrupamento por entidade em ordem fixa de faixas",
			documents: []domain.Document{
				{Entity: "Acme", Total: decimal.NewFromInt(100), DueDate: daysAgo(0)},
				{Entity: "Acme", Total: decimal.NewFromInt(40), DueDate: daysAgo(20)},
				{Entity: "Acme", Total: decimal.NewFromInt(60), DueDate: daysAgo(25)},
				{Entity: "Zeta", Total: decimal.NewFromInt(10), DueDate: daysAgo(90)},
			},
			validate: func(t *testing.T, r domain.AgingReport) {
				require.Len(t, r.Entities, 2)
				acme := r.Entities[0]
				assert.Equal(t, "Acme", acme.Entity)
				assert.True(t, acme.Total.Equal(decimal.NewFromInt(200)))
				assert.True(t, acme.Amount(domain.BucketCurrent).Equal(decimal.NewFromInt(100)))
				assert.True(t, acme.Amount(domain.Bucket16To30).Equal(decimal.NewFromInt(100)))
				assert.Equal(t, 2, acme.Buckets[2].Count)

				for i, b := range r.Buckets {
					assert.Equal(t, domain.Buckets[i], b.Bucket)
				}
				assert.True(t, r.Buckets[4].Amount.Equal(decimal.NewFromInt(10)))
			},
		},
		{
			name: "Janela por data do documento mantém documentos sem data",
			documents: []domain.Document{
				{Entity: "Dentro", Total: decimal.NewFromInt(10), Date: daysAgo(5)},
				{Entity: "Fora", Total: decimal.NewFromInt(10), Date: daysAgo(100)},
				{Entity: "Sem data", Total: decimal.NewFromInt(10)},
			},
			opts: Options{Window: &domain.QueryWindow{From: *daysAgo(30), To: *daysAgo(0)}},
			validate: func(t *testing.T, r domain.AgingReport) {
				require.Len(t, r.Records, 2)
				assert.Equal(t, "Dentro", r.Records[0].Entity)
				assert.Equal(t, "Sem data", r.Records[1].Entity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := newBucketizer(t).Build(domain.AgingReceivables, today, tt.documents, tt.opts)
			assert.Equal(t, domain.AgingReceivables, report.Kind)
			assert.Equal(t, "AED", report.BaseCurrency)
			tt.validate(t, report)
		})
	}
}

func TestSummarizeContacts(t *testing.T) {
	contacts := []domain.Contact{
		{Name: "A", Type: "customer", Active: true, OutstandingReceivable: decimal.NewFromInt(100)},
		{Name: "B", Type: "customer", Active: false, OutstandingReceivable: decimal.NewFromInt(50)},
		{Name: "C", Type: "vendor", Active: true, OutstandingPayable: decimal.NewFromInt(70)},
	}

	summary := SummarizeContacts(contacts)

	assert.Equal(t, 2, summary.Customers)
	assert.Equal(t, 1, summary.ActiveCustomers)
	assert.Equal(t, 1, summary.Vendors)
	assert.Equal(t, 1, summary.ActiveVendors)
	assert.True(t, summary.OutstandingReceivable.Equal(decimal.NewFromInt(150)))
	assert.True(t, summary.OutstandingPayable.Equal(decimal.NewFromInt(70)))
}
