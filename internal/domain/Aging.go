package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bucket é a faixa de dias em atraso de um documento em aberto.
type Bucket string

const (
	BucketCurrent Bucket = "Current"
	Bucket1To15   Bucket = "1-15 Days"
	Bucket16To30  Bucket = "16-30 Days"
	Bucket31To45  Bucket = "31-45 Days"
	BucketOver45  Bucket = "45+ Days"
)

// Buckets lista as faixas na ordem de apresentação.
var Buckets = []Bucket{BucketCurrent, Bucket1To15, Bucket16To30, Bucket31To45, BucketOver45}

type AgingKind string

const (
	AgingReceivables AgingKind = "receivables"
	AgingPayables    AgingKind = "payables"
)

// Document é uma fatura (a receber) ou conta (a pagar) vinda da API contábil.
type Document struct {
	ID           string              `json:"id"`
	Number       string              `json:"number"`
	Entity       string              `json:"entity"`
	Status       string              `json:"status"`
	Date         *time.Time          `json:"date,omitempty"`
	DueDate      *time.Time          `json:"due_date,omitempty"`
	CurrencyCode string              `json:"currency_code"`
	Total        decimal.Decimal     `json:"total"`
	AmountPaid   decimal.NullDecimal `json:"amount_paid"`
	Balance      decimal.NullDecimal `json:"balance"`
}

// Settled devolve o valor já quitado: amount_paid quando informado, senão total - balance.
func (d Document) Settled() decimal.Decimal {
	if d.AmountPaid.Valid {
		return d.AmountPaid.Decimal
	}
	if d.Balance.Valid {
		return d.Total.Sub(d.Balance.Decimal)
	}
	return decimal.Zero
}

// AgingRecord é uma linha da tabela de vencimentos.
type AgingRecord struct {
	Entity         string          `json:"entity"`
	DocumentNumber string          `json:"document_number"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	Currency       string          `json:"currency"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	DaysOverdue    int             `json:"days_overdue"`
	Bucket         Bucket          `json:"bucket"`
	Overdue        bool            `json:"overdue"`
}

type BucketTotal struct {
	Bucket Bucket          `json:"bucket"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// EntityAging totaliza as faixas de um cliente ou fornecedor.
type EntityAging struct {
	Entity  string          `json:"entity"`
	Buckets []BucketTotal   `json:"buckets"`
	Total   decimal.Decimal `json:"total"`
}

// Amount devolve o total da faixa para a entidade.
func (e EntityAging) Amount(bucket Bucket) decimal.Decimal {
	for _, b := range e.Buckets {
		if b.Bucket == bucket {
			return b.Amount
		}
	}
	return decimal.Zero
}

type AgingReport struct {
	Kind         AgingKind       `json:"kind"`
	AsOf         time.Time       `json:"as_of"`
	BaseCurrency string          `json:"base_currency"`
	Records      []AgingRecord   `json:"records"`
	Entities     []EntityAging   `json:"entities"`
	Buckets      []BucketTotal   `json:"buckets"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	Overdue      decimal.Decimal `json:"overdue"`
	Unconverted  []string        `json:"unconverted_currencies,omitempty"`
}

func roundBuckets(in []BucketTotal) []BucketTotal {
	out := make([]BucketTotal, len(in))
	for i, b := range in {
		out[i] = BucketTotal{Bucket: b.Bucket, Amount: b.Amount.Round(1), Count: b.Count}
	}
	return out
}

func (r AgingReport) Rounded() AgingReport {
	out := r
	out.Records = make([]AgingRecord, len(r.Records))
	for i, rec := range r.Records {
		rec.Outstanding = rec.Outstanding.Round(1)
		rec.OriginalAmount = rec.OriginalAmount.Round(1)
		out.Records[i] = rec
	}
	out.Entities = make([]EntityAging, len(r.Entities))
	for i, e := range r.Entities {
		out.Entities[i] = EntityAging{Entity: e.Entity, Buckets: roundBuckets(e.Buckets), Total: e.Total.Round(1)}
	}
	out.Buckets = roundBuckets(r.Buckets)
	out.Outstanding = r.Outstanding.Round(1)
	out.Overdue = r.Overdue.Round(1)
	return out
}
