package aging

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/converting"
	"github.com/vfg2006/finance-dashboard-api/pkg/utils"
)

// status que nunca entram na tabela de vencimentos
var skippedStatus = map[string]bool{
	"paid":  true,
	"void":  true,
	"draft": true,
}

// BucketFor devolve a faixa correspondente aos dias em atraso.
// O limite inferior de cada faixa é inclusivo; zero dias (vence hoje) é Current.
func BucketFor(daysOverdue int) domain.Bucket {
	switch {
	case daysOverdue <= 0:
		return domain.BucketCurrent
	case daysOverdue <= 15:
		return domain.Bucket1To15
	case daysOverdue <= 30:
		return domain.Bucket16To30
	case daysOverdue <= 45:
		return domain.Bucket31To45
	default:
		return domain.BucketOver45
	}
}

// DaysOverdue conta dias civis entre o vencimento e a data de referência, nunca negativo.
func DaysOverdue(asOf time.Time, due *time.Time) int {
	if due == nil {
		return 0
	}
	days := int(utils.StartOfDay(asOf).Sub(utils.StartOfDay(*due)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

type Bucketizer struct {
	converter *converting.Converter
}

func NewBucketizer(converter *converting.Converter) *Bucketizer {
	return &Bucketizer{converter: converter}
}

// Options restringe os documentos considerados. Window filtra pela data do documento;
// documentos sem data são mantidos.
type Options struct {
	Window *domain.QueryWindow
}

func (b *Bucketizer) Build(kind domain.AgingKind, asOf time.Time, documents []domain.Document, opts Options) domain.AgingReport {
	report := domain.AgingReport{
		Kind:         kind,
		AsOf:         utils.StartOfDay(asOf),
		BaseCurrency: b.converter.Base(),
		Records:      []domain.AgingRecord{},
	}

	unconverted := map[string]bool{}
	skipped := 0

	for _, doc := range documents {
		if skippedStatus[strings.ToLower(doc.Status)] {
			skipped++
			continue
		}
		if opts.Window != nil && doc.Date != nil && !opts.Window.Contains(*doc.Date) {
			skipped++
			continue
		}

		outstanding := doc.Total.Sub(doc.Settled())
		if !outstanding.IsPositive() {
			skipped++
			continue
		}

		currency := strings.ToUpper(doc.CurrencyCode)
		if currency == "" {
			currency = b.converter.Base()
		}
		converted, ok := b.converter.ToBase(outstanding, currency)
		if !ok {
			unconverted[currency] = true
		}

		days := DaysOverdue(asOf, doc.DueDate)
		report.Records = append(report.Records, domain.AgingRecord{
			Entity:         doc.Entity,
			DocumentNumber: doc.Number,
			Outstanding:    converted,
			OriginalAmount: doc.Total,
			Currency:       currency,
			DueDate:        doc.DueDate,
			DaysOverdue:    days,
			Bucket:         BucketFor(days),
			Overdue:        days > 0,
		})
	}

	sort.SliceStable(report.Records, func(i, j int) bool {
		a, c := report.Records[i], report.Records[j]
		if a.DaysOverdue != c.DaysOverdue {
			return a.DaysOverdue > c.DaysOverdue
		}
		return a.Entity < c.Entity
	})

	report.Entities, report.Buckets = summarize(report.Records)
	for _, rec := range report.Records {
		report.Outstanding = report.Outstanding.Add(rec.Outstanding)
		if rec.Overdue {
			report.Overdue = report.Overdue.Add(rec.Outstanding)
		}
	}

	for code := range unconverted {
		report.Unconverted = append(report.Unconverted, code)
	}
	sort.Strings(report.Unconverted)
	if len(report.Unconverted) > 0 {
		logrus.WithField("currencies", report.Unconverted).Warn("aging: currencies without configured rate summed unconverted")
	}

	logrus.WithFields(logrus.Fields{
		"kind":    kind,
		"records": len(report.Records),
		"skipped": skipped,
	}).Debug("aging: report built")

	return report
}

func emptyBuckets() []domain.BucketTotal {
	out := make([]domain.BucketTotal, len(domain.Buckets))
	for i, bucket := range domain.Buckets {
		out[i] = domain.BucketTotal{Bucket: bucket, Amount: decimal.Zero}
	}
	return out
}

func bucketIndex(bucket domain.Bucket) int {
	for i, b := range domain.Buckets {
		if b == bucket {
			return i
		}
	}
	return len(domain.Buckets) - 1
}

func summarize(records []domain.AgingRecord) ([]domain.EntityAging, []domain.BucketTotal) {
	totals := emptyBuckets()
	byEntity := map[string]*domain.EntityAging{}
	var order []string

	for _, rec := range records {
		idx := bucketIndex(rec.Bucket)
		totals[idx].Amount = totals[idx].Amount.Add(rec.Outstanding)
		totals[idx].Count++

		entity, ok := byEntity[rec.Entity]
		if !ok {
			entity = &domain.EntityAging{Entity: rec.Entity, Buckets: emptyBuckets()}
			byEntity[rec.Entity] = entity
			order = append(order, rec.Entity)
		}
		entity.Buckets[idx].Amount = entity.Buckets[idx].Amount.Add(rec.Outstanding)
		entity.Buckets[idx].Count++
		entity.Total = entity.Total.Add(rec.Outstanding)
	}

	sort.Strings(order)
	entities := make([]domain.EntityAging, 0, len(order))
	for _, name := range order {
		entities = append(entities, *byEntity[name])
	}

	return entities, totals
}
