package grouping

import (
	"math"
	"time"

	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

const day = 24 * time.Hour

// DaysUntil retorna ceil((target - now) / 24h); negativo quando a data já passou
func DaysUntil(target, now time.Time) int {
	return int(math.Ceil(float64(target.Sub(now)) / float64(day)))
}

// ClassifyUrgency mapeia os dias restantes para a faixa de urgência
func ClassifyUrgency(days int) domain.Urgency {
	switch {
	case days < 0:
		return domain.UrgencyOverdue
	case days <= 30:
		return domain.UrgencyDueThisMonth
	case days <= 60:
		return domain.UrgencyDueNextMonth
	case days <= 90:
		return domain.UrgencyDueIn3Months
	default:
		return domain.UrgencyFutureRenewals
	}
}

// Dated é um registro acompanhado dos dias até a sua data
type Dated[T any] struct {
	Record    T
	DaysUntil int
}

type UrgencyBucket[T any] struct {
	Urgency domain.Urgency
	Records []Dated[T]
	Count   int
	Value   float64
}

// ByUrgency agrupa os registros por faixa de urgência em relação a now.
// As faixas seguem domain.UrgencyOrder e faixas vazias são omitidas.
func ByUrgency[T any](records []T, now time.Time, date func(T) time.Time, value func(T) float64) []UrgencyBucket[T] {
	order := domain.UrgencyOrder()
	index := make(map[domain.Urgency]int, len(order))
	all := make([]UrgencyBucket[T], len(order))
	for i, u := range order {
		index[u] = i
		all[i] = UrgencyBucket[T]{Urgency: u}
	}

	for _, record := range records {
		days := DaysUntil(date(record), now)
		b := &all[index[ClassifyUrgency(days)]]
		b.Records = append(b.Records, Dated[T]{Record: record, DaysUntil: days})
		b.Count++
		if value != nil {
			b.Value += value(record)
		}
	}

	buckets := make([]UrgencyBucket[T], 0, len(all))
	for _, b := range all {
		if b.Count > 0 {
			buckets = append(buckets, b)
		}
	}
	return buckets
}
