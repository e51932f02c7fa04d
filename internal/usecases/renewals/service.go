package renewals

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/filter"
	"github.com/vfg2006/crm-tracker-api/internal/grouping"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/viewing"
	"github.com/vfg2006/crm-tracker-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/renewal_mock.go -package=mocks

const view = "renewals"

// TimelineParams filtra a linha do tempo; Now zero usa o relógio do serviço
type TimelineParams struct {
	Region domain.Region
	Query  string
	Status string
	Now    time.Time
}

type RenewalService interface {
	Timeline(params TimelineParams) (*domain.RenewalsTimeline, error)
	Digest(region domain.Region, now time.Time) (*domain.RenewalDigest, error)
}

type Service struct {
	Reader dataset.Reader
	Clock  viewing.Clock
}

func NewRenewalService(reader dataset.Reader, clock viewing.Clock) RenewalService {
	if clock == nil {
		clock = time.Now
	}

	return &Service{
		Reader: reader,
		Clock:  clock,
	}
}

func (s *Service) Timeline(params TimelineParams) (*domain.RenewalsTimeline, error) {
	status, err := viewing.CheckStatus(view, params.Status, domain.RenewalStatuses())
	if err != nil {
		return nil, err
	}

	records, err := s.read(params.Region)
	if err != nil {
		return nil, err
	}

	now := s.now(params.Now)
	filtered := filter.Apply(records, filter.Query{Text: params.Query, Status: status}, filter.Renewals)
	buckets := groupByUrgency(filtered, now)

	timeline := &domain.RenewalsTimeline{
		Region:        params.Region,
		Query:         params.Query,
		Status:        status,
		ReferenceDate: toDate(now),
		Count:         len(filtered),
		AtRiskValue:   AtRiskValue(filtered, now),
		Groups:        make([]domain.UrgencyGroup, 0, len(buckets)),
	}

	for _, r := range filtered {
		timeline.TotalValue += r.RenewalValue
	}

	for _, bucket := range buckets {
		group := domain.UrgencyGroup{
			Urgency:  bucket.Urgency,
			Count:    bucket.Count,
			Value:    bucket.Value,
			Renewals: make([]domain.RenewalCard, 0, bucket.Count),
		}
		for _, dated := range bucket.Records {
			group.Renewals = append(group.Renewals, domain.RenewalCard{
				Renewal:   dated.Record,
				DaysUntil: dated.DaysUntil,
				Urgency:   bucket.Urgency,
			})
		}
		timeline.Groups = append(timeline.Groups, group)
	}

	return timeline, nil
}

// Digest resume todas as renovações da região por faixa de urgência, sem filtros
func (s *Service) Digest(region domain.Region, now time.Time) (*domain.RenewalDigest, error) {
	records, err := s.read(region)
	if err != nil {
		return nil, err
	}

	now = s.now(now)
	buckets := groupByUrgency(records, now)

	digest := &domain.RenewalDigest{
		Region:        region,
		ReferenceDate: toDate(now),
		AtRiskValue:   AtRiskValue(records, now),
		Entries:       make([]domain.RenewalDigestEntry, 0, len(buckets)),
	}
	for _, bucket := range buckets {
		digest.Entries = append(digest.Entries, domain.RenewalDigestEntry{
			Urgency: bucket.Urgency,
			Count:   bucket.Count,
			Value:   bucket.Value,
		})
	}

	return digest, nil
}

// AtRiskValue soma o valor atual das renovações em risco ou vencidas, exceto as perdidas
func AtRiskValue(records []domain.Renewal, now time.Time) float64 {
	total := 0.0
	for _, r := range records {
		if r.Status == domain.RenewalStatusLost {
			continue
		}
		if r.Status == domain.RenewalStatusAtRisk || grouping.DaysUntil(r.RenewalDate.Time, now) < 0 {
			total += r.CurrentValue
		}
	}
	return total
}

func (s *Service) read(region domain.Region) ([]domain.Renewal, error) {
	records, err := s.Reader.Renewals(region)
	if err != nil {
		logrus.WithError(err).WithField("region", region).Error("Erro ao ler renovações")
		return nil, viewing.ReaderError(view, region, err)
	}
	return records, nil
}

func (s *Service) now(now time.Time) time.Time {
	if now.IsZero() {
		return s.Clock()
	}
	return now
}

func groupByUrgency(records []domain.Renewal, now time.Time) []grouping.UrgencyBucket[domain.Renewal] {
	return grouping.ByUrgency(records, now,
		func(r domain.Renewal) time.Time { return r.RenewalDate.Time },
		func(r domain.Renewal) float64 { return r.RenewalValue },
	)
}

func toDate(t time.Time) domain.Date {
	day := utils.StartOfDay(t.UTC())
	return domain.NewDate(day.Year(), day.Month(), day.Day())
}
