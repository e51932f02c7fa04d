package dashboard

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/viewing"
	"github.com/vfg2006/crm-tracker-api/pkg/utils"
)

const view = "dashboard"

const (
	CardLeads         = "leads"
	CardOpportunities = "opportunities"
	CardCustomers     = "customers"
	CardRevenue       = "revenue"
	CardConversion    = "conversion"
	CardDealCycle     = "dealCycle"
)

type DashboardService interface {
	Get(region domain.Region) (*domain.DashboardView, error)
}

type Service struct {
	Reader dataset.Reader
}

func NewDashboardService(reader dataset.Reader) DashboardService {
	return &Service{
		Reader: reader,
	}
}

func (s *Service) Get(region domain.Region) (*domain.DashboardView, error) {
	data, err := s.Reader.Dashboard(region)
	if err != nil {
		logrus.WithError(err).WithField("region", region).Error("Erro ao ler painel")
		return nil, viewing.ReaderError(view, region, err)
	}

	return &domain.DashboardView{
		Region:      region,
		Cards:       StatCards(data.Stats, data.Trends),
		Goal:        NewGoalMeter(data.Goal),
		Months:      data.LeadSources.Months,
		LeadSources: SummarizeLeadSources(data.LeadSources.Series),
		Meetings:    SortMeetings(data.Meetings),
	}, nil
}

// StatCards monta os cards na ordem de exibição. No ciclo de venda uma
// tendência negativa é positiva.
func StatCards(stats domain.DashboardStats, trends domain.DashboardTrends) []domain.StatCard {
	cards := []domain.StatCard{
		{Key: CardLeads, Title: "New Leads", Value: float64(stats.TotalLeads), Trend: trends.Leads},
		{Key: CardOpportunities, Title: "Opportunities", Value: float64(stats.Opportunities), Trend: trends.Opportunities},
		{Key: CardCustomers, Title: "New Customers", Value: float64(stats.NewCustomers), Trend: trends.Customers},
		{Key: CardRevenue, Title: "Estimated Revenue", Value: stats.Revenue, Unit: "NOK", Trend: trends.Revenue},
		{Key: CardConversion, Title: "Conversion Rate", Value: stats.ConversionRate, Unit: "%", Trend: trends.Conversion},
		{Key: CardDealCycle, Title: "Avg. Deal Cycle", Value: float64(stats.AvgDealCycle), Unit: "days", Trend: trends.DealCycle},
	}

	for i := range cards {
		if cards[i].Key == CardDealCycle {
			cards[i].TrendPositive = cards[i].Trend <= 0
			continue
		}
		cards[i].TrendPositive = cards[i].Trend >= 0
	}

	return cards
}

// NewGoalMeter calcula o percentual arredondado; meta zero resulta em 0%
func NewGoalMeter(goal domain.Goal) domain.GoalMeter {
	meter := domain.GoalMeter{
		Goal:      goal,
		Remaining: goal.Target - goal.Current,
	}
	if goal.Target > 0 {
		meter.Percentage = int(math.Round(goal.Current / goal.Target * 100))
	}
	return meter
}

func SummarizeLeadSources(series []domain.LeadSourceSeries) []domain.LeadSourceSummary {
	summaries := make([]domain.LeadSourceSummary, 0, len(series))
	all := 0
	for _, s := range series {
		total := 0
		for _, v := range s.Values {
			total += v
		}
		all += total
		summaries = append(summaries, domain.LeadSourceSummary{LeadSourceSeries: s, Total: total})
	}

	for i := range summaries {
		summaries[i].Share = utils.Percentage(float64(summaries[i].Total), float64(all))
	}
	return summaries
}

// SortMeetings ordena por data e depois por horário (HH:MM), mantendo empates estáveis
func SortMeetings(meetings []domain.Meeting) []domain.Meeting {
	sorted := append([]domain.Meeting{}, meetings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date.Time) {
			return sorted[i].Date.Before(sorted[j].Date.Time)
		}
		return sorted[i].Time < sorted[j].Time
	})
	return sorted
}
