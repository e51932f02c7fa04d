package forecast

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/viewing"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/crm-tracker-api/pkg/utils"
)

const view = "forecast"

type ForecastService interface {
	Get(region domain.Region, period string) (*domain.ForecastView, error)
}

type Service struct {
	Reader dataset.Reader
}

func NewForecastService(reader dataset.Reader) ForecastService {
	return &Service{
		Reader: reader,
	}
}

// Get monta a previsão com os últimos N meses disponíveis para o período
func (s *Service) Get(region domain.Region, period string) (*domain.ForecastView, error) {
	p, err := domain.ParseForecastPeriod(period)
	if err != nil {
		return nil, viewing.NewViewError(err, apiErrors.ErrInvalidPeriod, view, "use 3M, 6M ou 12M")
	}

	data, err := s.Reader.Forecast(region)
	if err != nil {
		logrus.WithError(err).WithField("region", region).Error("Erro ao ler previsão")
		return nil, viewing.ReaderError(view, region, err)
	}

	months := data.Months
	if n := p.Months(); len(months) > n {
		months = months[len(months)-n:]
	}

	result := &domain.ForecastView{
		Region:       region,
		Period:       p,
		Rows:         make([]domain.ForecastRow, 0, len(months)),
		Metrics:      data.Metrics,
		WinLossRatio: WinLossRatio(data.Metrics),
	}

	for _, m := range months {
		result.Rows = append(result.Rows, domain.ForecastRow{
			ForecastMonth: m,
			Attainment:    utils.Percentage(m.Closed, m.Target),
			MetTarget:     m.Closed >= m.Target,
		})
		result.Totals.Pipeline += m.Pipeline
		result.Totals.Weighted += m.Weighted
		result.Totals.Closed += m.Closed
		result.Totals.Target += m.Target
	}
	result.Totals.Attainment = utils.Percentage(result.Totals.Closed, result.Totals.Target)

	return result, nil
}

// WinLossRatio é ganhos/perdidos com duas casas; sem perdas retorna o total de ganhos
func WinLossRatio(m domain.ForecastMetrics) float64 {
	if m.DealsLost == 0 {
		return float64(m.DealsWon)
	}
	return utils.RoundWithTwoDecimalPlace(float64(m.DealsWon) / float64(m.DealsLost))
}
