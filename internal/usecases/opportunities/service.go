package opportunities

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/filter"
	"github.com/vfg2006/crm-tracker-api/internal/grouping"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/viewing"
)

const view = "opportunities"

// BoardParams filtra o quadro; Stage faz o papel do filtro de status
type BoardParams struct {
	Region domain.Region
	Query  string
	Stage  string
}

type OpportunityService interface {
	Board(params BoardParams) (*domain.OpportunitiesBoard, error)
}

type Service struct {
	Reader         dataset.Reader
	OnUnclassified viewing.UnclassifiedFunc
}

func NewOpportunityService(reader dataset.Reader, onUnclassified viewing.UnclassifiedFunc) OpportunityService {
	return &Service{
		Reader:         reader,
		OnUnclassified: onUnclassified,
	}
}

func (s *Service) Board(params BoardParams) (*domain.OpportunitiesBoard, error) {
	stage, err := viewing.CheckStatus(view, params.Stage, domain.Stages())
	if err != nil {
		return nil, err
	}

	records, err := s.Reader.Opportunities(params.Region)
	if err != nil {
		logrus.WithError(err).WithField("region", params.Region).Error("Erro ao ler oportunidades")
		return nil, viewing.ReaderError(view, params.Region, err)
	}

	filtered := filter.Apply(records, filter.Query{Text: params.Query, Status: stage}, filter.Opportunities)

	grouped := grouping.ByCategory(filtered, stageKeys(),
		func(o domain.Opportunity) string { return string(o.Stage) },
		func(o domain.Opportunity) float64 { return o.Value },
	)

	if n := len(grouped.Unclassified); n > 0 {
		logrus.WithFields(logrus.Fields{
			"region": params.Region,
			"count":  n,
		}).Warn("Oportunidades com estágio fora do quadro")
		if s.OnUnclassified != nil {
			s.OnUnclassified(view, params.Region, n)
		}
	}

	board := &domain.OpportunitiesBoard{
		Region:  params.Region,
		Query:   params.Query,
		Stage:   stage,
		Count:   len(filtered),
		Columns: make([]domain.StageColumn, 0, len(grouped.Buckets)),
	}
	for _, o := range filtered {
		board.TotalValue += o.Value
		board.WeightedValue += o.WeightedValue()
	}

	for _, bucket := range grouped.Buckets {
		column := domain.StageColumn{
			Stage:         domain.Stage(bucket.Key),
			Count:         bucket.Count,
			Value:         bucket.Value,
			Opportunities: make([]domain.OpportunityCard, 0, bucket.Count),
		}
		for _, o := range bucket.Records {
			column.WeightedValue += o.WeightedValue()
			column.Opportunities = append(column.Opportunities, domain.OpportunityCard{
				Opportunity: o,
				Band:        domain.BandFor(o.Probability),
			})
		}

		board.Columns = append(board.Columns, column)
	}

	return board, nil
}

func stageKeys() []string {
	stages := domain.Stages()
	keys := make([]string, len(stages))
	for i, stage := range stages {
		keys[i] = string(stage)
	}
	return keys
}
