package leads

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/filter"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/viewing"
)

const view = "leads"

type ListParams struct {
	Region domain.Region
	Query  string
	Status string
}

type LeadService interface {
	List(params ListParams) (*domain.LeadsView, error)
}

type Service struct {
	Reader dataset.Reader
}

func NewLeadService(reader dataset.Reader) LeadService {
	return &Service{
		Reader: reader,
	}
}

func (s *Service) List(params ListParams) (*domain.LeadsView, error) {
	status, err := viewing.CheckStatus(view, params.Status, domain.LeadStatuses())
	if err != nil {
		return nil, err
	}

	records, err := s.Reader.Leads(params.Region)
	if err != nil {
		logrus.WithError(err).WithField("region", params.Region).Error("Erro ao ler leads")
		return nil, viewing.ReaderError(view, params.Region, err)
	}

	leads := filter.Apply(records, filter.Query{Text: params.Query, Status: status}, filter.Leads)

	result := &domain.LeadsView{
		Region: params.Region,
		Query:  params.Query,
		Status: status,
		Count:  len(leads),
		Leads:  leads,
	}
	for _, lead := range leads {
		result.TotalValue += lead.Value
	}

	return result, nil
}
