package dataset

import (
	"context"

	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/dataset_mock.go -package=mocks

// Reader dá acesso somente leitura aos registros de uma região.
// Os slices retornados são cópias.
type Reader interface {
	Leads(region domain.Region) ([]domain.Lead, error)
	Accounts(region domain.Region) ([]domain.Account, error)
	Opportunities(region domain.Region) ([]domain.Opportunity, error)
	Renewals(region domain.Region) ([]domain.Renewal, error)
	Forecast(region domain.Region) (domain.Forecast, error)
	Dashboard(region domain.Region) (domain.Dashboard, error)
}

// Loader monta um snapshot completo a partir de uma fonte de dados
type Loader interface {
	Load(ctx context.Context) (*Snapshot, error)
	Name() string
}

// DocumentReader lista os documentos persistidos de todos os conjuntos
type DocumentReader interface {
	ListDocuments(ctx context.Context) ([]domain.DatasetDocument, error)
}
