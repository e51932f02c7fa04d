package dataset

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type PostgresLoader struct {
	reader DocumentReader
}

func NewPostgresLoader(reader DocumentReader) *PostgresLoader {
	return &PostgresLoader{reader: reader}
}

func (l *PostgresLoader) Name() string {
	return "postgres"
}

func (l *PostgresLoader) Load(ctx context.Context) (*Snapshot, error) {
	docs, err := l.reader.ListDocuments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar documentos do dataset")
	}

	snapshot := newSnapshot(l.Name())
	var is issues
	var newest time.Time

	for _, doc := range docs {
		region, err := domain.ParseRegion(string(doc.Region))
		if err != nil {
			is.add(doc.Kind, "", "", ErrUnknownRegionKey, fmt.Sprintf("chave %q", doc.Region))
			continue
		}
		if doc.UpdatedAt.After(newest) {
			newest = doc.UpdatedAt
		}

		if err := decodeDocument(snapshot, region, doc); err != nil {
			is.add(doc.Kind, region, "", ErrInvalidValue, err.Error())
		}
	}

	if err := is.err(); err != nil {
		return nil, err
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	snapshot.LoadedAt = time.Now()
	if !newest.IsZero() {
		snapshot.Source = fmt.Sprintf("postgres@%s", newest.UTC().Format(time.RFC3339))
	}
	return snapshot, nil
}

func decodeDocument(s *Snapshot, region domain.Region, doc domain.DatasetDocument) error {
	switch doc.Kind {
	case domain.KindLeads:
		var records []domain.Lead
		if err := json.Unmarshal(doc.Payload, &records); err != nil {
			return err
		}
		s.Leads[region] = nonNil(records)
	case domain.KindAccounts:
		var records []domain.Account
		if err := json.Unmarshal(doc.Payload, &records); err != nil {
			return err
		}
		s.Accounts[region] = nonNil(records)
	case domain.KindOpportunities:
		var records []domain.Opportunity
		if err := json.Unmarshal(doc.Payload, &records); err != nil {
			return err
		}
		s.Opportunities[region] = nonNil(records)
	case domain.KindRenewals:
		var records []domain.Renewal
		if err := json.Unmarshal(doc.Payload, &records); err != nil {
			return err
		}
		s.Renewals[region] = nonNil(records)
	case domain.KindForecast:
		var f domain.Forecast
		if err := json.Unmarshal(doc.Payload, &f); err != nil {
			return err
		}
		s.Forecasts[region] = f
	case domain.KindDashboard:
		var d domain.Dashboard
		if err := json.Unmarshal(doc.Payload, &d); err != nil {
			return err
		}
		s.Dashboards[region] = d
	default:
		return fmt.Errorf("conjunto desconhecido %q", doc.Kind)
	}

	return nil
}

func nonNil[T any](records []T) []T {
	if records == nil {
		return []T{}
	}
	return records
}
