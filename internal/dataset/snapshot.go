// Package dataset carrega, valida e serve os registros de cada região.
package dataset

import (
	"time"

	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

// Snapshot é o conjunto imutável de registros de todas as regiões
type Snapshot struct {
	Leads         map[domain.Region][]domain.Lead
	Accounts      map[domain.Region][]domain.Account
	Opportunities map[domain.Region][]domain.Opportunity
	Renewals      map[domain.Region][]domain.Renewal
	Forecasts     map[domain.Region]domain.Forecast
	Dashboards    map[domain.Region]domain.Dashboard

	Source   string
	LoadedAt time.Time
}

func newSnapshot(source string) *Snapshot {
	return &Snapshot{
		Leads:         make(map[domain.Region][]domain.Lead),
		Accounts:      make(map[domain.Region][]domain.Account),
		Opportunities: make(map[domain.Region][]domain.Opportunity),
		Renewals:      make(map[domain.Region][]domain.Renewal),
		Forecasts:     make(map[domain.Region]domain.Forecast),
		Dashboards:    make(map[domain.Region]domain.Dashboard),
		Source:        source,
	}
}

// Counts é a quantidade de registros por conjunto e região
type Counts map[domain.DatasetKind]map[domain.Region]int

func (s *Snapshot) Counts() Counts {
	out := make(Counts)
	for _, kind := range domain.DatasetKinds() {
		out[kind] = make(map[domain.Region]int)
	}

	for region, records := range s.Leads {
		out[domain.KindLeads][region] = len(records)
	}
	for region, records := range s.Accounts {
		out[domain.KindAccounts][region] = len(records)
	}
	for region, records := range s.Opportunities {
		out[domain.KindOpportunities][region] = len(records)
	}
	for region, records := range s.Renewals {
		out[domain.KindRenewals][region] = len(records)
	}
	for region, f := range s.Forecasts {
		out[domain.KindForecast][region] = len(f.Months)
	}
	for region, d := range s.Dashboards {
		out[domain.KindDashboard][region] = len(d.Meetings)
	}

	return out
}

// Documents serializa o snapshot em um documento por região e conjunto
func (s *Snapshot) Documents() ([]domain.DatasetDocument, error) {
	docs := make([]domain.DatasetDocument, 0, len(domain.Regions())*len(domain.DatasetKinds()))
	now := time.Now().UTC()

	for _, region := range domain.Regions() {
		payloads := map[domain.DatasetKind]any{
			domain.KindLeads:         s.Leads[region],
			domain.KindAccounts:      s.Accounts[region],
			domain.KindOpportunities: s.Opportunities[region],
			domain.KindRenewals:      s.Renewals[region],
			domain.KindForecast:      s.Forecasts[region],
			domain.KindDashboard:     s.Dashboards[region],
		}

		for _, kind := range domain.DatasetKinds() {
			payload, err := json.Marshal(payloads[kind])
			if err != nil {
				return nil, err
			}

			docs = append(docs, domain.DatasetDocument{
				Region:    region,
				Kind:      kind,
				Payload:   payload,
				UpdatedAt: now,
			})
		}
	}

	return docs, nil
}
