package dataset

import (
	"fmt"

	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

// regional converte as chaves de texto em Region. Chaves desconhecidas e
// regiões ausentes viram problemas de validação.
func regional[T any](kind domain.DatasetKind, raw map[string]T, is *issues) map[domain.Region]T {
	out := make(map[domain.Region]T, len(raw))

	for key, value := range raw {
		region, err := domain.ParseRegion(key)
		if err != nil {
			is.add(kind, "", "", ErrUnknownRegionKey, fmt.Sprintf("chave %q", key))
			continue
		}
		if _, dup := out[region]; dup {
			is.add(kind, region, "", ErrDuplicateID, fmt.Sprintf("região repetida na chave %q", key))
			continue
		}
		out[region] = value
	}

	return out
}

func requireRegions[T any](kind domain.DatasetKind, records map[domain.Region]T, is *issues) {
	for _, region := range domain.Regions() {
		if _, ok := records[region]; !ok {
			is.add(kind, region, "", ErrMissingRegion, "")
		}
	}
}

type idTracker map[string]struct{}

func (t idTracker) check(kind domain.DatasetKind, region domain.Region, id string, is *issues) {
	if id == "" {
		is.add(kind, region, "", ErrMissingID, "")
		return
	}
	if _, seen := t[id]; seen {
		is.add(kind, region, id, ErrDuplicateID, "")
		return
	}
	t[id] = struct{}{}
}

func checkProbability(kind domain.DatasetKind, region domain.Region, id string, p int, is *issues) {
	if p < 0 || p > 100 {
		is.add(kind, region, id, ErrInvalidValue, fmt.Sprintf("probabilidade %d fora de 0-100", p))
	}
}

func checkValue(kind domain.DatasetKind, region domain.Region, id, field string, v float64, is *issues) {
	if v < 0 {
		is.add(kind, region, id, ErrInvalidValue, fmt.Sprintf("%s negativo", field))
	}
}

// Validate verifica todo o snapshot e retorna um *ValidationError com
// todos os problemas encontrados, ou nil
func (s *Snapshot) Validate() error {
	var is issues

	requireRegions(domain.KindLeads, s.Leads, &is)
	requireRegions(domain.KindAccounts, s.Accounts, &is)
	requireRegions(domain.KindOpportunities, s.Opportunities, &is)
	requireRegions(domain.KindRenewals, s.Renewals, &is)
	requireRegions(domain.KindForecast, s.Forecasts, &is)
	requireRegions(domain.KindDashboard, s.Dashboards, &is)

	for _, region := range domain.Regions() {
		validateLeads(region, s.Leads[region], &is)
		validateAccounts(region, s.Accounts[region], &is)
		validateOpportunities(region, s.Opportunities[region], &is)
		validateRenewals(region, s.Renewals[region], &is)
		if f, ok := s.Forecasts[region]; ok {
			validateForecast(region, f, &is)
		}
		if d, ok := s.Dashboards[region]; ok {
			validateDashboard(region, d, &is)
		}
	}

	return is.err()
}

func validateLeads(region domain.Region, leads []domain.Lead, is *issues) {
	ids := idTracker{}
	for _, l := range leads {
		ids.check(domain.KindLeads, region, l.ID, is)
		if !l.Status.Valid() {
			is.add(domain.KindLeads, region, l.ID, ErrInvalidStatus, string(l.Status))
		}
		if l.LastContact.IsZero() {
			is.add(domain.KindLeads, region, l.ID, ErrMissingDate, "lastContact")
		}
		checkValue(domain.KindLeads, region, l.ID, "value", l.Value, is)
	}
}

func validateAccounts(region domain.Region, accounts []domain.Account, is *issues) {
	ids := idTracker{}
	for _, a := range accounts {
		ids.check(domain.KindAccounts, region, a.ID, is)
		if !a.Status.Valid() {
			is.add(domain.KindAccounts, region, a.ID, ErrInvalidStatus, string(a.Status))
		}
		if a.LastActivity.IsZero() {
			is.add(domain.KindAccounts, region, a.ID, ErrMissingDate, "lastActivity")
		}
		checkValue(domain.KindAccounts, region, a.ID, "value", a.Value, is)
	}
}

func validateOpportunities(region domain.Region, opps []domain.Opportunity, is *issues) {
	ids := idTracker{}
	for _, o := range opps {
		ids.check(domain.KindOpportunities, region, o.ID, is)
		if !o.Stage.Valid() {
			is.add(domain.KindOpportunities, region, o.ID, ErrInvalidStatus, string(o.Stage))
		}
		if o.CloseDate.IsZero() {
			is.add(domain.KindOpportunities, region, o.ID, ErrMissingDate, "closeDate")
		}
		checkValue(domain.KindOpportunities, region, o.ID, "value", o.Value, is)
		checkProbability(domain.KindOpportunities, region, o.ID, o.Probability, is)
	}
}

func validateRenewals(region domain.Region, renewals []domain.Renewal, is *issues) {
	ids := idTracker{}
	for _, r := range renewals {
		ids.check(domain.KindRenewals, region, r.ID, is)
		if !r.Status.Valid() {
			is.add(domain.KindRenewals, region, r.ID, ErrInvalidStatus, string(r.Status))
		}
		if r.RenewalDate.IsZero() {
			is.add(domain.KindRenewals, region, r.ID, ErrMissingDate, "renewalDate")
		}
		checkValue(domain.KindRenewals, region, r.ID, "currentValue", r.CurrentValue, is)
		checkValue(domain.KindRenewals, region, r.ID, "renewalValue", r.RenewalValue, is)
		checkProbability(domain.KindRenewals, region, r.ID, r.Probability, is)
	}
}

func validateForecast(region domain.Region, f domain.Forecast, is *issues) {
	for _, m := range f.Months {
		if m.Month == "" {
			is.add(domain.KindForecast, region, "", ErrMissingID, "mês sem nome")
		}
		checkValue(domain.KindForecast, region, m.Month, "target", m.Target, is)
	}
}

func validateDashboard(region domain.Region, d domain.Dashboard, is *issues) {
	for _, series := range d.LeadSources.Series {
		if len(series.Values) != len(d.LeadSources.Months) {
			is.add(domain.KindDashboard, region, series.Name, ErrInvalidValue,
				fmt.Sprintf("%d valores para %d meses", len(series.Values), len(d.LeadSources.Months)))
		}
	}

	ids := idTracker{}
	for _, m := range d.Meetings {
		ids.check(domain.KindDashboard, region, m.ID, is)
		if m.Type != domain.MeetingVideo && m.Type != domain.MeetingInPerson {
			is.add(domain.KindDashboard, region, m.ID, ErrInvalidStatus, string(m.Type))
		}
		if m.Date.IsZero() {
			is.add(domain.KindDashboard, region, m.ID, ErrMissingDate, "date")
		}
	}

	checkValue(domain.KindDashboard, region, "goal", "target", d.Goal.Target, is)
}
