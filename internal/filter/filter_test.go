package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

func fixtureRenewals() []domain.Renewal {
	return []domain.Renewal{
		{ID: "R001", Company: "Telenor ASA", ContractType: "Enterprise Software License", AccountManager: "Kari Nordahl", Status: domain.RenewalStatusOnTrack},
		{ID: "R003", Company: "Equinor", ContractType: "Support & Maintenance", AccountManager: "Anne Berg", Status: domain.RenewalStatusAtRisk},
		{ID: "R008", Company: "Lerøy Seafood", ContractType: "Supply Chain Management", AccountManager: "Kari Berg", Status: domain.RenewalStatusConfirmed},
		{ID: "R009", Company: "Hurtigruten", ContractType: "Cloud Services", AccountManager: "Ola Nordmann", Status: domain.RenewalStatusAtRisk},
	}
}

func ids(renewals []domain.Renewal) []string {
	out := make([]string, 0, len(renewals))
	for _, r := range renewals {
		out = append(out, r.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{
			name:  "Busca vazia e All retorna tudo na ordem original",
			query: Query{Status: StatusAll},
			want:  []string{"R001", "R003", "R008", "R009"},
		},
		{
			name:  "Status vazio equivale a All",
			query: Query{},
			want:  []string{"R001", "R003", "R008", "R009"},
		},
		{
			name:  "Busca ignora maiúsculas",
			query: Query{Text: "EQUI", Status: StatusAll},
			want:  []string{"R003"},
		},
		{
			name:  "Busca em qualquer campo pesquisável",
			query: Query{Text: "berg", Status: StatusAll},
			want:  []string{"R003", "R008"},
		},
		{
			name:  "Busca e status combinados com E",
			query: Query{Text: "berg", Status: "At Risk"},
			want:  []string{"R003"},
		},
		{
			name:  "Status exato",
			query: Query{Status: "At Risk"},
			want:  []string{"R003", "R009"},
		},
		{
			name:  "Caracteres não ASCII",
			query: Query{Text: "lerøy"},
			want:  []string{"R008"},
		},
		{
			name:  "Sem resultados",
			query: Query{Text: "zzz"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(fixtureRenewals(), tt.query, Renewals)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	q := Query{Text: "a", Status: "At Risk"}
	once := Apply(fixtureRenewals(), q, Renewals)
	twice := Apply(once, q, Renewals)
	assert.Equal(t, once, twice)
}

func TestApplyDoesNotMatchFieldsOutsideSearchSet(t *testing.T) {
	leads := []domain.Lead{
		{ID: "L001", Company: "Telenor ASA", Contact: "Lars Hansen", Email: "lars.hansen@telenor.com", Status: domain.LeadStatusQualified},
	}

	assert.Len(t, Apply(leads, Query{Text: "hansen"}, Leads), 1)
	assert.Empty(t, Apply(leads, Query{Text: "@telenor.com"}, Leads))
}

func TestAccountsSearchKeyContact(t *testing.T) {
	accounts := []domain.Account{
		{ID: "A001", Company: "Telenor ASA", Industry: "Telecommunications", KeyContact: domain.Contact{Name: "Lars Hansen"}, Status: domain.AccountStatusActive},
		{ID: "A003", Company: "Equinor", Industry: "Energy", KeyContact: domain.Contact{Name: "Erik Nordahl"}, Status: domain.AccountStatusProspect},
	}

	assert.Len(t, Apply(accounts, Query{Text: "nordahl"}, Accounts), 1)
	assert.Len(t, Apply(accounts, Query{Text: "energy", Status: "Active"}, Accounts), 0)
}

func TestOpportunitiesFilterByStage(t *testing.T) {
	opps := []domain.Opportunity{
		{ID: "O001", Title: "Enterprise Software License", Stage: domain.StageNegotiation},
		{ID: "O005", Title: "Security Audit Services", Stage: domain.StageProspecting},
	}

	got := Apply(opps, Query{Status: string(domain.StageNegotiation)}, Opportunities)
	assert.Len(t, got, 1)
	assert.Equal(t, "O001", got[0].ID)
}

func TestStatusOptions(t *testing.T) {
	assert.Equal(t,
		[]string{"All", "At Risk", "On Track", "Confirmed", "Lost"},
		StatusOptions(domain.RenewalStatuses()),
	)
}
