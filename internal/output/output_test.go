package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

func TestMain(m *testing.M) {
	DisableColor()
	m.Run()
}

func TestDetect(t *testing.T) {
	assert.Equal(t, FormatJSON, Detect(true, ""))
	assert.Equal(t, FormatJSON, Detect(false, "json"))
	assert.Equal(t, FormatTable, Detect(false, ""))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]int{"count": 2}))
	assert.Equal(t, "{\n  \"count\": 2\n}\n", buf.String())

	buf.Reset()
	JSONError(&buf, "VAL_004", "região desconhecida")
	assert.Contains(t, buf.String(), `"code": "VAL_004"`)
}

func TestTableAlignment(t *testing.T) {
	tbl := newTable("ID", "VALOR").alignRight(1)
	tbl.add("L1", "10")
	tbl.add("L22", "1000")

	lines := strings.Split(strings.TrimRight(tbl.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID   VALOR", lines[0])
	assert.Equal(t, "L1      10", lines[1])
	assert.Equal(t, "L22   1000", lines[2])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "curto", truncate("curto", 10))
	assert.Equal(t, "Norsk H...", truncate("Norsk Hydro ASA", 10))
}

func TestLeads(t *testing.T) {
	view := &domain.LeadsView{
		Region:     domain.RegionOslo,
		Query:      "tel",
		Status:     "All",
		Count:      1,
		TotalValue: 150000,
		Leads: []domain.Lead{
			{ID: "L001", Company: "Telenor ASA", Contact: "Lars Hansen", Status: domain.LeadStatusQualified,
				Source: "Website", Value: 150000, LastContact: domain.NewDate(2024, 1, 15)},
		},
	}

	out := Leads(view)
	assert.Contains(t, out, "Leads · Oslo")
	assert.Contains(t, out, "1 lead")
	assert.Contains(t, out, `busca "tel"`)
	assert.NotContains(t, out, "status All")
	assert.Contains(t, out, "Telenor ASA")
	assert.Contains(t, out, "2024-01-15")

	empty := Leads(&domain.LeadsView{Region: domain.RegionBergen})
	assert.Contains(t, empty, "Nenhum lead encontrado")
}

func TestOpportunityBoardShowsEmptyColumns(t *testing.T) {
	board := &domain.OpportunitiesBoard{
		Region: domain.RegionBergen,
		Count:  1,
		Columns: []domain.StageColumn{
			{Stage: domain.StageProspecting},
			{Stage: domain.StageProposal, Count: 1, Opportunities: []domain.OpportunityCard{
				{Opportunity: domain.Opportunity{ID: "O1", Title: "ERP", Company: "Bergen Energi", Probability: 60,
					CloseDate: domain.NewDate(2024, 2, 1)}, Band: domain.ProbabilityMedium},
			}},
		},
	}

	out := OpportunityBoard(board)
	assert.Contains(t, out, "Prospecting (0)")
	assert.Contains(t, out, "Proposal (1)")
	assert.Contains(t, out, "medium 60%")
}

func TestDashboardTrend(t *testing.T) {
	assert.Equal(t, "▼ -5.0%", trend(domain.StatCard{Trend: -5, TrendPositive: true}))
	assert.Equal(t, "▲ 12.5%", trend(domain.StatCard{Trend: 12.5, TrendPositive: true}))

	assert.Equal(t, "18 days", cardValue(domain.StatCard{Value: 18, Unit: "days"}))
	assert.Equal(t, "24.5%", cardValue(domain.StatCard{Value: 24.5, Unit: "%"}))
	assert.Equal(t, "142", cardValue(domain.StatCard{Value: 142}))
}

func TestRegions(t *testing.T) {
	out := Regions(domain.Regions(), domain.RegionBergen)
	assert.Equal(t, "  Oslo\n* Bergen\n", out)
}
