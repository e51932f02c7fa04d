package grouping

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

func stageKey(o domain.Opportunity) string    { return string(o.Stage) }
func stageValue(o domain.Opportunity) float64 { return o.Value }
func renewalDate(r domain.Renewal) time.Time  { return r.RenewalDate.Time }
func renewalValue(r domain.Renewal) float64   { return r.RenewalValue }

func stageNames() []string {
	out := []string{}
	for _, s := range domain.Stages() {
		out = append(out, string(s))
	}
	return out
}

func TestByCategoryKeepsEmptyBuckets(t *testing.T) {
	opps := []domain.Opportunity{
		{ID: "O006", Stage: domain.StageProposal, Value: 1200000},
		{ID: "O007", Stage: domain.StageQualification, Value: 1600000},
		{ID: "O008", Stage: domain.StageClosedWon, Value: 800000},
		{ID: "O009", Stage: domain.StageClosedLost, Value: 650000},
		{ID: "O010", Stage: domain.StageProposal, Value: 100000},
	}

	g := ByCategory(opps, stageNames(), stageKey, stageValue)

	require.Len(t, g.Buckets, 6)
	type summary struct {
		Key   string
		Count int
		Value float64
	}
	got := make([]summary, 0, len(g.Buckets))
	for _, b := range g.Buckets {
		got = append(got, summary{Key: b.Key, Count: b.Count, Value: b.Value})
	}
	want := []summary{
		{Key: "Prospecting", Count: 0, Value: 0},
		{Key: "Qualification", Count: 1, Value: 1600000},
		{Key: "Proposal", Count: 2, Value: 1300000},
		{Key: "Negotiation", Count: 0, Value: 0},
		{Key: "Closed Won", Count: 1, Value: 800000},
		{Key: "Closed Lost", Count: 1, Value: 650000},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("baldes inesperados (-want +got):\n%s", diff)
	}

	assert.Equal(t, "O006", g.Buckets[2].Records[0].ID)
	assert.Equal(t, "O010", g.Buckets[2].Records[1].ID)
	assert.NotNil(t, g.Buckets[0].Records)
	assert.Empty(t, g.Unclassified)
	assert.Equal(t, len(opps), g.Total())
}

func TestByCategoryReportsUnclassified(t *testing.T) {
	opps := []domain.Opportunity{
		{ID: "O001", Stage: domain.StageNegotiation},
		{ID: "OX", Stage: domain.Stage("Won")},
	}

	g := ByCategory(opps, stageNames(), stageKey, nil)

	assert.Equal(t, 1, g.Total())
	require.Len(t, g.Unclassified, 1)
	assert.Equal(t, "OX", g.Unclassified[0].ID)
	assert.Equal(t, len(opps), g.Total()+len(g.Unclassified))
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{name: "Mesmo dia à meia-noite arredonda para zero", target: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "Ontem", target: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), want: -1},
		{name: "Fração de dia arredonda para cima", target: time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), want: 1},
		{name: "Dias inteiros", target: time.Date(2024, 1, 26, 12, 0, 0, 0, time.UTC), want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(tt.target, now))
		})
	}
}

func TestClassifyUrgencyBoundaries(t *testing.T) {
	tests := []struct {
		days int
		want domain.Urgency
	}{
		{-1, domain.UrgencyOverdue},
		{0, domain.UrgencyDueThisMonth},
		{30, domain.UrgencyDueThisMonth},
		{31, domain.UrgencyDueNextMonth},
		{60, domain.UrgencyDueNextMonth},
		{61, domain.UrgencyDueIn3Months},
		{90, domain.UrgencyDueIn3Months},
		{91, domain.UrgencyFutureRenewals},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyUrgency(tt.days), "dias=%d", tt.days)
	}
}

func TestByUrgencyOmitsEmptyBuckets(t *testing.T) {
	now := time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC)
	renewals := []domain.Renewal{
		{ID: "R001", RenewalDate: domain.NewDate(2024, 1, 25), RenewalValue: 2750000},
		{ID: "R003", RenewalDate: domain.NewDate(2024, 1, 10), RenewalValue: 1045000},
		{ID: "R004", RenewalDate: domain.NewDate(2024, 3, 10), RenewalValue: 1320000},
		{ID: "R002", RenewalDate: domain.NewDate(2024, 2, 15), RenewalValue: 1980000},
	}

	buckets := ByUrgency(renewals, now, renewalDate, renewalValue)

	require.Len(t, buckets, 3)
	assert.Equal(t, domain.UrgencyOverdue, buckets[0].Urgency)
	assert.Equal(t, -8, buckets[0].Records[0].DaysUntil)

	assert.Equal(t, domain.UrgencyDueThisMonth, buckets[1].Urgency)
	assert.Equal(t, 2, buckets[1].Count)
	assert.Equal(t, "R001", buckets[1].Records[0].Record.ID)
	assert.Equal(t, "R002", buckets[1].Records[1].Record.ID)
	assert.Equal(t, 4730000.0, buckets[1].Value)

	assert.Equal(t, domain.UrgencyDueNextMonth, buckets[2].Urgency)
	assert.Equal(t, 52, buckets[2].Records[0].DaysUntil)

	total := 0
	for _, b := range buckets {
		assert.NotZero(t, b.Count)
		total += b.Count
	}
	assert.Equal(t, len(renewals), total)
}

func TestByUrgencyEmptyInput(t *testing.T) {
	buckets := ByUrgency([]domain.Renewal{}, time.Now(), renewalDate, renewalValue)
	assert.Empty(t, buckets)
}
