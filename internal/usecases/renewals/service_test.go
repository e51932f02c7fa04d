package renewals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-tracker-api/internal/dataset/mocks"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var reference = time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC)

func renewalsFixture() []domain.Renewal {
	return []domain.Renewal{
		{ID: "ren-1", Company: "Telenor", ContractType: "Enterprise", AccountManager: "Kari",
			CurrentValue: 500000, RenewalValue: 550000, RenewalDate: domain.NewDate(2024, 1, 13), Status: domain.RenewalStatusOnTrack},
		{ID: "ren-2", Company: "DNB Bank", ContractType: "Premium", AccountManager: "Ola",
			CurrentValue: 300000, RenewalValue: 320000, RenewalDate: domain.NewDate(2024, 2, 17), Status: domain.RenewalStatusAtRisk},
		{ID: "ren-3", Company: "Equinor", ContractType: "Enterprise", AccountManager: "Kari",
			CurrentValue: 800000, RenewalValue: 900000, RenewalDate: domain.NewDate(2024, 2, 18), Status: domain.RenewalStatusConfirmed},
		{ID: "ren-4", Company: "Orkla", ContractType: "Standard", AccountManager: "Ingrid",
			CurrentValue: 200000, RenewalValue: 200000, RenewalDate: domain.NewDate(2024, 4, 18), Status: domain.RenewalStatusOnTrack},
		{ID: "ren-5", Company: "Yara", ContractType: "Standard", AccountManager: "Ingrid",
			CurrentValue: 150000, RenewalValue: 0, RenewalDate: domain.NewDate(2024, 1, 2), Status: domain.RenewalStatusLost},
	}
}

func TestTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Renewals(domain.RegionOslo).Return(renewalsFixture(), nil)

	timeline, err := NewRenewalService(reader, nil).Timeline(TimelineParams{Region: domain.RegionOslo, Now: reference})
	require.NoError(t, err)

	require.Len(t, timeline.Groups, 4)
	assert.Equal(t, domain.UrgencyOverdue, timeline.Groups[0].Urgency)
	assert.Equal(t, 2, timeline.Groups[0].Count)
	assert.Equal(t, -5, timeline.Groups[0].Renewals[0].DaysUntil)
	assert.Equal(t, domain.UrgencyDueThisMonth, timeline.Groups[1].Urgency)
	assert.Equal(t, 30, timeline.Groups[1].Renewals[0].DaysUntil)
	assert.Equal(t, domain.UrgencyDueNextMonth, timeline.Groups[2].Urgency)
	assert.Equal(t, 900000.0, timeline.Groups[2].Value)
	assert.Equal(t, domain.UrgencyFutureRenewals, timeline.Groups[3].Urgency)

	assert.Equal(t, 5, timeline.Count)
	assert.Equal(t, 1970000.0, timeline.TotalValue)
	// ren-1 vencida + ren-2 em risco; ren-5 perdida fica de fora
	assert.Equal(t, 800000.0, timeline.AtRiskValue)
	assert.Equal(t, "2024-01-18", timeline.ReferenceDate.String())
}

func TestTimelineUsesClockAndFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Renewals(domain.RegionOslo).Return(renewalsFixture(), nil)

	clock := func() time.Time { return reference }
	timeline, err := NewRenewalService(reader, clock).Timeline(TimelineParams{
		Region: domain.RegionOslo,
		Query:  "kari",
		Status: "On Track",
	})
	require.NoError(t, err)

	require.Len(t, timeline.Groups, 1)
	assert.Equal(t, domain.UrgencyOverdue, timeline.Groups[0].Urgency)
	assert.Equal(t, "ren-1", timeline.Groups[0].Renewals[0].ID)
	assert.Equal(t, 500000.0, timeline.AtRiskValue)
}

func TestTimelineRejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)

	_, err := NewRenewalService(reader, nil).Timeline(TimelineParams{Region: domain.RegionOslo, Status: "Expired"})
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Renewals(domain.RegionBergen).Return(renewalsFixture(), nil)

	digest, err := NewRenewalService(reader, nil).Digest(domain.RegionBergen, reference)
	require.NoError(t, err)

	require.Len(t, digest.Entries, 4)
	total := 0
	for _, e := range digest.Entries {
		total += e.Count
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, domain.RegionBergen, digest.Region)
	assert.Equal(t, 800000.0, digest.AtRiskValue)
}

func TestAtRiskValue(t *testing.T) {
	tests := []struct {
		name    string
		renewal domain.Renewal
		want    float64
	}{
		{name: "Vencida conta mesmo confirmada", renewal: domain.Renewal{Status: domain.RenewalStatusConfirmed, CurrentValue: 10, RenewalDate: domain.NewDate(2024, 1, 13)}, want: 10},
		{name: "Em risco no futuro", renewal: domain.Renewal{Status: domain.RenewalStatusAtRisk, CurrentValue: 20, RenewalDate: domain.NewDate(2024, 6, 1)}, want: 20},
		{name: "Perdida vencida não conta", renewal: domain.Renewal{Status: domain.RenewalStatusLost, CurrentValue: 30, RenewalDate: domain.NewDate(2024, 1, 1)}, want: 0},
		{name: "Em dia no futuro", renewal: domain.Renewal{Status: domain.RenewalStatusOnTrack, CurrentValue: 40, RenewalDate: domain.NewDate(2024, 6, 1)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AtRiskValue([]domain.Renewal{tt.renewal}, reference))
		})
	}
}
