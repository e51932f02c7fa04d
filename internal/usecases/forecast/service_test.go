package forecast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-tracker-api/internal/dataset/mocks"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/viewing"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func osloForecast() domain.Forecast {
	return domain.Forecast{
		Months: []domain.ForecastMonth{
			{Month: "Jan", Pipeline: 8500000, Weighted: 5100000, Closed: 4200000, Target: 5000000},
			{Month: "Feb", Pipeline: 9200000, Weighted: 5520000, Closed: 4800000, Target: 5000000},
			{Month: "Mar", Pipeline: 8800000, Weighted: 5280000, Closed: 5200000, Target: 5000000},
			{Month: "Apr", Pipeline: 9500000, Weighted: 5700000, Closed: 4600000, Target: 5000000},
			{Month: "May", Pipeline: 10200000, Weighted: 6120000, Closed: 5400000, Target: 5000000},
			{Month: "Jun", Pipeline: 9800000, Weighted: 5880000, Closed: 5800000, Target: 5000000},
		},
		Metrics: domain.ForecastMetrics{TotalPipeline: 56000000, DealsWon: 24, DealsLost: 11},
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name       string
		period     string
		wantPeriod domain.ForecastPeriod
		wantMonths []string
		wantClosed float64
	}{
		{name: "Padrão é 6M", period: "", wantPeriod: domain.Period6M,
			wantMonths: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, wantClosed: 30000000},
		{name: "3M usa os últimos meses", period: "3M", wantPeriod: domain.Period3M,
			wantMonths: []string{"Apr", "May", "Jun"}, wantClosed: 15800000},
		{name: "12M usa o que existir", period: "12M", wantPeriod: domain.Period12M,
			wantMonths: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, wantClosed: 30000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := mocks.NewMockReader(ctrl)
			reader.EXPECT().Forecast(domain.RegionOslo).Return(osloForecast(), nil)

			result, err := NewForecastService(reader).Get(domain.RegionOslo, tt.period)
			require.NoError(t, err)

			months := []string{}
			for _, r := range result.Rows {
				months = append(months, r.Month)
			}
			assert.Equal(t, tt.wantMonths, months)
			assert.Equal(t, tt.wantPeriod, result.Period)
			assert.Equal(t, tt.wantClosed, result.Totals.Closed)
			assert.Equal(t, 2.18, result.WinLossRatio)
		})
	}
}

func TestGetRowAttainment(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Forecast(domain.RegionOslo).Return(osloForecast(), nil)

	result, err := NewForecastService(reader).Get(domain.RegionOslo, "6M")
	require.NoError(t, err)

	assert.Equal(t, 84.0, result.Rows[0].Attainment)
	assert.False(t, result.Rows[0].MetTarget)
	assert.Equal(t, 104.0, result.Rows[2].Attainment)
	assert.True(t, result.Rows[2].MetTarget)
	assert.Equal(t, 100.0, result.Totals.Attainment)
}

func TestGetInvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)

	_, err := NewForecastService(reader).Get(domain.RegionOslo, "1Y")

	var viewErr *viewing.ViewError
	require.True(t, errors.As(err, &viewErr))
	assert.Equal(t, apiErrors.ErrInvalidPeriod, viewErr.Code)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestWinLossRatio(t *testing.T) {
	assert.Equal(t, 2.57, WinLossRatio(domain.ForecastMetrics{DealsWon: 18, DealsLost: 7}))
	assert.Equal(t, 3.0, WinLossRatio(domain.ForecastMetrics{DealsWon: 3}))
	assert.Equal(t, 0.0, WinLossRatio(domain.ForecastMetrics{}))
}
