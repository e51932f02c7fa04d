package domain

import "errors"

var ErrInvalidPeriod = errors.New("período inválido")

// ForecastPeriod é a janela de meses exibida na previsão de vendas
type ForecastPeriod string

const (
	Period3M  ForecastPeriod = "3M"
	Period6M  ForecastPeriod = "6M"
	Period12M ForecastPeriod = "12M"

	DefaultForecastPeriod = Period6M
)

func ParseForecastPeriod(s string) (ForecastPeriod, error) {
	switch ForecastPeriod(s) {
	case "":
		return DefaultForecastPeriod, nil
	case Period3M, Period6M, Period12M:
		return ForecastPeriod(s), nil
	default:
		return "", ErrInvalidPeriod
	}
}

func (p ForecastPeriod) Months() int {
	switch p {
	case Period3M:
		return 3
	case Period12M:
		return 12
	default:
		return 6
	}
}

type ForecastMonth struct {
	Month    string  `json:"month" yaml:"month"`
	Pipeline float64 `json:"pipeline" yaml:"pipeline"`
	Weighted float64 `json:"weighted" yaml:"weighted"`
	Closed   float64 `json:"closed" yaml:"closed"`
	Target   float64 `json:"target" yaml:"target"`
}

type ForecastMetrics struct {
	TotalPipeline    float64 `json:"totalPipeline" yaml:"totalPipeline"`
	WeightedForecast float64 `json:"weightedForecast" yaml:"weightedForecast"`
	WinRate          float64 `json:"winRate" yaml:"winRate"`
	AvgDealSize      float64 `json:"avgDealSize" yaml:"avgDealSize"`
	DealsWon         int     `json:"dealsWon" yaml:"dealsWon"`
	DealsLost        int     `json:"dealsLost" yaml:"dealsLost"`
}

type Forecast struct {
	Months  []ForecastMonth `json:"months" yaml:"months"`
	Metrics ForecastMetrics `json:"metrics" yaml:"metrics"`
}

type ForecastRow struct {
	ForecastMonth
	Attainment float64 `json:"attainment"`
	MetTarget  bool    `json:"metTarget"`
}

type ForecastTotals struct {
	Pipeline   float64 `json:"pipeline"`
	Weighted   float64 `json:"weighted"`
	Closed     float64 `json:"closed"`
	Target     float64 `json:"target"`
	Attainment float64 `json:"attainment"`
}

type ForecastView struct {
	Region       Region          `json:"region"`
	Period       ForecastPeriod  `json:"period"`
	Rows         []ForecastRow   `json:"rows"`
	Totals       ForecastTotals  `json:"totals"`
	Metrics      ForecastMetrics `json:"metrics"`
	WinLossRatio float64         `json:"winLossRatio"`
}
