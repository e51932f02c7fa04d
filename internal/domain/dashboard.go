package domain

type DashboardStats struct {
	TotalLeads     int     `json:"totalLeads" yaml:"totalLeads"`
	Opportunities  int     `json:"opportunities" yaml:"opportunities"`
	Revenue        float64 `json:"revenue" yaml:"revenue"`
	NewCustomers   int     `json:"newCustomers" yaml:"newCustomers"`
	ConversionRate float64 `json:"conversionRate" yaml:"conversionRate"`
	AvgDealCycle   int     `json:"avgDealCycle" yaml:"avgDealCycle"`
}

// DashboardTrends guarda a variação percentual de cada indicador
type DashboardTrends struct {
	Leads         float64 `json:"leads" yaml:"leads"`
	Opportunities float64 `json:"opportunities" yaml:"opportunities"`
	Customers     float64 `json:"customers" yaml:"customers"`
	Revenue       float64 `json:"revenue" yaml:"revenue"`
	Conversion    float64 `json:"conversion" yaml:"conversion"`
	DealCycle     float64 `json:"dealCycle" yaml:"dealCycle"`
}

type Goal struct {
	Label   string  `json:"label" yaml:"label"`
	Current float64 `json:"current" yaml:"current"`
	Target  float64 `json:"target" yaml:"target"`
}

type LeadSourceSeries struct {
	Name   string `json:"name" yaml:"name"`
	Values []int  `json:"values" yaml:"values"`
}

type LeadSources struct {
	Months []string           `json:"months" yaml:"months"`
	Series []LeadSourceSeries `json:"series" yaml:"series"`
}

type MeetingType string

const (
	MeetingVideo    MeetingType = "video"
	MeetingInPerson MeetingType = "in-person"
)

type Meeting struct {
	ID           string      `json:"id" yaml:"id"`
	Title        string      `json:"title" yaml:"title"`
	Company      string      `json:"company" yaml:"company"`
	Date         Date        `json:"date" yaml:"date"`
	Time         string      `json:"time" yaml:"time"`
	Participants int         `json:"participants" yaml:"participants"`
	Type         MeetingType `json:"type" yaml:"type"`
}

// Dashboard são os dados brutos dos widgets do painel de uma região
type Dashboard struct {
	Stats       DashboardStats  `json:"stats" yaml:"stats"`
	Trends      DashboardTrends `json:"trends" yaml:"trends"`
	Goal        Goal            `json:"goal" yaml:"goal"`
	LeadSources LeadSources     `json:"leadSources" yaml:"leadSources"`
	Meetings    []Meeting       `json:"meetings" yaml:"meetings"`
}

type StatCard struct {
	Key           string  `json:"key"`
	Title         string  `json:"title"`
	Value         float64 `json:"value"`
	Unit          string  `json:"unit,omitempty"`
	Trend         float64 `json:"trend"`
	TrendPositive bool    `json:"trendPositive"`
}

type GoalMeter struct {
	Goal
	Percentage int     `json:"percentage"`
	Remaining  float64 `json:"remaining"`
}

type LeadSourceSummary struct {
	LeadSourceSeries
	Total int     `json:"total"`
	Share float64 `json:"share"`
}

type DashboardView struct {
	Region      Region              `json:"region"`
	Cards       []StatCard          `json:"cards"`
	Goal        GoalMeter           `json:"goal"`
	Months      []string            `json:"months"`
	LeadSources []LeadSourceSummary `json:"leadSources"`
	Meetings    []Meeting           `json:"meetings"`
}
