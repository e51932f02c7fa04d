package domain

import "time"

// DatasetKind nomeia cada conjunto de registros regionais
type DatasetKind string

const (
	KindLeads         DatasetKind = "leads"
	KindAccounts      DatasetKind = "accounts"
	KindOpportunities DatasetKind = "opportunities"
	KindRenewals      DatasetKind = "renewals"
	KindForecast      DatasetKind = "forecast"
	KindDashboard     DatasetKind = "dashboard"
)

var datasetKinds = []DatasetKind{
	KindLeads,
	KindAccounts,
	KindOpportunities,
	KindRenewals,
	KindForecast,
	KindDashboard,
}

func DatasetKinds() []DatasetKind {
	return append([]DatasetKind(nil), datasetKinds...)
}

// DatasetDocument é o conteúdo de um conjunto para uma região, serializado em JSON
type DatasetDocument struct {
	Region    Region      `json:"region"`
	Kind      DatasetKind `json:"kind"`
	Payload   []byte      `json:"payload"`
	UpdatedAt time.Time   `json:"updated_at"`
}
