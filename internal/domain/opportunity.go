package domain

type Stage string

const (
	StageProspecting   Stage = "Prospecting"
	StageQualification Stage = "Qualification"
	StageProposal      Stage = "Proposal"
	StageNegotiation   Stage = "Negotiation"
	StageClosedWon     Stage = "Closed Won"
	StageClosedLost    Stage = "Closed Lost"
)

var stages = []Stage{
	StageProspecting,
	StageQualification,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// Stages retorna os estágios do funil na ordem fixa do quadro
func Stages() []Stage {
	return append([]Stage(nil), stages...)
}

func (s Stage) Valid() bool {
	for _, known := range stages {
		if s == known {
			return true
		}
	}
	return false
}

type ProbabilityBand string

const (
	ProbabilityHigh    ProbabilityBand = "high"
	ProbabilityMedium  ProbabilityBand = "medium"
	ProbabilityLow     ProbabilityBand = "low"
	ProbabilityVeryLow ProbabilityBand = "very-low"
)

// BandFor classifica uma probabilidade (0-100) na faixa usada para colorir o card
func BandFor(probability int) ProbabilityBand {
	switch {
	case probability >= 75:
		return ProbabilityHigh
	case probability >= 50:
		return ProbabilityMedium
	case probability >= 25:
		return ProbabilityLow
	default:
		return ProbabilityVeryLow
	}
}

type Opportunity struct {
	ID           string  `json:"id" yaml:"id"`
	Title        string  `json:"title" yaml:"title"`
	Company      string  `json:"company" yaml:"company"`
	Contact      string  `json:"contact" yaml:"contact"`
	Value        float64 `json:"value" yaml:"value"`
	Probability  int     `json:"probability" yaml:"probability"`
	Stage        Stage   `json:"stage" yaml:"stage"`
	CloseDate    Date    `json:"closeDate" yaml:"closeDate"`
	LastActivity Date    `json:"lastActivity" yaml:"lastActivity"`
}

// WeightedValue é o valor ponderado pela probabilidade de fechamento
func (o Opportunity) WeightedValue() float64 {
	return o.Value * float64(o.Probability) / 100
}

type OpportunityCard struct {
	Opportunity
	Band ProbabilityBand `json:"probabilityBand"`
}

// StageColumn é uma coluna do quadro; existe mesmo quando vazia
type StageColumn struct {
	Stage         Stage             `json:"stage"`
	Count         int               `json:"count"`
	Value         float64           `json:"value"`
	WeightedValue float64           `json:"weightedValue"`
	Opportunities []OpportunityCard `json:"opportunities"`
}

type OpportunitiesBoard struct {
	Region        Region        `json:"region"`
	Query         string        `json:"query"`
	Stage         string        `json:"stage"`
	Count         int           `json:"count"`
	TotalValue    float64       `json:"totalValue"`
	WeightedValue float64       `json:"weightedValue"`
	Columns       []StageColumn `json:"columns"`
}
