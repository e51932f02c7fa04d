package domain

type RenewalStatus string

const (
	RenewalStatusAtRisk    RenewalStatus = "At Risk"
	RenewalStatusOnTrack   RenewalStatus = "On Track"
	RenewalStatusConfirmed RenewalStatus = "Confirmed"
	RenewalStatusLost      RenewalStatus = "Lost"
)

var renewalStatuses = []RenewalStatus{
	RenewalStatusAtRisk,
	RenewalStatusOnTrack,
	RenewalStatusConfirmed,
	RenewalStatusLost,
}

func RenewalStatuses() []RenewalStatus {
	return append([]RenewalStatus(nil), renewalStatuses...)
}

func (s RenewalStatus) Valid() bool {
	for _, known := range renewalStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Renewal struct {
	ID             string        `json:"id" yaml:"id"`
	Company        string        `json:"company" yaml:"company"`
	ContractType   string        `json:"contractType" yaml:"contractType"`
	CurrentValue   float64       `json:"currentValue" yaml:"currentValue"`
	RenewalValue   float64       `json:"renewalValue" yaml:"renewalValue"`
	RenewalDate    Date          `json:"renewalDate" yaml:"renewalDate"`
	Probability    int           `json:"probability" yaml:"probability"`
	AccountManager string        `json:"accountManager" yaml:"accountManager"`
	Contact        Contact       `json:"contact" yaml:"contact"`
	Status         RenewalStatus `json:"status" yaml:"status"`
	LastContact    Date          `json:"lastContact" yaml:"lastContact"`
}

// Urgency é a faixa de prazo de uma renovação em relação à data de referência
type Urgency string

const (
	UrgencyOverdue        Urgency = "Overdue"
	UrgencyDueThisMonth   Urgency = "Due This Month"
	UrgencyDueNextMonth   Urgency = "Due Next Month"
	UrgencyDueIn3Months   Urgency = "Due in 3 Months"
	UrgencyFutureRenewals Urgency = "Future Renewals"
)

var urgencyOrder = []Urgency{
	UrgencyOverdue,
	UrgencyDueThisMonth,
	UrgencyDueNextMonth,
	UrgencyDueIn3Months,
	UrgencyFutureRenewals,
}

// UrgencyOrder retorna as faixas de urgência na ordem de exibição
func UrgencyOrder() []Urgency {
	return append([]Urgency(nil), urgencyOrder...)
}

type RenewalCard struct {
	Renewal
	DaysUntil int     `json:"daysUntilRenewal"`
	Urgency   Urgency `json:"urgency"`
}

// UrgencyGroup é um grupo não vazio da linha do tempo de renovações
type UrgencyGroup struct {
	Urgency  Urgency       `json:"urgency"`
	Count    int           `json:"count"`
	Value    float64       `json:"value"`
	Renewals []RenewalCard `json:"renewals"`
}

type RenewalsTimeline struct {
	Region        Region         `json:"region"`
	Query         string         `json:"query"`
	Status        string         `json:"status"`
	ReferenceDate Date           `json:"referenceDate"`
	Count         int            `json:"count"`
	TotalValue    float64        `json:"totalValue"`
	AtRiskValue   float64        `json:"atRiskValue"`
	Groups        []UrgencyGroup `json:"groups"`
}

// RenewalDigestEntry resume uma faixa de urgência sem listar as renovações
type RenewalDigestEntry struct {
	Urgency Urgency `json:"urgency"`
	Count   int     `json:"count"`
	Value   float64 `json:"value"`
}

type RenewalDigest struct {
	Region        Region               `json:"region"`
	ReferenceDate Date                 `json:"referenceDate"`
	AtRiskValue   float64              `json:"atRiskValue"`
	Entries       []RenewalDigestEntry `json:"entries"`
}
