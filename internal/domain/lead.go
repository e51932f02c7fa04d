package domain

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusQualified LeadStatus = "Qualified"
	LeadStatusProposal  LeadStatus = "Proposal"
	LeadStatusLost      LeadStatus = "Lost"
)

var leadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusProposal,
	LeadStatusLost,
}

func LeadStatuses() []LeadStatus {
	return append([]LeadStatus(nil), leadStatuses...)
}

func (s LeadStatus) Valid() bool {
	for _, known := range leadStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Lead struct {
	ID          string     `json:"id" yaml:"id"`
	Company     string     `json:"company" yaml:"company"`
	Contact     string     `json:"contact" yaml:"contact"`
	Email       string     `json:"email" yaml:"email"`
	Phone       string     `json:"phone" yaml:"phone"`
	Status      LeadStatus `json:"status" yaml:"status"`
	Source      string     `json:"source" yaml:"source"`
	Value       float64    `json:"value" yaml:"value"`
	LastContact Date       `json:"lastContact" yaml:"lastContact"`
}

// LeadsView é a resposta da listagem de leads de uma região
type LeadsView struct {
	Region     Region  `json:"region"`
	Query      string  `json:"query"`
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"totalValue"`
	Leads      []Lead  `json:"leads"`
}
