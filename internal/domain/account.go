package domain

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "Active"
	AccountStatusInactive AccountStatus = "Inactive"
	AccountStatusProspect AccountStatus = "Prospect"
)

var accountStatuses = []AccountStatus{
	AccountStatusActive,
	AccountStatusInactive,
	AccountStatusProspect,
}

func AccountStatuses() []AccountStatus {
	return append([]AccountStatus(nil), accountStatuses...)
}

func (s AccountStatus) Valid() bool {
	for _, known := range accountStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Contact é a pessoa de referência de uma conta ou renovação
type Contact struct {
	Name  string `json:"name" yaml:"name"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Email string `json:"email" yaml:"email"`
	Phone string `json:"phone" yaml:"phone"`
}

type Account struct {
	ID           string        `json:"id" yaml:"id"`
	Company      string        `json:"company" yaml:"company"`
	Industry     string        `json:"industry" yaml:"industry"`
	Status       AccountStatus `json:"status" yaml:"status"`
	Value        float64       `json:"value" yaml:"value"`
	Employees    int           `json:"employees" yaml:"employees"`
	KeyContact   Contact       `json:"keyContact" yaml:"keyContact"`
	LastActivity Date          `json:"lastActivity" yaml:"lastActivity"`
	NextMeeting  *Date         `json:"nextMeeting,omitempty" yaml:"nextMeeting,omitempty"`
}

// AccountCard é a conta como exibida na grade, com as iniciais do avatar
type AccountCard struct {
	Account
	Initials string `json:"initials"`
}

type AccountsView struct {
	Region     Region        `json:"region"`
	Query      string        `json:"query"`
	Status     string        `json:"status"`
	Count      int           `json:"count"`
	TotalValue float64       `json:"totalValue"`
	Accounts   []AccountCard `json:"accounts"`
}
