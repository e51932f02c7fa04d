package filter

import "github.com/vfg2006/crm-tracker-api/internal/domain"

var Leads = Fields[domain.Lead]{
	Search: func(l domain.Lead) []string { return []string{l.Company, l.Contact} },
	Status: func(l domain.Lead) string { return string(l.Status) },
}

var Accounts = Fields[domain.Account]{
	Search: func(a domain.Account) []string { return []string{a.Company, a.Industry, a.KeyContact.Name} },
	Status: func(a domain.Account) string { return string(a.Status) },
}

// Opportunities filtra pelo estágio no lugar do status
var Opportunities = Fields[domain.Opportunity]{
	Search: func(o domain.Opportunity) []string { return []string{o.Title, o.Company, o.Contact} },
	Status: func(o domain.Opportunity) string { return string(o.Stage) },
}

var Renewals = Fields[domain.Renewal]{
	Search: func(r domain.Renewal) []string { return []string{r.Company, r.ContractType, r.AccountManager} },
	Status: func(r domain.Renewal) string { return string(r.Status) },
}

// StatusOptions retorna as opções do seletor de status, começando por "All"
func StatusOptions[S ~string](statuses []S) []string {
	options := make([]string, 0, len(statuses)+1)
	options = append(options, StatusAll)
	for _, s := range statuses {
		options = append(options, string(s))
	}
	return options
}
