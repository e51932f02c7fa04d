package accounts

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/filter"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/viewing"
)

const view = "accounts"

type ListParams struct {
	Region domain.Region
	Query  string
	Status string
}

type AccountService interface {
	List(params ListParams) (*domain.AccountsView, error)
}

type Service struct {
	Reader dataset.Reader
}

func NewAccountService(reader dataset.Reader) AccountService {
	return &Service{
		Reader: reader,
	}
}

func (s *Service) List(params ListParams) (*domain.AccountsView, error) {
	status, err := viewing.CheckStatus(view, params.Status, domain.AccountStatuses())
	if err != nil {
		return nil, err
	}

	records, err := s.Reader.Accounts(params.Region)
	if err != nil {
		logrus.WithError(err).WithField("region", params.Region).Error("Erro ao ler contas")
		return nil, viewing.ReaderError(view, params.Region, err)
	}

	filtered := filter.Apply(records, filter.Query{Text: params.Query, Status: status}, filter.Accounts)

	result := &domain.AccountsView{
		Region:   params.Region,
		Query:    params.Query,
		Status:   status,
		Count:    len(filtered),
		Accounts: make([]domain.AccountCard, 0, len(filtered)),
	}
	for _, account := range filtered {
		result.TotalValue += account.Value
		result.Accounts = append(result.Accounts, domain.AccountCard{
			Account:  account,
			Initials: Initials(account.Company),
		})
	}

	return result, nil
}

// Initials retorna a primeira letra das duas primeiras palavras, em maiúsculas
func Initials(company string) string {
	words := strings.Fields(company)
	if len(words) > 2 {
		words = words[:2]
	}

	var b strings.Builder
	for _, word := range words {
		first, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(first))
	}
	return b.String()
}
