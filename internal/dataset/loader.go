package dataset

import (
	"context"
	"embed"
	"io/fs"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var embedded embed.FS

// EmbeddedFixtures retorna as fixtures compiladas no binário
func EmbeddedFixtures() fs.FS {
	sub, err := fs.Sub(embedded, "fixtures")
	if err != nil {
		panic(err)
	}
	return sub
}

// FixturesFS retorna o diretório informado ou as fixtures embutidas quando vazio
func FixturesFS(dir string) (fs.FS, error) {
	if dir == "" {
		return EmbeddedFixtures(), nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "diretório de fixtures %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s não é um diretório", dir)
	}

	return os.DirFS(dir), nil
}

type FixtureLoader struct {
	fsys fs.FS
	name string
}

func NewFixtureLoader(fsys fs.FS, name string) *FixtureLoader {
	if name == "" {
		name = "fixtures"
	}
	return &FixtureLoader{fsys: fsys, name: name}
}

func (l *FixtureLoader) Name() string {
	return l.name
}

func (l *FixtureLoader) Load(ctx context.Context) (*Snapshot, error) {
	snapshot := newSnapshot(l.name)
	var is issues

	var (
		leads         map[string][]domain.Lead
		accounts      map[string][]domain.Account
		opportunities map[string][]domain.Opportunity
		renewals      map[string][]domain.Renewal
		forecasts     map[string]domain.Forecast
		dashboards    map[string]domain.Dashboard
	)

	files := []struct {
		kind   domain.DatasetKind
		target any
	}{
		{domain.KindLeads, &leads},
		{domain.KindAccounts, &accounts},
		{domain.KindOpportunities, &opportunities},
		{domain.KindRenewals, &renewals},
		{domain.KindForecast, &forecasts},
		{domain.KindDashboard, &dashboards},
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := l.decode(string(f.kind)+".yaml", f.target); err != nil {
			return nil, err
		}
	}

	snapshot.Leads = regional(domain.KindLeads, leads, &is)
	snapshot.Accounts = regional(domain.KindAccounts, accounts, &is)
	snapshot.Opportunities = regional(domain.KindOpportunities, opportunities, &is)
	snapshot.Renewals = regional(domain.KindRenewals, renewals, &is)
	snapshot.Forecasts = regional(domain.KindForecast, forecasts, &is)
	snapshot.Dashboards = regional(domain.KindDashboard, dashboards, &is)

	if err := is.err(); err != nil {
		return nil, err
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	snapshot.LoadedAt = time.Now()
	return snapshot, nil
}

func (l *FixtureLoader) decode(file string, target any) error {
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return errors.Wrapf(err, "erro ao ler fixture %s", file)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return errors.Wrapf(err, "erro ao decodificar fixture %s", file)
	}

	return nil
}

// LoadUsers lê users.yaml e gera o hash das senhas em texto puro
func LoadUsers(fsys fs.FS, hash func(string) (string, error)) ([]domain.User, error) {
	data, err := fs.ReadFile(fsys, "users.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler users.yaml")
	}

	var users []domain.User
	if err := yaml.Unmarshal(data, &users); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar users.yaml")
	}

	for i := range users {
		if users[i].Password == "" {
			return nil, errors.Errorf("usuário %s sem senha", users[i].Email)
		}
		if users[i].Region != "" && !users[i].Region.Valid() {
			return nil, errors.Wrapf(domain.ErrUnknownRegion, "usuário %s", users[i].Email)
		}

		hashed, err := hash(users[i].Password)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao gerar hash da senha de %s", users[i].Email)
		}
		users[i].PasswordHash = hashed
		users[i].Password = ""
	}

	return users, nil
}
