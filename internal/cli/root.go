// Package cli implementa o comando crm: as visualizações do CRM no terminal.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/output"
	"github.com/vfg2006/crm-tracker-api/internal/tui"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/accounts"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/dashboard"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/forecast"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/leads"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/opportunities"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/renewals"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/crm-tracker-api/pkg/log"
)

// version é definida no build via ldflags
var version = "dev"

const (
	envOutput = "CRM_OUTPUT"
	envRegion = "CRM_REGION"
)

type options struct {
	region   string
	json     bool
	noColor  bool
	fixtures string
	logLevel string
}

// app guarda as flags globais e o estado carregado sob demanda pelos comandos
type app struct {
	opts   options
	out    io.Writer
	errOut io.Writer

	region   domain.Region
	store    *dataset.Store
	services tui.Services
}

// NewRootCommand monta a árvore de comandos escrevendo em out e errOut
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "crm",
		Short: "Visualizações do CRM por região no terminal",
		Long: `crm mostra leads, contas, oportunidades, renovações, previsão e dashboard
das regiões Oslo e Bergen. Sem subcomando abre o painel interativo.`,
		Version:           version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.opts.region, "region", "r", "", "região (Oslo ou Bergen); padrão CRM_REGION ou Oslo")
	flags.BoolVar(&a.opts.json, "json", false, "saída em JSON")
	flags.BoolVar(&a.opts.noColor, "no-color", false, "desativa cores")
	flags.StringVar(&a.opts.fixtures, "fixtures", "", "diretório de fixtures YAML; vazio usa as embutidas")
	flags.StringVar(&a.opts.logLevel, "log-level", "warn", "nível de log")

	root.AddCommand(
		a.leadsCommand(),
		a.accountsCommand(),
		a.opportunitiesCommand(),
		a.renewalsCommand(),
		a.forecastCommand(),
		a.dashboardCommand(),
		a.regionsCommand(),
		a.tuiCommand(),
		a.seedCommand(),
	)

	return root
}

// Execute roda o comando raiz e encerra o processo com o código de saída do erro
func Execute() {
	root := NewRootCommand(os.Stdout, os.Stderr)
	err := root.Execute()
	if err == nil {
		return
	}

	code := codeFor(err)
	jsonMode, _ := root.PersistentFlags().GetBool("json")
	if output.Detect(jsonMode, os.Getenv(envOutput)) == output.FormatJSON {
		output.JSONError(os.Stdout, code, err.Error())
	} else {
		fmt.Fprintf(os.Stderr, "Erro [%s]: %v\n", code, err)
	}
	os.Exit(exitCode(code))
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	log.Configure(a.opts.logLevel, "cli")
	logrus.SetOutput(a.errOut)

	if a.opts.noColor || os.Getenv("NO_COLOR") != "" {
		output.DisableColor()
	}

	raw := a.opts.region
	if raw == "" {
		raw = os.Getenv(envRegion)
	}
	if raw == "" {
		raw = string(domain.RegionOslo)
	}

	region, err := domain.ParseRegion(raw)
	if err != nil {
		return newError(apiErrors.ErrUnknownRegion, "região desconhecida %q, use %s", raw, joinRegions())
	}
	a.region = region
	return nil
}

func joinRegions() string {
	names := make([]string, 0, len(domain.Regions()))
	for _, r := range domain.Regions() {
		names = append(names, string(r))
	}
	return strings.Join(names, " ou ")
}

func (a *app) format() output.Format {
	return output.Detect(a.opts.json, os.Getenv(envOutput))
}

func (a *app) fixtureLoader() (*dataset.FixtureLoader, error) {
	fsys, err := dataset.FixturesFS(a.opts.fixtures)
	if err != nil {
		return nil, newError(apiErrors.ErrInvalidRequest, "%v", err)
	}

	name := "fixtures"
	if a.opts.fixtures != "" {
		name = "fixtures:" + a.opts.fixtures
	}
	return dataset.NewFixtureLoader(fsys, name), nil
}

// load carrega e valida o dataset uma única vez por execução
func (a *app) load(ctx context.Context) error {
	if a.store != nil {
		return nil
	}

	loader, err := a.fixtureLoader()
	if err != nil {
		return err
	}

	store := dataset.NewStore(loader)
	if err := store.Reload(ctx); err != nil {
		return fmt.Errorf("erro ao carregar %s: %w", loader.Name(), err)
	}

	a.store = store
	a.services = tui.Services{
		Dashboard:     dashboard.NewDashboardService(store),
		Leads:         leads.NewLeadService(store),
		Accounts:      accounts.NewAccountService(store),
		Opportunities: opportunities.NewOpportunityService(store, logUnclassified),
		Renewals:      renewals.NewRenewalService(store, nil),
		Forecast:      forecast.NewForecastService(store),
	}
	return nil
}

func logUnclassified(view string, region domain.Region, count int) {
	logrus.WithFields(logrus.Fields{
		"view":   view,
		"region": region,
		"count":  count,
	}).Warn("Registros fora das categorias declaradas")
}

// render escreve data em JSON ou a tabela produzida por table
func (a *app) render(data any, table func() string) error {
	if a.format() == output.FormatJSON {
		return output.JSON(a.out, data)
	}
	_, err := io.WriteString(a.out, table())
	return err
}

func (a *app) referenceDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	date, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, newError(apiErrors.ErrInvalidDate, "data de referência inválida %q, use YYYY-MM-DD", raw)
	}
	return date.Time, nil
}
