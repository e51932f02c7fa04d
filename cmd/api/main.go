package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-tracker-api/infrastructure/migration"
	"github.com/vfg2006/crm-tracker-api/infrastructure/repository"
	"github.com/vfg2006/crm-tracker-api/internal/api"
	"github.com/vfg2006/crm-tracker-api/internal/api/handler"
	"github.com/vfg2006/crm-tracker-api/internal/config"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/regionstore"
	"github.com/vfg2006/crm-tracker-api/internal/scheduler"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/accounts"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/dashboard"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/forecast"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/leads"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/opportunities"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/renewals"
	"github.com/vfg2006/crm-tracker-api/internal/watcher"
	"github.com/vfg2006/crm-tracker-api/pkg/log"
	"github.com/vfg2006/crm-tracker-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Nível e formato dos logs vêm da configuração
	log.Configure(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsManager := metrics.NewManager(metrics.WithMetricsEnabled(cfg.Metrics.Enabled))

	fixtures, err := dataset.FixturesFS(cfg.Dataset.FixturesDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir fixtures")
	}

	var loader dataset.Loader
	switch cfg.Dataset.Source {
	case config.DatasetSourcePostgres:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		if err := migration.Apply(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		loader = dataset.NewPostgresLoader(repository.NewDatasetRepository(pgConn))
	default:
		loader = dataset.NewFixtureLoader(fixtures, "")
	}

	store := dataset.NewStore(loader, metricsManager.RecordDatasetReload)
	if err := store.Reload(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset")
	}

	if cfg.Dataset.Watch {
		go watchFixtures(ctx, cfg.Dataset.FixturesDir, store)
	}

	users, err := dataset.LoadUsers(fixtures, authenticating.HashPassword)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar usuários")
	}

	authenticator, err := authenticating.NewService(users, cfg.Auth)
	if err != nil {
		logrus.Fatal(err)
	}

	initialRegion, err := domain.ParseRegion(cfg.App.DefaultRegion)
	if err != nil {
		logrus.WithError(err).Warn("DEFAULT_REGION inválida, usando Oslo")
		initialRegion = domain.RegionOslo
	}

	regions := regionstore.New(initialRegion)
	if _, err := regions.Subscribe(metricsManager.RecordRegionSwitch); err != nil {
		logrus.Fatal(err)
	}

	renewalService := renewals.NewRenewalService(store, nil)

	renewalDigestService := scheduler.NewRenewalDigestService(renewalService, metricsManager, cfg)
	datasetReloadService := scheduler.NewDatasetReloadService(store, cfg)

	// Inicia os agendadores em background
	if err := renewalDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo de renovações")
	} else {
		logrus.Info("Agendador do resumo de renovações iniciado com sucesso")
	}

	if err := datasetReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	deps := api.Dependencies{
		Views: handler.ViewServices{
			Dashboard:     dashboard.NewDashboardService(store),
			Leads:         leads.NewLeadService(store),
			Accounts:      accounts.NewAccountService(store),
			Opportunities: opportunities.NewOpportunityService(store, metricsManager.RecordUnclassified),
			Renewals:      renewalService,
			Forecast:      forecast.NewForecastService(store),
			Digests:       renewalDigestService,
		},
		Authenticator: authenticator,
		Regions:       regions,
		Dataset:       store,
		CronJobs: handler.CronJobServices{
			RenewalDigest: renewalDigestService,
			DatasetReload: datasetReloadService,
		},
		Metrics: metricsManager,
	}
	if cfg.Metrics.Enabled {
		deps.MetricsHandler = metricsManager.Handler()
	}

	server, err := api.New(cfg, deps)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// watchFixtures recarrega o dataset quando um YAML do diretório muda
func watchFixtures(ctx context.Context, dir string, store *dataset.Store) {
	w, err := watcher.New([]string{dir}, watcher.DefaultDebounce, func() {
		if err := store.Reload(ctx); err != nil {
			logrus.WithError(err).Warn("Recarga das fixtures falhou, mantendo snapshot anterior")
		}
	})
	if err != nil {
		logrus.WithError(err).Error("Não foi possível observar o diretório de fixtures")
		return
	}
	defer w.Close()

	logrus.WithField("dir", dir).Info("Observando alterações nas fixtures")
	w.Run(ctx, func(err error) {
		logrus.WithError(err).Warn("Erro ao observar fixtures")
	})
}
