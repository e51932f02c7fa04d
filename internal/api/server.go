package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/api/handler"
	"github.com/vfg2006/crm-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/crm-tracker-api/internal/config"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-tracker-api/pkg/middleware"
)

// Dependencies reúne o que o servidor HTTP precisa para montar as rotas
type Dependencies struct {
	Views         handler.ViewServices
	Authenticator authenticating.Authenticator
	Regions       handler.RegionSelector
	Dataset       handler.DatasetReloader
	CronJobs      handler.CronJobServices
	Metrics       middleware.RequestObserver
	// MetricsHandler nil desliga o endpoint /metrics
	MetricsHandler http.Handler
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.Authenticator == nil || deps.Regions == nil || deps.Dataset == nil {
		return nil, fmt.Errorf("dependências obrigatórias do servidor ausentes")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, deps Dependencies) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.MetricsHandler)...),
		router.WithRoutes(handler.Authentication(deps.Authenticator)...),
		router.WithRoutes(handler.Regions(deps.Regions)...),
		router.WithRoutes(handler.Views(deps.Views, deps.Regions)...),
		router.WithRoutes(handler.Datasets(deps.Dataset)...),
		router.WithRoutes(handler.CronJobs(deps.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
	}
	if deps.Metrics != nil {
		middlewares = append(middlewares, middleware.MetricsMiddleware(deps.Metrics))
	}
	middlewares = append(middlewares,
		middleware.Cors(config.CORS.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	)

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
