package handler

import (
	"net/http"

	"github.com/vfg2006/crm-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/accounts"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/dashboard"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/forecast"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/leads"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/opportunities"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/renewals"
	"github.com/vfg2006/crm-tracker-api/pkg/middleware"
)

// ViewServices agrupa os serviços das visualizações
type ViewServices struct {
	Dashboard     dashboard.DashboardService
	Leads         leads.LeadService
	Accounts      accounts.AccountService
	Opportunities opportunities.OpportunityService
	Renewals      renewals.RenewalService
	Forecast      forecast.ForecastService
	Digests       DigestSource
}

func Healthcheck(metrics http.Handler) []router.Route {
	routes := []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}

	if metrics != nil {
		routes = append(routes, router.Route{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics,
		})
	}

	return routes
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Regions(store RegionSelector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/regions",
			Method:      http.MethodGet,
			Handler:     ListRegions(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/region",
			Method:      http.MethodGet,
			Handler:     GetRegion(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/region",
			Method:      http.MethodPut,
			Handler:     SetRegion(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Views(services ViewServices, regions RegionSource) []router.Route {
	allRoles := []func(http.Handler) http.Handler{middleware.AllRoles()}

	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(services.Dashboard, regions),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/leads",
			Method:      http.MethodGet,
			Handler:     ListLeads(services.Leads, regions),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     ListAccounts(services.Accounts, regions),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/opportunities",
			Method:      http.MethodGet,
			Handler:     GetOpportunityBoard(services.Opportunities, regions),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/renewals",
			Method:      http.MethodGet,
			Handler:     GetRenewalTimeline(services.Renewals, regions),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/renewals/digest",
			Method:      http.MethodGet,
			Handler:     GetRenewalDigest(services.Renewals, services.Digests, regions),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/forecast",
			Method:      http.MethodGet,
			Handler:     GetForecast(services.Forecast, regions),
			Middlewares: allRoles,
		},
	}
}

func Datasets(store DatasetReloader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets/reload",
			Method:      http.MethodPost,
			Handler:     ReloadDataset(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/datasets/status",
			Method:      http.MethodGet,
			Handler:     GetDatasetStatus(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/cron",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}
