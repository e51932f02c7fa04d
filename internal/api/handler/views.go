package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/accounts"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/dashboard"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/forecast"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/leads"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/opportunities"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/renewals"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/crm-tracker-api/pkg/utils"
)

// DigestSource guarda o último resumo calculado pelo job agendado
type DigestSource interface {
	LastDigest(region domain.Region) (*domain.RenewalDigest, bool)
}

func GetDashboard(service dashboard.DashboardService, regions RegionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, ok := resolveRegion(w, r, regions)
		if !ok {
			return
		}

		view, err := service.Get(region)
		if err != nil {
			writeServiceError(w, err, "Erro ao montar o dashboard")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func ListLeads(service leads.LeadService, regions RegionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, ok := resolveRegion(w, r, regions)
		if !ok {
			return
		}

		query := r.URL.Query()
		view, err := service.List(leads.ListParams{
			Region: region,
			Query:  query.Get("q"),
			Status: query.Get("status"),
		})
		if err != nil {
			writeServiceError(w, err, "Erro ao listar leads")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func ListAccounts(service accounts.AccountService, regions RegionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, ok := resolveRegion(w, r, regions)
		if !ok {
			return
		}

		query := r.URL.Query()
		view, err := service.List(accounts.ListParams{
			Region: region,
			Query:  query.Get("q"),
			Status: query.Get("status"),
		})
		if err != nil {
			writeServiceError(w, err, "Erro ao listar contas")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// GetOpportunityBoard aceita ?stage= e, como alias, ?status=
func GetOpportunityBoard(service opportunities.OpportunityService, regions RegionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, ok := resolveRegion(w, r, regions)
		if !ok {
			return
		}

		query := r.URL.Query()
		stage := query.Get("stage")
		if stage == "" {
			stage = query.Get("status")
		}

		board, err := service.Board(opportunities.BoardParams{
			Region: region,
			Query:  query.Get("q"),
			Stage:  stage,
		})
		if err != nil {
			writeServiceError(w, err, "Erro ao montar o quadro de oportunidades")
			return
		}

		writeJSON(w, http.StatusOK, board)
	}
}

func GetRenewalTimeline(service renewals.RenewalService, regions RegionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, ok := resolveRegion(w, r, regions)
		if !ok {
			return
		}

		now, ok := referenceDate(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		timeline, err := service.Timeline(renewals.TimelineParams{
			Region: region,
			Query:  query.Get("q"),
			Status: query.Get("status"),
			Now:    now,
		})
		if err != nil {
			writeServiceError(w, err, "Erro ao montar a linha do tempo de renovações")
			return
		}

		writeJSON(w, http.StatusOK, timeline)
	}
}

// GetRenewalDigest devolve o último resumo do job; com ?now= ou sem resumo
// agendado o cálculo é feito na hora.
func GetRenewalDigest(service renewals.RenewalService, digests DigestSource, regions RegionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, ok := resolveRegion(w, r, regions)
		if !ok {
			return
		}

		now, ok := referenceDate(w, r)
		if !ok {
			return
		}

		if now.IsZero() && digests != nil {
			if digest, found := digests.LastDigest(region); found {
				writeJSON(w, http.StatusOK, digest)
				return
			}
		}

		digest, err := service.Digest(region, now)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular resumo de renovações")
			return
		}

		writeJSON(w, http.StatusOK, digest)
	}
}

func GetForecast(service forecast.ForecastService, regions RegionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, ok := resolveRegion(w, r, regions)
		if !ok {
			return
		}

		view, err := service.Get(region, r.URL.Query().Get("period"))
		if err != nil {
			writeServiceError(w, err, "Erro ao montar a previsão")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// referenceDate lê ?now=YYYY-MM-DD; ausente retorna o instante zero
func referenceDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("now")
	date, err := utils.ParseReferenceDate(raw, time.Time{})
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Data de referência inválida, use YYYY-MM-DD", map[string]string{
			"now": raw,
		})
		return time.Time{}, false
	}
	return date, true
}
