package handler

import (
	"net/http"
	"slices"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
)

// Tipos de cron job aceitos em /v1/cron/:type/run
const (
	CronJobTypeRenewalDigest = "renewal-digest"
	CronJobTypeDatasetReload = "dataset-reload"
	CronJobTypeAll           = "all"
)

// CronJob é implementado pelos serviços do pacote scheduler
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente
type CronJobServices struct {
	RenewalDigest CronJob
	DatasetReload CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := make(map[string]CronJob, 2)
	if s.RenewalDigest != nil {
		jobs[CronJobTypeRenewalDigest] = s.RenewalDigest
	}
	if s.DatasetReload != nil {
		jobs[CronJobTypeDatasetReload] = s.DatasetReload
	}
	return jobs
}

// RunCronJob dispara manualmente um job; 409 se ele já estiver rodando
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.jobs()

		var selected []string
		switch cronType {
		case CronJobTypeAll:
			for name := range jobs {
				selected = append(selected, name)
			}
			slices.Sort(selected)
		default:
			if _, ok := jobs[cronType]; !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
					"type":    cronType,
					"allowed": []string{CronJobTypeRenewalDigest, CronJobTypeDatasetReload, CronJobTypeAll},
				})
				return
			}
			selected = []string{cronType}
		}

		started := make([]string, 0, len(selected))
		var running []string
		for _, name := range selected {
			if jobs[name].TriggerManualSync() {
				started = append(started, name)
			} else {
				running = append(running, name)
			}
		}

		logrus.WithFields(logrus.Fields{
			"job":     cronType,
			"started": started,
			"running": running,
		}).Info("Execução manual de cron solicitada")

		if len(started) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Cron job já está em execução", map[string]any{
				"running": running,
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
