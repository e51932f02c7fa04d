package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
)

// DatasetReloader é a parte do dataset.Store usada pelos handlers
type DatasetReloader interface {
	Reload(ctx context.Context) error
	Status() dataset.ReloadStatus
}

// ReloadDataset recarrega o dataset de forma síncrona. Falhas de validação
// mantêm o snapshot anterior e listam os problemas encontrados.
func ReloadDataset(store DatasetReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := store.Reload(r.Context())
		if err != nil {
			var validationErr *dataset.ValidationError
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetInvalid, "Dataset rejeitado na validação", validationErr.Issues)
				return
			}

			logrus.WithError(err).Error("Erro ao recarregar dataset")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao recarregar dataset", nil)
			return
		}

		writeJSON(w, http.StatusOK, store.Status())
	}
}

func GetDatasetStatus(store DatasetReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Status())
	}
}
