package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// codedError é implementado pelos erros dos serviços que já sabem seu código de API
type codedError interface {
	error
	APICode() string
}

// RegionSource fornece a região selecionada quando a requisição não informa uma
type RegionSource interface {
	Get() domain.Region
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError converte o erro de um serviço na resposta padronizada
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var coded codedError
	if errors.As(err, &coded) {
		if apiErrors.StatusFor(coded.APICode()) >= http.StatusInternalServerError {
			logrus.WithError(err).Error(fallback)
		}
		apiErrors.WriteError(w, coded.APICode(), coded.Error(), nil)
		return
	}

	logrus.WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

// resolveRegion lê ?region= e cai para a região selecionada.
// Escreve 400 e retorna false para regiões desconhecidas.
func resolveRegion(w http.ResponseWriter, r *http.Request, source RegionSource) (domain.Region, bool) {
	raw := r.URL.Query().Get("region")
	if raw == "" {
		return source.Get(), true
	}

	region, err := domain.ParseRegion(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrUnknownRegion, err.Error(), map[string]any{
			"region":  raw,
			"allowed": domain.Regions(),
		})
		return "", false
	}
	return region, true
}
