package handler

import (
	"net/http"

	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
)

// RegionSelector é a parte do regionstore.Store usada pelos handlers
type RegionSelector interface {
	Get() domain.Region
	Set(region domain.Region) (bool, error)
}

type RegionRequest struct {
	Region string `json:"region"`
}

type RegionResponse struct {
	Region  domain.Region `json:"region"`
	Changed bool          `json:"changed"`
}

func ListRegions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"regions": domain.Regions(),
		})
	}
}

func GetRegion(store RegionSelector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RegionResponse{Region: store.Get()})
	}
}

// SetRegion troca a região selecionada; os observadores do store são avisados
func SetRegion(store RegionSelector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		region, err := domain.ParseRegion(req.Region)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownRegion, err.Error(), map[string]any{
				"region":  req.Region,
				"allowed": domain.Regions(),
			})
			return
		}

		changed, err := store.Set(region)
		if err != nil {
			writeServiceError(w, err, "Erro ao trocar região")
			return
		}

		writeJSON(w, http.StatusOK, RegionResponse{Region: region, Changed: changed})
	}
}
