package handler

import (
	"net/http"

	"github.com/vfg2006/crm-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/crm-tracker-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if !service.Enabled() {
			writeJSON(w, http.StatusOK, map[string]any{
				"id":      userClaims.UserID,
				"name":    userClaims.UserName,
				"role_id": userClaims.UserRoleID,
			})
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if err != nil {
			writeServiceError(w, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
