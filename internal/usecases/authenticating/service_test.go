package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-tracker-api/internal/config"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("kari123!"), bcrypt.MinCost)
	require.NoError(t, err)

	users := []domain.User{
		{ID: 2, Name: "Kari Nordahl", Email: "Kari.Nordahl@crm.local", PasswordHash: string(hash), Active: true, RoleID: domain.RoleManager, Region: domain.RegionOslo},
		{ID: 4, Name: "Inaktiv", Email: "off@crm.local", PasswordHash: string(hash), RoleID: domain.RoleRep, Region: domain.RegionBergen},
	}

	auth, err := NewService(users, config.Auth{Enabled: true, Secret: "segredo", TokenTTL: time.Hour})
	require.NoError(t, err)
	return auth.(*Service)
}

func TestLoginAndValidate(t *testing.T) {
	s := newTestService(t)

	token, err := s.LoginUser(" kari.nordahl@CRM.local", "kari123!")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 2, claims.UserID)
	assert.Equal(t, domain.RoleManager, claims.UserRoleID)
	assert.Equal(t, domain.RegionOslo, claims.UserRegion)
}

func TestLoginErrors(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantCode string
	}{
		{name: "Campos vazios", email: "", password: "", wantErr: ErrMissingRequiredData, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "Usuário inexistente", email: "nobody@crm.local", password: "x", wantErr: ErrUserNotFound, wantCode: apiErrors.ErrUserNotFound},
		{name: "Usuário desativado", email: "off@crm.local", password: "kari123!", wantErr: ErrUserDisabled, wantCode: apiErrors.ErrUserDisabled},
		{name: "Senha errada", email: "kari.nordahl@crm.local", password: "errada", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
	}

	s := newTestService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.LoginUser(tt.email, tt.password)
			require.ErrorIs(t, err, tt.wantErr)

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantCode, authErr.Code)
		})
	}
}

func TestValidateTokenExpired(t *testing.T) {
	s := newTestService(t)
	issued := time.Date(2024, 1, 18, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }

	token, err := s.LoginUser("kari.nordahl@crm.local", "kari123!")
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.True(t, IsAuthorizationError(err))
}

func TestValidateTokenWrongSecret(t *testing.T) {
	s := newTestService(t)
	token, err := s.LoginUser("kari.nordahl@crm.local", "kari123!")
	require.NoError(t, err)

	s.cfg.Secret = "outro"
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetUserProfile(t *testing.T) {
	s := newTestService(t)

	profile, err := s.GetUserProfile(2)
	require.NoError(t, err)
	assert.Empty(t, profile.PasswordHash)
	assert.Equal(t, "kari.nordahl@crm.local", profile.Email)
	assert.NotEmpty(t, s.byID[2].PasswordHash)

	_, err = s.GetUserProfile(99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNewServiceRejectsDuplicateEmail(t *testing.T) {
	users := []domain.User{{ID: 1, Email: "a@crm.local"}, {ID: 2, Email: "A@crm.local "}}
	_, err := NewService(users, config.Auth{})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}
