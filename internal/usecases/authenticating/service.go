package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/config"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(userID int) (*domain.User, error)
	Enabled() bool
}

// Service autentica contra a lista de usuários carregada com as fixtures
type Service struct {
	byEmail map[string]*domain.User
	byID    map[int]*domain.User
	cfg     config.Auth
	now     func() time.Time
}

func NewService(users []domain.User, cfg config.Auth) (Authenticator, error) {
	s := &Service{
		byEmail: make(map[string]*domain.User, len(users)),
		byID:    make(map[int]*domain.User, len(users)),
		cfg:     cfg,
		now:     time.Now,
	}

	for i := range users {
		user := users[i]
		user.Email = handleEmail(user.Email)
		if _, exists := s.byEmail[user.Email]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, user.Email)
		}
		s.byEmail[user.Email] = &user
		s.byID[user.ID] = &user
	}

	logrus.WithFields(logrus.Fields{
		"users":   len(users),
		"enabled": cfg.Enabled,
	}).Info("Autenticação configurada")

	return s, nil
}

// HashPassword é usado ao carregar users.yaml
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *Service) Enabled() bool {
	return s.cfg.Enabled
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, ok := s.byEmail[handleEmail(email)]
	if !ok {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"region":  user.Region,
	}).Info("Login realizado")

	return token, nil
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, ok := s.byID[userID]
	if !ok {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrNotFound, fmt.Sprintf("ID %d", userID))
	}

	profile := *user
	profile.PasswordHash = ""
	return &profile, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		UserRegion: user.Region,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Faça login novamente")
	}
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
