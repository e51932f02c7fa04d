package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin   = 1
	RoleManager = 2
	RoleRep     = 3
)

type User struct {
	ID           int    `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Email        string `json:"email" yaml:"email"`
	Password     string `json:"-" yaml:"password"`
	PasswordHash string `json:"-" yaml:"-"`
	Active       bool   `json:"active" yaml:"active"`
	RoleID       int    `json:"role_id" yaml:"role_id"`
	Region       Region `json:"region" yaml:"region"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	UserRegion Region
	jwt.RegisteredClaims
}

// AnonymousClaims é a identidade usada quando a autenticação está desligada
func AnonymousClaims() *Claims {
	return &Claims{
		UserID:     0,
		UserName:   "anonymous",
		UserRoleID: RoleAdmin,
	}
}
