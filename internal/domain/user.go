package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso
const (
	RoleAdmin   = 1
	RoleManager = 2
	RoleSeller  = 3
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	RoleID       int       `json:"role_id"`
	StoreID      *string   `json:"store_id"` // Nulo para administradores
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Claims struct {
	UserID      string
	UserName    string
	UserEmail   string
	UserRoleID  int
	UserStoreID *string
	jwt.RegisteredClaims
}

// CanAccessStore indica se o usuário do token pode ver os dados da loja
func (c *Claims) CanAccessStore(storeID string) bool {
	if c.UserRoleID == RoleAdmin {
		return true
	}
	return c.UserStoreID != nil && *c.UserStoreID == storeID
}
