package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAnalyst     Role = "Analitik"
	RoleSuperAdmin  Role = "Super Admin"
	RoleFinanceLead Role = "Maliyyə Rəhbəri"
)

var Roles = []Role{RoleAnalyst, RoleSuperAdmin, RoleFinanceLead}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

type User struct {
	Record
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Role         Role   `json:"role"`
}

// Session is the user projection persisted while someone is logged in.
// It never carries the password hash.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSession derives the session record from a user.
func NewSession(u *User) *Session {
	return &Session{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type Claims struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserRole  Role   `json:"user_role"`
	jwt.RegisteredClaims
}
