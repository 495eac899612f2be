package entity

import (
	"fmt"
	"time"
)

// Session is the in-memory record of a successfully authenticated user. It
// lives for one logged-in interaction and is never persisted.
type Session struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	RegisteredAt time.Time
	Token        string
	ExpiresAt    time.Time
}

// IsAdministrator reports whether the session routes to the administrator menu.
func (s *Session) IsAdministrator() bool {
	return s != nil && s.Role == RoleAdministrator
}

// Details renders the session owner's data for the "view my data" option.
func (s *Session) Details() string {
	date := ""
	if !s.RegisteredAt.IsZero() {
		date = s.RegisteredAt.Format(DateLayout)
	}
	return fmt.Sprintf("Nombre: %s\nEmail: %s\nRol: %s\nFecha: %s", s.Name, s.Email, s.Role, date)
}
