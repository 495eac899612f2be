package entity

import (
	"fmt"
	"time"
)

// User is the aggregate root for user domain
// PasswordHash holds the digest produced by the configured password hasher.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	RegisteredAt time.Time
}

// DateLayout is the layout of fecha_registro values.
const DateLayout = "2006-01-02"

// RegistrationDate formats RegisteredAt as stored in fecha_registro.
func (u *User) RegistrationDate() string {
	if u.RegisteredAt.IsZero() {
		return ""
	}
	return u.RegisteredAt.Format(DateLayout)
}

// Details renders the user as shown in the administrator listing.
func (u *User) Details() string {
	return fmt.Sprintf("Nombre: %s\nEmail: %s\nRol: %s\nFecha: %s", u.Name, u.Email, u.Role, u.RegistrationDate())
}
