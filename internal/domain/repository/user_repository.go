package repository

import (
	"context"
	"errors"

	"github.com/autoplus/concesionaria/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert collides with an existing email.
	ErrDuplicateEmail = errors.New("duplicate email")
	// ErrRoleNotSeeded means a role row required by the schema is missing.
	ErrRoleNotSeeded = errors.New("role not seeded")
)

// UserRepository defines the interface for user-related database operations.
// Every method runs in its own transaction.
type UserRepository interface {
	// Create inserts u and fills in u.ID. The role id is resolved from u.Role.
	Create(ctx context.Context, u *entity.User) error
	// GetByEmail returns the user with exactly this email, joined with its role.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// ExistsByEmail reports whether a user with this email is stored.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// List returns every user ordered by id.
	List(ctx context.Context) ([]entity.User, error)
	// UpdateRole reassigns the role of the user with this email.
	UpdateRole(ctx context.Context, email string, role entity.Role) error
	// Delete removes the user with this email.
	Delete(ctx context.Context, email string) error
	// Count returns the number of stored users.
	Count(ctx context.Context) (int, error)
}
