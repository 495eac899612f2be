package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/autoplus/concesionaria/internal/domain/entity"
	repo "github.com/autoplus/concesionaria/internal/domain/repository"
)

func requireAdmin(sess *entity.Session) error {
	if !sess.IsAdministrator() {
		return ErrForbidden
	}
	return nil
}

// NormalizeRoleName capitalizes a typed role name the way it is stored:
// first letter upper case, the rest lower case.
func NormalizeRoleName(name string) string {
	return cases.Title(language.Spanish).String(strings.TrimSpace(name))
}

// ListUsers returns every stored user with its resolved role.
func (s *Service) ListUsers(ctx context.Context, sess *entity.Session) ([]entity.User, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindUser looks up the target of an administrative operation.
func (s *Service) FindUser(ctx context.Context, sess *entity.Session, email string) (*entity.User, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return u, nil
}

// ChangeRole reassigns the role of the user with email. roleName is matched
// against the known roles after normalization; unknown names change nothing.
func (s *Service) ChangeRole(ctx context.Context, sess *entity.Session, email, roleName string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	exists, err := s.Repo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}

	role, err := entity.ParseRole(NormalizeRoleName(roleName))
	if err != nil {
		return ErrInvalidRole
	}

	switch err := s.Repo.UpdateRole(ctx, email, role); {
	case err == nil:
	case errors.Is(err, repo.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, repo.ErrRoleNotSeeded):
		s.log().WithError(err).WithField("role", role.String()).Error("role missing from store")
		return fmt.Errorf("%w: %w", ErrInvalidRole, err)
	default:
		return fmt.Errorf("update role: %w", err)
	}

	s.log().WithField("admin", sess.Email).WithField("email", email).WithField("role", role.String()).Info("role changed")
	return nil
}

// DeleteUser removes the user with email. The signed-in administrator cannot
// delete their own account.
func (s *Service) DeleteUser(ctx context.Context, sess *entity.Session, email string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if email == sess.Email {
		return ErrSelfDeletion
	}
	if err := s.Repo.Delete(ctx, email); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	s.log().WithField("admin", sess.Email).WithField("email", email).Info("user deleted")
	return nil
}
