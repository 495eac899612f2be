package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/autoplus/concesionaria/internal/domain/entity"
	repo "github.com/autoplus/concesionaria/internal/domain/repository"
	"github.com/autoplus/concesionaria/pkg/mailer"
	"github.com/autoplus/concesionaria/pkg/mailer/templates"
	"github.com/autoplus/concesionaria/pkg/validation"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register validates the password, rejects taken emails and stores a new
// account with the default user role. It does not sign the user in.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := validation.ValidateRegistration(validation.Registration{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	}); err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
		RegisteredAt: s.today(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log().WithField("user_id", u.ID).WithField("email", u.Email).Info("user registered")
	s.enqueueWelcome(ctx, u)
	return u, nil
}

// Authenticate validates email/password and opens a session. Unknown emails
// and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.Session, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		s.log().WithField("email", email).Info("login failed")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !s.Hasher.Compare(u.PasswordHash, password) {
		s.log().WithField("email", email).Info("login failed")
		return nil, ErrInvalidCredentials
	}
	return s.startSession(ctx, u)
}

func (s *Service) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Publisher == nil {
		return
	}
	job := mailer.NewWelcomeJob(templates.WelcomeData{
		Name:       u.Name,
		Email:      u.Email,
		Dealership: s.Dealership,
		Date:       u.RegistrationDate(),
	})
	if err := s.Publisher.PublishJSON(ctx, job); err != nil {
		s.log().WithError(err).WithField("email", u.Email).Warn("enqueue welcome email failed")
	}
}
