package application

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	repo "github.com/autoplus/concesionaria/internal/domain/repository"
	"github.com/autoplus/concesionaria/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrSelfDeletion       = errors.New("cannot delete the signed-in user")
	ErrForbidden          = errors.New("access forbidden")
	ErrSessionExpired     = errors.New("session expired")
)

// Publisher enqueues outbound jobs such as welcome emails.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Service implements registration, authentication and the administrator
// operations on top of a UserRepository. Redis and Publisher are optional.
type Service struct {
	Repo       repo.UserRepository
	Hasher     helpers.PasswordHasher
	JWT        *helpers.JWTManager
	Redis      *redis.Client
	Publisher  Publisher
	Logger     *logrus.Logger
	Dealership string

	now func() time.Time
}

func NewService(r repo.UserRepository, hasher helpers.PasswordHasher, jwt *helpers.JWTManager, rdb *redis.Client, pub Publisher, logger *logrus.Logger, dealership string) *Service {
	if hasher == nil {
		hasher = helpers.SHA256Hasher{}
	}
	return &Service{
		Repo:       r,
		Hasher:     hasher,
		JWT:        jwt,
		Redis:      rdb,
		Publisher:  pub,
		Logger:     logger,
		Dealership: dealership,
		now:        time.Now,
	}
}

// WithClock overrides the clock used for registration dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// today is the current UTC date at midnight.
func (s *Service) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Service) log() *logrus.Entry {
	if s.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return logrus.NewEntry(l)
	}
	return logrus.NewEntry(s.Logger)
}
