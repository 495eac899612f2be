package application

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/autoplus/concesionaria/internal/domain/entity"
	repo "github.com/autoplus/concesionaria/internal/domain/repository"
)

// stubUserRepo is an in-memory UserRepository.
type stubUserRepo struct {
	mu      sync.Mutex
	nextID  int64
	users   map[string]entity.User
	missing map[entity.Role]bool
	failErr error
}

func newStubRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]entity.User{}, missing: map[entity.Role]bool{}}
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	if s.missing[u.Role] {
		return repo.ErrRoleNotSeeded
	}
	if _, ok := s.users[u.Email]; ok {
		return repo.ErrDuplicateEmail
	}
	s.nextID++
	u.ID = s.nextID
	s.users[u.Email] = *u
	return nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, s.failErr
	}
	u, ok := s.users[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (s *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return false, s.failErr
	}
	_, ok := s.users[email]
	return ok, nil
}

func (s *stubUserRepo) List(_ context.Context) ([]entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubUserRepo) UpdateRole(_ context.Context, email string, role entity.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.missing[role] {
		return repo.ErrRoleNotSeeded
	}
	u, ok := s.users[email]
	if !ok {
		return repo.ErrNotFound
	}
	u.Role = role
	s.users[email] = u
	return nil
}

func (s *stubUserRepo) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[email]; !ok {
		return repo.ErrNotFound
	}
	delete(s.users, email)
	return nil
}

func (s *stubUserRepo) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), nil
}

type recordingPublisher struct {
	bodies []any
	err    error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, body any) error {
	p.bodies = append(p.bodies, body)
	return p.err
}

var errStoreDown = errors.New("store down")
