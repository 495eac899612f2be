package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/autoplus/concesionaria/internal/domain/entity"
	"github.com/autoplus/concesionaria/internal/domain/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "database.sqlite"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newUser(email string, role entity.Role) *entity.User {
	return &entity.User{
		Name:         "Test " + email,
		Email:        email,
		PasswordHash: "digest-" + email,
		Role:         role,
		RegisteredAt: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
	}
}

func TestOpen_SeedsRoles(t *testing.T) {
	db := openTestDB(t)

	rows, err := db.Query(`SELECT nombre FROM roles ORDER BY id`)
	if err != nil {
		t.Fatalf("query roles: %v", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			t.Fatalf("scan: %v", err)
		}
		names = append(names, n)
	}
	if len(names) != 2 || names[0] != "Administrador" || names[1] != "Usuario" {
		t.Fatalf("unexpected seeded roles: %v", names)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.sqlite")
	for i := 0; i < 2; i++ {
		db, err := Open(context.Background(), path, nil)
		if err != nil {
			t.Fatalf("open #%d: %v", i+1, err)
		}
		var n int
		if err := db.QueryRow(`SELECT COUNT(*) FROM roles`).Scan(&n); err != nil {
			t.Fatalf("count roles: %v", err)
		}
		if n != 2 {
			t.Fatalf("expected 2 roles after open #%d, got %d", i+1, n)
		}
		_ = db.Close()
	}
}

func TestOpen_ReseedsMissingRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.sqlite")
	db, err := Open(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.Exec(`DELETE FROM roles WHERE nombre = 'Usuario'`); err != nil {
		t.Fatalf("delete role: %v", err)
	}
	_ = db.Close()

	db, err = Open(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewUserRepository(db)
	if err := repo.Create(context.Background(), newUser("ana@example.com", entity.RoleUser)); err != nil {
		t.Fatalf("Create after reopen returned error: %v", err)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(context.Background(), "  ", nil); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	u := newUser("ana@example.com", entity.RoleUser)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected id to be assigned")
	}

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("GetByEmail returned error: %v", err)
	}
	if got.Name != u.Name || got.PasswordHash != u.PasswordHash || got.Role != entity.RoleUser {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.RegistrationDate() != "2026-10-16" {
		t.Fatalf("unexpected registration date %q", got.RegistrationDate())
	}
}

func TestUserRepository_GetByEmail_CaseSensitive(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, newUser("ana@example.com", entity.RoleUser)); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "ANA@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, newUser("bob@example.com", entity.RoleUser)); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := repo.Create(ctx, newUser("bob@example.com", entity.RoleUser)); !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row, got %d", n)
	}
}

func TestUserRepository_Create_MissingRole(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Exec(`DELETE FROM roles WHERE nombre = 'Usuario'`); err != nil {
		t.Fatalf("delete role: %v", err)
	}
	repo := NewUserRepository(db)

	err := repo.Create(context.Background(), newUser("carol@example.com", entity.RoleUser))
	if !errors.Is(err, repository.ErrRoleNotSeeded) {
		t.Fatalf("expected ErrRoleNotSeeded, got %v", err)
	}
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	ok, err := repo.ExistsByEmail(ctx, "dave@example.com")
	if err != nil || ok {
		t.Fatalf("expected missing user, got ok=%v err=%v", ok, err)
	}
	if err := repo.Create(ctx, newUser("dave@example.com", entity.RoleUser)); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	ok, err = repo.ExistsByEmail(ctx, "dave@example.com")
	if err != nil || !ok {
		t.Fatalf("expected existing user, got ok=%v err=%v", ok, err)
	}
}

func TestUserRepository_List(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	_ = repo.Create(ctx, newUser("admin@example.com", entity.RoleAdministrator))
	_ = repo.Create(ctx, newUser("eve@example.com", entity.RoleUser))

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Email != "admin@example.com" || users[0].Role != entity.RoleAdministrator {
		t.Fatalf("unexpected first user: %+v", users[0])
	}
	if users[1].Email != "eve@example.com" || users[1].Role != entity.RoleUser {
		t.Fatalf("unexpected second user: %+v", users[1])
	}
}

func TestUserRepository_UpdateRole(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	_ = repo.Create(ctx, newUser("frank@example.com", entity.RoleUser))
	_ = repo.Create(ctx, newUser("gina@example.com", entity.RoleUser))

	if err := repo.UpdateRole(ctx, "frank@example.com", entity.RoleAdministrator); err != nil {
		t.Fatalf("UpdateRole returned error: %v", err)
	}
	frank, _ := repo.GetByEmail(ctx, "frank@example.com")
	gina, _ := repo.GetByEmail(ctx, "gina@example.com")
	if frank.Role != entity.RoleAdministrator {
		t.Fatalf("expected frank to be administrator, got %v", frank.Role)
	}
	if gina.Role != entity.RoleUser {
		t.Fatalf("expected gina unchanged, got %v", gina.Role)
	}

	if err := repo.UpdateRole(ctx, "nobody@example.com", entity.RoleUser); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	_ = repo.Create(ctx, newUser("hugo@example.com", entity.RoleUser))
	_ = repo.Create(ctx, newUser("iris@example.com", entity.RoleUser))

	if err := repo.Delete(ctx, "hugo@example.com"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "hugo@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected deleted user to be gone, got %v", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("expected 1 remaining row, got %d", n)
	}
	if err := repo.Delete(ctx, "hugo@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	for _, in := range []any{"2026-10-16", []byte("2026-10-16"), "2026-10-16T00:00:00Z", time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)} {
		got, err := parseDate(in)
		if err != nil {
			t.Fatalf("parseDate(%v) returned error: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("parseDate(%v) = %v, want %v", in, got, want)
		}
	}
	if got, err := parseDate(nil); err != nil || !got.IsZero() {
		t.Fatalf("parseDate(nil) = %v, %v", got, err)
	}
	if _, err := parseDate("yesterday"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestUserRepository_Create_UnknownRole(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	err := repo.Create(context.Background(), newUser("zed@example.com", entity.Role(0)))
	if !errors.Is(err, entity.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}
