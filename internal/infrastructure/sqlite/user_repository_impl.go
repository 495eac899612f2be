package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/autoplus/concesionaria/internal/domain/entity"
	"github.com/autoplus/concesionaria/internal/domain/repository"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// withTx runs fn inside a transaction that is committed when fn succeeds and
// rolled back on every other path.
func (r *UserRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func roleID(ctx context.Context, tx *sql.Tx, role entity.Role) (int64, error) {
	if !role.Valid() {
		return 0, fmt.Errorf("%w: %d", entity.ErrUnknownRole, int(role))
	}
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM roles WHERE nombre = ?`, role.String()).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", repository.ErrRoleNotSeeded, role)
	}
	if err != nil {
		return 0, fmt.Errorf("select role: %w", err)
	}
	return id, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		rid, err := roleID(ctx, tx, u.Role)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `
			INSERT INTO usuarios (nombre, email, contraseña, rol_id, fecha_registro)
			VALUES (?, ?, ?, ?, ?)
		`, u.Name, u.Email, u.PasswordHash, rid, u.RegisteredAt.Format(entity.DateLayout))
		if err != nil {
			if isUniqueViolation(err) {
				return repository.ErrDuplicateEmail
			}
			return fmt.Errorf("insert user: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		u.ID = id
		return nil
	})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u *entity.User
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT u.id, u.nombre, u.email, u.contraseña, r.nombre, u.fecha_registro
			FROM usuarios u JOIN roles r ON u.rol_id = r.id
			WHERE u.email = ?
		`, email)
		var err error
		u, err = scanUser(row.Scan)
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var found bool
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM usuarios WHERE email = ?`, email).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("select user: %w", err)
		}
		found = true
		return nil
	})
	return found, err
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT u.id, u.nombre, u.email, u.contraseña, r.nombre, u.fecha_registro
			FROM usuarios u JOIN roles r ON u.rol_id = r.id
			ORDER BY u.id
		`)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		defer func() { _ = rows.Close() }()
		for rows.Next() {
			u, err := scanUser(rows.Scan)
			if err != nil {
				return err
			}
			out = append(out, *u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, email string, role entity.Role) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		rid, err := roleID(ctx, tx, role)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `UPDATE usuarios SET rol_id = ? WHERE email = ?`, rid, email)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		return expectOneRow(res)
	})
}

func (r *UserRepository) Delete(ctx context.Context, email string) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM usuarios WHERE email = ?`, email)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return expectOneRow(res)
	})
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM usuarios`).Scan(&n); err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		return nil
	})
	return n, err
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanUser(scan func(dest ...any) error) (*entity.User, error) {
	var (
		u        entity.User
		roleName string
		date     any
	)
	if err := scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &roleName, &date); err != nil {
		return nil, err
	}
	role, err := entity.ParseRole(roleName)
	if err != nil {
		return nil, fmt.Errorf("user %d role %q: %w", u.ID, roleName, err)
	}
	u.Role = role
	registered, err := parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("user %d fecha_registro: %w", u.ID, err)
	}
	u.RegisteredAt = registered
	return &u, nil
}

// parseDate accepts fecha_registro as stored text or as the time.Time the
// driver produces for DATE columns.
func parseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
	case []byte:
		return parseDate(string(d))
	case string:
		if len(d) >= len(entity.DateLayout) {
			if t, err := time.Parse(entity.DateLayout, d[:len(entity.DateLayout)]); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unexpected date %q", d)
	default:
		return time.Time{}, fmt.Errorf("unexpected date type %T", v)
	}
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

var _ repository.UserRepository = (*UserRepository)(nil)
