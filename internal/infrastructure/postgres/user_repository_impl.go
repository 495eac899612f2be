package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autoplus/concesionaria/internal/domain/entity"
	"github.com/autoplus/concesionaria/internal/domain/repository"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func roleID(ctx context.Context, tx pgx.Tx, role entity.Role) (int64, error) {
	if !role.Valid() {
		return 0, fmt.Errorf("%w: %d", entity.ErrUnknownRole, int(role))
	}
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM roles WHERE nombre = $1`, role.String()).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", repository.ErrRoleNotSeeded, role)
	}
	if err != nil {
		return 0, fmt.Errorf("select role: %w", err)
	}
	return id, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		rid, err := roleID(ctx, tx, u.Role)
		if err != nil {
			return err
		}
		row := tx.QueryRow(ctx, `
			INSERT INTO usuarios (nombre, email, contraseña, rol_id, fecha_registro)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, u.Name, u.Email, u.PasswordHash, rid, u.RegisteredAt)
		if err := row.Scan(&u.ID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return repository.ErrDuplicateEmail
			}
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u *entity.User
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			SELECT u.id, u.nombre, u.email, u.contraseña, r.nombre, u.fecha_registro
			FROM usuarios u JOIN roles r ON u.rol_id = r.id
			WHERE u.email = $1
		`, email)
		var err error
		u, err = scanUser(row)
		if errors.Is(err, pgx.ErrNoRows) {
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
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1)`, email).Scan(&found)
	})
	if err != nil {
		return false, fmt.Errorf("select user: %w", err)
	}
	return found, nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT u.id, u.nombre, u.email, u.contraseña, r.nombre, u.fecha_registro
			FROM usuarios u JOIN roles r ON u.rol_id = r.id
			ORDER BY u.id
		`)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			u, err := scanUser(rows)
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
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		rid, err := roleID(ctx, tx, role)
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `UPDATE usuarios SET rol_id = $1 WHERE email = $2`, rid, email)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

func (r *UserRepository) Delete(ctx context.Context, email string) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM usuarios WHERE email = $1`, email)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios`).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u        entity.User
		roleName string
		date     *time.Time
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &roleName, &date); err != nil {
		return nil, err
	}
	role, err := entity.ParseRole(roleName)
	if err != nil {
		return nil, fmt.Errorf("user %d role %q: %w", u.ID, roleName, err)
	}
	u.Role = role
	if date != nil {
		u.RegisteredAt = *date
	}
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
