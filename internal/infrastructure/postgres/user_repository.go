package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foodhub-app/user-service/internal/domain/entity"
	"github.com/foodhub-app/user-service/internal/domain/repository"
)

const uniqueViolation = "23505"

// UserRepository persists the user aggregate in Postgres. Rows are read with
// the caller's context so in-flight queries abort on cancellation.
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Add(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, phone, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, u.ID(), u.Name(), u.Email().Value(), nullable(u.Phone()), u.IsActive(), u.CreatedAt())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", repository.ErrDuplicateEmail, u.Email().Value())
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, is_active, created_at
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, is_active, created_at
		FROM users
		WHERE email = $1
	`, entity.NormalizeEmail(email))
	return scanUser(row)
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, phone, is_active, created_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, email = $2, phone = $3, is_active = $4
		WHERE id = $5
	`, u.Name(), u.Email().Value(), nullable(u.Phone()), u.IsActive(), u.ID())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", repository.ErrDuplicateEmail, u.Email().Value())
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id        uuid.UUID
		name      string
		emailStr  string
		phone     *string
		isActive  bool
		createdAt time.Time
	)
	if err := row.Scan(&id, &name, &emailStr, &phone, &isActive, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	email, err := entity.NewEmail(emailStr)
	if err != nil {
		return nil, fmt.Errorf("stored email invalid: %w", err)
	}
	var phoneVal string
	if phone != nil {
		phoneVal = *phone
	}
	u, err := entity.RehydrateUser(id, name, email, phoneVal, isActive, createdAt)
	if err != nil {
		return nil, fmt.Errorf("rehydrate user %s: %w", id, err)
	}
	return u, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
