// File: internal/infrastructure/database/user_postgres_repository.go
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/overskilled/backend-movie-api/internal/domain/errors"
	"github.com/overskilled/backend-movie-api/internal/domain/models"
	"github.com/overskilled/backend-movie-api/internal/domain/repository"
)

const userColumns = `id, username, email, phone_number, password_hash,
	two_factor_enabled, two_factor_secret, created_at, updated_at`

// pgxUserRepository implements repository.UserRepository using pgx.
type pgxUserRepository struct {
	db *pgxpool.Pool
}

// NewPgxUserRepository creates a new pgx-backed user repository.
func NewPgxUserRepository(db *pgxpool.Pool) repository.UserRepository {
	return &pgxUserRepository{db: db}
}

func (r *pgxUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			id, username, email, phone_number, password_hash,
			two_factor_enabled, two_factor_secret, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PhoneNumber, user.PasswordHash,
		user.TwoFactorEnabled, user.TwoFactorSecret, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "users_email_key") {
				return domainErrors.ErrEmailExists
			}
			return fmt.Errorf("duplicate user: %s: %w", pgErr.Detail, domainErrors.ErrEmailExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *pgxUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, id), "id")
}

func (r *pgxUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, email), "email")
}

func (r *pgxUserRepository) FindByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	// Phone numbers are not unique; the oldest matching account wins.
	query := fmt.Sprintf(`SELECT %s FROM users WHERE phone_number = $1 ORDER BY created_at LIMIT 1`, userColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, phoneNumber), "phone")
}

func (r *pgxUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at`, userColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return users, nil
}

// Update applies the non-nil fields of update to the user row and returns
// the updated record. An empty update degrades to a lookup.
func (r *pgxUserRepository) Update(ctx context.Context, id uuid.UUID, update models.UserUpdate) (*models.User, error) {
	if update.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	set := make([]string, 0, 7)
	args := []interface{}{id}
	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Username != nil {
		add("username", *update.Username)
	}
	if update.Email != nil {
		add("email", *update.Email)
	}
	if update.PhoneNumber != nil {
		add("phone_number", *update.PhoneNumber)
	}
	if update.PasswordHash != nil {
		add("password_hash", *update.PasswordHash)
	}
	if update.TwoFactorEnabled != nil {
		add("two_factor_enabled", *update.TwoFactorEnabled)
	}
	if update.TwoFactorSecret != nil {
		add("two_factor_secret", *update.TwoFactorSecret)
	}
	add("updated_at", time.Now())

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(set, ", "), userColumns)

	user, err := r.scanOne(r.db.QueryRow(ctx, query, args...), "id")
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

func (r *pgxUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

func (r *pgxUserRepository) scanOne(row pgx.Row, by string) (*models.User, error) {
	user := &models.User{}
	if err := scanUser(row, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", by, err)
	}
	return user, nil
}

func scanUser(row pgx.Row, user *models.User) error {
	return row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PhoneNumber, &user.PasswordHash,
		&user.TwoFactorEnabled, &user.TwoFactorSecret, &user.CreatedAt, &user.UpdatedAt,
	)
}

var _ repository.UserRepository = (*pgxUserRepository)(nil)
