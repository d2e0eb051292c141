package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
	"github.com/zein-l/Currency-exchange-backend/internal/utils/mapping"
)

// PgxUserRepository implements UserRepositoryFacade on PostgreSQL.
type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, name, email, google_id, password_hash, created_at, last_updated_at, deleted_at`

// SaveUser inserts a new user. A duplicate email surfaces as ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8);`,
		m.UserID, m.Name, m.Email, m.GoogleID, m.PasswordHash,
		m.CreatedAt, m.LastUpdatedAt, m.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s is already registered: %w", m.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user %s: %w", m.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) findUserBy(ctx context.Context, where string, arg any) (*domain.User, error) {
	var m models.User
	var googleID *string
	err := r.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE deleted_at IS NULL AND `+where+`;`, arg,
	).Scan(&m.UserID, &m.Name, &m.Email, &googleID, &m.PasswordHash,
		&m.CreatedAt, &m.LastUpdatedAt, &m.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if googleID != nil {
		m.GoogleID = *googleID
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

// FindUserByID retrieves a user by their ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUserBy(ctx, `user_id = $1`, userID)
}

// FindUserByEmail retrieves a user by their email address.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserBy(ctx, `email = $1`, email)
}

// FindUserByGoogleID retrieves a user by their external identity subject.
func (r *PgxUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.findUserBy(ctx, `google_id = $1`, googleID)
}
