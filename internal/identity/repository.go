package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orderdesk/orderdesk/internal/apperr"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrPhoneTaken is returned when the store's uniqueness constraint on phone rejects an insert.
	ErrPhoneTaken = errors.New("phone already registered")
)

// Repository persists users and their credentials.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByPhone(ctx context.Context, phone string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	UpdateRole(ctx context.Context, id string, role Role) (User, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed identity repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectUser = `SELECT id, name, phone, role, password_hash, created_at FROM user_profiles`

// Create inserts a new user. The UNIQUE (phone) constraint decides duplicates.
func (r *PostgresRepository) Create(ctx context.Context, user User) error {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO user_profiles (id, name, phone, password_hash, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`, userID, user.Name, user.Phone, user.PasswordHash, string(user.Role), user.CreatedAt.UTC())
	if apperr.IsUniqueViolation(err) {
		return ErrPhoneTaken
	}
	return err
}

// FindByPhone fetches a user by phone number.
func (r *PostgresRepository) FindByPhone(ctx context.Context, phone string) (User, error) {
	return scanUser(r.db.QueryRow(ctx, selectUser+` WHERE phone = $1`, phone))
}

// FindByID fetches a user by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return User{}, ErrNotFound
	}
	return scanUser(r.db.QueryRow(ctx, selectUser+` WHERE id = $1`, userID))
}

// UpdateRole changes a user's role and returns the updated record.
func (r *PostgresRepository) UpdateRole(ctx context.Context, id string, role Role) (User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return User{}, ErrNotFound
	}
	return scanUser(r.db.QueryRow(ctx, `UPDATE user_profiles SET role = $1 WHERE id = $2
        RETURNING id, name, phone, role, password_hash, created_at`, string(role), userID))
}

func scanUser(row pgx.Row) (User, error) {
	var (
		id        uuid.UUID
		role      string
		createdAt time.Time
		user      User
	)
	if err := row.Scan(&id, &user.Name, &user.Phone, &role, &user.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	parsed, err := ParseRole(role)
	if err != nil {
		return User{}, err
	}
	user.ID = id.String()
	user.Role = parsed
	user.CreatedAt = createdAt.UTC()
	return user, nil
}

// DisplayNames returns a lookup from user id to name backed by repo. Unknown ids resolve to "".
func DisplayNames(repo Repository) func(ctx context.Context, id string) string {
	return func(ctx context.Context, id string) string {
		user, err := repo.FindByID(ctx, id)
		if err != nil {
			return ""
		}
		return user.Name
	}
}
