package transport

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orderdesk/orderdesk/internal/apperr"
)

var (
	ErrNotFound  = errors.New("transport option not found")
	ErrNameTaken = errors.New("transport name already exists")
)

// Repository persists transport options.
type Repository interface {
	List(ctx context.Context) ([]Option, error)
	Get(ctx context.Context, id int64) (Option, error)
	Create(ctx context.Context, in Input) (Option, error)
	Update(ctx context.Context, id int64, in Input) (Option, error)
	Delete(ctx context.Context, id int64) error
}

// PostgresRepository stores transport options in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const returningOption = ` RETURNING id, transport_name, description, created_at`

// List returns all options, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Option, error) {
	rows, err := r.db.Query(ctx, `SELECT id, transport_name, description, created_at
        FROM transport ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make([]Option, 0)
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.ID, &o.TransportName, &o.Description, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.CreatedAt = o.CreatedAt.UTC()
		options = append(options, o)
	}
	return options, rows.Err()
}

// Get fetches one option.
func (r *PostgresRepository) Get(ctx context.Context, id int64) (Option, error) {
	return scanOption(r.db.QueryRow(ctx, `SELECT id, transport_name, description, created_at
        FROM transport WHERE id = $1`, id))
}

// Create inserts an option; the unique index on transport_name rejects duplicates.
func (r *PostgresRepository) Create(ctx context.Context, in Input) (Option, error) {
	return scanOption(r.db.QueryRow(ctx, `INSERT INTO transport (transport_name, description)
        VALUES ($1, $2)`+returningOption, in.TransportName, in.Description))
}

// Update rewrites an option.
func (r *PostgresRepository) Update(ctx context.Context, id int64, in Input) (Option, error) {
	return scanOption(r.db.QueryRow(ctx, `UPDATE transport SET transport_name = $1, description = $2
        WHERE id = $3`+returningOption, in.TransportName, in.Description, id))
}

// Delete removes an option.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM transport WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanOption(row pgx.Row) (Option, error) {
	var o Option
	if err := row.Scan(&o.ID, &o.TransportName, &o.Description, &o.CreatedAt); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return Option{}, ErrNotFound
		case apperr.IsUniqueViolation(err):
			return Option{}, ErrNameTaken
		}
		return Option{}, err
	}
	o.CreatedAt = o.CreatedAt.UTC()
	return o, nil
}
