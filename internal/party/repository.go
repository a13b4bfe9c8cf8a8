package party

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no party matches the id.
var ErrNotFound = errors.New("party not found")

// Repository persists parties.
type Repository interface {
	List(ctx context.Context) ([]Party, error)
	Get(ctx context.Context, id int64) (Party, error)
	Create(ctx context.Context, in Input, createdBy string) (Party, error)
	Update(ctx context.Context, id int64, in Input) (Party, error)
	Delete(ctx context.Context, id int64) error
}

// PostgresRepository stores parties in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectParty = `SELECT p.id, p.name, p.description, p.address, p.city, p.state, p.pincode,
        p.phone_number, p.gst_number, COALESCE(p.created_by::text, ''), p.created_at, p.updated_at, u.name
        FROM parties p LEFT JOIN user_profiles u ON u.id = p.created_by`

// List returns all parties, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Party, error) {
	rows, err := r.db.Query(ctx, selectParty+` ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parties := make([]Party, 0)
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, err
		}
		parties = append(parties, p)
	}
	return parties, rows.Err()
}

// Get fetches one party with its creator's name.
func (r *PostgresRepository) Get(ctx context.Context, id int64) (Party, error) {
	return scanParty(r.db.QueryRow(ctx, selectParty+` WHERE p.id = $1`, id))
}

// Create inserts a party owned by createdBy.
func (r *PostgresRepository) Create(ctx context.Context, in Input, createdBy string) (Party, error) {
	ownerID, err := uuid.Parse(createdBy)
	if err != nil {
		return Party{}, err
	}
	var id int64
	err = r.db.QueryRow(ctx, `INSERT INTO parties
        (name, description, address, city, state, pincode, phone_number, gst_number, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		in.Name, in.Description, in.Address, in.City, in.State, in.Pincode, in.PhoneNumber, in.GSTNumber, ownerID).Scan(&id)
	if err != nil {
		return Party{}, err
	}
	return r.Get(ctx, id)
}

// Update rewrites a party and bumps updated_at.
func (r *PostgresRepository) Update(ctx context.Context, id int64, in Input) (Party, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE parties SET name = $1, description = $2, address = $3, city = $4,
        state = $5, pincode = $6, phone_number = $7, gst_number = $8, updated_at = $9 WHERE id = $10`,
		in.Name, in.Description, in.Address, in.City, in.State, in.Pincode, in.PhoneNumber, in.GSTNumber, time.Now().UTC(), id)
	if err != nil {
		return Party{}, err
	}
	if cmd.RowsAffected() == 0 {
		return Party{}, ErrNotFound
	}
	return r.Get(ctx, id)
}

// Delete removes a party.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM parties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanParty(row pgx.Row) (Party, error) {
	var (
		p           Party
		creatorName *string
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Address, &p.City, &p.State, &p.Pincode,
		&p.PhoneNumber, &p.GSTNumber, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt, &creatorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Party{}, ErrNotFound
		}
		return Party{}, err
	}
	if creatorName != nil {
		p.Creator = &Creator{Name: *creatorName}
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
