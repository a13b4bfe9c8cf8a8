package design

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound is returned when no design matches the id.
	ErrNotFound = errors.New("design not found")
	// ErrUnknownReference is returned when an item type or color id does not exist.
	ErrUnknownReference = errors.New("unknown item type or color")
)

// Repository persists designs and reads the item type and color catalogs.
type Repository interface {
	ItemTypes(ctx context.Context) ([]ItemType, error)
	Colors(ctx context.Context) ([]Color, error)
	List(ctx context.Context) ([]Design, error)
	// CreateMany inserts all rows or none.
	CreateMany(ctx context.Context, rows []Input, createdBy string) ([]Design, error)
	Update(ctx context.Context, id int64, in Input) (Design, error)
	Delete(ctx context.Context, id int64) error
}

// PostgresRepository stores designs in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectDesign = `SELECT d.id, d.design_number, d.item_type_id, d.color_id,
        COALESCE(d.created_by::text, ''), d.created_at, d.updated_at, u.name, i.itemtype, c.color_name, c.primary_color
        FROM designs d
        LEFT JOIN user_profiles u ON u.id = d.created_by
        LEFT JOIN itemtype i ON i.id = d.item_type_id
        LEFT JOIN colors c ON c.id = d.color_id`

// ItemTypes lists item types ordered by id.
func (r *PostgresRepository) ItemTypes(ctx context.Context) ([]ItemType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, itemtype FROM itemtype ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemType, 0)
	for rows.Next() {
		var it ItemType
		if err := rows.Scan(&it.ID, &it.ItemType); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Colors lists colors ordered by primary color then name.
func (r *PostgresRepository) Colors(ctx context.Context) ([]Color, error) {
	rows, err := r.db.Query(ctx, `SELECT id, color_name, primary_color FROM colors
        ORDER BY primary_color, color_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colors := make([]Color, 0)
	for rows.Next() {
		var col Color
		if err := rows.Scan(&col.ID, &col.ColorName, &col.PrimaryColor); err != nil {
			return nil, err
		}
		colors = append(colors, col)
	}
	return colors, rows.Err()
}

// List returns all designs, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Design, error) {
	return r.query(ctx, r.db, selectDesign+` ORDER BY d.created_at DESC, d.id DESC`)
}

// CreateMany inserts one design per row in a single transaction.
func (r *PostgresRepository) CreateMany(ctx context.Context, rows []Input, createdBy string) ([]Design, error) {
	ownerID, err := uuid.Parse(createdBy)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	ids := make([]int64, 0, len(rows))
	for _, in := range rows {
		var id int64
		if err := tx.QueryRow(ctx, `INSERT INTO designs (design_number, item_type_id, color_id, created_by)
            VALUES ($1, $2, $3, $4) RETURNING id`, in.DesignNumber, in.ItemTypeID, in.ColorID, ownerID).Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	designs, err := r.query(ctx, tx, selectDesign+` WHERE d.id = ANY($1) ORDER BY d.id`, ids)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return designs, nil
}

// Update rewrites a design row and bumps updated_at.
func (r *PostgresRepository) Update(ctx context.Context, id int64, in Input) (Design, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE designs SET design_number = $1, item_type_id = $2, color_id = $3,
        updated_at = $4 WHERE id = $5`, in.DesignNumber, in.ItemTypeID, in.ColorID, time.Now().UTC(), id)
	if err != nil {
		return Design{}, err
	}
	if cmd.RowsAffected() == 0 {
		return Design{}, ErrNotFound
	}
	designs, err := r.query(ctx, r.db, selectDesign+` WHERE d.id = $1`, id)
	if err != nil {
		return Design{}, err
	}
	if len(designs) == 0 {
		return Design{}, ErrNotFound
	}
	return designs[0], nil
}

// Delete removes a design row.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM designs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PostgresRepository) query(ctx context.Context, q querier, sql string, args ...any) ([]Design, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	designs := make([]Design, 0)
	for rows.Next() {
		var (
			d                      Design
			creator, itemType      *string
			colorName, primaryName *string
		)
		if err := rows.Scan(&d.ID, &d.DesignNumber, &d.ItemTypeID, &d.ColorID, &d.CreatedBy, &d.CreatedAt,
			&d.UpdatedAt, &creator, &itemType, &colorName, &primaryName); err != nil {
			return nil, err
		}
		if creator != nil {
			d.Creator = &Creator{Name: *creator}
		}
		if itemType != nil {
			d.ItemType = &ItemTypeRef{ItemType: *itemType}
		}
		if colorName != nil && primaryName != nil {
			d.Color = &ColorRef{ColorName: *colorName, PrimaryColor: *primaryName}
		}
		d.CreatedAt = d.CreatedAt.UTC()
		d.UpdatedAt = d.UpdatedAt.UTC()
		designs = append(designs, d)
	}
	return designs, rows.Err()
}
