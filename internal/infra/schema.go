package infra

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is idempotent. Each statement ends with ";" at end of line so it can be
// executed on its own; the extended protocol rejects multi-statement strings.
const schema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS user_profiles (
    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name          TEXT NOT NULL,
    phone         TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT user_profiles_phone_key UNIQUE (phone)
);

CREATE TABLE IF NOT EXISTS itemtype (
    id       BIGSERIAL PRIMARY KEY,
    itemtype TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS colors (
    id            BIGSERIAL PRIMARY KEY,
    color_name    TEXT NOT NULL,
    primary_color TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS designs (
    id            BIGSERIAL PRIMARY KEY,
    design_number TEXT NOT NULL,
    item_type_id  BIGINT NOT NULL REFERENCES itemtype (id),
    color_id      BIGINT NOT NULL REFERENCES colors (id),
    created_by    UUID REFERENCES user_profiles (id) ON DELETE SET NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS designs_created_at_idx ON designs (created_at DESC);

CREATE TABLE IF NOT EXISTS parties (
    id           BIGSERIAL PRIMARY KEY,
    name         TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    address      TEXT NOT NULL DEFAULT '',
    city         TEXT NOT NULL DEFAULT '',
    state        TEXT NOT NULL DEFAULT '',
    pincode      TEXT NOT NULL DEFAULT '',
    phone_number TEXT NOT NULL DEFAULT '',
    gst_number   TEXT NOT NULL DEFAULT '',
    created_by   UUID REFERENCES user_profiles (id) ON DELETE SET NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS transport (
    id             BIGSERIAL PRIMARY KEY,
    transport_name TEXT NOT NULL,
    description    TEXT NOT NULL DEFAULT '',
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT transport_name_key UNIQUE (transport_name)
);
`

func schemaStatements() []string {
	parts := strings.Split(schema, ";\n")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			stmts = append(stmts, p)
		}
	}
	return stmts
}

// ApplySchema creates any missing tables, constraints and indexes.
func ApplySchema(ctx context.Context, db *pgxpool.Pool) error {
	for i, stmt := range schemaStatements() {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
