package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL crea los tipos enumerados y las tablas si no existen.
// movements.book_id cae en cascada con el libro; movements.user_id se
// pone en NULL al borrar el usuario para conservar el historial.
const schemaDDL = `
DO $$ BEGIN
    CREATE TYPE book_status AS ENUM ('Disponible', 'En Uso', 'Archivado');
EXCEPTION
    WHEN duplicate_object THEN NULL;
END $$;

DO $$ BEGIN
    CREATE TYPE user_role AS ENUM ('Administrador', 'Usuario estándar');
EXCEPTION
    WHEN duplicate_object THEN NULL;
END $$;

DO $$ BEGIN
    CREATE TYPE movement_action AS ENUM ('Retiro', 'Archivado', 'Devolución', 'Creación', 'Edición');
EXCEPTION
    WHEN duplicate_object THEN NULL;
END $$;

CREATE TABLE IF NOT EXISTS users (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    username    TEXT NOT NULL UNIQUE,
    email       TEXT NOT NULL UNIQUE,
    role        user_role NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS books (
    id          TEXT PRIMARY KEY,
    tomo        TEXT NOT NULL,
    year        INTEGER NOT NULL,
    entry_date  DATE NOT NULL,
    status      book_status NOT NULL DEFAULT 'Disponible'
);

CREATE TABLE IF NOT EXISTS movements (
    id              BIGSERIAL PRIMARY KEY,
    date_time       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    book_id         TEXT NOT NULL REFERENCES books(id) ON DELETE CASCADE,
    user_id         TEXT REFERENCES users(id) ON DELETE SET NULL,
    previous_state  book_status,
    new_state       book_status NOT NULL,
    action          movement_action NOT NULL,
    person          TEXT,
    observations    TEXT
);

CREATE INDEX IF NOT EXISTS idx_movements_book_id ON movements(book_id);
CREATE INDEX IF NOT EXISTS idx_movements_date_time ON movements(date_time DESC);
`

// EnsureSchema aplica el DDL idempotente al arrancar.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
