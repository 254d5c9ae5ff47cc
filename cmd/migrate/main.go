// migrate aplica el esquema de la base de datos.
//
// Uso: go run ./cmd/migrate
// Lee la configuración de conexión igual que el servidor (DATABASE_URL o DB_*).
package main

import (
	"context"

	"github.com/jhoicas/Calidad-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Calidad-api/pkg/config"
	"github.com/jhoicas/Calidad-api/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY,
    name          TEXT NOT NULL,
    designation   TEXT NOT NULL DEFAULT '',
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'inspector',
    status        TEXT NOT NULL DEFAULT 'active',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS product_categories (
    id          UUID PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS tasks (
    id          UUID PRIMARY KEY,
    category_id UUID NOT NULL REFERENCES product_categories(id) ON DELETE CASCADE,
    name        TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_tasks_category ON tasks(category_id);

CREATE TABLE IF NOT EXISTS subtasks (
    id          UUID PRIMARY KEY,
    task_id     UUID NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status      TEXT NOT NULL DEFAULT 'pending',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_subtasks_task ON subtasks(task_id);

CREATE TABLE IF NOT EXISTS product_serials (
    serial_no    TEXT PRIMARY KEY,
    category_id  UUID NOT NULL REFERENCES product_categories(id) ON DELETE CASCADE,
    product_name TEXT NOT NULL,
    status       TEXT NOT NULL DEFAULT 'pending',
    subtask_id   UUID REFERENCES subtasks(id) ON DELETE SET NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_product_serials_category ON product_serials(category_id);

CREATE TABLE IF NOT EXISTS serial_subtask_statuses (
    id             UUID PRIMARY KEY,
    serial_no      TEXT NOT NULL REFERENCES product_serials(serial_no) ON DELETE CASCADE,
    subtask_id     UUID NOT NULL REFERENCES subtasks(id) ON DELETE CASCADE,
    status         TEXT NOT NULL DEFAULT 'pending',
    remark         TEXT,
    measured_value NUMERIC,
    updated_by     TEXT,
    update_time    TIMESTAMPTZ,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (serial_no, subtask_id)
);
CREATE INDEX IF NOT EXISTS idx_serial_statuses_serial ON serial_subtask_statuses(serial_no);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	log.Info().Msg("esquema aplicado")
}
