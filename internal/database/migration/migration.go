package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelRelation is the index built by the final step, so its presence means
// every step has run. to_regclass resolves indexes as well as tables.
const sentinelRelation = "public.idx_producto_id_presentacion"

var steps = []migrationStep{
	{
		Name: "create_table_cliente",
		SQL: `CREATE TABLE IF NOT EXISTS cliente (
  idcliente BIGSERIAL    PRIMARY KEY,
  nombre    VARCHAR(100) NOT NULL,
  telefono  VARCHAR(15)  NOT NULL DEFAULT '',
  direccion VARCHAR(200) NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_index_cliente_nombre",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cliente_nombre ON cliente (nombre);`,
	},
	{
		Name: "create_table_laboratorio",
		SQL: `CREATE TABLE IF NOT EXISTS laboratorio (
  id          BIGSERIAL    PRIMARY KEY,
  laboratorio VARCHAR(100) NOT NULL,
  direccion   VARCHAR(200) NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_index_laboratorio_laboratorio",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_laboratorio_laboratorio ON laboratorio (laboratorio);`,
	},
	{
		Name: "create_table_presentacion",
		SQL: `CREATE TABLE IF NOT EXISTS presentacion (
  id           BIGSERIAL    PRIMARY KEY,
  nombre       VARCHAR(100) NOT NULL,
  nombre_corto VARCHAR(10)  NOT NULL
);`,
	},
	{
		Name: "create_table_producto",
		SQL: `CREATE TABLE IF NOT EXISTS producto (
  codproducto     BIGSERIAL     PRIMARY KEY,
  codigo          VARCHAR(20)   NOT NULL,
  descripcion     VARCHAR(200)  NOT NULL DEFAULT '',
  precio          NUMERIC(10,2) NOT NULL,
  existencia      INTEGER       NOT NULL,
  id_lab          BIGINT        NOT NULL,
  id_presentacion BIGINT        NOT NULL,
  id_tipo         INTEGER       NOT NULL DEFAULT 0,
  vencimiento     DATE          NOT NULL,
  CONSTRAINT producto_id_lab_fkey FOREIGN KEY (id_lab)
    REFERENCES laboratorio (id) ON DELETE RESTRICT,
  CONSTRAINT producto_id_presentacion_fkey FOREIGN KEY (id_presentacion)
    REFERENCES presentacion (id) ON DELETE RESTRICT
);`,
	},
	{
		Name: "create_index_producto_id_lab",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_producto_id_lab ON producto (id_lab);`,
	},
	{
		Name: "create_index_producto_id_presentacion",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_producto_id_presentacion ON producto (id_presentacion);`,
	},
}

// EnsureMigrated checks if the sentinel relation exists and runs the schema steps if it doesn't.
// Every step is idempotent, so a run interrupted before the last step is completed on the next start.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	query := "SELECT to_regclass($1) IS NOT NULL"
	if err := db.QueryRowContext(ctx, query, sentinelRelation).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel relation")
		return fmt.Errorf("failed to check sentinel relation: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
