package migration

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sentinelQuery = "SELECT to_regclass\\(\\$1\\) IS NOT NULL"

func TestEnsureMigrated_SkipsExistingSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var buf bytes.Buffer
	mock.ExpectQuery(sentinelQuery).
		WithArgs(sentinelRelation).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err = EnsureMigrated(context.Background(), db, zerolog.New(&buf), "localhost")

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "db_migration_skip")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_RunsAllSteps(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(sentinelQuery).
		WithArgs(sentinelRelation).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	for _, step := range steps {
		mock.ExpectExec(regexp.QuoteMeta(step.SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	var buf bytes.Buffer
	err = EnsureMigrated(context.Background(), db, zerolog.New(&buf), "localhost")

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "db_migration_success")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_StepFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(sentinelQuery).
		WithArgs(sentinelRelation).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS cliente").
		WillReturnError(errors.New("permission denied"))

	err = EnsureMigrated(context.Background(), db, zerolog.Nop(), "localhost")

	assert.EqualError(t, err, "migration step create_table_cliente failed: permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_SentinelError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(sentinelQuery).WillReturnError(errors.New("timeout"))

	err = EnsureMigrated(context.Background(), db, zerolog.Nop(), "localhost")

	assert.ErrorContains(t, err, "failed to check sentinel relation")
}

func TestSentinelIsCreatedByLastStep(t *testing.T) {
	last := steps[len(steps)-1]
	name := strings.TrimPrefix(sentinelRelation, "public.")
	assert.Contains(t, last.SQL, "CREATE INDEX IF NOT EXISTS "+name+" ")

	for _, s := range steps[:len(steps)-1] {
		assert.NotContains(t, s.SQL, name, s.Name)
	}
}

func TestEnsureMigrated_CompletesInterruptedRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Tables exist but the final index does not: every step runs again.
	mock.ExpectQuery(sentinelQuery).
		WithArgs("public.idx_producto_id_presentacion").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	for _, step := range steps {
		mock.ExpectExec(regexp.QuoteMeta(step.SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err = EnsureMigrated(context.Background(), db, zerolog.Nop(), "localhost")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSteps_ProductoReferencesSameLaboratorioTable(t *testing.T) {
	var producto string
	for _, s := range steps {
		if s.Name == "create_table_producto" {
			producto = s.SQL
		}
	}
	require.NotEmpty(t, producto)
	assert.Contains(t, producto, "REFERENCES laboratorio (id)")
	assert.Contains(t, producto, "REFERENCES presentacion (id)")
}
