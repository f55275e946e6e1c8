package postgres

import (
	"context"
	"database/sql"

	"farmacia/internal/model"
	"farmacia/internal/repository"
)

// LaboratorioPostgres is a PostgreSQL implementation of repository.LaboratorioRepository.
type LaboratorioPostgres struct {
	db *sql.DB
}

// NewLaboratorioPostgres creates a new LaboratorioPostgres repository.
func NewLaboratorioPostgres(db *sql.DB) *LaboratorioPostgres {
	return &LaboratorioPostgres{db: db}
}

var _ repository.LaboratorioRepository = (*LaboratorioPostgres)(nil)

func scanLaboratorio(row scanner) (*model.Laboratorio, error) {
	var l model.Laboratorio
	if err := row.Scan(&l.ID, &l.Laboratorio, &l.Direccion); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LaboratorioPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Laboratorio], error) {
	const qCount = `SELECT COUNT(*) FROM laboratorio`
	const qList = `
		SELECT id, laboratorio, direccion
		FROM laboratorio
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	return listPage(ctx, r.db, qCount, qList, pq, scanLaboratorio)
}

func (r *LaboratorioPostgres) FindByID(ctx context.Context, id int64) (*model.Laboratorio, error) {
	const q = `SELECT id, laboratorio, direccion FROM laboratorio WHERE id = $1`
	return scanOne(r.db.QueryRowContext(ctx, q, id), scanLaboratorio)
}

func (r *LaboratorioPostgres) Create(ctx context.Context, in model.LaboratorioInput) (*model.Laboratorio, error) {
	const q = `
		INSERT INTO laboratorio (laboratorio, direccion)
		VALUES ($1, $2)
		RETURNING id, laboratorio, direccion
	`
	return scanLaboratorio(r.db.QueryRowContext(ctx, q, in.Laboratorio, deref(in.Direccion)))
}

func (r *LaboratorioPostgres) Update(ctx context.Context, id int64, in model.LaboratorioInput) (*model.Laboratorio, error) {
	const q = `
		UPDATE laboratorio
		SET laboratorio = $2, direccion = $3
		WHERE id = $1
		RETURNING id, laboratorio, direccion
	`
	return scanOne(r.db.QueryRowContext(ctx, q, id, in.Laboratorio, deref(in.Direccion)), scanLaboratorio)
}

// Delete removes the laboratorio. Rows still referenced by productos are rejected
// by the producto_id_lab_fkey constraint.
func (r *LaboratorioPostgres) Delete(ctx context.Context, id int64) (*model.Laboratorio, error) {
	const q = `DELETE FROM laboratorio WHERE id = $1 RETURNING id, laboratorio, direccion`
	return scanOne(r.db.QueryRowContext(ctx, q, id), scanLaboratorio)
}
