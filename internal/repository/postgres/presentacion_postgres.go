package postgres

import (
	"context"
	"database/sql"

	"farmacia/internal/model"
	"farmacia/internal/repository"
)

// PresentacionPostgres is a PostgreSQL implementation of repository.PresentacionRepository.
type PresentacionPostgres struct {
	db *sql.DB
}

func NewPresentacionPostgres(db *sql.DB) *PresentacionPostgres {
	return &PresentacionPostgres{db: db}
}

var _ repository.PresentacionRepository = (*PresentacionPostgres)(nil)

func scanPresentacion(row scanner) (*model.Presentacion, error) {
	var p model.Presentacion
	if err := row.Scan(&p.ID, &p.Nombre, &p.NombreCorto); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PresentacionPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Presentacion], error) {
	const qCount = `SELECT COUNT(*) FROM presentacion`
	const qList = `
		SELECT id, nombre, nombre_corto
		FROM presentacion
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	return listPage(ctx, r.db, qCount, qList, pq, scanPresentacion)
}

func (r *PresentacionPostgres) FindByID(ctx context.Context, id int64) (*model.Presentacion, error) {
	const q = `SELECT id, nombre, nombre_corto FROM presentacion WHERE id = $1`
	return scanOne(r.db.QueryRowContext(ctx, q, id), scanPresentacion)
}

func (r *PresentacionPostgres) Create(ctx context.Context, in model.PresentacionInput) (*model.Presentacion, error) {
	const q = `
		INSERT INTO presentacion (nombre, nombre_corto)
		VALUES ($1, $2)
		RETURNING id, nombre, nombre_corto
	`
	return scanPresentacion(r.db.QueryRowContext(ctx, q, in.Nombre, in.NombreCorto))
}

func (r *PresentacionPostgres) Update(ctx context.Context, id int64, in model.PresentacionInput) (*model.Presentacion, error) {
	const q = `
		UPDATE presentacion
		SET nombre = $2, nombre_corto = $3
		WHERE id = $1
		RETURNING id, nombre, nombre_corto
	`
	return scanOne(r.db.QueryRowContext(ctx, q, id, in.Nombre, in.NombreCorto), scanPresentacion)
}

func (r *PresentacionPostgres) Delete(ctx context.Context, id int64) (*model.Presentacion, error) {
	const q = `DELETE FROM presentacion WHERE id = $1 RETURNING id, nombre, nombre_corto`
	return scanOne(r.db.QueryRowContext(ctx, q, id), scanPresentacion)
}
