package postgres

import (
	"context"
	"database/sql"

	"farmacia/internal/model"
	"farmacia/internal/repository"
)

// ClientePostgres is a PostgreSQL implementation of repository.ClienteRepository.
type ClientePostgres struct {
	db *sql.DB
}

// NewClientePostgres creates a new ClientePostgres repository.
func NewClientePostgres(db *sql.DB) *ClientePostgres {
	return &ClientePostgres{db: db}
}

var _ repository.ClienteRepository = (*ClientePostgres)(nil)

func scanCliente(row scanner) (*model.Cliente, error) {
	var c model.Cliente
	if err := row.Scan(
		&c.ID,
		&c.Nombre,
		&c.Telefono,
		&c.Direccion,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns clientes using LIMIT/OFFSET pagination and a total count.
func (r *ClientePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Cliente], error) {
	const qCount = `SELECT COUNT(*) FROM cliente`
	const qList = `
		SELECT idcliente, nombre, telefono, direccion
		FROM cliente
		ORDER BY idcliente
		LIMIT $1 OFFSET $2
	`
	return listPage(ctx, r.db, qCount, qList, pq, scanCliente)
}

// FindByID fetches a single cliente by its id.
func (r *ClientePostgres) FindByID(ctx context.Context, id int64) (*model.Cliente, error) {
	const q = `
		SELECT idcliente, nombre, telefono, direccion
		FROM cliente
		WHERE idcliente = $1
	`
	return scanOne(r.db.QueryRowContext(ctx, q, id), scanCliente)
}

// Create inserts a new cliente row and returns the stored record.
func (r *ClientePostgres) Create(ctx context.Context, in model.ClienteInput) (*model.Cliente, error) {
	const q = `
		INSERT INTO cliente (nombre, telefono, direccion)
		VALUES ($1, $2, $3)
		RETURNING idcliente, nombre, telefono, direccion
	`
	row := r.db.QueryRowContext(ctx, q,
		in.Nombre,
		deref(in.Telefono),
		deref(in.Direccion),
	)
	return scanCliente(row)
}

// Update replaces all writable columns of the cliente.
func (r *ClientePostgres) Update(ctx context.Context, id int64, in model.ClienteInput) (*model.Cliente, error) {
	const q = `
		UPDATE cliente
		SET nombre = $2, telefono = $3, direccion = $4
		WHERE idcliente = $1
		RETURNING idcliente, nombre, telefono, direccion
	`
	row := r.db.QueryRowContext(ctx, q,
		id,
		in.Nombre,
		deref(in.Telefono),
		deref(in.Direccion),
	)
	return scanOne(row, scanCliente)
}

// Delete removes the cliente and returns the deleted row.
func (r *ClientePostgres) Delete(ctx context.Context, id int64) (*model.Cliente, error) {
	const q = `
		DELETE FROM cliente
		WHERE idcliente = $1
		RETURNING idcliente, nombre, telefono, direccion
	`
	return scanOne(r.db.QueryRowContext(ctx, q, id), scanCliente)
}
