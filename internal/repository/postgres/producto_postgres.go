package postgres

import (
	"context"
	"database/sql"

	"farmacia/internal/model"
	"farmacia/internal/repository"
)

// ProductoPostgres is a PostgreSQL implementation of repository.ProductoRepository.
// Foreign keys to laboratorio and presentacion are enforced by the schema, so
// Create and Update surface a *pgconn.PgError (SQLSTATE 23503) for unknown references.
type ProductoPostgres struct {
	db *sql.DB
}

// NewProductoPostgres creates a new ProductoPostgres repository.
func NewProductoPostgres(db *sql.DB) *ProductoPostgres {
	return &ProductoPostgres{db: db}
}

var _ repository.ProductoRepository = (*ProductoPostgres)(nil)

func scanProducto(row scanner) (*model.Producto, error) {
	var p model.Producto
	if err := row.Scan(
		&p.ID,
		&p.Codigo,
		&p.Descripcion,
		&p.Precio,
		&p.Existencia,
		&p.IDLab,
		&p.IDPresentacion,
		&p.IDTipo,
		&p.Vencimiento,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns productos using LIMIT/OFFSET pagination and a total count.
func (r *ProductoPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Producto], error) {
	const qCount = `SELECT COUNT(*) FROM producto`
	const qList = `
		SELECT codproducto, codigo, descripcion, precio, existencia,
		       id_lab, id_presentacion, id_tipo, vencimiento
		FROM producto
		ORDER BY codproducto
		LIMIT $1 OFFSET $2
	`
	return listPage(ctx, r.db, qCount, qList, pq, scanProducto)
}

// FindByID fetches a single producto by its codproducto.
func (r *ProductoPostgres) FindByID(ctx context.Context, id int64) (*model.Producto, error) {
	const q = `
		SELECT codproducto, codigo, descripcion, precio, existencia,
		       id_lab, id_presentacion, id_tipo, vencimiento
		FROM producto
		WHERE codproducto = $1
	`
	return scanOne(r.db.QueryRowContext(ctx, q, id), scanProducto)
}

// Create inserts a new producto row and returns the stored record.
func (r *ProductoPostgres) Create(ctx context.Context, in model.ProductoInput) (*model.Producto, error) {
	const q = `
		INSERT INTO producto (codigo, descripcion, precio, existencia,
		                      id_lab, id_presentacion, id_tipo, vencimiento)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING codproducto, codigo, descripcion, precio, existencia,
		          id_lab, id_presentacion, id_tipo, vencimiento
	`
	row := r.db.QueryRowContext(ctx, q,
		in.Codigo,
		deref(in.Descripcion),
		deref(in.Precio),
		deref(in.Existencia),
		in.IDLab,
		in.IDPresentacion,
		deref(in.IDTipo),
		in.Vencimiento,
	)
	return scanProducto(row)
}

// Update replaces all writable columns of the producto.
func (r *ProductoPostgres) Update(ctx context.Context, id int64, in model.ProductoInput) (*model.Producto, error) {
	const q = `
		UPDATE producto
		SET codigo = $2, descripcion = $3, precio = $4, existencia = $5,
		    id_lab = $6, id_presentacion = $7, id_tipo = $8, vencimiento = $9
		WHERE codproducto = $1
		RETURNING codproducto, codigo, descripcion, precio, existencia,
		          id_lab, id_presentacion, id_tipo, vencimiento
	`
	row := r.db.QueryRowContext(ctx, q,
		id,
		in.Codigo,
		deref(in.Descripcion),
		deref(in.Precio),
		deref(in.Existencia),
		in.IDLab,
		in.IDPresentacion,
		deref(in.IDTipo),
		in.Vencimiento,
	)
	return scanOne(row, scanProducto)
}

// Delete removes the producto and returns the deleted row.
func (r *ProductoPostgres) Delete(ctx context.Context, id int64) (*model.Producto, error) {
	const q = `
		DELETE FROM producto
		WHERE codproducto = $1
		RETURNING codproducto, codigo, descripcion, precio, existencia,
		          id_lab, id_presentacion, id_tipo, vencimiento
	`
	return scanOne(r.db.QueryRowContext(ctx, q, id), scanProducto)
}
