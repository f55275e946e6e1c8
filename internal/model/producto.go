package model

import "github.com/shopspring/decimal"

// Producto is a stock item. IDLab and IDPresentacion reference Laboratorio and
// Presentacion rows; the database enforces both references.
// IDTipo is a free categorical value with no table behind it.
type Producto struct {
	ID             int64           `json:"codproducto"`
	Codigo         string          `json:"codigo"`
	Descripcion    string          `json:"descripcion"`
	Precio         decimal.Decimal `json:"precio"`
	Existencia     int             `json:"existencia"`
	IDLab          int64           `json:"id_lab"`
	IDPresentacion int64           `json:"id_presentacion"`
	IDTipo         int             `json:"id_tipo"`
	Vencimiento    Date            `json:"vencimiento"`
}

// ProductoInput holds the writable fields of a Producto.
// Pointer fields distinguish "absent" from zero: every field is required because
// an update replaces the whole row. Bounds follow the column types (NUMERIC(10,2),
// INTEGER); negative prices or stock are still accepted.
type ProductoInput struct {
	Codigo         string           `json:"codigo" validate:"required,max=20"`
	Descripcion    *string          `json:"descripcion" validate:"required,max=200"`
	Precio         *decimal.Decimal `json:"precio" validate:"required,gt=-100000000,lt=100000000"`
	Existencia     *int             `json:"existencia" validate:"required,min=-2147483648,max=2147483647"`
	IDLab          int64            `json:"id_lab" validate:"required,gt=0"`
	IDPresentacion int64            `json:"id_presentacion" validate:"required,gt=0"`
	IDTipo         *int             `json:"id_tipo" validate:"required,min=-2147483648,max=2147483647"`
	Vencimiento    Date             `json:"vencimiento" validate:"required"`
}
