package repository

import "farmacia/internal/model"

type (
	ClienteRepository      = CRUDRepository[model.Cliente, model.ClienteInput]
	ProductoRepository     = CRUDRepository[model.Producto, model.ProductoInput]
	LaboratorioRepository  = CRUDRepository[model.Laboratorio, model.LaboratorioInput]
	PresentacionRepository = CRUDRepository[model.Presentacion, model.PresentacionInput]
)
