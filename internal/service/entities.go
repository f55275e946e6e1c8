package service

import (
	"farmacia/internal/model"
	"farmacia/internal/repository"
)

type (
	ClienteService      = CRUDService[model.Cliente, model.ClienteInput]
	ProductoService     = CRUDService[model.Producto, model.ProductoInput]
	LaboratorioService  = CRUDService[model.Laboratorio, model.LaboratorioInput]
	PresentacionService = CRUDService[model.Presentacion, model.PresentacionInput]
)

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return NewCRUDService(repo)
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return NewCRUDService(repo)
}

func NewLaboratorioService(repo repository.LaboratorioRepository) LaboratorioService {
	return NewCRUDService(repo)
}

func NewPresentacionService(repo repository.PresentacionRepository) PresentacionService {
	return NewCRUDService(repo)
}
