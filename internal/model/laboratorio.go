package model

// Laboratorio is a manufacturer. Many productos may point at the same laboratorio.
type Laboratorio struct {
	ID          int64  `json:"id"`
	Laboratorio string `json:"laboratorio"`
	Direccion   string `json:"direccion"`
}

// LaboratorioInput holds the writable fields of a Laboratorio. direccion must be
// present but may be empty.
type LaboratorioInput struct {
	Laboratorio string  `json:"laboratorio" validate:"required,max=100"`
	Direccion   *string `json:"direccion" validate:"required,max=200"`
}
