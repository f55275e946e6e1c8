package model

// Cliente is a pharmacy customer. It has no relationships to other records.
type Cliente struct {
	ID        int64  `json:"idcliente"`
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// ClienteInput holds the writable fields of a Cliente for create and full update.
// Every field must be present in the payload; telefono and direccion may be empty.
type ClienteInput struct {
	Nombre    string  `json:"nombre" validate:"required,max=100"`
	Telefono  *string `json:"telefono" validate:"required,max=15"`
	Direccion *string `json:"direccion" validate:"required,max=200"`
}
