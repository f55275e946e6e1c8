package model

// Presentacion is the dosage form of a product (e.g. "Tableta", "TAB").
type Presentacion struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	NombreCorto string `json:"nombre_corto"`
}

type PresentacionInput struct {
	Nombre      string `json:"nombre" validate:"required,max=100"`
	NombreCorto string `json:"nombre_corto" validate:"required,max=10"`
}
