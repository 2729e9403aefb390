package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Nombre    string          `json:"nombre" validate:"required"`
	Codigo    string          `json:"codigo" validate:"required"`
	Stock     int             `json:"stock" validate:"gte=0"`
	Precio    decimal.Decimal `json:"precio"`
	Categoria string          `json:"categoria" validate:"required"`
}

type ActualizarProductoRequest struct {
	Nombre    string          `json:"nombre" validate:"required"`
	Codigo    string          `json:"codigo" validate:"required"`
	Stock     int             `json:"stock" validate:"gte=0"`
	Precio    decimal.Decimal `json:"precio"`
	Categoria string          `json:"categoria" validate:"required"`
}

type ProductoResponse struct {
	ID        uint            `json:"id"`
	Nombre    string          `json:"nombre"`
	Codigo    string          `json:"codigo"`
	Stock     int             `json:"stock"`
	Precio    decimal.Decimal `json:"precio"`
	Categoria string          `json:"categoria"`
}

// CambiosResponse reports the affected-row count of an update or delete.
type CambiosResponse struct {
	Cambios int64 `json:"changes"`
}
