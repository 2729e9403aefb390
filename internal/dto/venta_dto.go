package dto

import "github.com/shopspring/decimal"

type ItemVentaRequest struct {
	ProductoID uint `json:"productId" validate:"required"`
	Cantidad   int  `json:"quantity" validate:"gt=0"`
}

type RegistrarVentaRequest struct {
	Items []ItemVentaRequest `json:"items" validate:"dive"`
}

type ItemVentaResponse struct {
	ProductoID     uint            `json:"productId"`
	Nombre         string          `json:"name"`
	Cantidad       int             `json:"quantity"`
	PrecioUnitario decimal.Decimal `json:"unitPrice"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID    uint                `json:"id"`
	Fecha string              `json:"fecha"`
	Total decimal.Decimal     `json:"total"`
	Items []ItemVentaResponse `json:"items"`
}
