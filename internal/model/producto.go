package model

import "github.com/shopspring/decimal"

// Producto is an inventory item. Codigo is the unique SKU; Stock must never go
// negative after a sale commits.
type Producto struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	Nombre    string          `gorm:"index;not null"`
	Codigo    string          `gorm:"uniqueIndex;not null"`
	Stock     int             `gorm:"not null;default:0"`
	Precio    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Categoria string          `gorm:"not null"`
}

func (Producto) TableName() string { return "productos" }
