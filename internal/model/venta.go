package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Venta is an append-only ledger entry for a completed sale. Items holds a
// denormalized snapshot of each line at commit time, so later product edits or
// deletes never alter the historical record.
type Venta struct {
	ID    uint            `gorm:"primaryKey;autoIncrement"`
	Fecha time.Time       `gorm:"not null;index"`
	Total decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Items VentaItems      `gorm:"column:productos_json;type:text;not null"`
}

func (Venta) TableName() string { return "ventas" }

// VentaItem is one snapshotted sale line.
type VentaItem struct {
	ProductoID     uint            `json:"productId"`
	Nombre         string          `json:"name"`
	Cantidad       int             `json:"quantity"`
	PrecioUnitario decimal.Decimal `json:"unitPrice"`
}

// Subtotal returns the line's extended price.
func (i VentaItem) Subtotal() decimal.Decimal {
	return i.PrecioUnitario.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// VentaItems serializes the snapshot list to JSON in the productos_json column.
type VentaItems []VentaItem

// Value implements driver.Valuer.
func (v VentaItems) Value() (driver.Value, error) {
	if v == nil {
		v = VentaItems{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (v *VentaItems) Scan(src interface{}) error {
	switch data := src.(type) {
	case nil:
		*v = nil
		return nil
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return fmt.Errorf("cannot scan %T into VentaItems", src)
	}
}
