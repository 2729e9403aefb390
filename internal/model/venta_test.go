package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVentaItems_RoundTrip(t *testing.T) {
	items := VentaItems{
		{ProductoID: 1, Nombre: "Producto A", Cantidad: 3, PrecioUnitario: decimal.RequireFromString("10.0")},
		{ProductoID: 2, Nombre: "Producto B", Cantidad: 2, PrecioUnitario: decimal.RequireFromString("20.0")},
	}

	val, err := items.Value()
	require.NoError(t, err)

	var decoded VentaItems
	require.NoError(t, decoded.Scan(val))

	require.Len(t, decoded, 2)
	assert.Equal(t, uint(1), decoded[0].ProductoID)
	assert.Equal(t, "Producto A", decoded[0].Nombre)
	assert.Equal(t, 3, decoded[0].Cantidad)
	assert.True(t, decoded[0].PrecioUnitario.Equal(items[0].PrecioUnitario))
}

func TestVentaItems_FormatoJSON(t *testing.T) {
	items := VentaItems{
		{ProductoID: 7, Nombre: "X", Cantidad: 1, PrecioUnitario: decimal.RequireFromString("2.5")},
	}
	val, err := items.Value()
	require.NoError(t, err)

	// Snapshot keys are part of the persisted format
	assert.JSONEq(t, `[{"productId":7,"name":"X","quantity":1,"unitPrice":"2.5"}]`, val.(string))
}

func TestVentaItems_ScanNil(t *testing.T) {
	var items VentaItems
	require.NoError(t, items.Scan(nil))
	assert.Nil(t, items)

	require.NoError(t, items.Scan([]byte(`[]`)))
	assert.Empty(t, items)

	assert.Error(t, items.Scan(42))
}

func TestVentaItem_Subtotal(t *testing.T) {
	item := VentaItem{Cantidad: 3, PrecioUnitario: decimal.RequireFromString("10.0")}
	assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("30.0")))
}
