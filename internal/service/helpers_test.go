package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"gestionpro/internal/dto"
	"gestionpro/internal/infra"
	"gestionpro/internal/model"
	"gestionpro/internal/repository"
	"gestionpro/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a real store in a temp dir so transactional rollback is
// observable; in-memory stubs cannot exercise it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.NewDatabase(filepath.Join(t.TempDir(), "test.db"), false)
	require.NoError(t, err)
	return db
}

func crearProducto(t *testing.T, svc service.ProductoService, nombre, codigo string, stock int, precio string, categoria string) uint {
	t.Helper()
	p, err := svc.Crear(context.Background(), productoReq(nombre, codigo, stock, precio, categoria))
	require.NoError(t, err)
	require.NotZero(t, p.ID)
	return p.ID
}

func productoEnDB(t *testing.T, db *gorm.DB, id uint) *model.Producto {
	t.Helper()
	var p model.Producto
	require.NoError(t, db.First(&p, id).Error)
	return &p
}

func ventasEnDB(t *testing.T, db *gorm.DB) []model.Venta {
	t.Helper()
	var ventas []model.Venta
	require.NoError(t, db.Find(&ventas).Error)
	return ventas
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func newProductoService(db *gorm.DB) service.ProductoService {
	return service.NewProductoService(repository.NewProductoRepository(db))
}

func productoReq(nombre, codigo string, stock int, precio string, categoria string) dto.CrearProductoRequest {
	return dto.CrearProductoRequest{
		Nombre:    nombre,
		Codigo:    codigo,
		Stock:     stock,
		Precio:    decimal.RequireFromString(precio),
		Categoria: categoria,
	}
}
