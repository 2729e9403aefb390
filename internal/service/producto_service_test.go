package service_test

import (
	"context"
	"errors"
	"testing"

	"gestionpro/internal/apperror"
	"gestionpro/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearProducto_CodigoDuplicado(t *testing.T) {
	db := newTestDB(t)
	svc := newProductoService(db)

	idA := crearProducto(t, svc, "Teclado", "SKU-1", 5, "10.0", "electronics")

	_, err := svc.Crear(context.Background(), productoReq("Otro teclado", "SKU-1", 3, "12.0", "electronics"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConstraint))
	assert.Equal(t, "El código (SKU) del producto ya existe.", err.Error())

	// First product unaffected
	p := productoEnDB(t, db, idA)
	assert.Equal(t, "Teclado", p.Nombre)
	assert.Equal(t, 5, p.Stock)

	productos, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.Len(t, productos, 1)
}

func TestCrearProducto_Validacion(t *testing.T) {
	svc := newProductoService(newTestDB(t))

	_, err := svc.Crear(context.Background(), productoReq("", "SKU-1", 5, "10.0", "general"))
	assert.Error(t, err, "nombre vacío")

	_, err = svc.Crear(context.Background(), productoReq("Algo", "", 5, "10.0", "general"))
	assert.Error(t, err, "codigo vacío")

	_, err = svc.Crear(context.Background(), productoReq("Algo", "SKU-2", -1, "10.0", "general"))
	assert.Error(t, err, "stock negativo")

	_, err = svc.Crear(context.Background(), productoReq("Algo", "SKU-3", 1, "-5.0", "general"))
	assert.Error(t, err, "precio negativo")
}

func TestListar_OrdenPorIDDescendente(t *testing.T) {
	svc := newProductoService(newTestDB(t))
	crearProducto(t, svc, "Primero", "SKU-1", 1, "1.0", "general")
	crearProducto(t, svc, "Segundo", "SKU-2", 1, "1.0", "general")

	productos, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, productos, 2)
	assert.Equal(t, "Segundo", productos[0].Nombre)
	assert.Equal(t, "Primero", productos[1].Nombre)
}

func TestBuscar(t *testing.T) {
	svc := newProductoService(newTestDB(t))
	crearProducto(t, svc, "Monitor LED", "MON-27", 4, "150.0", "electronics")

	ctx := context.Background()

	t.Run("codigo exacto", func(t *testing.T) {
		p, err := svc.Buscar(ctx, "MON-27")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Monitor LED", p.Nombre)
	})

	t.Run("substring de nombre sin distinguir mayúsculas", func(t *testing.T) {
		p, err := svc.Buscar(ctx, "monitor")
		require.NoError(t, err)
		require.NotNil(t, p)
	})

	t.Run("categoria exacta sin distinguir mayúsculas", func(t *testing.T) {
		p, err := svc.Buscar(ctx, "ELECTRONICS")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "MON-27", p.Codigo)
	})

	t.Run("sin coincidencias", func(t *testing.T) {
		p, err := svc.Buscar(ctx, "inexistente")
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestActualizarProducto(t *testing.T) {
	db := newTestDB(t)
	svc := newProductoService(db)
	id := crearProducto(t, svc, "Mouse", "SKU-1", 5, "8.0", "general")

	res, err := svc.Actualizar(context.Background(), id, dto.ActualizarProductoRequest{
		Nombre:    "Mouse inalámbrico",
		Codigo:    "SKU-1",
		Stock:     7,
		Precio:    mustDecimal(t, "9.5"),
		Categoria: "general",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Cambios)

	p := productoEnDB(t, db, id)
	assert.Equal(t, "Mouse inalámbrico", p.Nombre)
	assert.Equal(t, 7, p.Stock)

	// Nonexistent id reports zero changes, not an error
	res, err = svc.Actualizar(context.Background(), 9999, dto.ActualizarProductoRequest{
		Nombre: "X", Codigo: "SKU-X", Stock: 1, Precio: mustDecimal(t, "1.0"), Categoria: "general",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Cambios)
}

func TestActualizarProducto_CodigoDuplicado(t *testing.T) {
	svc := newProductoService(newTestDB(t))
	crearProducto(t, svc, "Uno", "SKU-1", 1, "1.0", "general")
	idB := crearProducto(t, svc, "Dos", "SKU-2", 1, "1.0", "general")

	_, err := svc.Actualizar(context.Background(), idB, dto.ActualizarProductoRequest{
		Nombre: "Dos", Codigo: "SKU-1", Stock: 1, Precio: mustDecimal(t, "1.0"), Categoria: "general",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConstraint))
}

func TestEliminarProducto(t *testing.T) {
	svc := newProductoService(newTestDB(t))
	id := crearProducto(t, svc, "Borrable", "SKU-1", 1, "1.0", "general")

	res, err := svc.Eliminar(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Cambios)

	p, err := svc.ObtenerPorID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, p)

	res, err = svc.Eliminar(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Cambios)
}

func TestProductos_SinInicializar(t *testing.T) {
	svc := newProductoService(nil)
	ctx := context.Background()

	productos, err := svc.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, productos)

	p, err := svc.ObtenerPorID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = svc.Buscar(ctx, "algo")
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = svc.Crear(ctx, productoReq("Algo", "SKU-1", 1, "1.0", "general"))
	assert.True(t, errors.Is(err, apperror.ErrNotInitialized))

	_, err = svc.Eliminar(ctx, 1)
	assert.True(t, errors.Is(err, apperror.ErrNotInitialized))
}
