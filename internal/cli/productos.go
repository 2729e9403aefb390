package cli

import (
	"strconv"

	"gestionpro/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// productoFlags holds the writable product fields shared by crear/actualizar.
type productoFlags struct {
	Nombre    string
	Codigo    string
	Stock     int
	Precio    string
	Categoria string
}

func (f *productoFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Nombre, "nombre", "", "nombre del producto")
	cmd.Flags().StringVar(&f.Codigo, "codigo", "", "código (SKU) único")
	cmd.Flags().IntVar(&f.Stock, "stock", 0, "stock inicial")
	cmd.Flags().StringVar(&f.Precio, "precio", "0", "precio unitario")
	cmd.Flags().StringVar(&f.Categoria, "categoria", "", "categoría")
}

func (f *productoFlags) precioDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(f.Precio)
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	return uint(id), err
}

// NewProductosCommand groups product CRUD and search subcommands.
func NewProductosCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "productos",
		Short: "Gestión de productos",
	}

	var crearFlags productoFlags
	crear := &cobra.Command{
		Use:   "crear",
		Short: "Crear un producto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			precio, err := crearFlags.precioDecimal()
			if err != nil {
				return out.Failure("Precio inválido: " + crearFlags.Precio)
			}
			p, err := app.Productos.Crear(cmd.Context(), dto.CrearProductoRequest{
				Nombre:    crearFlags.Nombre,
				Codigo:    crearFlags.Codigo,
				Stock:     crearFlags.Stock,
				Precio:    precio,
				Categoria: crearFlags.Categoria,
			})
			if err != nil {
				return out.Failure(err.Error())
			}
			return out.Success(p)
		},
	}
	crearFlags.register(crear)
	cmd.AddCommand(crear)

	cmd.AddCommand(&cobra.Command{
		Use:   "listar",
		Short: "Listar todos los productos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			productos, err := app.Productos.Listar(cmd.Context())
			if err != nil {
				return out.Failure(err.Error())
			}
			return out.Success(productos)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "obtener <id>",
		Short: "Obtener un producto por id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			id, err := parseID(args[0])
			if err != nil {
				return out.Failure("ID inválido: " + args[0])
			}
			p, err := app.Productos.ObtenerPorID(cmd.Context(), id)
			if err != nil {
				return out.Failure(err.Error())
			}
			if p == nil {
				return out.Failure("Producto no encontrado.")
			}
			return out.Success(p)
		},
	})

	var actualizarFlags productoFlags
	actualizar := &cobra.Command{
		Use:   "actualizar <id>",
		Short: "Actualizar un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			id, err := parseID(args[0])
			if err != nil {
				return out.Failure("ID inválido: " + args[0])
			}
			precio, err := actualizarFlags.precioDecimal()
			if err != nil {
				return out.Failure("Precio inválido: " + actualizarFlags.Precio)
			}
			res, err := app.Productos.Actualizar(cmd.Context(), id, dto.ActualizarProductoRequest{
				Nombre:    actualizarFlags.Nombre,
				Codigo:    actualizarFlags.Codigo,
				Stock:     actualizarFlags.Stock,
				Precio:    precio,
				Categoria: actualizarFlags.Categoria,
			})
			if err != nil {
				return out.Failure(err.Error())
			}
			return out.Success(res)
		},
	}
	actualizarFlags.register(actualizar)
	cmd.AddCommand(actualizar)

	cmd.AddCommand(&cobra.Command{
		Use:   "eliminar <id>",
		Short: "Eliminar un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			id, err := parseID(args[0])
			if err != nil {
				return out.Failure("ID inválido: " + args[0])
			}
			res, err := app.Productos.Eliminar(cmd.Context(), id)
			if err != nil {
				return out.Failure(err.Error())
			}
			return out.Success(res)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "buscar <query>",
		Short: "Buscar un producto por código, nombre o categoría",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			p, err := app.Productos.Buscar(cmd.Context(), args[0])
			if err != nil {
				return out.Failure(err.Error())
			}
			if p == nil {
				return out.Failure("Producto no encontrado.")
			}
			return out.Success(p)
		},
	})

	return cmd
}
