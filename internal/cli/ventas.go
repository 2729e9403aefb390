package cli

import (
	"fmt"
	"strconv"
	"strings"

	"gestionpro/internal/dto"

	"github.com/spf13/cobra"
)

// parseItem decodes a "productId:cantidad" flag value.
func parseItem(raw string) (dto.ItemVentaRequest, error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return dto.ItemVentaRequest{}, fmt.Errorf("item %q: esperado formato id:cantidad", raw)
	}
	id, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return dto.ItemVentaRequest{}, fmt.Errorf("item %q: id inválido", raw)
	}
	cantidad, err := strconv.Atoi(parts[1])
	if err != nil {
		return dto.ItemVentaRequest{}, fmt.Errorf("item %q: cantidad inválida", raw)
	}
	return dto.ItemVentaRequest{ProductoID: uint(id), Cantidad: cantidad}, nil
}

// NewVentasCommand groups sale subcommands.
func NewVentasCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ventas",
		Short: "Registro y consulta de ventas",
	}

	var rawItems []string
	registrar := &cobra.Command{
		Use:   "registrar",
		Short: "Procesar una venta (atómica: descuenta stock y registra la venta)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			req := dto.RegistrarVentaRequest{}
			for _, raw := range rawItems {
				item, err := parseItem(raw)
				if err != nil {
					return out.Failure(err.Error())
				}
				req.Items = append(req.Items, item)
			}
			venta, err := app.Ventas.RegistrarVenta(cmd.Context(), req)
			if err != nil {
				return out.Failure(err.Error())
			}
			return out.Success(venta)
		},
	}
	registrar.Flags().StringArrayVar(&rawItems, "item", nil,
		"línea de venta como id:cantidad (repetible)")
	cmd.AddCommand(registrar)

	cmd.AddCommand(&cobra.Command{
		Use:   "listar",
		Short: "Listar las ventas registradas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			ventas, err := app.Ventas.Listar(cmd.Context())
			if err != nil {
				return out.Failure(err.Error())
			}
			return out.Success(ventas)
		},
	})

	return cmd
}
