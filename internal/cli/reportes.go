package cli

import (
	"github.com/spf13/cobra"
)

// NewReportesCommand groups the KPI readers.
func NewReportesCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reportes",
		Short: "Indicadores del dashboard",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ventas-dia",
		Short: "Total vendido en el día (UTC)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			total, err := app.Reportes.VentasDelDia(cmd.Context())
			if err != nil {
				return out.Failure(err.Error())
			}
			return out.Success(map[string]interface{}{"total": total})
		},
	})

	var umbral int
	stockCritico := &cobra.Command{
		Use:   "stock-critico",
		Short: "Cantidad de productos con stock en nivel crítico",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			if !cmd.Flags().Changed("umbral") {
				umbral = app.Cfg.StockCriticoUmbral
			}
			count, err := app.Reportes.StockCritico(cmd.Context(), umbral)
			if err != nil {
				return out.Failure(err.Error())
			}
			return out.Success(map[string]interface{}{"count": count, "umbral": umbral})
		},
	}
	stockCritico.Flags().IntVar(&umbral, "umbral", 10, "umbral de stock crítico")
	cmd.AddCommand(stockCritico)

	return cmd
}
