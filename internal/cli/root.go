// Package cli is the boundary adapter: it exposes every core operation as a
// subcommand and relays structured results to the caller, mirroring the
// request/response envelopes of the desktop front end it replaces.
package cli

import (
	"fmt"

	"gestionpro/internal/config"
	"gestionpro/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// App bundles the core services the commands invoke. Built once in main, after
// the store opens (or fails to — commands then report not-initialized results).
type App struct {
	Cfg       *config.Config
	Auth      service.AuthService
	Productos service.ProductoService
	Ventas    service.VentaService
	Reportes  service.ReporteService
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"json", "text"}

// NewRootCommand creates the root command for the gestionpro CLI.
func NewRootCommand(app *App) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "gestionpro",
		Short:         "GestiónPro — punto de venta e inventario",
		Long:          "Point-of-sale and inventory manager backed by an embedded SQLite store.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			// One operation id per invocation, for log correlation.
			log.Logger = log.With().Str("op_id", uuid.NewString()).Logger()
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "json", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewLoginCommand(app, opts))
	cmd.AddCommand(NewUsuariosCommand(app, opts))
	cmd.AddCommand(NewProductosCommand(app, opts))
	cmd.AddCommand(NewVentasCommand(app, opts))
	cmd.AddCommand(NewReportesCommand(app, opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
