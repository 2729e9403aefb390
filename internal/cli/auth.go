package cli

import (
	"gestionpro/internal/dto"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewLoginCommand verifies credentials and prints the matched user.
func NewLoginCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Verificar credenciales de usuario",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			user, err := app.Auth.Login(cmd.Context(), dto.LoginRequest{
				Username: args[0],
				Password: args[1],
			})
			if err != nil {
				return out.Failure(err.Error())
			}
			if user == nil {
				return out.Failure("Credenciales inválidas.")
			}
			log.Info().Str("username", user.Username).Msg("usuario autenticado")
			return out.Success(user)
		},
	}
}

// NewUsuariosCommand groups user management subcommands.
func NewUsuariosCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usuarios",
		Short: "Gestión de usuarios",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "listar",
		Short: "Listar todos los usuarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			users, err := app.Auth.ListarUsuarios(cmd.Context())
			if err != nil {
				return out.Failure(err.Error())
			}
			return out.Success(users)
		},
	})

	var rol string
	crear := &cobra.Command{
		Use:   "crear <username> <password>",
		Short: "Crear un usuario",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(opts, cmd.OutOrStdout())
			user, err := app.Auth.CrearUsuario(cmd.Context(), dto.CrearUsuarioRequest{
				Username: args[0],
				Password: args[1],
				Rol:      rol,
			})
			if err != nil {
				return out.Failure(err.Error())
			}
			return out.Success(user)
		},
	}
	crear.Flags().StringVar(&rol, "rol", "", "rol del usuario (por defecto: manager)")
	cmd.AddCommand(crear)

	return cmd
}
