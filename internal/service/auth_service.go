package service

import (
	"context"
	"errors"

	"gestionpro/internal/apperror"
	"gestionpro/internal/dto"
	"gestionpro/internal/model"
	"gestionpro/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RolPorDefecto is assigned to users created without an explicit role.
const RolPorDefecto = "manager"

type AuthService interface {
	// Login returns (nil, nil) for invalid credentials or an uninitialized
	// store; the caller renders the failure message.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.UsuarioResponse, error)

	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
}

type authService struct {
	repo     repository.UsuarioRepository
	validate *validator.Validate
}

func NewAuthService(repo repository.UsuarioRepository) AuthService {
	return &authService{repo: repo, validate: validator.New()}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.UsuarioResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, apperror.ErrNotInitialized) {
			log.Warn().Err(err).Str("username", req.Username).Msg("error al verificar usuario")
		}
		return nil, nil
	}
	return usuarioToResponse(user), nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("error al obtener usuarios")
		return []dto.UsuarioResponse{}, nil
	}
	resp := make([]dto.UsuarioResponse, 0, len(users))
	for i := range users {
		resp = append(resp, *usuarioToResponse(&users[i]))
	}
	return resp, nil
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	rol := req.Rol
	if rol == "" {
		rol = RolPorDefecto
	}
	user := &model.Usuario{
		Username: req.Username,
		Password: req.Password,
		Rol:      rol,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConstraint("El nombre de usuario ya existe.", err)
		}
		if errors.Is(err, apperror.ErrNotInitialized) {
			return nil, err
		}
		return nil, apperror.NewStorage(err)
	}
	return usuarioToResponse(user), nil
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{ID: u.ID, Username: u.Username, Rol: u.Rol}
}
