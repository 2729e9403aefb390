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

const msgCodigoDuplicado = "El código (SKU) del producto ya existe."

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)

	// ObtenerPorID returns (nil, nil) when no product has that id.
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error)

	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.CambiosResponse, error)
	Eliminar(ctx context.Context, id uint) (*dto.CambiosResponse, error)

	// Buscar returns (nil, nil) when nothing matches the query.
	Buscar(ctx context.Context, query string) (*dto.ProductoResponse, error)
}

type productoService struct {
	repo     repository.ProductoRepository
	validate *validator.Validate
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo, validate: validator.New()}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if req.Precio.IsNegative() {
		return nil, errors.New("El precio no puede ser negativo.")
	}

	p := &model.Producto{
		Nombre:    req.Nombre,
		Codigo:    req.Codigo,
		Stock:     req.Stock,
		Precio:    req.Precio,
		Categoria: req.Categoria,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConstraint(msgCodigoDuplicado, err)
		}
		if errors.Is(err, apperror.ErrNotInitialized) {
			return nil, err
		}
		return nil, apperror.NewStorage(err)
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx)
	if err != nil {
		// Reads degrade to empty results to keep the caller resilient.
		log.Warn().Err(err).Msg("error al obtener productos")
		return []dto.ProductoResponse{}, nil
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, *productoToResponse(&productos[i]))
	}
	return resp, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, apperror.ErrNotInitialized) {
			log.Warn().Err(err).Uint("id", id).Msg("error al obtener producto por id")
		}
		return nil, nil
	}
	return productoToResponse(p), nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.CambiosResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if req.Precio.IsNegative() {
		return nil, errors.New("El precio no puede ser negativo.")
	}

	p := &model.Producto{
		ID:        id,
		Nombre:    req.Nombre,
		Codigo:    req.Codigo,
		Stock:     req.Stock,
		Precio:    req.Precio,
		Categoria: req.Categoria,
	}
	cambios, err := s.repo.Update(ctx, p)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConstraint(msgCodigoDuplicado, err)
		}
		if errors.Is(err, apperror.ErrNotInitialized) {
			return nil, err
		}
		return nil, apperror.NewStorage(err)
	}
	return &dto.CambiosResponse{Cambios: cambios}, nil
}

func (s *productoService) Eliminar(ctx context.Context, id uint) (*dto.CambiosResponse, error) {
	cambios, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotInitialized) {
			return nil, err
		}
		return nil, apperror.NewStorage(err)
	}
	return &dto.CambiosResponse{Cambios: cambios}, nil
}

func (s *productoService) Buscar(ctx context.Context, query string) (*dto.ProductoResponse, error) {
	p, err := s.repo.Search(ctx, query)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, apperror.ErrNotInitialized) {
			log.Warn().Err(err).Str("query", query).Msg("error en búsqueda de producto")
		}
		return nil, nil
	}
	return productoToResponse(p), nil
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Codigo:    p.Codigo,
		Stock:     p.Stock,
		Precio:    p.Precio,
		Categoria: p.Categoria,
	}
}
