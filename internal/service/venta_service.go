package service

import (
	"context"
	"errors"
	"time"

	"gestionpro/internal/apperror"
	"gestionpro/internal/dto"
	"gestionpro/internal/model"
	"gestionpro/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	Listar(ctx context.Context) ([]dto.VentaResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	validate     *validator.Validate
	now          func() time.Time
}

// NewVentaService wires the sale transaction engine. now is the timestamp
// source for sale commit times; pass time.Now in production.
func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	now func() time.Time,
) VentaService {
	if now == nil {
		now = time.Now
	}
	return &ventaService{
		repo:         repo,
		productoRepo: productoRepo,
		validate:     validator.New(),
		now:          now,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// All-or-nothing sale processing:
//  1. BEGIN TX
//  2. Per line, in input order: fetch product, check stock, decrement stock,
//     accumulate total and append the denormalized snapshot.
//  3. Insert one venta row with the commit timestamp, total and snapshot list.
//  4. COMMIT; any failure rolls back every stock decrement and the insert.
//
// Validation and mutation are interleaved per line on purpose: two lines may
// reference the same product, and the second must see the first's decrement.

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if s.repo.DB() == nil {
		return nil, apperror.ErrNotInitialized
	}

	var venta model.Venta
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make(model.VentaItems, 0, len(req.Items))

		for _, item := range req.Items {
			p, err := s.productoRepo.FindByIDTx(tx, item.ProductoID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &apperror.ProductoNotFound{ProductoID: item.ProductoID}
				}
				return apperror.NewStorage(err)
			}
			if item.Cantidad > p.Stock {
				return &apperror.StockInsuficiente{
					ProductoID: p.ID,
					Nombre:     p.Nombre,
					Solicitado: item.Cantidad,
					Disponible: p.Stock,
				}
			}
			if err := s.productoRepo.UpdateStockTx(tx, p.ID, -item.Cantidad); err != nil {
				return apperror.NewStorage(err)
			}

			total = total.Add(p.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad))))
			items = append(items, model.VentaItem{
				ProductoID:     p.ID,
				Nombre:         p.Nombre,
				Cantidad:       item.Cantidad,
				PrecioUnitario: p.Precio,
			})
		}

		venta = model.Venta{
			Fecha: s.now().UTC(),
			Total: total,
			Items: items,
		}
		if err := s.repo.CreateTx(tx, &venta); err != nil {
			return apperror.NewStorage(err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return ventaToResponse(&venta), nil
}

// Listar returns all recorded sales, newest first.
func (s *ventaService) Listar(ctx context.Context) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewStorage(err)
	}
	resp := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		resp = append(resp, *ventaToResponse(&ventas[i]))
	}
	return resp, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, dto.ItemVentaResponse{
			ProductoID:     item.ProductoID,
			Nombre:         item.Nombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal(),
		})
	}
	return &dto.VentaResponse{
		ID:    v.ID,
		Fecha: v.Fecha.Format(time.RFC3339),
		Total: v.Total,
		Items: items,
	}
}
