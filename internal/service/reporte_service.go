package service

import (
	"context"
	"time"

	"gestionpro/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ReporteService computes dashboard KPIs. Both readers re-derive their value
// from the ventas/productos tables on every call; nothing is cached.
type ReporteService interface {
	// VentasDelDia sums the total of sales committed during the current UTC
	// calendar day, returning zero when none exist.
	VentasDelDia(ctx context.Context) (decimal.Decimal, error)

	// StockCritico counts products with stock at or below umbral.
	StockCritico(ctx context.Context, umbral int) (int64, error)
}

type reporteService struct {
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
	now          func() time.Time
}

func NewReporteService(
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	now func() time.Time,
) ReporteService {
	if now == nil {
		now = time.Now
	}
	return &reporteService{ventaRepo: ventaRepo, productoRepo: productoRepo, now: now}
}

func (s *reporteService) VentasDelDia(ctx context.Context) (decimal.Decimal, error) {
	hoy := s.now().UTC()
	desde := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, time.UTC)
	hasta := desde.Add(24 * time.Hour)

	total, err := s.ventaRepo.SumTotalBetween(ctx, desde, hasta)
	if err != nil {
		log.Warn().Err(err).Msg("error al calcular ventas del día")
		return decimal.Zero, nil
	}
	return total, nil
}

func (s *reporteService) StockCritico(ctx context.Context, umbral int) (int64, error) {
	count, err := s.productoRepo.CountStockCritico(ctx, umbral)
	if err != nil {
		log.Warn().Err(err).Int("umbral", umbral).Msg("error al contar stock crítico")
		return 0, nil
	}
	return count, nil
}
