package repository

import (
	"context"
	"time"

	"gestionpro/internal/apperror"
	"gestionpro/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaRepository interface {
	// CreateTx inserts the sale inside the caller's transaction.
	CreateTx(tx *gorm.DB, v *model.Venta) error

	List(ctx context.Context) ([]model.Venta, error)

	// SumTotalBetween sums the total of sales with desde <= fecha < hasta,
	// returning zero when none exist.
	SumTotalBetween(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)

	// DB exposes the DB for transaction creation in the service layer.
	// Nil when the store never initialized.
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	if r.db == nil {
		return []model.Venta{}, nil
	}
	var ventas []model.Venta
	err := r.db.WithContext(ctx).Order("fecha DESC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) SumTotalBetween(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	if r.db == nil {
		return decimal.Zero, nil
	}
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("SUM(total)").
		Where("fecha >= ? AND fecha < ?", desde, hasta).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, apperror.NewStorage(err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
