package repository

import (
	"context"

	"gestionpro/internal/apperror"
	"gestionpro/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
//
// Every method tolerates a nil store: reads return neutral results and writes
// return apperror.ErrNotInitialized, so a failed bootstrap degrades instead of
// crashing the caller.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uint) (*model.Producto, error)
	List(ctx context.Context) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)

	// Search returns at most one product matching the query by exact codigo,
	// case-insensitive substring on nombre, or case-insensitive exact
	// categoria. When several rows qualify under different criteria the row
	// returned is storage-order dependent; callers must not rely on which.
	Search(ctx context.Context, query string) (*model.Producto, error)

	// CountStockCritico counts products with stock at or below umbral.
	CountStockCritico(ctx context.Context, umbral int) (int64, error)

	// Used inside transactions — callers must pass the tx instance
	FindByIDTx(tx *gorm.DB, id uint) (*model.Producto, error)
	UpdateStockTx(tx *gorm.DB, id uint, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	// Nil when the store never initialized.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	if r.db == nil {
		return apperror.ErrNotInitialized
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uint) (*model.Producto, error) {
	if r.db == nil {
		return nil, apperror.ErrNotInitialized
	}
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	if r.db == nil {
		return []model.Producto{}, nil
	}
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("id DESC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) (int64, error) {
	if r.db == nil {
		return 0, apperror.ErrNotInitialized
	}
	res := r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"nombre":    p.Nombre,
			"codigo":    p.Codigo,
			"stock":     p.Stock,
			"precio":    p.Precio,
			"categoria": p.Categoria,
		})
	return res.RowsAffected, res.Error
}

func (r *productoRepo) Delete(ctx context.Context, id uint) (int64, error) {
	if r.db == nil {
		return 0, apperror.ErrNotInitialized
	}
	res := r.db.WithContext(ctx).Delete(&model.Producto{}, id)
	return res.RowsAffected, res.Error
}

func (r *productoRepo) Search(ctx context.Context, query string) (*model.Producto, error) {
	if r.db == nil {
		return nil, apperror.ErrNotInitialized
	}
	var p model.Producto
	// Single combined lookup, first row in storage order wins.
	err := r.db.WithContext(ctx).
		Where("codigo = ? OR LOWER(nombre) LIKE LOWER(?) OR LOWER(categoria) = LOWER(?)",
			query, "%"+query+"%", query).
		Limit(1).
		Take(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) CountStockCritico(ctx context.Context, umbral int) (int64, error) {
	if r.db == nil {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("stock <= ?", umbral).
		Count(&count).Error
	return count, err
}

func (r *productoRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Producto, error) {
	var p model.Producto
	err := tx.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) UpdateStockTx(tx *gorm.DB, id uint, delta int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
