package repository

import (
	"context"

	"gestionpro/internal/apperror"
	"gestionpro/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error

	// FindByCredentials matches username and plaintext password exactly as the
	// legacy store does. Hashing is a known, deliberately preserved gap.
	FindByCredentials(ctx context.Context, username, password string) (*model.Usuario, error)

	List(ctx context.Context) ([]model.Usuario, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	if r.db == nil {
		return apperror.ErrNotInitialized
	}
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByCredentials(ctx context.Context, username, password string) (*model.Usuario, error) {
	if r.db == nil {
		return nil, apperror.ErrNotInitialized
	}
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Select("id", "username", "role").
		Where("username = ? AND password = ?", username, password).
		Take(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	if r.db == nil {
		return []model.Usuario{}, nil
	}
	var users []model.Usuario
	// password is always excluded from listings
	err := r.db.WithContext(ctx).Select("id", "username", "role").Find(&users).Error
	return users, err
}
