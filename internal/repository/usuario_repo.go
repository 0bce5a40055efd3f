package repository

import (
	"context"

	"github.com/miguelamaral254/api-cognivox-test/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, tx *gorm.DB, u *model.Usuario) error
	CreateSegUsuario(ctx context.Context, tx *gorm.DB, su *model.SegUsuario) error
	Save(ctx context.Context, tx *gorm.DB, u *model.Usuario) error
	SaveSegUsuario(ctx context.Context, tx *gorm.DB, su *model.SegUsuario) error
	FindByUsername(ctx context.Context, username string) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindSegUsuarioByCodOrdenacao(ctx context.Context, codOrdenacao int) (*model.SegUsuario, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, tx *gorm.DB, u *model.Usuario) error {
	return tx.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) CreateSegUsuario(ctx context.Context, tx *gorm.DB, su *model.SegUsuario) error {
	return tx.WithContext(ctx).Create(su).Error
}

func (r *usuarioRepo) Save(ctx context.Context, tx *gorm.DB, u *model.Usuario) error {
	return tx.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) SaveSegUsuario(ctx context.Context, tx *gorm.DB, su *model.SegUsuario) error {
	return tx.WithContext(ctx).Save(su).Error
}

func (r *usuarioRepo) FindByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("usuario = ?", username).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) FindSegUsuarioByCodOrdenacao(ctx context.Context, codOrdenacao int) (*model.SegUsuario, error) {
	var su model.SegUsuario
	err := r.db.WithContext(ctx).Where("cod_ordenacao = ?", codOrdenacao).First(&su).Error
	return &su, err
}
