package infra

import (
	"fmt"

	"github.com/miguelamaral254/api-cognivox-test/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for the legacy schema. TranslateError lets the write workflow
// classify unique and foreign-key violations portably.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// Migrate creates or updates all tables. Also used by the repository tests
// against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Ator{},
		&model.Usuario{},
		&model.SegUsuario{},
		&model.AtorVinculo{},
		&model.PlanoTrabalho{},
		&model.Unidade{},
		&model.Profissao{},
		&model.ModalidadeEnsino{},
		&model.TipoVinculo{},
		&model.Status{},
		&model.ParecerPsicologico{},
		&model.QuadroPsicopedagogico{},
		&model.SessaoObservacao{},
	)
}
