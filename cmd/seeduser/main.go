package main

import (
	"flag"
	"os"

	"github.com/miguelamaral254/api-cognivox-test/internal/config"
	"github.com/miguelamaral254/api-cognivox-test/internal/infra"
	"github.com/miguelamaral254/api-cognivox-test/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Seeds an administrator account (group 1) so a fresh database can log in
// and manage actors.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	usuario := flag.String("usuario", "admin", "login do administrador")
	senha := flag.String("senha", "", "senha do administrador (obrigatória)")
	email := flag.String("email", "admin@cognivox.net", "email do administrador")
	flag.Parse()

	if *senha == "" {
		log.Fatal().Msg("informe -senha")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*senha), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	um := 1
	zero := 0
	grupoAdmin := 1
	nome := "Administrador"
	user := &model.Usuario{
		Usuario:         *usuario,
		Senha:           string(hash),
		Nome:            &nome,
		Email:           *email,
		CodStatus:       &um,
		CodGrupoUsuario: &grupoAdmin,
		CodNivel:        &um,
		PrimeiroAcesso:  &um,
		ErrosLogin:      &zero,
	}
	if err := db.Create(user).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}

	seg := &model.SegUsuario{
		Usuario:      usuario,
		Senha:        ptrString(string(hash)),
		CodStatus:    &um,
		CodOrdenacao: &user.Codigo,
	}
	if err := db.Create(seg).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create security user")
	}

	log.Info().Str("usuario", *usuario).Int("codigo", user.Codigo).Msg("admin user created")
}

func ptrString(v string) *string { return &v }
