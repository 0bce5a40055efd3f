package service

import (
	"context"
	"errors"
	"time"

	"github.com/miguelamaral254/api-cognivox-test/internal/apierror"
	"github.com/miguelamaral254/api-cognivox-test/internal/config"
	"github.com/miguelamaral254/api-cognivox-test/internal/dto"
	"github.com/miguelamaral254/api-cognivox-test/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Authorize resolves the caller by the token subject (email) and checks
	// whether their user group holds the capability. Absence of the user is
	// a plain deny, not an error.
	Authorize(ctx context.Context, email, permissao string) bool
}

type authService struct {
	usuarios repository.UsuarioRepository
	cfg      *config.Config
}

func NewAuthService(usuarios repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{usuarios: usuarios, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.usuarios.FindByUsername(ctx, req.Usuario)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Unauthorized("Usuário ou senha inválidos")
		}
		return nil, apierror.Internal("Erro ao consultar o banco de dados")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(req.Senha)); err != nil {
		return nil, apierror.Unauthorized("Usuário ou senha inválidos")
	}

	claims := jwt.MapClaims{
		"sub":     user.Email,
		"usuario": user.Usuario,
		"exp":     time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	if user.CodGrupoUsuario != nil {
		claims["grupo"] = *user.CodGrupoUsuario
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, apierror.Internal("Erro ao gerar token de acesso")
	}

	return &dto.LoginResponse{AccessToken: signed}, nil
}

func (s *authService) Authorize(ctx context.Context, email, permissao string) bool {
	user, err := s.usuarios.FindByEmail(ctx, email)
	if err != nil || user.CodGrupoUsuario == nil {
		return false
	}
	for _, g := range GruposPermitidos(permissao) {
		if g == *user.CodGrupoUsuario {
			return true
		}
	}
	return false
}
