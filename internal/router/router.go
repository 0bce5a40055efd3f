package router

import (
	"time"

	"github.com/miguelamaral254/api-cognivox-test/internal/config"
	"github.com/miguelamaral254/api-cognivox-test/internal/handler"
	"github.com/miguelamaral254/api-cognivox-test/internal/middleware"
	"github.com/miguelamaral254/api-cognivox-test/internal/repository"
	"github.com/miguelamaral254/api-cognivox-test/internal/service"
	"github.com/miguelamaral254/api-cognivox-test/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	atorRepo := repository.NewAtorRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	atorSvc := service.NewAtorService(atorRepo, usuarioRepo, dispatcher, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	atorH := handler.NewAtorHandler(atorSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes. Every actor endpoint requires a valid token plus the
	// read or write capability resolved against the caller's user group.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	leitura := middleware.RequirePermission(authSvc, service.PermReadAtor)
	escrita := middleware.RequirePermission(authSvc, service.PermWriteAtor)

	ator := r.Group("/v1/ator", jwtMW)
	{
		ator.POST("", escrita, atorH.Criar)
		ator.PUT("/:id", escrita, atorH.Atualizar)
		ator.PUT("/perfil/:id", escrita, atorH.AtualizarPerfil)
		ator.DELETE("/:id", escrita, atorH.Excluir)

		ator.GET("", leitura, atorH.Listar)
		ator.GET("/:id", leitura, atorH.BuscarPorID)
		ator.GET("/count-alunos", leitura, atorH.ContarAlunos)
		ator.GET("/descricao", leitura, atorH.Descricoes)
		ator.GET("/combo-nome", leitura, atorH.ComboNomes)
		ator.GET("/combo", leitura, atorH.ComboTodos)
		ator.GET("/combo-all", leitura, atorH.ComboTodos)
		ator.GET("/alunos-di", leitura, atorH.AlunosDI)
		ator.GET("/psicologos", leitura, atorH.Psicologos)
		ator.GET("/professores", leitura, atorH.Professores)
		ator.GET("/responsaveis", leitura, atorH.Responsaveis)
		ator.GET("/interacionais", leitura, atorH.Interacionais)
		ator.GET("/psicologos-por-cidade", leitura, atorH.PsicologosPorCidade)
		ator.GET("/chat-instituicao/:unidade_id", leitura, atorH.ChatPorInstituicao)
		ator.GET("/unidade/:unidade_id", leitura, atorH.PorUnidade)
		ator.GET("/unidade/:unidade_id/alunos", leitura, atorH.AlunosPorUnidade)
		ator.GET("/email/:email", leitura, atorH.PorEmail)
		ator.GET("/itens-modulo", leitura, atorH.ItensModuloVazio)

		ator.GET("/filtro-caderno-atividades", leitura, atorH.CadernoAtividades)
		ator.GET("/grid-filtro", leitura, atorH.GridFiltro)
		ator.GET("/grid", leitura, atorH.Grid)

		ator.GET("/:id/nome", leitura, atorH.Nome)
		ator.GET("/:id/nome-rs", leitura, atorH.Nome)
		ator.GET("/:id/ano-sessao", leitura, atorH.AnoSessao)
		ator.GET("/:id/tipo", leitura, atorH.Tipo)
		ator.GET("/:id/foto", leitura, atorH.Foto)
		ator.GET("/:id/email-raw", leitura, atorH.EmailBruto)
		ator.GET("/:id/nome-imagem", leitura, atorH.NomeEImagem)
		ator.GET("/:id/autorizado", leitura, atorH.Autorizado)
		ator.GET("/:id/dados-mensageria", leitura, atorH.DadosMensageria)
		ator.GET("/:id/dados-completos", leitura, atorH.DadosCompletos)
		ator.GET("/:id/dados-pesquisa", leitura, atorH.DadosPesquisa)
		ator.GET("/:id/dados-pesquisa-app", leitura, atorH.DadosPesquisaApp)
		ator.GET("/:id/aluno-por-responsavel", leitura, atorH.AlunoPorResponsavel)
		ator.GET("/:id/itens-modulo-usuario", leitura, atorH.ItensModuloUsuario)
		ator.GET("/:id/set-itens-modulo", leitura, atorH.ItensModuloUsuario)
	}

	// Swagger UI, disabled in production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
