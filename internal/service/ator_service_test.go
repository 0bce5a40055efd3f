package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/miguelamaral254/api-cognivox-test/internal/apierror"
	"github.com/miguelamaral254/api-cognivox-test/internal/config"
	"github.com/miguelamaral254/api-cognivox-test/internal/dto"
	"github.com/miguelamaral254/api-cognivox-test/internal/infra"
	"github.com/miguelamaral254/api-cognivox-test/internal/model"
	"github.com/miguelamaral254/api-cognivox-test/internal/repository"
	"github.com/miguelamaral254/api-cognivox-test/internal/worker"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAtorServiceTest(t *testing.T) (AtorService, *gorm.DB) {
	t.Helper()
	// A named shared-cache DSN keeps every pool connection on the same
	// in-memory database; a plain ":memory:" gives each connection its own.
	// read_uncommitted keeps reads on other pool connections from blocking
	// on (and lets them observe) the open write transaction.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=read_uncommitted(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	atores := repository.NewAtorRepository(db)
	usuarios := repository.NewUsuarioRepository(db)
	// Unreachable Redis: enqueue failures are logged, never surfaced.
	dispatcher := worker.NewDispatcher(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	cfg := &config.Config{Domain: "http://localhost:8000"}

	return NewAtorService(atores, usuarios, dispatcher, cfg), db
}

func reqCriar(email, login string) dto.CriarAtorRequest {
	return dto.CriarAtorRequest{
		Nome:           "Aluno Teste",
		DataNascimento: "2012-03-10",
		Email:          email,
		UnidadeID:      1,
		ProfissaoID:    model.ProfissaoAluno,
		Status:         model.StatusInativo, // skips the credentials email
		Usuario:        login,
		Senha:          "segredo123",
		GrupoUsuario:   13,
	}
}

func TestCriarAtorCriaContas(t *testing.T) {
	svc, db := newAtorServiceTest(t)
	ctx := context.Background()

	ator, err := svc.Criar(ctx, reqCriar("aluno@escola.com", "aluno.teste"))
	require.NoError(t, err)
	assert.NotZero(t, ator.ID)

	var nAtores, nUsuarios, nSeg int64
	db.Model(&model.Ator{}).Count(&nAtores)
	db.Model(&model.Usuario{}).Count(&nUsuarios)
	db.Model(&model.SegUsuario{}).Count(&nSeg)
	assert.EqualValues(t, 1, nAtores)
	assert.EqualValues(t, 1, nUsuarios)
	assert.EqualValues(t, 1, nSeg)

	var user model.Usuario
	require.NoError(t, db.Where("email = ?", "aluno@escola.com").First(&user).Error)
	assert.Equal(t, "aluno.teste", user.Usuario)
	assert.NotEqual(t, "segredo123", user.Senha)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte("segredo123")))

	var seg model.SegUsuario
	require.NoError(t, db.Where("cod_ordenacao = ?", user.Codigo).First(&seg).Error)
	require.NotNil(t, seg.Usuario)
	assert.Equal(t, "aluno.teste", *seg.Usuario)
}

func TestCriarAtorComResponsavel(t *testing.T) {
	svc, db := newAtorServiceTest(t)
	ctx := context.Background()

	req := reqCriar("aluno2@escola.com", "aluno2")
	req.TipoVinculo = 2
	nome := "Mãe do Aluno"
	email := "mae@familia.com"
	telefone := "81977770000"
	login := "mae.aluno"
	senha := "outrasenha"
	req.NomeResponsavel = &nome
	req.EmailResponsavel = &email
	req.TelefoneCelResponsavel = &telefone
	req.LoginResponsavel = &login
	req.SenhaResponsavel = &senha

	ator, err := svc.Criar(ctx, req)
	require.NoError(t, err)

	var nAtores, nUsuarios, nSeg, nVinculos int64
	db.Model(&model.Ator{}).Count(&nAtores)
	db.Model(&model.Usuario{}).Count(&nUsuarios)
	db.Model(&model.SegUsuario{}).Count(&nSeg)
	db.Model(&model.AtorVinculo{}).Count(&nVinculos)
	assert.EqualValues(t, 2, nAtores)
	assert.EqualValues(t, 2, nUsuarios)
	assert.EqualValues(t, 2, nSeg)
	assert.EqualValues(t, 1, nVinculos)

	var responsavel model.Ator
	require.NoError(t, db.Where("email = ?", email).First(&responsavel).Error)
	require.NotNil(t, responsavel.ProfissaoID)
	assert.Equal(t, model.ProfissaoResponsavel, *responsavel.ProfissaoID)
	require.NotNil(t, responsavel.AnoSessao)
	assert.Equal(t, "1", *responsavel.AnoSessao)

	var vinculo model.AtorVinculo
	require.NoError(t, db.First(&vinculo).Error)
	assert.Equal(t, responsavel.ID, *vinculo.AtorID)
	assert.Equal(t, ator.ID, *vinculo.AtorDiID)
	assert.Equal(t, 2, *vinculo.TipoVinculoID)
}

func TestCriarAtorVinculoIncompleto(t *testing.T) {
	svc, db := newAtorServiceTest(t)
	ctx := context.Background()

	req := reqCriar("aluno3@escola.com", "aluno3")
	req.TipoVinculo = 1 // responsavel block missing

	_, err := svc.Criar(ctx, req)
	require.Error(t, err)
	assert.Equal(t, 400, apierror.Status(err))

	// everything but the guardian phone
	nome := "Pai do Aluno"
	email := "pai@familia.com"
	login := "pai.aluno"
	senha := "senha-pai"
	req.NomeResponsavel = &nome
	req.EmailResponsavel = &email
	req.LoginResponsavel = &login
	req.SenhaResponsavel = &senha

	_, err = svc.Criar(ctx, req)
	require.Error(t, err)
	assert.Equal(t, 400, apierror.Status(err))
	assert.Contains(t, err.Error(), "telefone")

	var nAtores int64
	db.Model(&model.Ator{}).Count(&nAtores)
	assert.EqualValues(t, 0, nAtores)
}

func TestCriarAtorConflitos(t *testing.T) {
	svc, _ := newAtorServiceTest(t)
	ctx := context.Background()

	primeiro := reqCriar("unico@escola.com", "login.unico")
	cpf := "123.456.789-00"
	primeiro.CPF = &cpf
	_, err := svc.Criar(ctx, primeiro)
	require.NoError(t, err)

	// same email
	_, err = svc.Criar(ctx, reqCriar("unico@escola.com", "outro.login"))
	require.Error(t, err)
	assert.Equal(t, 409, apierror.Status(err))
	assert.Contains(t, err.Error(), "email")

	// same login
	_, err = svc.Criar(ctx, reqCriar("outro@escola.com", "login.unico"))
	require.Error(t, err)
	assert.Equal(t, 409, apierror.Status(err))
	assert.Contains(t, err.Error(), "usuário")

	// same CPF
	terceiro := reqCriar("terceiro@escola.com", "terceiro")
	terceiro.CPF = &cpf
	_, err = svc.Criar(ctx, terceiro)
	require.Error(t, err)
	assert.Equal(t, 409, apierror.Status(err))
	assert.Contains(t, err.Error(), "CPF")
}

func TestCriarAtorDataInicioPadrao(t *testing.T) {
	svc, _ := newAtorServiceTest(t)

	ator, err := svc.Criar(context.Background(), reqCriar("semdata@escola.com", "semdata"))
	require.NoError(t, err)
	require.NotNil(t, ator.DataInicioIntervencao)
	assert.Equal(t, time.Now().Format("2006-01-02"), ator.DataInicioIntervencao.Format("2006-01-02"))
}

func TestAtualizarPropagaContas(t *testing.T) {
	svc, db := newAtorServiceTest(t)
	ctx := context.Background()

	ator, err := svc.Criar(ctx, reqCriar("antigo@escola.com", "antigo"))
	require.NoError(t, err)

	plano := &model.PlanoTrabalho{AtorDiID: &ator.ID}
	require.NoError(t, db.Create(plano).Error)

	upd := dto.AtualizarAtorRequest{
		Nome:                  "Nome Novo",
		DataNascimento:        "2012-03-10",
		DataInicioIntervencao: "2025-02-01",
		Email:                 "novo@escola.com",
		UnidadeID:             2,
		ProfissaoID:           model.ProfissaoAluno,
		Status:                model.StatusAtivo,
		Usuario:               "novo.login",
		Senha:                 "novasenha",
	}
	atualizado, err := svc.Atualizar(ctx, ator.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "novo@escola.com", atualizado.Email)

	var user model.Usuario
	require.NoError(t, db.Where("email = ?", "novo@escola.com").First(&user).Error)
	assert.Equal(t, "novo.login", user.Usuario)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte("novasenha")))
	require.NotNil(t, user.CodStatus)
	assert.Equal(t, model.StatusAtivo, *user.CodStatus)

	var seg model.SegUsuario
	require.NoError(t, db.Where("cod_ordenacao = ?", user.Codigo).First(&seg).Error)
	require.NotNil(t, seg.Usuario)
	assert.Equal(t, "novo.login", *seg.Usuario)

	var planoAtual model.PlanoTrabalho
	require.NoError(t, db.First(&planoAtual, plano.ID).Error)
	require.NotNil(t, planoAtual.DataInicialInteracao)
	assert.Equal(t, "2025-02-01", planoAtual.DataInicialInteracao.Format("2006-01-02"))
}

func TestAtualizarEmailDuplicado(t *testing.T) {
	svc, _ := newAtorServiceTest(t)
	ctx := context.Background()

	_, err := svc.Criar(ctx, reqCriar("primeiro@escola.com", "primeiro"))
	require.NoError(t, err)
	segundo, err := svc.Criar(ctx, reqCriar("segundo@escola.com", "segundo"))
	require.NoError(t, err)

	// constraint violation at commit time is classified as a conflict
	_, err = svc.Atualizar(ctx, segundo.ID, dto.AtualizarAtorRequest{
		Nome: "Segundo", Email: "primeiro@escola.com",
		UnidadeID: 1, ProfissaoID: 1, Status: 1,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apierror.Status(err))
}

func TestAtualizarAtorInexistente(t *testing.T) {
	svc, _ := newAtorServiceTest(t)

	_, err := svc.Atualizar(context.Background(), 9999, dto.AtualizarAtorRequest{
		Nome: "X", Email: "x@x.com", UnidadeID: 1, ProfissaoID: 1, Status: 1,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apierror.Status(err))
}

func TestAtualizarPerfilParcial(t *testing.T) {
	svc, _ := newAtorServiceTest(t)
	ctx := context.Background()

	ator, err := svc.Criar(ctx, reqCriar("perfil@escola.com", "perfil"))
	require.NoError(t, err)

	nome := "Só o Nome Muda"
	atualizado, err := svc.AtualizarPerfil(ctx, ator.ID, dto.PerfilAtorRequest{Nome: &nome})
	require.NoError(t, err)

	assert.Equal(t, nome, atualizado.Nome)
	assert.Equal(t, "perfil@escola.com", atualizado.Email)
	require.NotNil(t, atualizado.DataNascimento)
	assert.Equal(t, "2012-03-10", atualizado.DataNascimento.Format("2006-01-02"))
}

func TestExcluirSoftDelete(t *testing.T) {
	svc, db := newAtorServiceTest(t)
	ctx := context.Background()

	req := reqCriar("apagar@escola.com", "apagar")
	req.Status = model.StatusAtivo
	ator, err := svc.Criar(ctx, req)
	require.NoError(t, err)

	require.NoError(t, svc.Excluir(ctx, ator.ID))

	var guardado model.Ator
	require.NoError(t, db.First(&guardado, ator.ID).Error)
	assert.Equal(t, model.StatusInativo, guardado.Status)

	combo, err := svc.ComboTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, combo)

	assert.Equal(t, 404, apierror.Status(svc.Excluir(ctx, 9999)))
}

func TestIdade(t *testing.T) {
	nasc := time.Date(2010, 6, 1, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		ref      time.Time
		esperado int
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 13},
		{time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), 13},
		{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 14},
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 14},
	}
	for _, c := range casos {
		got := idade(&nasc, c.ref)
		require.NotNil(t, got)
		assert.Equal(t, c.esperado, *got, "ref %s", c.ref)
	}

	assert.Nil(t, idade(nil, time.Now()))
}

func TestMontaFiltroGrid(t *testing.T) {
	// no filters at all: grid pinned to unit zero
	gf := montaFiltroGrid(dto.AtorFilter{})
	assert.True(t, gf.SemFiltro)
	assert.Nil(t, gf.UnidadeID)

	// "0" disables the column filter but counts as a supplied value
	gf = montaFiltroGrid(dto.AtorFilter{UnidadeID: "0"})
	assert.False(t, gf.SemFiltro)
	assert.Nil(t, gf.UnidadeID)

	gf = montaFiltroGrid(dto.AtorFilter{UnidadeID: "3", Cidade: "Recife"})
	assert.False(t, gf.SemFiltro)
	require.NotNil(t, gf.UnidadeID)
	assert.Equal(t, 3, *gf.UnidadeID)
	require.NotNil(t, gf.Cidade)
	assert.Equal(t, "Recife", *gf.Cidade)
}

func TestRemoveAcentos(t *testing.T) {
	assert.Equal(t, "Joao da Conceicao", removeAcentos("João da Conceição"))
	assert.Equal(t, "sem-acentos", removeAcentos("sem-acentos"))
}
