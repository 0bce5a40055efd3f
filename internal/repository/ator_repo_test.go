package repository

import (
	"context"
	"testing"
	"time"

	"github.com/miguelamaral254/api-cognivox-test/internal/infra"
	"github.com/miguelamaral254/api-cognivox-test/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func iptr(v int) *int             { return &v }
func sptr(v string) *string       { return &v }
func dptr(v time.Time) *time.Time { return &v }

type atorSeed struct {
	aluno1  model.Ator
	aluno2  model.Ator
	inativo model.Ator
	psico1  model.Ator
	psico2  model.Ator
	prof1   model.Ator
	resp1   model.Ator
	inter1  model.Ator
	chat    model.Ator
	plano   model.PlanoTrabalho
}

// seedAtores builds two units in different cities and one actor per role,
// plus the work plan, bond and sessions hanging off the first student.
func seedAtores(t *testing.T, db *gorm.DB) atorSeed {
	t.Helper()

	require.NoError(t, db.Create(&model.Unidade{
		ID: 1, NomeInstituicao: sptr("Escola Alfa"), Cidade: sptr("Recife"),
		Estado: sptr("PE"), LogoInstituicao: sptr("alfa.png"),
	}).Error)
	require.NoError(t, db.Create(&model.Unidade{
		ID: 2, NomeInstituicao: sptr("Escola Beta"), Cidade: sptr("Olinda"), Estado: sptr("PE"),
	}).Error)

	profissoes := map[int]string{
		model.ProfissaoAluno:        "Aluno DI",
		model.ProfissaoInteracional: "Par Interacional",
		model.ProfissaoPsicologo:    "Psicólogo",
		model.ProfissaoProfessor:    "Professor",
		model.ProfissaoResponsavel:  "Responsável",
		model.ProfissaoChatGlobal:   "Chat",
	}
	for id, desc := range profissoes {
		require.NoError(t, db.Create(&model.Profissao{ID: id, Descricao: sptr(desc)}).Error)
	}
	require.NoError(t, db.Create(&model.ModalidadeEnsino{ID: 1, Descricao: sptr("Fundamental")}).Error)
	require.NoError(t, db.Create(&model.TipoVinculo{ID: 2, Descricao: sptr("Mãe")}).Error)
	require.NoError(t, db.Create(&model.Status{Codigo: 1, Descricao: sptr("Ativo")}).Error)
	require.NoError(t, db.Create(&model.Status{Codigo: 2, Descricao: sptr("Inativo")}).Error)
	require.NoError(t, db.Create(&model.ParecerPsicologico{ID: 1, Descricao: sptr("Em acompanhamento")}).Error)

	nascimento := time.Date(2013, 4, 20, 0, 0, 0, 0, time.UTC)
	s := atorSeed{
		aluno1: model.Ator{
			Nome: "Bruno Aluno", Email: "bruno@escola.com", Status: model.StatusAtivo,
			ProfissaoID: iptr(model.ProfissaoAluno), UnidadeID: iptr(1),
			ModalidadeEnsinoID: iptr(1), AnoSessao: sptr("3"),
			DataNascimento: dptr(nascimento), HexadecimalFoto: sptr("abc123"),
			TelefoneCel: sptr("81999990000"),
		},
		aluno2: model.Ator{
			Nome: "Carla Aluna", Email: "carla@escola.com", Status: model.StatusAtivo,
			ProfissaoID: iptr(model.ProfissaoAluno), UnidadeID: iptr(2),
		},
		inativo: model.Ator{
			Nome: "Antigo Aluno", Email: "antigo@escola.com", Status: model.StatusInativo,
			ProfissaoID: iptr(model.ProfissaoAluno), UnidadeID: iptr(1),
		},
		psico1: model.Ator{
			Nome: "Paula Psicóloga", Email: "paula@clinica.com", Status: model.StatusAtivo,
			ProfissaoID: iptr(model.ProfissaoPsicologo), UnidadeID: iptr(1),
		},
		psico2: model.Ator{
			Nome: "Pedro Psicólogo", Email: "pedro@clinica.com", Status: model.StatusAtivo,
			ProfissaoID: iptr(model.ProfissaoPsicologo), UnidadeID: iptr(2),
		},
		prof1: model.Ator{
			Nome: "Tiago Professor", Email: "tiago@escola.com", Status: model.StatusAtivo,
			ProfissaoID: iptr(model.ProfissaoProfessor), UnidadeID: iptr(1),
		},
		resp1: model.Ator{
			Nome: "Maria Silva", Email: "maria@familia.com", Status: model.StatusAtivo,
			ProfissaoID: iptr(model.ProfissaoResponsavel), UnidadeID: iptr(1),
			TelefoneCel: sptr("81988880000"),
		},
		inter1: model.Ator{
			Nome: "Igor Interacional", Email: "igor@escola.com", Status: model.StatusAtivo,
			ProfissaoID: iptr(model.ProfissaoInteracional), UnidadeID: iptr(1),
		},
		chat: model.Ator{
			Nome: "Suporte Chat", Email: "chat@cognivox.net", Status: model.StatusAtivo,
			ProfissaoID: iptr(model.ProfissaoChatGlobal), UnidadeID: iptr(2),
		},
	}
	for _, a := range []*model.Ator{
		&s.aluno1, &s.aluno2, &s.inativo, &s.psico1, &s.psico2,
		&s.prof1, &s.resp1, &s.inter1, &s.chat,
	} {
		require.NoError(t, db.Create(a).Error)
	}

	s.plano = model.PlanoTrabalho{
		AtorDiID:             &s.aluno1.ID,
		DataInicialInteracao: dptr(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
		AtorInteracionalID:   &s.inter1.ID,
		AtorProfessorID:      &s.prof1.ID,
		AtorPsicologoID:      &s.psico1.ID,
	}
	require.NoError(t, db.Create(&s.plano).Error)

	require.NoError(t, db.Create(&model.AtorVinculo{
		AtorID: &s.resp1.ID, AtorDiID: &s.aluno1.ID, TipoVinculoID: iptr(2),
	}).Error)

	require.NoError(t, db.Create(&model.QuadroPsicopedagogico{
		AtorID: &s.aluno1.ID, ParecerPsicologicoID: iptr(1),
	}).Error)

	sessoes := []model.SessaoObservacao{
		{AtorID: &s.aluno1.ID, Descricao: sptr("Sessão encerrada"), TituloSessao: sptr("S0"), Status: sptr("Encerrado")},
		{AtorID: &s.aluno1.ID, Descricao: sptr("Primeira sessão"), TituloSessao: sptr("S1"), Status: sptr(model.SessaoStatusCriado)},
		{AtorID: &s.aluno1.ID, Descricao: sptr("Segunda sessão"), TituloSessao: sptr("S2"), Status: sptr(model.SessaoStatusCriado)},
	}
	for i := range sessoes {
		require.NoError(t, db.Create(&sessoes[i]).Error)
	}

	return s
}

func nomes(rows []IdNomeRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Nome
	}
	return out
}

func TestCountAlunos(t *testing.T) {
	db := newRepoTestDB(t)
	seedAtores(t, db)
	repo := NewAtorRepository(db)

	n, err := repo.CountAlunos(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n) // inactive student not counted
}

func TestComboAllExcluiInativos(t *testing.T) {
	db := newRepoTestDB(t)
	seedAtores(t, db)
	repo := NewAtorRepository(db)

	rows, err := repo.ComboAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 8)
	assert.NotContains(t, nomes(rows), "Antigo Aluno")
}

func TestAlunosByUnidade(t *testing.T) {
	db := newRepoTestDB(t)
	s := seedAtores(t, db)
	repo := NewAtorRepository(db)

	rows, err := repo.AlunosByUnidade(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, s.aluno1.ID, rows[0].ID)
}

func TestResponsaveis(t *testing.T) {
	db := newRepoTestDB(t)
	seedAtores(t, db)
	repo := NewAtorRepository(db)

	atores, err := repo.Responsaveis(context.Background())
	require.NoError(t, err)
	// everything outside the four core professions, chat profile included
	require.Len(t, atores, 2)
	assert.Equal(t, "Maria Silva", atores[0].Nome)
	assert.Equal(t, "Suporte Chat", atores[1].Nome)
}

func TestInteracionaisUnion(t *testing.T) {
	db := newRepoTestDB(t)
	seedAtores(t, db)
	repo := NewAtorRepository(db)

	rows, err := repo.Interacionais(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Igor Interacional", "Maria Silva"}, nomes(rows))
}

func TestChatPorInstituicao(t *testing.T) {
	db := newRepoTestDB(t)
	seedAtores(t, db)
	repo := NewAtorRepository(db)

	rows, err := repo.ChatPorInstituicao(context.Background(), 1)
	require.NoError(t, err)
	// unit-scoped guardian and psychologist plus the global chat profile
	assert.ElementsMatch(t, []string{"Maria Silva", "Paula Psicóloga", "Suporte Chat"}, nomes(rows))
}

func TestPsicologosPorCidade(t *testing.T) {
	db := newRepoTestDB(t)
	seedAtores(t, db)
	repo := NewAtorRepository(db)
	ctx := context.Background()

	rows, err := repo.PsicologosPorCidade(ctx, "Recife")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Paula Psicóloga", rows[0].Nome)

	rows, err = repo.PsicologosPorCidade(ctx, "Olinda")
	require.NoError(t, err)
	assert.Empty(t, rows) // the Olinda student has no work plan
}

func TestTipo(t *testing.T) {
	db := newRepoTestDB(t)
	s := seedAtores(t, db)
	repo := NewAtorRepository(db)
	ctx := context.Background()

	row, err := repo.Tipo(ctx, s.psico1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paula Psicóloga", row.Nome)
	require.NotNil(t, row.Tipo)
	assert.Equal(t, "Psicólogo", *row.Tipo)

	_, err = repo.Tipo(ctx, s.inativo.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMensageria(t *testing.T) {
	db := newRepoTestDB(t)
	s := seedAtores(t, db)
	repo := NewAtorRepository(db)

	row, err := repo.Mensageria(context.Background(), s.aluno1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bruno Aluno", row.Nome)
	assert.Equal(t, "bruno@escola.com", row.Email)
	require.NotNil(t, row.Escola)
	assert.Equal(t, "Escola Alfa", *row.Escola)
}

func TestCompleto(t *testing.T) {
	db := newRepoTestDB(t)
	s := seedAtores(t, db)
	repo := NewAtorRepository(db)

	row, err := repo.Completo(context.Background(), s.aluno1.ID)
	require.NoError(t, err)

	require.NotNil(t, row.Responsavel)
	assert.Equal(t, "Maria Silva Mãe", *row.Responsavel)
	require.NotNil(t, row.Psicologo)
	assert.Equal(t, "Paula Psicóloga", *row.Psicologo)
	require.NotNil(t, row.Professor)
	assert.Equal(t, "Tiago Professor", *row.Professor)
	require.NotNil(t, row.ParInteracional)
	assert.Equal(t, "Igor Interacional", *row.ParInteracional)
	require.NotNil(t, row.Escola)
	assert.Equal(t, "Escola Alfa", *row.Escola)
	require.NotNil(t, row.LogoEscola)
	assert.Equal(t, "alfa.png", *row.LogoEscola)
	require.NotNil(t, row.ResponsavelID)
	assert.Equal(t, s.resp1.ID, *row.ResponsavelID)
}

func TestCompletoSemVinculo(t *testing.T) {
	db := newRepoTestDB(t)
	s := seedAtores(t, db)
	repo := NewAtorRepository(db)

	// aluno2 has no bond and no work plan, the inner joins drop it
	_, err := repo.Completo(context.Background(), s.aluno2.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPesquisa(t *testing.T) {
	db := newRepoTestDB(t)
	s := seedAtores(t, db)
	repo := NewAtorRepository(db)

	row, err := repo.Pesquisa(context.Background(), s.aluno1.ID)
	require.NoError(t, err)
	require.NotNil(t, row.Municipio)
	assert.Equal(t, "Recife-PE", *row.Municipio)
	require.NotNil(t, row.EmailPsicologo)
	assert.Equal(t, "paula@clinica.com", *row.EmailPsicologo)
	require.NotNil(t, row.CodigoPsicologo)
	assert.Equal(t, s.psico1.ID, *row.CodigoPsicologo)
}

func TestPesquisaApp(t *testing.T) {
	db := newRepoTestDB(t)
	s := seedAtores(t, db)
	repo := NewAtorRepository(db)

	row, err := repo.PesquisaApp(context.Background(), s.resp1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", row.Responsavel)
	require.NotNil(t, row.AlunoID)
	assert.Equal(t, s.aluno1.ID, *row.AlunoID)
	require.NotNil(t, row.Vinculo)
	assert.Equal(t, "Mãe", *row.Vinculo)
	require.NotNil(t, row.Aluno)
	assert.Equal(t, "Bruno Aluno", *row.Aluno)
	// earliest session in "Criado" state, the closed one is skipped
	require.NotNil(t, row.Sessao)
	assert.Equal(t, "Primeira sessão", *row.Sessao)
	require.NotNil(t, row.Titulo)
	assert.Equal(t, "S1", *row.Titulo)
}

func TestAlunoPorResponsavel(t *testing.T) {
	db := newRepoTestDB(t)
	s := seedAtores(t, db)
	repo := NewAtorRepository(db)

	row, err := repo.AlunoPorResponsavel(context.Background(), s.resp1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", row.Responsavel)
	require.NotNil(t, row.AlunoID)
	assert.Equal(t, s.aluno1.ID, *row.AlunoID)
}

func TestGridRows(t *testing.T) {
	db := newRepoTestDB(t)
	s := seedAtores(t, db)
	repo := NewAtorRepository(db)
	ctx := context.Background()

	// no filter supplied: pinned to unit zero, nothing matches
	rows, err := repo.GridRows(ctx, GridFilter{SemFiltro: true})
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = repo.GridRows(ctx, GridFilter{UnidadeID: iptr(1), ProfissaoID: iptr(model.ProfissaoAluno)})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, s.aluno1.ID, rows[0].ID)
	require.NotNil(t, rows[0].Modalidade)
	assert.Equal(t, "Fundamental", *rows[0].Modalidade)
	require.NotNil(t, rows[0].Municipio)
	assert.Equal(t, "Recife", *rows[0].Municipio)
	require.NotNil(t, rows[0].Parecer)
	assert.Equal(t, "Em acompanhamento", *rows[0].Parecer)
	require.NotNil(t, rows[0].StatusDescricao)
	assert.Equal(t, "Ativo", *rows[0].StatusDescricao)

	rows, err = repo.GridRows(ctx, GridFilter{Cidade: sptr("Olinda")})
	require.NoError(t, err)
	assert.Len(t, rows, 2) // Carla and the chat profile
}

func TestGridAll(t *testing.T) {
	db := newRepoTestDB(t)
	seedAtores(t, db)
	repo := NewAtorRepository(db)

	rows, err := repo.GridAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, "Bruno Aluno", rows[0].Nome) // nome ordering
	assert.Equal(t, "bruno@escola.com", rows[0].Email)
}

func TestAutorizado(t *testing.T) {
	db := newRepoTestDB(t)
	s := seedAtores(t, db)
	repo := NewAtorRepository(db)
	ctx := context.Background()
	grupos := []int{1, 3, 10, 13}

	require.NoError(t, db.Create(&model.Usuario{
		Usuario: "maria", Senha: "hash", Email: s.resp1.Email, CodGrupoUsuario: iptr(13),
	}).Error)
	require.NoError(t, db.Create(&model.Usuario{
		Usuario: "carla", Senha: "hash", Email: s.aluno2.Email, CodGrupoUsuario: iptr(99),
	}).Error)

	nome, err := repo.Autorizado(ctx, s.resp1.ID, grupos)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", nome)

	_, err = repo.Autorizado(ctx, s.aluno2.ID, grupos)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// actor without a login account
	_, err = repo.Autorizado(ctx, s.aluno1.ID, grupos)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItensModuloUsuario(t *testing.T) {
	db := newRepoTestDB(t)
	s := seedAtores(t, db)
	repo := NewAtorRepository(db)

	require.NoError(t, db.Create(&model.Usuario{
		Usuario: "bruno.aluno", Senha: "hash", Email: s.aluno1.Email, CodGrupoUsuario: iptr(13),
	}).Error)

	row, err := repo.ItensModuloUsuario(context.Background(), s.aluno1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bruno Aluno", row.Nome)
	require.NotNil(t, row.Usuario)
	assert.Equal(t, "bruno.aluno", *row.Usuario)
	require.NotNil(t, row.CodGrupoUsuario)
	assert.Equal(t, 13, *row.CodGrupoUsuario)
}

func TestConstraintBackstop(t *testing.T) {
	db := newRepoTestDB(t)
	s := seedAtores(t, db)
	repo := NewAtorRepository(db)
	ctx := context.Background()

	dup := model.Ator{Nome: "Clone", Email: s.aluno1.Email, Status: model.StatusAtivo}
	err := repo.Create(ctx, db, &dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
