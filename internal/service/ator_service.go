package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/miguelamaral254/api-cognivox-test/internal/apierror"
	"github.com/miguelamaral254/api-cognivox-test/internal/config"
	"github.com/miguelamaral254/api-cognivox-test/internal/dto"
	"github.com/miguelamaral254/api-cognivox-test/internal/model"
	"github.com/miguelamaral254/api-cognivox-test/internal/repository"
	"github.com/miguelamaral254/api-cognivox-test/internal/worker"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

type AtorService interface {
	Criar(ctx context.Context, req dto.CriarAtorRequest) (*model.Ator, error)
	Atualizar(ctx context.Context, id int, req dto.AtualizarAtorRequest) (*model.Ator, error)
	AtualizarPerfil(ctx context.Context, id int, req dto.PerfilAtorRequest) (*model.Ator, error)
	Excluir(ctx context.Context, id int) error

	BuscarPorID(ctx context.Context, id int) (*model.Ator, error)
	BuscarPorEmail(ctx context.Context, email string) (*model.Ator, error)
	Listar(ctx context.Context) ([]model.Ator, error)
	ContarAlunos(ctx context.Context) (int64, error)
	Descricoes(ctx context.Context) ([]dto.IdNomeResponse, error)
	ComboNomes(ctx context.Context) ([]string, error)
	ComboTodos(ctx context.Context) ([]dto.IdNomeResponse, error)
	PorUnidade(ctx context.Context, unidadeID int) ([]dto.IdNomeResponse, error)
	AlunosPorUnidade(ctx context.Context, unidadeID int) ([]dto.IdNomeResponse, error)
	AlunosDI(ctx context.Context) ([]model.Ator, error)
	Psicologos(ctx context.Context) ([]model.Ator, error)
	Professores(ctx context.Context) ([]model.Ator, error)
	Responsaveis(ctx context.Context) ([]model.Ator, error)
	Interacionais(ctx context.Context) ([]dto.IdNomeResponse, error)
	PsicologosPorCidade(ctx context.Context, cidade string) ([]dto.IdNomeResponse, error)
	ChatPorInstituicao(ctx context.Context, unidadeID int) ([]dto.IdNomeResponse, error)

	Nome(ctx context.Context, id int) (string, error)
	AnoSessao(ctx context.Context, id int) (*string, error)
	FotoHex(ctx context.Context, id int) (*string, error)
	EmailBruto(ctx context.Context, id int) (string, error)
	NomeEImagem(ctx context.Context, id int) (*dto.NomeImagemResponse, error)
	Tipo(ctx context.Context, id int) (*dto.AtorTipoResponse, error)
	DadosMensageria(ctx context.Context, id int) (*dto.DadosMensageriaResponse, error)
	DadosCompletos(ctx context.Context, id int) (*dto.DadosCompletosResponse, error)
	DadosPesquisa(ctx context.Context, id int) (*dto.DadosPesquisaResponse, error)
	DadosPesquisaApp(ctx context.Context, id int) (*dto.DadosPesquisaAppResponse, error)
	AlunoPorResponsavel(ctx context.Context, id int) (*dto.AlunoPorResponsavelResponse, error)
	Autorizado(ctx context.Context, id int) (string, error)
	ItensModuloUsuario(ctx context.Context, id int) (*dto.ItensModuloUsuarioResponse, error)
	ItensModuloVazio() map[string]string

	CadernoAtividades(ctx context.Context, f dto.AtorFilter) ([]dto.CadernoAtividadesItem, error)
	GridFiltro(ctx context.Context, f dto.AtorFilter) ([]dto.GridFiltroItem, error)
	Grid(ctx context.Context) ([]dto.GridItem, error)
}

type atorService struct {
	atores     repository.AtorRepository
	usuarios   repository.UsuarioRepository
	dispatcher *worker.Dispatcher
	cfg        *config.Config
}

func NewAtorService(atores repository.AtorRepository, usuarios repository.UsuarioRepository,
	dispatcher *worker.Dispatcher, cfg *config.Config) AtorService {
	return &atorService{atores: atores, usuarios: usuarios, dispatcher: dispatcher, cfg: cfg}
}

// ── Escrita ──────────────────────────────────────────────────────────────────

func (s *atorService) Criar(ctx context.Context, req dto.CriarAtorRequest) (*model.Ator, error) {
	dataNascimento, err := parseData(req.DataNascimento)
	if err != nil {
		return nil, apierror.Validation("data_nascimento inválida")
	}
	dataInicio, err := parseDataOpcional(req.DataInicioIntervencao)
	if err != nil {
		return nil, apierror.Validation("data_inicio_intervencao inválida")
	}

	// Uniqueness pre-checks, in order. The unique constraints still back
	// these up at commit time for concurrent writers.
	if err := s.garanteEmailLivre(ctx, req.Email); err != nil {
		return nil, err
	}
	if err := s.garanteLoginLivre(ctx, req.Usuario); err != nil {
		return nil, err
	}
	if req.CPF != nil && *req.CPF != "" {
		if err := s.garanteCPFLivre(ctx, *req.CPF); err != nil {
			return nil, err
		}
	}

	if req.TipoVinculo != 0 {
		if err := validaVinculo(req); err != nil {
			return nil, err
		}
	}

	if dataInicio == nil {
		hoje := hoje()
		dataInicio = &hoje
	}

	hash, err := hashSenha(req.Senha)
	if err != nil {
		return nil, apierror.Internal("Erro ao processar a senha")
	}

	foto := req.HexadecimalFoto
	if foto == nil {
		vazio := ""
		foto = &vazio
	}

	ator := &model.Ator{
		Nome:                  req.Nome,
		CPF:                   req.CPF,
		AnoSessao:             req.AnoSessao,
		DataNascimento:        dataNascimento,
		DataInicioIntervencao: dataInicio,
		RegProfissional:       req.RegProfissional,
		Email:                 req.Email,
		TelefoneCel:           req.TelefoneCel,
		TelefoneFixo:          req.TelefoneFixo,
		IdiomaID:              req.IdiomaID,
		UnidadeID:             &req.UnidadeID,
		ProfissaoID:           &req.ProfissaoID,
		Endereco:              req.Endereco,
		Cidade:                req.Cidade,
		Estado:                req.Estado,
		Pais:                  req.Pais,
		HexadecimalFoto:       foto,
		ModalidadeEnsinoID:    req.ModalidadeEnsinoID,
		Status:                req.Status,
	}

	err = s.atores.DB().Transaction(func(tx *gorm.DB) error {
		if err := s.atores.Create(ctx, tx, ator); err != nil {
			return err
		}

		usuario := &model.Usuario{
			Usuario:         req.Usuario,
			Senha:           hash,
			CodEmpresa:      &req.UnidadeID,
			Nome:            &req.Nome,
			Email:           req.Email,
			CPF:             req.CPF,
			CodStatus:       ptr(model.StatusAtivo),
			CodGrupoUsuario: &req.GrupoUsuario,
			CodNivel:        ptr(1),
			PrimeiroAcesso:  ptr(1),
			ErrosLogin:      ptr(0),
		}
		if err := s.usuarios.Create(ctx, tx, usuario); err != nil {
			return err
		}

		seg := &model.SegUsuario{
			Usuario:      &req.Usuario,
			Senha:        &hash,
			CodStatus:    ptr(model.StatusAtivo),
			CodOrdenacao: &usuario.Codigo,
		}
		if err := s.usuarios.CreateSegUsuario(ctx, tx, seg); err != nil {
			return err
		}

		if req.TipoVinculo != 0 {
			// Nested transaction (savepoint): a failed guardian block rolls
			// back without losing the outer inserts' error classification.
			return tx.Transaction(func(tx2 *gorm.DB) error {
				return s.criaResponsavel(ctx, tx2, ator, req, *dataInicio)
			})
		}
		return nil
	})
	if err != nil {
		return nil, classificaErroEscrita(err)
	}

	if req.Status != model.StatusInativo {
		s.enviaCredenciais(req.Usuario, req.Senha, req.Email)
	}

	return ator, nil
}

// criaResponsavel inserts the guardian actor, its login account and the bond
// to the dependent actor.
func (s *atorService) criaResponsavel(ctx context.Context, tx *gorm.DB, dependente *model.Ator,
	req dto.CriarAtorRequest, dataInicio time.Time) error {
	nascimento := hoje()
	anoSessao := "1"

	responsavel := &model.Ator{
		Nome:                  *req.NomeResponsavel,
		AnoSessao:             &anoSessao,
		DataNascimento:        &nascimento,
		DataInicioIntervencao: &dataInicio,
		Email:                 *req.EmailResponsavel,
		TelefoneCel:           req.TelefoneCelResponsavel,
		IdiomaID:              req.IdiomaID,
		UnidadeID:             &req.UnidadeID,
		ProfissaoID:           ptr(model.ProfissaoResponsavel),
		Endereco:              req.Endereco,
		Cidade:                req.Cidade,
		Estado:                req.Estado,
		Pais:                  req.Pais,
		ModalidadeEnsinoID:    req.ModalidadeEnsinoID,
		Status:                req.Status,
	}
	if err := s.atores.Create(ctx, tx, responsavel); err != nil {
		return err
	}

	hash, err := hashSenha(*req.SenhaResponsavel)
	if err != nil {
		return err
	}
	usuario := &model.Usuario{
		Usuario:         *req.LoginResponsavel,
		Senha:           hash,
		CodEmpresa:      &req.UnidadeID,
		Nome:            req.NomeResponsavel,
		Email:           *req.EmailResponsavel,
		CodStatus:       ptr(model.StatusAtivo),
		CodGrupoUsuario: &req.GrupoUsuario,
		CodNivel:        ptr(1),
		PrimeiroAcesso:  ptr(1),
		ErrosLogin:      ptr(0),
	}
	if err := s.usuarios.Create(ctx, tx, usuario); err != nil {
		return err
	}

	seg := &model.SegUsuario{
		Usuario:      req.LoginResponsavel,
		Senha:        &hash,
		CodStatus:    ptr(model.StatusAtivo),
		CodOrdenacao: &usuario.Codigo,
	}
	if err := s.usuarios.CreateSegUsuario(ctx, tx, seg); err != nil {
		return err
	}

	vinculo := &model.AtorVinculo{
		AtorID:        &responsavel.ID,
		AtorDiID:      &dependente.ID,
		TipoVinculoID: &req.TipoVinculo,
	}
	return s.atores.CreateVinculo(ctx, tx, vinculo)
}

func (s *atorService) Atualizar(ctx context.Context, id int, req dto.AtualizarAtorRequest) (*model.Ator, error) {
	ator, err := s.atores.FindByID(ctx, id)
	if err != nil {
		return nil, naoEncontrado(err, "Ator não encontrado")
	}
	emailAntigo := ator.Email

	dataNascimento, err := parseDataOpcional(req.DataNascimento)
	if err != nil {
		return nil, apierror.Validation("data_nascimento inválida")
	}
	dataInicio, err := parseDataOpcional(req.DataInicioIntervencao)
	if err != nil {
		return nil, apierror.Validation("data_inicio_intervencao inválida")
	}

	err = s.atores.DB().Transaction(func(tx *gorm.DB) error {
		ator.Nome = req.Nome
		ator.CPF = req.CPF
		ator.AnoSessao = req.AnoSessao
		ator.DataNascimento = dataNascimento
		ator.DataInicioIntervencao = dataInicio
		ator.RegProfissional = req.RegProfissional
		ator.Email = req.Email
		ator.TelefoneCel = req.TelefoneCel
		ator.TelefoneFixo = req.TelefoneFixo
		ator.IdiomaID = req.IdiomaID
		ator.UnidadeID = &req.UnidadeID
		ator.ProfissaoID = &req.ProfissaoID
		ator.Endereco = req.Endereco
		ator.Cidade = req.Cidade
		ator.Estado = req.Estado
		ator.Pais = req.Pais
		ator.HexadecimalFoto = req.HexadecimalFoto
		ator.ModalidadeEnsinoID = req.ModalidadeEnsinoID
		ator.Status = req.Status

		if err := s.atores.Save(ctx, tx, ator); err != nil {
			return err
		}

		// The intervention start date also feeds the work plan.
		if err := s.atores.UpdatePlanoTrabalhoDataInicio(ctx, tx, id, dataInicio); err != nil {
			return err
		}

		return s.atualizaContas(ctx, tx, emailAntigo, contaPatch{
			Usuario:   strOuNil(req.Usuario),
			Nome:      &req.Nome,
			Senha:     strOuNil(req.Senha),
			Email:     &req.Email,
			UnidadeID: &req.UnidadeID,
			CPF:       req.CPF,
			Status:    &req.Status,
		})
	})
	if err != nil {
		return nil, classificaErroEscrita(err)
	}
	return ator, nil
}

func (s *atorService) AtualizarPerfil(ctx context.Context, id int, req dto.PerfilAtorRequest) (*model.Ator, error) {
	ator, err := s.atores.FindByID(ctx, id)
	if err != nil {
		return nil, naoEncontrado(err, "Ator não encontrado")
	}
	emailAntigo := ator.Email

	var dataNascimento, dataInicio *time.Time
	if req.DataNascimento != nil {
		if dataNascimento, err = parseDataOpcional(*req.DataNascimento); err != nil {
			return nil, apierror.Validation("data_nascimento inválida")
		}
	}
	if req.DataInicioIntervencao != nil {
		if dataInicio, err = parseDataOpcional(*req.DataInicioIntervencao); err != nil {
			return nil, apierror.Validation("data_inicio_intervencao inválida")
		}
	}

	err = s.atores.DB().Transaction(func(tx *gorm.DB) error {
		if req.Nome != nil {
			ator.Nome = *req.Nome
		}
		if req.CPF != nil {
			ator.CPF = req.CPF
		}
		if req.AnoSessao != nil {
			ator.AnoSessao = req.AnoSessao
		}
		if dataNascimento != nil {
			ator.DataNascimento = dataNascimento
		}
		if dataInicio != nil {
			ator.DataInicioIntervencao = dataInicio
		}
		if req.RegProfissional != nil {
			ator.RegProfissional = req.RegProfissional
		}
		if req.Email != nil {
			ator.Email = *req.Email
		}
		if req.TelefoneCel != nil {
			ator.TelefoneCel = req.TelefoneCel
		}
		if req.TelefoneFixo != nil {
			ator.TelefoneFixo = req.TelefoneFixo
		}
		if req.IdiomaID != nil {
			ator.IdiomaID = req.IdiomaID
		}
		if req.UnidadeID != nil {
			ator.UnidadeID = req.UnidadeID
		}
		if req.ProfissaoID != nil {
			ator.ProfissaoID = req.ProfissaoID
		}
		if req.Endereco != nil {
			ator.Endereco = req.Endereco
		}
		if req.Cidade != nil {
			ator.Cidade = req.Cidade
		}
		if req.Estado != nil {
			ator.Estado = req.Estado
		}
		if req.Pais != nil {
			ator.Pais = req.Pais
		}
		if req.HexadecimalFoto != nil {
			ator.HexadecimalFoto = req.HexadecimalFoto
		}
		if req.ModalidadeEnsinoID != nil {
			ator.ModalidadeEnsinoID = req.ModalidadeEnsinoID
		}
		if req.Status != nil {
			ator.Status = *req.Status
		}

		if err := s.atores.Save(ctx, tx, ator); err != nil {
			return err
		}

		return s.atualizaContas(ctx, tx, emailAntigo, contaPatch{
			Usuario:   req.Usuario,
			Nome:      req.Nome,
			Senha:     req.Senha,
			Email:     req.Email,
			UnidadeID: req.UnidadeID,
			CPF:       req.CPF,
			Status:    req.Status,
		})
	})
	if err != nil {
		return nil, classificaErroEscrita(err)
	}
	return ator, nil
}

// contaPatch carries the account fields propagated from an actor update. Nil
// fields keep the stored values.
type contaPatch struct {
	Usuario   *string
	Nome      *string
	Senha     *string
	Email     *string
	UnidadeID *int
	CPF       *string
	Status    *int
}

// atualizaContas mirrors an actor change into the usuario1 row found by the
// actor's previous email, then into the seg_usuario1 row keyed by the account
// ordering code. Missing accounts are skipped, as some legacy actors never
// got one.
func (s *atorService) atualizaContas(ctx context.Context, tx *gorm.DB, emailAntigo string, p contaPatch) error {
	var hash string
	if p.Senha != nil && *p.Senha != "" {
		h, err := hashSenha(*p.Senha)
		if err != nil {
			return err
		}
		hash = h
	}

	user, err := s.usuarios.FindByEmail(ctx, emailAntigo)
	if err == nil {
		if p.Usuario != nil {
			user.Usuario = *p.Usuario
		}
		if p.Nome != nil {
			user.Nome = p.Nome
		}
		if hash != "" {
			user.Senha = hash
		}
		if p.Email != nil {
			user.Email = *p.Email
		}
		if p.UnidadeID != nil {
			user.CodEmpresa = p.UnidadeID
		}
		if p.CPF != nil {
			user.CPF = p.CPF
		}
		if p.Status != nil {
			user.CodStatus = p.Status
		}
		if err := s.usuarios.Save(ctx, tx, user); err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	emailAtual := emailAntigo
	if p.Email != nil {
		emailAtual = *p.Email
	}
	principal, err := s.usuarios.FindByEmail(ctx, emailAtual)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	seg, err := s.usuarios.FindSegUsuarioByCodOrdenacao(ctx, principal.Codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if p.Usuario != nil {
		seg.Usuario = p.Usuario
	}
	if hash != "" {
		seg.Senha = &hash
	}
	if p.Status != nil {
		seg.CodStatus = p.Status
	}
	return s.usuarios.SaveSegUsuario(ctx, tx, seg)
}

func (s *atorService) Excluir(ctx context.Context, id int) error {
	ator, err := s.atores.FindByID(ctx, id)
	if err != nil {
		return naoEncontrado(err, "Ator não encontrado")
	}
	ator.Status = model.StatusInativo
	if err := s.atores.Save(ctx, s.atores.DB(), ator); err != nil {
		return classificaErroEscrita(err)
	}
	return nil
}

func (s *atorService) garanteEmailLivre(ctx context.Context, email string) error {
	_, err := s.atores.FindByEmail(ctx, email)
	if err == nil {
		return apierror.Conflict("Já existe esse email cadastrado em nossos registros!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.Internal("Erro ao consultar o banco de dados")
	}
	return nil
}

func (s *atorService) garanteLoginLivre(ctx context.Context, login string) error {
	_, err := s.usuarios.FindByUsername(ctx, login)
	if err == nil {
		return apierror.Conflict("Já existe um usuário com este nome de usuário cadastrado!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.Internal("Erro ao consultar o banco de dados")
	}
	return nil
}

func (s *atorService) garanteCPFLivre(ctx context.Context, cpf string) error {
	_, err := s.atores.FindByCPF(ctx, cpf)
	if err == nil {
		return apierror.Conflict("Já existe esse CPF cadastrado em nossos registros!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.Internal("Erro ao consultar o banco de dados")
	}
	return nil
}

func validaVinculo(req dto.CriarAtorRequest) error {
	faltando := func(p *string) bool { return p == nil || *p == "" }
	if faltando(req.NomeResponsavel) || faltando(req.EmailResponsavel) ||
		faltando(req.TelefoneCelResponsavel) ||
		faltando(req.LoginResponsavel) || faltando(req.SenhaResponsavel) {
		return apierror.Validation("Erro nos dados do vínculo: nome, email, telefone, login e senha do responsável são obrigatórios")
	}
	return nil
}

// classificaErroEscrita maps constraint violations surfaced at commit time.
// Domain errors raised earlier in the workflow pass through untouched.
func classificaErroEscrita(err error) error {
	var de *apierror.Error
	if errors.As(err, &de) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierror.Conflict("Erro de duplicidade no banco de dados")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apierror.Validation("Erro de chave estrangeira")
	default:
		log.Error().Err(err).Msg("erro inesperado ao gravar ator")
		return apierror.Internal("Erro inesperado no banco de dados")
	}
}

// enviaCredenciais enqueues the access-data email. Failures are logged only:
// the actor was already committed.
func (s *atorService) enviaCredenciais(usuario, senha, email string) {
	base := strings.TrimRight(s.cfg.Domain, "/")
	corpo := fmt.Sprintf(`<div style="text-align: center;"><img src="%s/images/logoOficial.png" height=50></div>
<p>Seus dados foram alterados em %s.</p>
<h3>Usuário: %s</h3><br>
<h3>Senha: %s</h3><br>
<h3>E-Mail: %s</h3><br>
<p>No próximo login no COGNVOX, utilize o LOGIN e SENHA informados aqui para ter acesso.</p>
<div style="text-align: center;" ><a href="%s">ACESSE AQUI</a></div><br>
<div style="text-align: center;"><hr><p><b>Caso deseje remover seus dados da plataforma clique em <a href="%s/excluiusuario/">REMOVER MEUS DADOS DA PLATAFORMA</a>.</b></p></div>
<div style="text-align: center;"><hr><p><b>Este é um email automático, não deve ser respondido.</b></p></div>`,
		base, time.Now().Format("2006-01-02 15:04:05"),
		removeAcentos(usuario), removeAcentos(senha), removeAcentos(email),
		base, base)

	payload := worker.CredenciaisEmailPayload{
		Para:      email,
		Assunto:   "DADOS DE ACESSO AO COGNVOX",
		CorpoHTML: corpo,
	}
	if err := s.dispatcher.EnqueueEmail(context.Background(), payload); err != nil {
		log.Error().Err(err).Str("email", email).Msg("falha ao enfileirar email de credenciais")
	}
}

// ── Consultas ────────────────────────────────────────────────────────────────

func (s *atorService) BuscarPorID(ctx context.Context, id int) (*model.Ator, error) {
	ator, err := s.atores.FindByID(ctx, id)
	if err != nil {
		return nil, naoEncontrado(err, "Ator não encontrado")
	}
	return ator, nil
}

func (s *atorService) BuscarPorEmail(ctx context.Context, email string) (*model.Ator, error) {
	ator, err := s.atores.FindByEmail(ctx, email)
	if err != nil {
		return nil, naoEncontrado(err, "Ator não encontrado")
	}
	return ator, nil
}

func (s *atorService) Listar(ctx context.Context) ([]model.Ator, error) {
	return s.atores.All(ctx)
}

func (s *atorService) ContarAlunos(ctx context.Context) (int64, error) {
	return s.atores.CountAlunos(ctx)
}

func (s *atorService) Descricoes(ctx context.Context) ([]dto.IdNomeResponse, error) {
	rows, err := s.atores.Descriptions(ctx)
	return idNomes(rows), err
}

func (s *atorService) ComboNomes(ctx context.Context) ([]string, error) {
	return s.atores.ComboNames(ctx)
}

func (s *atorService) ComboTodos(ctx context.Context) ([]dto.IdNomeResponse, error) {
	rows, err := s.atores.ComboAll(ctx)
	return idNomes(rows), err
}

func (s *atorService) PorUnidade(ctx context.Context, unidadeID int) ([]dto.IdNomeResponse, error) {
	rows, err := s.atores.ByUnidade(ctx, unidadeID)
	return idNomes(rows), err
}

func (s *atorService) AlunosPorUnidade(ctx context.Context, unidadeID int) ([]dto.IdNomeResponse, error) {
	rows, err := s.atores.AlunosByUnidade(ctx, unidadeID)
	return idNomes(rows), err
}

func (s *atorService) AlunosDI(ctx context.Context) ([]model.Ator, error) {
	return s.atores.AlunosDI(ctx)
}

func (s *atorService) Psicologos(ctx context.Context) ([]model.Ator, error) {
	return s.atores.Psicologos(ctx)
}

func (s *atorService) Professores(ctx context.Context) ([]model.Ator, error) {
	return s.atores.Professores(ctx)
}

func (s *atorService) Responsaveis(ctx context.Context) ([]model.Ator, error) {
	return s.atores.Responsaveis(ctx)
}

func (s *atorService) Interacionais(ctx context.Context) ([]dto.IdNomeResponse, error) {
	rows, err := s.atores.Interacionais(ctx)
	return idNomes(rows), err
}

func (s *atorService) PsicologosPorCidade(ctx context.Context, cidade string) ([]dto.IdNomeResponse, error) {
	if cidade == "" {
		return nil, apierror.Validation(`Parâmetro "cidade" é obrigatório`)
	}
	rows, err := s.atores.PsicologosPorCidade(ctx, cidade)
	return idNomes(rows), err
}

func (s *atorService) ChatPorInstituicao(ctx context.Context, unidadeID int) ([]dto.IdNomeResponse, error) {
	rows, err := s.atores.ChatPorInstituicao(ctx, unidadeID)
	return idNomes(rows), err
}

func (s *atorService) Nome(ctx context.Context, id int) (string, error) {
	ator, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return "", err
	}
	return ator.Nome, nil
}

func (s *atorService) AnoSessao(ctx context.Context, id int) (*string, error) {
	ator, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ator.AnoSessao, nil
}

func (s *atorService) FotoHex(ctx context.Context, id int) (*string, error) {
	ator, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ator.HexadecimalFoto, nil
}

func (s *atorService) EmailBruto(ctx context.Context, id int) (string, error) {
	ator, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return "", err
	}
	return ator.Email, nil
}

func (s *atorService) NomeEImagem(ctx context.Context, id int) (*dto.NomeImagemResponse, error) {
	ator, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.NomeImagemResponse{Nome: ator.Nome, HexadecimalFoto: ator.HexadecimalFoto}, nil
}

func (s *atorService) Tipo(ctx context.Context, id int) (*dto.AtorTipoResponse, error) {
	row, err := s.atores.Tipo(ctx, id)
	if err != nil {
		return nil, naoEncontrado(err, "Ator não encontrado")
	}
	return &dto.AtorTipoResponse{ID: row.ID, Nome: row.Nome, Tipo: row.Tipo}, nil
}

func (s *atorService) DadosMensageria(ctx context.Context, id int) (*dto.DadosMensageriaResponse, error) {
	row, err := s.atores.Mensageria(ctx, id)
	if err != nil {
		return nil, naoEncontrado(err, "Ator não encontrado")
	}
	return &dto.DadosMensageriaResponse{
		ID:              row.ID,
		Nome:            row.Nome,
		DataNascimento:  fmtData(row.DataNascimento),
		TelefoneCel:     row.TelefoneCel,
		Email:           row.Email,
		Idade:           idade(row.DataNascimento, time.Now()),
		HexadecimalFoto: row.HexadecimalFoto,
		Escola:          row.Escola,
	}, nil
}

func (s *atorService) DadosCompletos(ctx context.Context, id int) (*dto.DadosCompletosResponse, error) {
	row, err := s.atores.Completo(ctx, id)
	if err != nil {
		return nil, naoEncontrado(err, "Ator não encontrado")
	}
	return &dto.DadosCompletosResponse{
		ID:                row.ID,
		Nome:              row.Nome,
		DataNascimento:    fmtData(row.DataNascimento),
		TelefoneCel:       row.TelefoneCel,
		Idade:             idade(row.DataNascimento, time.Now()),
		HexadecimalFoto:   row.HexadecimalFoto,
		Responsavel:       row.Responsavel,
		DataInicio:        fmtData(row.DataInicio),
		ParInteracional:   row.ParInteracional,
		Professor:         row.Professor,
		Psicologo:         row.Psicologo,
		Escola:            row.Escola,
		Cidade:            row.Cidade,
		LogoEscola:        row.LogoEscola,
		ResponsavelID:     row.ResponsavelID,
		ParInteracionalID: row.ParInteracionalID,
		ProfessorID:       row.ProfessorID,
		PsicologoID:       row.PsicologoID,
	}, nil
}

func (s *atorService) DadosPesquisa(ctx context.Context, id int) (*dto.DadosPesquisaResponse, error) {
	row, err := s.atores.Pesquisa(ctx, id)
	if err != nil {
		return nil, naoEncontrado(err, "Dados do ator não encontrados")
	}
	return &dto.DadosPesquisaResponse{
		ID:                    row.ID,
		Nome:                  row.Nome,
		DataNascimento:        fmtData(row.DataNascimento),
		HexadecimalFoto:       row.HexadecimalFoto,
		DataInicioIntervencao: fmtData(row.DataInicioIntervencao),
		AnoSessao:             row.AnoSessao,
		Responsavel:           row.Responsavel,
		DataInicio:            fmtData(row.DataInicio),
		Idade:                 idade(row.DataNascimento, time.Now()),
		ParInteracional:       row.ParInteracional,
		Professor:             row.Professor,
		Psicologo:             row.Psicologo,
		EmailPsicologo:        row.EmailPsicologo,
		CodigoPsicologo:       row.CodigoPsicologo,
		Instituicao:           row.Instituicao,
		Municipio:             row.Municipio,
		ResponsavelID:         row.ResponsavelID,
		ParInteracionalID:     row.ParInteracionalID,
		ProfessorID:           row.ProfessorID,
		PsicologoID:           row.PsicologoID,
	}, nil
}

func (s *atorService) DadosPesquisaApp(ctx context.Context, id int) (*dto.DadosPesquisaAppResponse, error) {
	row, err := s.atores.PesquisaApp(ctx, id)
	if err != nil {
		return nil, naoEncontrado(err, "Dados do ator não encontrados")
	}
	return &dto.DadosPesquisaAppResponse{
		Responsavel: &row.Responsavel,
		ID:          row.ID,
		Foto:        row.Foto,
		Email:       row.Email,
		Profissao:   row.Profissao,
		Tipo:        row.Tipo,
		Vinculo:     row.Vinculo,
		AlunoID:     row.AlunoID,
		Sessao:      row.Sessao,
		Titulo:      row.Titulo,
		Aluno:       row.Aluno,
	}, nil
}

func (s *atorService) AlunoPorResponsavel(ctx context.Context, id int) (*dto.AlunoPorResponsavelResponse, error) {
	row, err := s.atores.AlunoPorResponsavel(ctx, id)
	if err != nil {
		return nil, naoEncontrado(err, "Ator não encontrado")
	}
	return &dto.AlunoPorResponsavelResponse{
		Responsavel: &row.Responsavel,
		ID:          row.ID,
		Email:       row.Email,
		TelefoneCel: row.TelefoneCel,
		AlunoID:     row.AlunoID,
	}, nil
}

func (s *atorService) Autorizado(ctx context.Context, id int) (string, error) {
	nome, err := s.atores.Autorizado(ctx, id, GruposPermitidos(PermReadAtor))
	if err != nil {
		return "", naoEncontrado(err, "Ator não autorizado ou não encontrado")
	}
	return nome, nil
}

func (s *atorService) ItensModuloUsuario(ctx context.Context, id int) (*dto.ItensModuloUsuarioResponse, error) {
	row, err := s.atores.ItensModuloUsuario(ctx, id)
	if err != nil {
		return nil, naoEncontrado(err, "Dados do ator não encontrados")
	}
	return &dto.ItensModuloUsuarioResponse{
		ID:                    row.ID,
		Nome:                  row.Nome,
		CPF:                   row.CPF,
		AnoSessao:             row.AnoSessao,
		DataNascimento:        fmtData(row.DataNascimento),
		DataInicioIntervencao: fmtData(row.DataInicioIntervencao),
		RegProfissional:       row.RegProfissional,
		Email:                 row.Email,
		TelefoneCel:           row.TelefoneCel,
		TelefoneFixo:          row.TelefoneFixo,
		IdiomaID:              row.IdiomaID,
		UnidadeID:             row.UnidadeID,
		ProfissaoID:           row.ProfissaoID,
		Endereco:              row.Endereco,
		Cidade:                row.Cidade,
		Estado:                row.Estado,
		Pais:                  row.Pais,
		HexadecimalFoto:       row.HexadecimalFoto,
		ModalidadeEnsinoID:    row.ModalidadeEnsinoID,
		Status:                row.Status,
		Usuario:               row.Usuario,
		CodGrupoUsuario:       row.CodGrupoUsuario,
	}, nil
}

// ItensModuloVazio returns the user-module screen skeleton: every actor field
// blanked out, with the legacy uppercase keys.
func (s *atorService) ItensModuloVazio() map[string]string {
	chaves := []string{
		"ID", "NOME", "CPF", "ANO_SESSAO", "DATANASCIMENTO", "DATAINICIOINTERVENCAO",
		"REGPROFISSIONAL", "EMAIL", "TELEFONECEL", "TELEFONEFIXO", "IDIOMAID",
		"UNIDADEID", "PROFISSAOID", "ENDERECO", "CIDADE", "ESTADO", "PAIS",
		"HEXADECIMALFOTO", "MODALIDADEENSINOID", "STATUS",
	}
	itens := make(map[string]string, len(chaves))
	for _, k := range chaves {
		itens[k] = ""
	}
	return itens
}

// ── Grades ───────────────────────────────────────────────────────────────────

func (s *atorService) CadernoAtividades(ctx context.Context, f dto.AtorFilter) ([]dto.CadernoAtividadesItem, error) {
	rows, err := s.atores.GridRows(ctx, montaFiltroGrid(f))
	if err != nil {
		return nil, err
	}
	agora := time.Now()
	itens := make([]dto.CadernoAtividadesItem, 0, len(rows))
	for _, row := range rows {
		anos := idade(row.DataNascimento, agora)
		itens = append(itens, dto.CadernoAtividadesItem{
			ID:          row.ID,
			Nome:        row.Nome,
			Idade:       anos,
			Foto:        fotoCaderno(row.HexadecimalFoto),
			DadosAtor:   dadosAtorGrade(row.Nome, anos, row.AnoSessao),
			Modalidade:  row.Modalidade,
			Tipo:        row.Tipo,
			Instituicao: row.Instituicao,
			Municipio:   row.Municipio,
			Parecer:     row.Parecer,
			Status:      row.StatusDescricao,
		})
	}
	return itens, nil
}

func (s *atorService) GridFiltro(ctx context.Context, f dto.AtorFilter) ([]dto.GridFiltroItem, error) {
	rows, err := s.atores.GridRows(ctx, montaFiltroGrid(f))
	if err != nil {
		return nil, err
	}
	agora := time.Now()
	itens := make([]dto.GridFiltroItem, 0, len(rows))
	for _, row := range rows {
		anos := idade(row.DataNascimento, agora)
		itens = append(itens, dto.GridFiltroItem{
			ID:          row.ID,
			Foto:        fotoGrid(row.HexadecimalFoto),
			DadosAtor:   dadosAtorGrade(row.Nome, anos, row.AnoSessao),
			Modalidade:  row.Modalidade,
			Tipo:        row.Tipo,
			Instituicao: row.Instituicao,
			Municipio:   row.Municipio,
			Parecer:     row.Parecer,
			Status:      row.StatusDescricao,
		})
	}
	return itens, nil
}

func (s *atorService) Grid(ctx context.Context) ([]dto.GridItem, error) {
	rows, err := s.atores.GridAll(ctx)
	if err != nil {
		return nil, err
	}
	itens := make([]dto.GridItem, 0, len(rows))
	for _, row := range rows {
		dados := row.Nome + "<br>" + row.Email
		if row.AnoSessao != nil && *row.AnoSessao != "" {
			dados += "<br>Sessões ano:" + *row.AnoSessao
		}
		itens = append(itens, dto.GridItem{
			ID:          row.ID,
			DadosAtor:   dados,
			Modalidade:  row.Modalidade,
			Tipo:        row.Tipo,
			Instituicao: row.Instituicao,
		})
	}
	return itens, nil
}

// montaFiltroGrid resolves the raw query strings. "0" disables a column
// filter; an entirely empty filter set pins the grid to unit zero.
func montaFiltroGrid(f dto.AtorFilter) repository.GridFilter {
	gf := repository.GridFilter{}
	if id, ok := filtroInt(f.UnidadeID); ok {
		gf.UnidadeID = &id
	}
	if id, ok := filtroInt(f.ModalidadeEnsinoID); ok {
		gf.ModalidadeEnsinoID = &id
	}
	if id, ok := filtroInt(f.ProfissaoID); ok {
		gf.ProfissaoID = &id
	}
	if f.Cidade != "" && f.Cidade != "0" {
		cidade := f.Cidade
		gf.Cidade = &cidade
	}
	gf.SemFiltro = f.UnidadeID == "" && f.ModalidadeEnsinoID == "" &&
		f.ProfissaoID == "" && f.Cidade == ""
	return gf
}

func filtroInt(v string) (int, bool) {
	if v == "" || v == "0" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func fotoCaderno(hex *string) string {
	if hex != nil && len(*hex) > 3 {
		return `<img class="image-2" src="/md_arquivos/upload/deposito/` + *hex + `">`
	}
	return `<img class="image-2" src="/images/aluno_default.png">`
}

func fotoGrid(hex *string) string {
	if hex != nil && *hex != "" {
		return `<div class="col-md-12 justify-content-center"><img class="image-2 col-md-10" src="/md_arquivos/upload/deposito/` + *hex + `"></div>`
	}
	return `<div class="col-md-12 justify-content-center"><img class="image-2 col-md-10" src="/images/aluno_default.png"></div>`
}

func dadosAtorGrade(nome string, anos *int, anoSessao *string) string {
	dados := nome
	if anos != nil {
		dados += fmt.Sprintf("<br>%d anos", *anos)
	}
	if anoSessao != nil && *anoSessao != "" {
		dados += "<br>SESSÃO ANO:" + *anoSessao
	}
	return dados
}

// ── Auxiliares ───────────────────────────────────────────────────────────────

// idade is the complete-years difference, adjusted down before the birthday.
func idade(nascimento *time.Time, ref time.Time) *int {
	if nascimento == nil {
		return nil
	}
	anos := ref.Year() - nascimento.Year()
	if ref.Month() < nascimento.Month() ||
		(ref.Month() == nascimento.Month() && ref.Day() < nascimento.Day()) {
		anos--
	}
	return &anos
}

func hashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), 12)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

var transformadorAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func removeAcentos(s string) string {
	limpo, _, err := transform.String(transformadorAcentos, s)
	if err != nil {
		return s
	}
	return limpo
}

func parseData(v string) (*time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDataOpcional(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	return parseData(v)
}

func fmtData(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format("2006-01-02")
	return &v
}

func hoje() time.Time {
	ano, mes, dia := time.Now().Date()
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

func naoEncontrado(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(msg)
	}
	var de *apierror.Error
	if errors.As(err, &de) {
		return err
	}
	return apierror.Internal("Erro ao consultar o banco de dados")
}

func idNomes(rows []repository.IdNomeRow) []dto.IdNomeResponse {
	out := make([]dto.IdNomeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.IdNomeResponse{ID: r.ID, Nome: r.Nome})
	}
	return out
}

func ptr(v int) *int { return &v }

func strOuNil(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
