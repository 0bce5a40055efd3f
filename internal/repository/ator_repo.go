package repository

import (
	"context"
	"time"

	"github.com/miguelamaral254/api-cognivox-test/internal/model"

	"gorm.io/gorm"
)

// GridFilter is the resolved form of the grid query params. Nil means "no
// filter on that column". SemFiltro is set when the caller supplied no filter
// at all; the legacy behavior then pins unidade_id = 0 so nothing matches.
type GridFilter struct {
	UnidadeID          *int
	ModalidadeEnsinoID *int
	ProfissaoID        *int
	Cidade             *string
	SemFiltro          bool
}

// MensageriaRow is the messaging-payload projection.
type MensageriaRow struct {
	ID              int
	Nome            string
	DataNascimento  *time.Time
	TelefoneCel     *string
	Email           string
	HexadecimalFoto *string
	Escola          *string
}

// CompletoRow is the full-profile projection (one bond and one work plan,
// any matching row).
type CompletoRow struct {
	ID                int
	Nome              string
	DataNascimento    *time.Time
	TelefoneCel       *string
	HexadecimalFoto   *string
	Responsavel       *string
	DataInicio        *time.Time
	ParInteracional   *string
	Professor         *string
	Psicologo         *string
	Escola            *string
	Cidade            *string
	LogoEscola        *string
	ResponsavelID     *int
	ParInteracionalID *int
	ProfessorID       *int
	PsicologoID       *int
}

// PesquisaRow extends CompletoRow with the search-payload columns.
type PesquisaRow struct {
	ID                    int
	Nome                  string
	DataNascimento        *time.Time
	HexadecimalFoto       *string
	DataInicioIntervencao *time.Time
	AnoSessao             *string
	Responsavel           *string
	DataInicio            *time.Time
	ParInteracional       *string
	Professor             *string
	Psicologo             *string
	EmailPsicologo        *string
	CodigoPsicologo       *int
	Instituicao           *string
	Municipio             *string
	ResponsavelID         *int
	ParInteracionalID     *int
	ProfessorID           *int
	PsicologoID           *int
}

// PesquisaAppRow is the app-facing search payload, nesting the earliest
// freshly-created observation session of the dependent.
type PesquisaAppRow struct {
	Responsavel string
	ID          int
	Foto        *string
	Email       *string
	Profissao   *string
	Tipo        *int
	Vinculo     *string
	AlunoID     *int
	Sessao      *string
	Titulo      *string
	Aluno       *string
}

// AlunoResponsavelRow links a guardian to its dependent student.
type AlunoResponsavelRow struct {
	Responsavel string
	ID          int
	Email       *string
	TelefoneCel *string
	AlunoID     *int
}

// GridRow backs both the activity-notebook and the filterable grid listings.
type GridRow struct {
	ID              int
	Nome            string
	DataNascimento  *time.Time
	HexadecimalFoto *string
	AnoSessao       *string
	Modalidade      *string
	Tipo            *string
	Instituicao     *string
	Municipio       *string
	Parecer         *string
	StatusDescricao *string
}

// GridAllRow backs the unfiltered grid listing.
type GridAllRow struct {
	ID          int
	Nome        string
	Email       string
	AnoSessao   *string
	Modalidade  *string
	Tipo        *string
	Instituicao *string
}

type IdNomeRow struct {
	ID   int
	Nome string
}

type TipoRow struct {
	ID   int
	Nome string
	Tipo *string
}

// ItensModuloRow is the actor row joined with its login account.
type ItensModuloRow struct {
	model.Ator
	Usuario         *string
	CodGrupoUsuario *int
}

type AtorRepository interface {
	// Writes. tx-taking methods run inside the caller's transaction.
	Create(ctx context.Context, tx *gorm.DB, a *model.Ator) error
	Save(ctx context.Context, tx *gorm.DB, a *model.Ator) error
	CreateVinculo(ctx context.Context, tx *gorm.DB, v *model.AtorVinculo) error
	UpdatePlanoTrabalhoDataInicio(ctx context.Context, tx *gorm.DB, atorID int, data *time.Time) error

	// Lookups
	FindByID(ctx context.Context, id int) (*model.Ator, error)
	FindByEmail(ctx context.Context, email string) (*model.Ator, error)
	FindByCPF(ctx context.Context, cpf string) (*model.Ator, error)

	// Listings
	All(ctx context.Context) ([]model.Ator, error)
	CountAlunos(ctx context.Context) (int64, error)
	Descriptions(ctx context.Context) ([]IdNomeRow, error)
	ComboNames(ctx context.Context) ([]string, error)
	ComboAll(ctx context.Context) ([]IdNomeRow, error)
	ByUnidade(ctx context.Context, unidadeID int) ([]IdNomeRow, error)
	AlunosByUnidade(ctx context.Context, unidadeID int) ([]IdNomeRow, error)
	AlunosDI(ctx context.Context) ([]model.Ator, error)
	Psicologos(ctx context.Context) ([]model.Ator, error)
	Professores(ctx context.Context) ([]model.Ator, error)
	Responsaveis(ctx context.Context) ([]model.Ator, error)
	Interacionais(ctx context.Context) ([]IdNomeRow, error)
	PsicologosPorCidade(ctx context.Context, cidade string) ([]IdNomeRow, error)
	ChatPorInstituicao(ctx context.Context, unidadeID int) ([]IdNomeRow, error)

	// Projections
	Tipo(ctx context.Context, id int) (*TipoRow, error)
	Mensageria(ctx context.Context, id int) (*MensageriaRow, error)
	Completo(ctx context.Context, id int) (*CompletoRow, error)
	Pesquisa(ctx context.Context, id int) (*PesquisaRow, error)
	PesquisaApp(ctx context.Context, id int) (*PesquisaAppRow, error)
	AlunoPorResponsavel(ctx context.Context, id int) (*AlunoResponsavelRow, error)
	GridRows(ctx context.Context, f GridFilter) ([]GridRow, error)
	GridAll(ctx context.Context) ([]GridAllRow, error)
	Autorizado(ctx context.Context, id int, grupos []int) (string, error)
	ItensModuloUsuario(ctx context.Context, id int) (*ItensModuloRow, error)

	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type atorRepo struct{ db *gorm.DB }

func NewAtorRepository(db *gorm.DB) AtorRepository { return &atorRepo{db: db} }

func (r *atorRepo) DB() *gorm.DB { return r.db }

// ── Writes ───────────────────────────────────────────────────────────────────

func (r *atorRepo) Create(ctx context.Context, tx *gorm.DB, a *model.Ator) error {
	return tx.WithContext(ctx).Create(a).Error
}

func (r *atorRepo) Save(ctx context.Context, tx *gorm.DB, a *model.Ator) error {
	return tx.WithContext(ctx).Save(a).Error
}

func (r *atorRepo) CreateVinculo(ctx context.Context, tx *gorm.DB, v *model.AtorVinculo) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *atorRepo) UpdatePlanoTrabalhoDataInicio(ctx context.Context, tx *gorm.DB, atorID int, data *time.Time) error {
	return tx.WithContext(ctx).Model(&model.PlanoTrabalho{}).
		Where("ator_di_id = ?", atorID).
		Update("data_inicial_interacao", data).Error
}

// ── Lookups ──────────────────────────────────────────────────────────────────

func (r *atorRepo) FindByID(ctx context.Context, id int) (*model.Ator, error) {
	var a model.Ator
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *atorRepo) FindByEmail(ctx context.Context, email string) (*model.Ator, error) {
	var a model.Ator
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error
	return &a, err
}

func (r *atorRepo) FindByCPF(ctx context.Context, cpf string) (*model.Ator, error) {
	var a model.Ator
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&a).Error
	return &a, err
}

// ── Listings ─────────────────────────────────────────────────────────────────

func (r *atorRepo) All(ctx context.Context) ([]model.Ator, error) {
	var atores []model.Ator
	err := r.db.WithContext(ctx).Order("nome").Find(&atores).Error
	return atores, err
}

func (r *atorRepo) CountAlunos(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Ator{}).
		Where("profissao_id = ? AND status <> ?", model.ProfissaoAluno, model.StatusInativo).
		Count(&n).Error
	return n, err
}

func (r *atorRepo) Descriptions(ctx context.Context) ([]IdNomeRow, error) {
	var rows []IdNomeRow
	err := r.db.WithContext(ctx).Model(&model.Ator{}).
		Select("id, nome").Order("id").Scan(&rows).Error
	return rows, err
}

func (r *atorRepo) ComboNames(ctx context.Context) ([]string, error) {
	var nomes []string
	err := r.db.WithContext(ctx).Model(&model.Ator{}).
		Order("nome").Pluck("nome", &nomes).Error
	return nomes, err
}

func (r *atorRepo) ComboAll(ctx context.Context) ([]IdNomeRow, error) {
	var rows []IdNomeRow
	err := r.db.WithContext(ctx).Model(&model.Ator{}).
		Select("id, nome").Where("status <> ?", model.StatusInativo).
		Order("nome").Scan(&rows).Error
	return rows, err
}

func (r *atorRepo) ByUnidade(ctx context.Context, unidadeID int) ([]IdNomeRow, error) {
	var rows []IdNomeRow
	err := r.db.WithContext(ctx).Model(&model.Ator{}).
		Select("id, nome").
		Where("unidade_id = ? AND status <> ?", unidadeID, model.StatusInativo).
		Order("nome").Scan(&rows).Error
	return rows, err
}

func (r *atorRepo) AlunosByUnidade(ctx context.Context, unidadeID int) ([]IdNomeRow, error) {
	var rows []IdNomeRow
	err := r.db.WithContext(ctx).Model(&model.Ator{}).
		Select("id, nome").
		Where("unidade_id = ? AND status <> ? AND profissao_id = ?",
			unidadeID, model.StatusInativo, model.ProfissaoAluno).
		Order("nome").Scan(&rows).Error
	return rows, err
}

func (r *atorRepo) listByProfissao(ctx context.Context, cond string, args ...interface{}) ([]model.Ator, error) {
	var atores []model.Ator
	err := r.db.WithContext(ctx).
		Where("status <> ?", model.StatusInativo).
		Where(cond, args...).
		Order("nome").Find(&atores).Error
	return atores, err
}

func (r *atorRepo) AlunosDI(ctx context.Context) ([]model.Ator, error) {
	return r.listByProfissao(ctx, "profissao_id = ?", model.ProfissaoAluno)
}

func (r *atorRepo) Psicologos(ctx context.Context) ([]model.Ator, error) {
	return r.listByProfissao(ctx, "profissao_id = ?", model.ProfissaoPsicologo)
}

func (r *atorRepo) Professores(ctx context.Context) ([]model.Ator, error) {
	return r.listByProfissao(ctx, "profissao_id = ?", model.ProfissaoProfessor)
}

func (r *atorRepo) Responsaveis(ctx context.Context) ([]model.Ator, error) {
	return r.listByProfissao(ctx, "profissao_id NOT IN ?", []int{
		model.ProfissaoAluno, model.ProfissaoInteracional,
		model.ProfissaoPsicologo, model.ProfissaoProfessor,
	})
}

// Interacionais unions actors with the interactional profession and actors
// that sit on the guardian side of any bond.
func (r *atorRepo) Interacionais(ctx context.Context) ([]IdNomeRow, error) {
	var rows []IdNomeRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT a.id, a.nome FROM ator a
		WHERE a.status <> ? AND a.profissao_id = ?
		UNION
		SELECT a.id, a.nome FROM ator a
		JOIN ator_vinculo_di av ON a.id = av.ator_id
		ORDER BY nome`,
		model.StatusInativo, model.ProfissaoInteracional).Scan(&rows).Error
	return rows, err
}

// PsicologosPorCidade resolves city → units → active students → work plans →
// distinct psychologists.
func (r *atorRepo) PsicologosPorCidade(ctx context.Context, cidade string) ([]IdNomeRow, error) {
	var rows []IdNomeRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT a.id, a.nome FROM ator a
		WHERE a.id IN (
			SELECT pt.ator_psicologo_id FROM plano_trabalho pt
			WHERE pt.ator_di_id IN (
				SELECT al.id FROM ator al
				WHERE al.status <> ? AND al.profissao_id = ? AND al.unidade_id IN (
					SELECT u.id FROM unidade u WHERE u.cidade = ?))
			GROUP BY pt.ator_psicologo_id)
		ORDER BY a.nome`,
		model.StatusInativo, model.ProfissaoAluno, cidade).Scan(&rows).Error
	return rows, err
}

// ChatPorInstituicao unions unit-scoped guardians/psychologists with the
// global chat profiles.
func (r *atorRepo) ChatPorInstituicao(ctx context.Context, unidadeID int) ([]IdNomeRow, error) {
	var rows []IdNomeRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT a.id, a.nome FROM ator a
		WHERE a.unidade_id = ? AND a.status <> ? AND a.profissao_id IN (?, ?)
		UNION
		SELECT a.id, a.nome FROM ator a
		WHERE a.status <> ? AND a.profissao_id = ?
		ORDER BY nome`,
		unidadeID, model.StatusInativo, model.ProfissaoResponsavel, model.ProfissaoPsicologo,
		model.StatusInativo, model.ProfissaoChatGlobal).Scan(&rows).Error
	return rows, err
}

// ── Projections ──────────────────────────────────────────────────────────────

// scanOne runs q and maps zero rows to gorm.ErrRecordNotFound, which Scan
// alone does not report.
func scanOne(q *gorm.DB, dest interface{}) error {
	res := q.Scan(dest)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *atorRepo) Tipo(ctx context.Context, id int) (*TipoRow, error) {
	var row TipoRow
	q := r.db.WithContext(ctx).Table("ator").
		Select("ator.id, ator.nome, profissao.descricao AS tipo").
		Joins("LEFT JOIN profissao ON profissao.id = ator.profissao_id").
		Where("ator.status <> ? AND ator.id = ?", model.StatusInativo, id).
		Limit(1)
	if err := scanOne(q, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *atorRepo) Mensageria(ctx context.Context, id int) (*MensageriaRow, error) {
	var row MensageriaRow
	q := r.db.WithContext(ctx).Table("ator").
		Select(`ator.id, ator.nome, ator.data_nascimento, ator.telefone_cel, ator.email,
			ator.hexadecimal_foto, unidade.nome_instituicao AS escola`).
		Joins("LEFT JOIN unidade ON unidade.id = ator.unidade_id").
		Where("ator.id = ?", id).
		Limit(1)
	if err := scanOne(q, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *atorRepo) Completo(ctx context.Context, id int) (*CompletoRow, error) {
	var row CompletoRow
	q := r.db.WithContext(ctx).Raw(`
		SELECT ator.id, ator.nome, ator.data_nascimento, ator.telefone_cel, ator.hexadecimal_foto,
			a_resp.nome || ' ' || tipo_vinculo.descricao AS responsavel,
			plano_trabalho.data_inicial_interacao AS data_inicio,
			a_int.nome AS par_interacional,
			a_prof.nome AS professor,
			a_psico.nome AS psicologo,
			unidade.nome_instituicao AS escola,
			unidade.cidade,
			unidade.logoinstituicao AS logo_escola,
			ator_vinculo_di.ator_id AS responsavel_id,
			plano_trabalho.ator_interacional_id AS par_interacional_id,
			plano_trabalho.ator_professor_id AS professor_id,
			plano_trabalho.ator_psicologo_id AS psicologo_id
		FROM ator
		JOIN ator_vinculo_di ON ator_vinculo_di.ator_di_id = ator.id
		JOIN tipo_vinculo ON tipo_vinculo.id = ator_vinculo_di.tipo_vinculo_id
		JOIN plano_trabalho ON plano_trabalho.ator_di_id = ator.id
		LEFT JOIN ator a_resp ON a_resp.id = ator_vinculo_di.ator_id
		LEFT JOIN ator a_int ON a_int.id = plano_trabalho.ator_interacional_id
		LEFT JOIN ator a_prof ON a_prof.id = plano_trabalho.ator_professor_id
		LEFT JOIN ator a_psico ON a_psico.id = plano_trabalho.ator_psicologo_id
		LEFT JOIN unidade ON unidade.id = ator.unidade_id
		WHERE ator.id = ?
		LIMIT 1`, id)
	if err := scanOne(q, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *atorRepo) Pesquisa(ctx context.Context, id int) (*PesquisaRow, error) {
	var row PesquisaRow
	q := r.db.WithContext(ctx).Raw(`
		SELECT ator.id, ator.nome, ator.data_nascimento, ator.hexadecimal_foto,
			ator.data_inicio_intervencao, ator.ano_sessao,
			a_resp.nome || ' ' || tipo_vinculo.descricao AS responsavel,
			plano_trabalho.data_inicial_interacao AS data_inicio,
			a_int.nome AS par_interacional,
			a_prof.nome AS professor,
			a_psico.nome AS psicologo,
			a_psico.email AS email_psicologo,
			a_psico.id AS codigo_psicologo,
			unidade.nome_instituicao AS instituicao,
			unidade.cidade || '-' || unidade.estado AS municipio,
			ator_vinculo_di.ator_id AS responsavel_id,
			plano_trabalho.ator_interacional_id AS par_interacional_id,
			plano_trabalho.ator_professor_id AS professor_id,
			plano_trabalho.ator_psicologo_id AS psicologo_id
		FROM ator
		JOIN ator_vinculo_di ON ator_vinculo_di.ator_di_id = ator.id
		JOIN tipo_vinculo ON tipo_vinculo.id = ator_vinculo_di.tipo_vinculo_id
		JOIN plano_trabalho ON plano_trabalho.ator_di_id = ator.id
		LEFT JOIN ator a_resp ON a_resp.id = ator_vinculo_di.ator_id
		LEFT JOIN ator a_int ON a_int.id = plano_trabalho.ator_interacional_id
		LEFT JOIN ator a_prof ON a_prof.id = plano_trabalho.ator_professor_id
		LEFT JOIN ator a_psico ON a_psico.id = plano_trabalho.ator_psicologo_id
		LEFT JOIN unidade ON unidade.id = ator.unidade_id
		WHERE ator.id = ?
		LIMIT 1`, id)
	if err := scanOne(q, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *atorRepo) PesquisaApp(ctx context.Context, id int) (*PesquisaAppRow, error) {
	var row PesquisaAppRow
	q := r.db.WithContext(ctx).Raw(`
		SELECT ator.nome AS responsavel, ator.id, ator.hexadecimal_foto AS foto, ator.email,
			profissao.descricao AS profissao,
			ator.profissao_id AS tipo,
			tipo_vinculo.descricao AS vinculo,
			ator_vinculo_di.ator_di_id AS aluno_id,
			so2.descricao AS sessao,
			so2.titulo_sessao AS titulo,
			a2.nome AS aluno
		FROM ator
		LEFT JOIN profissao ON profissao.id = ator.profissao_id
		LEFT JOIN ator_vinculo_di ON ator_vinculo_di.ator_id = ator.id
		LEFT JOIN tipo_vinculo ON tipo_vinculo.id = ator_vinculo_di.tipo_vinculo_id
		LEFT JOIN sessao_observacao so2 ON so2.id = (
			SELECT MIN(s.id) FROM sessao_observacao s
			WHERE s.ator_id = ator_vinculo_di.ator_di_id AND s.status = ?)
		LEFT JOIN ator a2 ON a2.id = ator_vinculo_di.ator_di_id
		WHERE ator.id = ?
		LIMIT 1`, model.SessaoStatusCriado, id)
	if err := scanOne(q, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *atorRepo) AlunoPorResponsavel(ctx context.Context, id int) (*AlunoResponsavelRow, error) {
	var row AlunoResponsavelRow
	q := r.db.WithContext(ctx).Raw(`
		SELECT ator.nome AS responsavel, ator.id, ator.email, ator.telefone_cel,
			ator_vinculo_di.ator_di_id AS aluno_id
		FROM ator
		LEFT JOIN ator_vinculo_di ON ator_vinculo_di.ator_id = ator.id
		WHERE ator.id = ?
		LIMIT 1`, id)
	if err := scanOne(q, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *atorRepo) GridRows(ctx context.Context, f GridFilter) ([]GridRow, error) {
	q := r.db.WithContext(ctx).Table("ator").
		Select(`ator.id, ator.nome, ator.data_nascimento, ator.hexadecimal_foto, ator.ano_sessao,
			modalidade_ensino.descricao AS modalidade,
			profissao.descricao AS tipo,
			unidade.nome_instituicao AS instituicao,
			unidade.cidade AS municipio,
			parecer_psicologico.descricao AS parecer,
			status.descricao AS status_descricao`).
		Joins("LEFT JOIN modalidade_ensino ON modalidade_ensino.id = ator.modalidade_ensino_id").
		Joins("LEFT JOIN profissao ON profissao.id = ator.profissao_id").
		Joins("LEFT JOIN unidade ON unidade.id = ator.unidade_id").
		Joins("LEFT JOIN quadro_psicopedagogico ON quadro_psicopedagogico.ator_id = ator.id").
		Joins("LEFT JOIN parecer_psicologico ON parecer_psicologico.id = quadro_psicopedagogico.parecer_psicologico_id").
		Joins("LEFT JOIN status ON status.codigo = ator.status").
		Where("ator.status <> ?", model.StatusInativo)

	if f.SemFiltro {
		q = q.Where("ator.unidade_id = 0")
	}
	if f.UnidadeID != nil {
		q = q.Where("ator.unidade_id = ?", *f.UnidadeID)
	}
	if f.ModalidadeEnsinoID != nil {
		q = q.Where("ator.modalidade_ensino_id = ?", *f.ModalidadeEnsinoID)
	}
	if f.ProfissaoID != nil {
		q = q.Where("ator.profissao_id = ?", *f.ProfissaoID)
	}
	if f.Cidade != nil {
		q = q.Where("unidade.cidade = ?", *f.Cidade)
	}

	var rows []GridRow
	err := q.Order("ator.nome").Scan(&rows).Error
	return rows, err
}

func (r *atorRepo) GridAll(ctx context.Context) ([]GridAllRow, error) {
	var rows []GridAllRow
	err := r.db.WithContext(ctx).Table("ator").
		Select(`ator.id, ator.nome, ator.email, ator.ano_sessao,
			modalidade_ensino.descricao AS modalidade,
			profissao.descricao AS tipo,
			unidade.nome_instituicao AS instituicao`).
		Joins("LEFT JOIN modalidade_ensino ON modalidade_ensino.id = ator.modalidade_ensino_id").
		Joins("LEFT JOIN profissao ON profissao.id = ator.profissao_id").
		Joins("LEFT JOIN unidade ON unidade.id = ator.unidade_id").
		Where("ator.status <> ?", model.StatusInativo).
		Order("ator.nome").Scan(&rows).Error
	return rows, err
}

// Autorizado returns the actor name when a login account with the same email
// exists in one of the given role groups.
func (r *atorRepo) Autorizado(ctx context.Context, id int, grupos []int) (string, error) {
	var row struct{ Nome string }
	q := r.db.WithContext(ctx).Table("ator").
		Select("ator.nome").
		Joins("JOIN usuario1 ON usuario1.email = ator.email").
		Where("ator.id = ? AND usuario1.cod_grupo_usuario IN ?", id, grupos).
		Limit(1)
	if err := scanOne(q, &row); err != nil {
		return "", err
	}
	return row.Nome, nil
}

func (r *atorRepo) ItensModuloUsuario(ctx context.Context, id int) (*ItensModuloRow, error) {
	var row ItensModuloRow
	q := r.db.WithContext(ctx).Table("ator").
		Select("ator.*, usuario1.usuario, usuario1.cod_grupo_usuario").
		Joins("JOIN usuario1 ON usuario1.email = ator.email").
		Where("ator.id = ?", id).
		Limit(1)
	if err := scanOne(q, &row); err != nil {
		return nil, err
	}
	return &row, nil
}
