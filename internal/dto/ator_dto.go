package dto

// Dates travel as "YYYY-MM-DD" strings and are parsed in the service layer,
// so a malformed date is a validation failure, not a JSON bind failure.

// CriarAtorRequest is the create payload. The responsavel block is only
// consulted when TipoVinculo is nonzero.
type CriarAtorRequest struct {
	Nome                  string  `json:"nome" validate:"required,max=255"`
	CPF                   *string `json:"cpf" validate:"omitempty,max=14"`
	AnoSessao             *string `json:"ano_sessao" validate:"omitempty,max=4"`
	DataNascimento        string  `json:"data_nascimento" validate:"required,datetime=2006-01-02"`
	DataInicioIntervencao string  `json:"data_inicio_intervencao" validate:"omitempty,datetime=2006-01-02"`
	RegProfissional       *string `json:"reg_profissional"`
	Email                 string  `json:"email" validate:"required,contains=@"`
	TelefoneCel           *string `json:"telefone_cel"`
	TelefoneFixo          *string `json:"telefone_fixo"`
	IdiomaID              *int    `json:"idioma_id"`
	UnidadeID             int     `json:"unidade_id" validate:"required"`
	ProfissaoID           int     `json:"profissao_id" validate:"required"`
	Endereco              *string `json:"endereco"`
	Cidade                *string `json:"cidade"`
	Estado                *string `json:"estado"`
	Pais                  *string `json:"pais"`
	HexadecimalFoto       *string `json:"hexadecimal_foto"`
	ModalidadeEnsinoID    *int    `json:"modalidade_ensino_id"`
	Status                int     `json:"status" validate:"required"`

	Usuario      string `json:"usuario" validate:"required"`
	Senha        string `json:"senha" validate:"required"`
	GrupoUsuario int    `json:"grupo_usuario"`

	TipoVinculo            int     `json:"tipo_vinculo"`
	NomeResponsavel        *string `json:"nome_responsavel"`
	EmailResponsavel       *string `json:"email_responsavel"`
	TelefoneCelResponsavel *string `json:"telefone_cel_responsavel"`
	LoginResponsavel       *string `json:"login_responsavel"`
	SenhaResponsavel       *string `json:"senha_responsavel"`
}

// AtualizarAtorRequest is the full-replacement update payload. Fields that
// are required on create (birth date, username, password) are relaxed here.
type AtualizarAtorRequest struct {
	Nome                  string  `json:"nome" validate:"required,max=255"`
	CPF                   *string `json:"cpf" validate:"omitempty,max=14"`
	AnoSessao             *string `json:"ano_sessao" validate:"omitempty,max=4"`
	DataNascimento        string  `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	DataInicioIntervencao string  `json:"data_inicio_intervencao" validate:"omitempty,datetime=2006-01-02"`
	RegProfissional       *string `json:"reg_profissional"`
	Email                 string  `json:"email" validate:"required,contains=@"`
	TelefoneCel           *string `json:"telefone_cel"`
	TelefoneFixo          *string `json:"telefone_fixo"`
	IdiomaID              *int    `json:"idioma_id"`
	UnidadeID             int     `json:"unidade_id" validate:"required"`
	ProfissaoID           int     `json:"profissao_id" validate:"required"`
	Endereco              *string `json:"endereco"`
	Cidade                *string `json:"cidade"`
	Estado                *string `json:"estado"`
	Pais                  *string `json:"pais"`
	HexadecimalFoto       *string `json:"hexadecimal_foto"`
	ModalidadeEnsinoID    *int    `json:"modalidade_ensino_id"`
	Status                int     `json:"status" validate:"required"`

	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

// PerfilAtorRequest is the partial profile patch: absent fields keep the
// stored values.
type PerfilAtorRequest struct {
	Nome                  *string `json:"nome" validate:"omitempty,max=255"`
	CPF                   *string `json:"cpf" validate:"omitempty,max=14"`
	AnoSessao             *string `json:"ano_sessao" validate:"omitempty,max=4"`
	DataNascimento        *string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	DataInicioIntervencao *string `json:"data_inicio_intervencao" validate:"omitempty,datetime=2006-01-02"`
	RegProfissional       *string `json:"reg_profissional"`
	Email                 *string `json:"email" validate:"omitempty,contains=@"`
	TelefoneCel           *string `json:"telefone_cel"`
	TelefoneFixo          *string `json:"telefone_fixo"`
	IdiomaID              *int    `json:"idioma_id"`
	UnidadeID             *int    `json:"unidade_id"`
	ProfissaoID           *int    `json:"profissao_id"`
	Endereco              *string `json:"endereco"`
	Cidade                *string `json:"cidade"`
	Estado                *string `json:"estado"`
	Pais                  *string `json:"pais"`
	HexadecimalFoto       *string `json:"hexadecimal_foto"`
	ModalidadeEnsinoID    *int    `json:"modalidade_ensino_id"`
	Status                *int    `json:"status"`

	Usuario *string `json:"usuario"`
	Senha   *string `json:"senha"`
}

// AtorFilter carries the grid query params. Values arrive as strings because
// the callers send "0"/"" to mean "no filter".
type AtorFilter struct {
	UnidadeID          string `form:"unidade_id"`
	ModalidadeEnsinoID string `form:"modalidade_ensino_id"`
	ProfissaoID        string `form:"profissao_id"`
	Cidade             string `form:"cidade"`
}

type IdNomeResponse struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

type AtorTipoResponse struct {
	ID   int     `json:"id"`
	Nome string  `json:"nome"`
	Tipo *string `json:"tipo"`
}

type DadosMensageriaResponse struct {
	ID              int     `json:"id"`
	Nome            string  `json:"nome"`
	DataNascimento  *string `json:"data_nascimento"`
	TelefoneCel     *string `json:"telefone_cel"`
	Email           string  `json:"email"`
	Idade           *int    `json:"idade"`
	HexadecimalFoto *string `json:"hexadecimal_foto"`
	Escola          *string `json:"escola"`
}

type DadosCompletosResponse struct {
	ID                int     `json:"id"`
	Nome              string  `json:"nome"`
	DataNascimento    *string `json:"data_nascimento"`
	TelefoneCel       *string `json:"telefone_cel"`
	Idade             *int    `json:"idade"`
	HexadecimalFoto   *string `json:"hexadecimal_foto"`
	Responsavel       *string `json:"responsavel"`
	DataInicio        *string `json:"data_inicio"`
	ParInteracional   *string `json:"par_interacional"`
	Professor         *string `json:"professor"`
	Psicologo         *string `json:"psicologo"`
	Escola            *string `json:"escola"`
	Cidade            *string `json:"cidade"`
	LogoEscola        *string `json:"logo_escola"`
	ResponsavelID     *int    `json:"responsavel_id"`
	ParInteracionalID *int    `json:"par_interacional_id"`
	ProfessorID       *int    `json:"professor_id"`
	PsicologoID       *int    `json:"psicologo_id"`
}

type DadosPesquisaResponse struct {
	ID                    int     `json:"id"`
	Nome                  string  `json:"nome"`
	DataNascimento        *string `json:"data_nascimento"`
	HexadecimalFoto       *string `json:"hexadecimal_foto"`
	DataInicioIntervencao *string `json:"data_inicio_intervencao"`
	AnoSessao             *string `json:"ano_sessao"`
	Responsavel           *string `json:"responsavel"`
	DataInicio            *string `json:"data_inicio"`
	Idade                 *int    `json:"idade"`
	ParInteracional       *string `json:"par_interacional"`
	Professor             *string `json:"professor"`
	Psicologo             *string `json:"psicologo"`
	EmailPsicologo        *string `json:"email_psicologo"`
	CodigoPsicologo       *int    `json:"codigo_psicologo"`
	Instituicao           *string `json:"instituicao"`
	Municipio             *string `json:"municipio"`
	ResponsavelID         *int    `json:"responsavel_id"`
	ParInteracionalID     *int    `json:"par_interacional_id"`
	ProfessorID           *int    `json:"professor_id"`
	PsicologoID           *int    `json:"psicologo_id"`
}

type DadosPesquisaAppResponse struct {
	Responsavel *string `json:"responsavel"`
	ID          int     `json:"id"`
	Foto        *string `json:"foto"`
	Email       *string `json:"email"`
	Profissao   *string `json:"profissao"`
	Tipo        *int    `json:"tipo"`
	Vinculo     *string `json:"vinculo"`
	AlunoID     *int    `json:"aluno_id"`
	Sessao      *string `json:"sessao"`
	Titulo      *string `json:"titulo"`
	Aluno       *string `json:"aluno"`
}

// AtorPorEmailResponse is the reduced payload of the lookup-by-email route.
type AtorPorEmailResponse struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type NomeImagemResponse struct {
	Nome            string  `json:"nome"`
	HexadecimalFoto *string `json:"hexadecimal_foto"`
}

type AlunoPorResponsavelResponse struct {
	Responsavel *string `json:"responsavel"`
	ID          int     `json:"id"`
	Email       *string `json:"email"`
	TelefoneCel *string `json:"telefone_cel"`
	AlunoID     *int    `json:"aluno_id"`
}

// CadernoAtividadesItem is one row of the activity-notebook grid.
type CadernoAtividadesItem struct {
	ID          int     `json:"id"`
	Nome        string  `json:"nome"`
	Idade       *int    `json:"idade"`
	Foto        string  `json:"foto"`
	DadosAtor   string  `json:"dados_ator"`
	Modalidade  *string `json:"modalidade"`
	Tipo        *string `json:"tipo"`
	Instituicao *string `json:"instituicao"`
	Municipio   *string `json:"municipio"`
	Parecer     *string `json:"parecer"`
	Status      *string `json:"status"`
}

// GridFiltroItem is one row of the filterable actor grid.
type GridFiltroItem struct {
	ID          int     `json:"id"`
	Foto        string  `json:"foto"`
	DadosAtor   string  `json:"dados_ator"`
	Modalidade  *string `json:"modalidade"`
	Tipo        *string `json:"tipo"`
	Instituicao *string `json:"instituicao"`
	Municipio   *string `json:"municipio"`
	Parecer     *string `json:"parecer"`
	Status      *string `json:"status"`
}

// GridItem is one row of the unfiltered grid.
type GridItem struct {
	ID          int     `json:"id"`
	DadosAtor   string  `json:"dados_ator"`
	Modalidade  *string `json:"modalidade"`
	Tipo        *string `json:"tipo"`
	Instituicao *string `json:"instituicao"`
}

// ItensModuloUsuarioResponse mirrors the legacy uppercase field map consumed
// by the user-module screens.
type ItensModuloUsuarioResponse struct {
	ID                    int     `json:"ID"`
	Nome                  string  `json:"NOME"`
	CPF                   *string `json:"CPF"`
	AnoSessao             *string `json:"ANO_SESSAO"`
	DataNascimento        *string `json:"DATANASCIMENTO"`
	DataInicioIntervencao *string `json:"DATAINICIOINTERVENCAO"`
	RegProfissional       *string `json:"REGPROFISSIONAL"`
	Email                 string  `json:"EMAIL"`
	TelefoneCel           *string `json:"TELEFONECEL"`
	TelefoneFixo          *string `json:"TELEFONEFIXO"`
	IdiomaID              *int    `json:"IDIOMAID"`
	UnidadeID             *int    `json:"UNIDADEID"`
	ProfissaoID           *int    `json:"PROFISSAOID"`
	Endereco              *string `json:"ENDERECO"`
	Cidade                *string `json:"CIDADE"`
	Estado                *string `json:"ESTADO"`
	Pais                  *string `json:"PAIS"`
	HexadecimalFoto       *string `json:"HEXADECIMALFOTO"`
	ModalidadeEnsinoID    *int    `json:"MODALIDADEENSINOID"`
	Status                int     `json:"STATUS"`
	Usuario               *string `json:"USUARIO"`
	CodGrupoUsuario       *int    `json:"COD_GRUPO_USUARIO"`
}
