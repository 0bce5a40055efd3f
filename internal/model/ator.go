package model

import "time"

// Status codes shared by Ator.Status and Usuario.CodStatus.
const (
	StatusAtivo   = 1
	StatusInativo = 2 // soft-deleted; excluded from every active listing
)

// Profession codes carried over from the legacy schema.
const (
	ProfissaoAluno        = 1
	ProfissaoInteracional = 2
	ProfissaoPsicologo    = 3
	ProfissaoProfessor    = 4
	ProfissaoResponsavel  = 28
	ProfissaoChatGlobal   = 100
)

// Ator is a person record: student, professional or guardian.
type Ator struct {
	ID                    int        `gorm:"primaryKey" json:"id"`
	Nome                  string     `gorm:"size:255;not null" json:"nome"`
	CPF                   *string    `gorm:"column:cpf;size:14" json:"cpf"`
	AnoSessao             *string    `gorm:"size:4" json:"ano_sessao"`
	DataNascimento        *time.Time `gorm:"type:date" json:"data_nascimento"`
	DataInicioIntervencao *time.Time `gorm:"type:date" json:"data_inicio_intervencao"`
	RegProfissional       *string    `gorm:"size:255" json:"reg_profissional"`
	Email                 string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	TelefoneCel           *string    `gorm:"size:20" json:"telefone_cel"`
	TelefoneFixo          *string    `gorm:"size:20" json:"telefone_fixo"`
	IdiomaID              *int       `json:"idioma_id"`
	UnidadeID             *int       `json:"unidade_id"`
	ProfissaoID           *int       `json:"profissao_id"`
	Endereco              *string    `gorm:"size:255" json:"endereco"`
	Cidade                *string    `gorm:"size:100" json:"cidade"`
	Estado                *string    `gorm:"size:100" json:"estado"`
	Pais                  *string    `gorm:"size:100" json:"pais"`
	HexadecimalFoto       *string    `gorm:"size:255" json:"hexadecimal_foto"`
	ModalidadeEnsinoID    *int       `json:"modalidade_ensino_id"`
	Status                int        `json:"status"`
}

func (Ator) TableName() string { return "ator" }
