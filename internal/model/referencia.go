package model

// Read-only reference tables joined into projections.

type Unidade struct {
	ID              int     `gorm:"primaryKey" json:"id"`
	NomeInstituicao *string `gorm:"size:255" json:"nome_instituicao"`
	Cidade          *string `gorm:"size:255" json:"cidade"`
	Estado          *string `gorm:"size:255" json:"estado"`
	LogoInstituicao *string `gorm:"column:logoinstituicao;size:255" json:"logoinstituicao"`
}

func (Unidade) TableName() string { return "unidade" }

type Profissao struct {
	ID        int     `gorm:"primaryKey" json:"id"`
	Descricao *string `gorm:"size:255" json:"descricao"`
}

func (Profissao) TableName() string { return "profissao" }

type ModalidadeEnsino struct {
	ID        int     `gorm:"primaryKey" json:"id"`
	Descricao *string `gorm:"size:255" json:"descricao"`
}

func (ModalidadeEnsino) TableName() string { return "modalidade_ensino" }

type TipoVinculo struct {
	ID        int     `gorm:"primaryKey" json:"id"`
	Descricao *string `gorm:"size:255" json:"descricao"`
}

func (TipoVinculo) TableName() string { return "tipo_vinculo" }

// Status descriptions keyed by the same codes used in Ator.Status.
type Status struct {
	Codigo    int     `gorm:"primaryKey" json:"codigo"`
	Descricao *string `gorm:"size:255" json:"descricao"`
}

func (Status) TableName() string { return "status" }

type ParecerPsicologico struct {
	ID        int     `gorm:"primaryKey" json:"id"`
	Descricao *string `gorm:"size:255" json:"descricao"`
}

func (ParecerPsicologico) TableName() string { return "parecer_psicologico" }
