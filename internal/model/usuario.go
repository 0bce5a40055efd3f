package model

// Usuario is the login account paired 1:1 with an Ator through the email
// column. Senha holds a bcrypt hash; the legacy reversible encoding was
// dropped on purpose.
type Usuario struct {
	Codigo          int     `gorm:"primaryKey" json:"codigo"`
	Usuario         string  `gorm:"size:255;uniqueIndex;not null" json:"usuario"`
	Senha           string  `gorm:"size:255;not null" json:"-"`
	CodEmpresa      *int    `json:"cod_empresa"`
	Nome            *string `gorm:"size:255" json:"nome"`
	Email           string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	CPF             *string `gorm:"column:cpf;size:14" json:"cpf"`
	CodStatus       *int    `json:"cod_status"`
	CodGrupoUsuario *int    `json:"cod_grupo_usuario"`
	CodNivel        *int    `json:"cod_nivel"`
	PrimeiroAcesso  *int    `json:"primeiro_acesso"`
	ErrosLogin      *int    `json:"erros_login"`
}

func (Usuario) TableName() string { return "usuario1" }

// SegUsuario mirrors credentials for the legacy security subsystem.
// CodOrdenacao equals the owning Usuario.Codigo.
type SegUsuario struct {
	ID           int     `gorm:"primaryKey" json:"id"`
	Usuario      *string `gorm:"size:255" json:"usuario"`
	Senha        *string `gorm:"size:255" json:"-"`
	CodStatus    *int    `json:"cod_status"`
	CodOrdenacao *int    `json:"cod_ordenacao"`
}

func (SegUsuario) TableName() string { return "seg_usuario1" }
