package model

// SessaoObservacao status value that marks a session as freshly created.
const SessaoStatusCriado = "Criado"

type SessaoObservacao struct {
	ID           int     `gorm:"primaryKey" json:"id"`
	AtorID       *int    `json:"ator_id"`
	Descricao    *string `gorm:"size:255" json:"descricao"`
	TituloSessao *string `gorm:"size:255" json:"titulo_sessao"`
	Status       *string `gorm:"size:50" json:"status"`
}

func (SessaoObservacao) TableName() string { return "sessao_observacao" }
