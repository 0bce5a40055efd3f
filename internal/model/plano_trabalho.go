package model

import "time"

// PlanoTrabalho assigns the supporting roles (interactional partner,
// professor, psychologist) to a dependent actor.
type PlanoTrabalho struct {
	ID                   int        `gorm:"primaryKey" json:"id"`
	AtorDiID             *int       `gorm:"column:ator_di_id" json:"ator_di_id"`
	DataInicialInteracao *time.Time `gorm:"type:date" json:"data_inicial_interacao"`
	AtorInteracionalID   *int       `json:"ator_interacional_id"`
	AtorProfessorID      *int       `json:"ator_professor_id"`
	AtorPsicologoID      *int       `json:"ator_psicologo_id"`
}

func (PlanoTrabalho) TableName() string { return "plano_trabalho" }
