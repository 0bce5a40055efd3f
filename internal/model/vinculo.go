package model

// AtorVinculo links a guardian (AtorID) to a dependent actor (AtorDiID)
// with a typed bond.
type AtorVinculo struct {
	ID            int  `gorm:"primaryKey" json:"id"`
	AtorID        *int `json:"ator_id"`
	AtorDiID      *int `gorm:"column:ator_di_id" json:"ator_di_id"`
	TipoVinculoID *int `json:"tipo_vinculo_id"`
}

func (AtorVinculo) TableName() string { return "ator_vinculo_di" }
