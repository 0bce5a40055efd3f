package model

// QuadroPsicopedagogico ties an actor to a psychological opinion record.
type QuadroPsicopedagogico struct {
	ID                   int  `gorm:"primaryKey" json:"id"`
	AtorID               *int `json:"ator_id"`
	ParecerPsicologicoID *int `json:"parecer_psicologico_id"`
}

func (QuadroPsicopedagogico) TableName() string { return "quadro_psicopedagogico" }
