package dto

type LoginRequest struct {
	Usuario string `json:"usuario" validate:"required"`
	Senha   string `json:"senha" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
