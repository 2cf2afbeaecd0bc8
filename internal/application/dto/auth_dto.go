package dto

// LoginRequest credenciais do administrador.
type LoginRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

// LoginResponse token emitido após login.
type LoginResponse struct {
	Token         string `json:"token"`
	ExpiraMinutos int    `json:"expira_minutos"`
}
