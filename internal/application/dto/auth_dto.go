package dto

// LoginRequest entrada para login. El contrato es form-encoded (username,
// password); los tags json permiten además cuerpo JSON con los mismos campos.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse salida de login: bearer token firmado.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
