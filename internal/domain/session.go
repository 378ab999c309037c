package domain

import "github.com/golang-jwt/jwt/v5"

// Claims é a sessão da operadora. A loja tem uma única credencial
// compartilhada, então o token carrega apenas a identificação da sessão.
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}
