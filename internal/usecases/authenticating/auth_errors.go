package authenticating

import "errors"

var (
	ErrInvalidCredentials = errors.New("senha incorreta")
	ErrMissingPassword    = errors.New("senha é obrigatória")
	ErrInvalidToken       = errors.New("token inválido")
	ErrNoPasswordSet      = errors.New("nenhuma senha de acesso configurada")
)
