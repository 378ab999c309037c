package inventory

import "errors"

var (
	ErrMissingName     = errors.New("nome do produto é obrigatório")
	ErrInvalidSize     = errors.New("tamanho inválido")
	ErrInvalidQuantity = errors.New("quantidade deve ser pelo menos 1")
	ErrInvalidPrice    = errors.New("preço de venda deve ser maior que zero")
	ErrProductNotFound = errors.New("produto não encontrado")
)
