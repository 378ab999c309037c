package financing

import (
	"errors"
	"fmt"
)

var (
	// Erros do gerador de parcelas
	ErrInvalidTotal        = errors.New("valor total deve ser maior que zero")
	ErrInvalidInstallments = errors.New("quantidade de parcelas deve ser pelo menos 1")
	ErrDueDateCount        = errors.New("quantidade de vencimentos difere da quantidade de parcelas")

	// Erros do livro financeiro
	ErrMonthClosed   = errors.New("mês de referência já está fechado")
	ErrEntryNotFound = errors.New("lançamento não encontrado")
)

// FinanceError é um erro com contexto adicional do livro financeiro
type FinanceError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *FinanceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica se o erro veio de entrada inválida do gerador
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTotal) ||
		errors.Is(err, ErrInvalidInstallments) ||
		errors.Is(err, ErrDueDateCount)
}

// NewFinanceError cria um novo erro do livro financeiro
func NewFinanceError(baseErr error, code string, details string) *FinanceError {
	return &FinanceError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
