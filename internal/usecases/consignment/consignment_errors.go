package consignment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyBag           = errors.New("mala sem peças")
	ErrBagNotFound        = errors.New("mala não encontrada")
	ErrBagNotOpen         = errors.New("mala não está aberta")
	ErrCustomerNotFound   = errors.New("cliente não encontrada")
	ErrUnitNotAvailable   = errors.New("peça não está disponível")
	ErrMissingDecision    = errors.New("peça da mala sem decisão de acerto")
	ErrDecisionOutsideBag = errors.New("decisão para peça que não está na mala")
)

// DecisionError lista as peças cujo acerto ficou incompleto
type DecisionError struct {
	Err error
	IDs []string
}

func (e *DecisionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), strings.Join(e.IDs, ", "))
}

func (e *DecisionError) Unwrap() error {
	return e.Err
}
