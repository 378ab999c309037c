package selling

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart         = errors.New("venda sem itens")
	ErrInvalidQuantity   = errors.New("quantidade deve ser pelo menos 1")
	ErrInsufficientStock = errors.New("estoque disponível insuficiente")
)

// StockError detalha qual item do carrinho não tinha unidades suficientes
type StockError struct {
	Name      string
	Size      string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%s: %s %s tem %d disponível(is), %d pedida(s)",
		ErrInsufficientStock.Error(), e.Name, e.Size, e.Available, e.Requested)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}
