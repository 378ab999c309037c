package store

import (
	"context"
	"errors"
)

// O armazenamento persistente é uma planilha: cada coleção é uma aba cujo
// primeiro registro é o cabeçalho e cujos campos são posicionais. A coluna 1
// de toda coleção é o identificador do registro.

var (
	ErrCollectionNotFound = errors.New("coleção não encontrada no armazenamento")
	ErrRecordNotFound     = errors.New("registro não encontrado no armazenamento")
)

// Table é o resultado bruto de uma leitura completa de coleção.
type Table struct {
	Header []string
	Rows   [][]string
}

// RowHandle referencia uma linha física. RowIndex é 1-based e conta o
// cabeçalho: a primeira linha de dados é a 2.
type RowHandle struct {
	Collection string
	RowIndex   int
}

// CellUpdate endereça uma célula pelo id do registro e pela coluna (1-based).
type CellUpdate struct {
	ID     string
	Column int
	Value  string
}

// BatchResult informa o desfecho de um lote célula a célula. Ids ausentes
// são reportados, nunca engolidos — atomicidade não é garantida: uma falha
// no meio da escrita pode deixar parte das linhas atualizada.
type BatchResult struct {
	Updated []string
	Missing []string
}

// Store é a interface consumida por todos os repositórios.
//
// UpdateCellsBatch existe por causa da cota de requisições do backend:
// resolve todos os ids com UMA leitura da coluna de ids e aplica todas as
// células com UMA escrita em lote, independentemente do tamanho do lote.
type Store interface {
	LoadAll(ctx context.Context, collection string) (*Table, error)
	Append(ctx context.Context, collection string, row []string) error
	AppendBatch(ctx context.Context, collection string, rows [][]string) error
	FindRowByID(ctx context.Context, collection, id string) (*RowHandle, error)
	UpdateCell(ctx context.Context, handle *RowHandle, column int, value string) error
	UpdateCellsBatch(ctx context.Context, collection string, updates []CellUpdate) (*BatchResult, error)
	DeleteRow(ctx context.Context, handle *RowHandle) error
	ReplaceAll(ctx context.Context, collection string, header []string, rows [][]string) error
}
