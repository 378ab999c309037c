package store

import (
	"context"
	"sync"
)

// InMemoryStore implementa Store sobre mapas. Serve os testes de
// repositório e permite subir a API local sem credenciais da planilha.
type InMemoryStore struct {
	mu     sync.Mutex
	tables map[string]*Table
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		tables: make(map[string]*Table),
	}
}

// CreateCollection registra uma coleção vazia com o cabeçalho dado.
func (s *InMemoryStore) CreateCollection(collection string, header []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tables[collection] = &Table{Header: append([]string{}, header...)}
}

func (s *InMemoryStore) LoadAll(_ context.Context, collection string) (*Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[collection]
	if !ok {
		return nil, ErrCollectionNotFound
	}

	copied := &Table{Header: append([]string{}, table.Header...)}
	for _, row := range table.Rows {
		copied.Rows = append(copied.Rows, append([]string{}, row...))
	}

	return copied, nil
}

func (s *InMemoryStore) Append(_ context.Context, collection string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[collection]
	if !ok {
		return ErrCollectionNotFound
	}

	table.Rows = append(table.Rows, append([]string{}, row...))
	return nil
}

func (s *InMemoryStore) AppendBatch(_ context.Context, collection string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[collection]
	if !ok {
		return ErrCollectionNotFound
	}

	for _, row := range rows {
		table.Rows = append(table.Rows, append([]string{}, row...))
	}
	return nil
}

func (s *InMemoryStore) FindRowByID(_ context.Context, collection, id string) (*RowHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[collection]
	if !ok {
		return nil, ErrCollectionNotFound
	}

	for i, row := range table.Rows {
		if len(row) > 0 && row[0] == id {
			// +2: linhas são 1-based e a primeira é o cabeçalho
			return &RowHandle{Collection: collection, RowIndex: i + 2}, nil
		}
	}

	return nil, ErrRecordNotFound
}

func (s *InMemoryStore) UpdateCell(_ context.Context, handle *RowHandle, column int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[handle.Collection]
	if !ok {
		return ErrCollectionNotFound
	}

	idx := handle.RowIndex - 2
	if idx < 0 || idx >= len(table.Rows) {
		return ErrRecordNotFound
	}

	row := table.Rows[idx]
	for len(row) < column {
		row = append(row, "")
	}
	row[column-1] = value
	table.Rows[idx] = row

	return nil
}

func (s *InMemoryStore) UpdateCellsBatch(_ context.Context, collection string, updates []CellUpdate) (*BatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[collection]
	if !ok {
		return nil, ErrCollectionNotFound
	}

	rowByID := make(map[string]int, len(table.Rows))
	for i, row := range table.Rows {
		if len(row) > 0 {
			rowByID[row[0]] = i
		}
	}

	result := &BatchResult{}
	seen := make(map[string]bool)

	for _, update := range updates {
		idx, ok := rowByID[update.ID]
		if !ok {
			if !seen[update.ID] {
				result.Missing = append(result.Missing, update.ID)
				seen[update.ID] = true
			}
			continue
		}

		row := table.Rows[idx]
		for len(row) < update.Column {
			row = append(row, "")
		}
		row[update.Column-1] = update.Value
		table.Rows[idx] = row

		if !seen[update.ID] {
			result.Updated = append(result.Updated, update.ID)
			seen[update.ID] = true
		}
	}

	return result, nil
}

func (s *InMemoryStore) DeleteRow(_ context.Context, handle *RowHandle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[handle.Collection]
	if !ok {
		return ErrCollectionNotFound
	}

	idx := handle.RowIndex - 2
	if idx < 0 || idx >= len(table.Rows) {
		return ErrRecordNotFound
	}

	table.Rows = append(table.Rows[:idx], table.Rows[idx+1:]...)
	return nil
}

func (s *InMemoryStore) ReplaceAll(_ context.Context, collection string, header []string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := &Table{Header: append([]string{}, header...)}
	for _, row := range rows {
		table.Rows = append(table.Rows, append([]string{}, row...))
	}
	s.tables[collection] = table

	return nil
}
