package sheets

import (
	"context"
	"fmt"
	"sync"

	"github.com/flboutique/boutique-api/infrastructure/store"
	"github.com/flboutique/boutique-api/internal/config"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Store implementa store.Store sobre uma planilha do Google Sheets.
// Cada coleção é uma aba; a linha 1 é o cabeçalho e a coluna A o id.
type Store struct {
	svc           *gsheets.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64
}

func NewStore(ctx context.Context, cfg config.Sheets) (*Store, error) {
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do Sheets: %w", err)
	}

	return &Store{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetIDs:      make(map[string]int64),
	}, nil
}

// Ping valida credenciais e acesso à planilha.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.refreshSheetIDs(ctx)
	return err
}

// EnsureCollections cria as abas ausentes com suas linhas de cabeçalho.
func (s *Store) EnsureCollections(ctx context.Context, headers map[string][]string) error {
	existing, err := s.refreshSheetIDs(ctx)
	if err != nil {
		return err
	}

	var requests []*gsheets.Request
	var missing []string
	for collection := range headers {
		if _, ok := existing[collection]; ok {
			continue
		}
		missing = append(missing, collection)
		requests = append(requests, &gsheets.Request{
			AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{Title: collection},
			},
		})
	}

	if len(requests) == 0 {
		return nil
	}

	_, err = s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("erro ao criar abas ausentes: %w", err)
	}

	for _, collection := range missing {
		logrus.WithField("collection", collection).Info("Aba criada na planilha")
		if err := s.writeHeader(ctx, collection, headers[collection]); err != nil {
			return err
		}
	}

	// As abas novas precisam entrar no mapa de ids
	_, err = s.refreshSheetIDs(ctx)
	return err
}

func (s *Store) writeHeader(ctx context.Context, collection string, header []string) error {
	vr := &gsheets.ValueRange{Values: [][]interface{}{toInterfaceRow(header)}}
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, collection+"!A1", vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho de %s: %w", collection, err)
	}
	return nil
}

func (s *Store) LoadAll(ctx context.Context, collection string) (*store.Table, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, collection).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler coleção %s: %w", collection, err)
	}

	table := &store.Table{}
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = fmt.Sprint(cell)
		}
		if i == 0 {
			table.Header = row
			continue
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func (s *Store) Append(ctx context.Context, collection string, row []string) error {
	return s.AppendBatch(ctx, collection, [][]string{row})
}

func (s *Store) AppendBatch(ctx context.Context, collection string, rows [][]string) error {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = toInterfaceRow(row)
	}

	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, collection, &gsheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("erro ao inserir em %s: %w", collection, err)
	}

	return nil
}

func (s *Store) FindRowByID(ctx context.Context, collection, id string) (*store.RowHandle, error) {
	ids, err := s.idColumn(ctx, collection)
	if err != nil {
		return nil, err
	}

	for i, value := range ids {
		if i == 0 {
			continue // cabeçalho
		}
		if value == id {
			return &store.RowHandle{Collection: collection, RowIndex: i + 1}, nil
		}
	}

	return nil, store.ErrRecordNotFound
}

func (s *Store) UpdateCell(ctx context.Context, handle *store.RowHandle, column int, value string) error {
	cell := fmt.Sprintf("%s!%s%d", handle.Collection, columnLetter(column), handle.RowIndex)
	vr := &gsheets.ValueRange{Values: [][]interface{}{{value}}}

	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, cell, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("erro ao atualizar célula %s: %w", cell, err)
	}

	return nil
}

// UpdateCellsBatch cumpre o contrato de duas requisições: uma leitura da
// coluna de ids para resolver posições e uma escrita em lote com todas as
// células. Atualizar linha a linha estourava a cota da API quando uma
// venda baixava várias peças de uma vez.
func (s *Store) UpdateCellsBatch(ctx context.Context, collection string, updates []store.CellUpdate) (*store.BatchResult, error) {
	result := &store.BatchResult{}
	if len(updates) == 0 {
		return result, nil
	}

	ids, err := s.idColumn(ctx, collection)
	if err != nil {
		return nil, err
	}

	rowByID := make(map[string]int, len(ids))
	for i, value := range ids {
		if i == 0 {
			continue
		}
		rowByID[value] = i + 1
	}

	var data []*gsheets.ValueRange
	seen := make(map[string]bool)

	for _, update := range updates {
		rowIndex, ok := rowByID[update.ID]
		if !ok {
			if !seen[update.ID] {
				result.Missing = append(result.Missing, update.ID)
				seen[update.ID] = true
			}
			continue
		}

		cell := fmt.Sprintf("%s!%s%d", collection, columnLetter(update.Column), rowIndex)
		data = append(data, &gsheets.ValueRange{
			Range:  cell,
			Values: [][]interface{}{{update.Value}},
		})

		if !seen[update.ID] {
			result.Updated = append(result.Updated, update.ID)
			seen[update.ID] = true
		}
	}

	if len(data) == 0 {
		return result, nil
	}

	_, err = s.svc.Spreadsheets.Values.
		BatchUpdate(s.spreadsheetID, &gsheets.BatchUpdateValuesRequest{
			ValueInputOption: "RAW",
			Data:             data,
		}).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("erro no batch update de %s: %w", collection, err)
	}

	return result, nil
}

func (s *Store) DeleteRow(ctx context.Context, handle *store.RowHandle) error {
	sheetID, err := s.sheetID(ctx, handle.Collection)
	if err != nil {
		return err
	}

	_, err = s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{
			{
				DeleteDimension: &gsheets.DeleteDimensionRequest{
					Range: &gsheets.DimensionRange{
						SheetId:    sheetID,
						Dimension:  "ROWS",
						StartIndex: int64(handle.RowIndex - 1),
						EndIndex:   int64(handle.RowIndex),
					},
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("erro ao remover linha de %s: %w", handle.Collection, err)
	}

	return nil
}

func (s *Store) ReplaceAll(ctx context.Context, collection string, header []string, rows [][]string) error {
	_, err := s.svc.Spreadsheets.Values.
		Clear(s.spreadsheetID, collection, &gsheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("erro ao limpar coleção %s: %w", collection, err)
	}

	values := [][]interface{}{toInterfaceRow(header)}
	for _, row := range rows {
		values = append(values, toInterfaceRow(row))
	}

	_, err = s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, collection+"!A1", &gsheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("erro ao regravar coleção %s: %w", collection, err)
	}

	return nil
}

// idColumn lê a coluna A inteira da coleção (uma única requisição).
func (s *Store) idColumn(ctx context.Context, collection string) ([]string, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, collection+"!A:A").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler ids de %s: %w", collection, err)
	}

	ids := make([]string, len(resp.Values))
	for i, raw := range resp.Values {
		if len(raw) > 0 {
			ids[i] = fmt.Sprint(raw[0])
		}
	}

	return ids, nil
}

func (s *Store) sheetID(ctx context.Context, collection string) (int64, error) {
	s.mu.Lock()
	id, ok := s.sheetIDs[collection]
	s.mu.Unlock()
	if ok {
		return id, nil
	}

	sheetIDs, err := s.refreshSheetIDs(ctx)
	if err != nil {
		return 0, err
	}

	id, ok = sheetIDs[collection]
	if !ok {
		return 0, store.ErrCollectionNotFound
	}

	return id, nil
}

func (s *Store) refreshSheetIDs(ctx context.Context) (map[string]int64, error) {
	spreadsheet, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter metadados da planilha: %w", err)
	}

	sheetIDs := make(map[string]int64, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			sheetIDs[sheet.Properties.Title] = sheet.Properties.SheetId
		}
	}

	s.mu.Lock()
	s.sheetIDs = sheetIDs
	s.mu.Unlock()

	return sheetIDs, nil
}

func toInterfaceRow(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, cell := range row {
		out[i] = cell
	}
	return out
}

// columnLetter converte índice 1-based em letra de coluna (1 -> A, 27 -> AA).
func columnLetter(column int) string {
	letters := ""
	for column > 0 {
		column--
		letters = string(rune('A'+column%26)) + letters
		column /= 26
	}
	return letters
}
