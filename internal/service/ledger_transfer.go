package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
)

// ExportText serializes the ledger into the text blob shared between
// devices. Order is preserved; ImportText reverses it exactly.
func ExportText(records []domain.Expense) (string, error) {
	return encodeRecords(records)
}

// ImportText parses a blob produced by ExportText. It never touches a
// ledger: the caller confirms with the user and then calls
// LedgerService.ReplaceAll. Any blob that is not an array of well formed
// records fails with domain.ErrMalformedImport.
func ImportText(blob string) ([]domain.Expense, error) {
	return decodeRecords(blob)
}

// wireExpense mirrors domain.Expense with every field optional so missing
// and mistyped fields can be told apart
type wireExpense struct {
	ID            *string         `json:"id"`
	Title         *string         `json:"title"`
	Amount        json.RawMessage `json:"amount"`
	Category      *string         `json:"category"`
	PaymentMethod *string         `json:"paymentMethod"`
	Date          *string         `json:"date"`
}

func decodeRecords(blob string) ([]domain.Expense, error) {
	blob = strings.TrimSpace(blob)
	if !strings.HasPrefix(blob, "[") {
		return nil, fmt.Errorf("%w: expected a JSON array", domain.ErrMalformedImport)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(blob), &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
	}

	records := make([]domain.Expense, 0, len(elems))
	for i, raw := range elems {
		r, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", domain.ErrMalformedImport, i, err)
		}
		records = append(records, r)
	}
	if err := checkUniqueIDs(records); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeRecord(raw json.RawMessage) (domain.Expense, error) {
	var w wireExpense
	if err := json.Unmarshal(raw, &w); err != nil {
		return domain.Expense{}, err
	}

	switch {
	case w.ID == nil:
		return domain.Expense{}, errors.New("missing id")
	case w.Title == nil:
		return domain.Expense{}, errors.New("missing title")
	case len(w.Amount) == 0:
		return domain.Expense{}, errors.New("missing amount")
	case w.Category == nil:
		return domain.Expense{}, errors.New("missing category")
	case w.PaymentMethod == nil:
		return domain.Expense{}, errors.New("missing paymentMethod")
	case w.Date == nil:
		return domain.Expense{}, errors.New("missing date")
	}

	amount, err := strconv.ParseInt(string(w.Amount), 10, 64)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("amount %s is not an integer", string(w.Amount))
	}

	return normalizeRecord(domain.Expense{
		ID:            *w.ID,
		Title:         *w.Title,
		Amount:        amount,
		Category:      domain.Category(*w.Category),
		PaymentMethod: domain.PaymentMethod(*w.PaymentMethod),
		Date:          *w.Date,
	})
}

// checkUniqueIDs rejects a record sequence in which two records share an id
func checkUniqueIDs(records []domain.Expense) error {
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if first, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: records %d and %d share id %q", domain.ErrMalformedImport, first, i, r.ID)
		}
		seen[r.ID] = i
	}
	return nil
}
