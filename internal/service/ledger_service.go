package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/dafibh/tabi/tabi-backend/internal/validator"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LedgerService owns the in-memory expense ledger and writes it through to
// the expenses slot on every mutation
type LedgerService struct {
	slots domain.SlotStore

	mu      sync.Mutex
	records []domain.Expense

	loc   *time.Location
	now   func() time.Time
	newID func() string
}

// NewLedgerService creates a LedgerService with an empty ledger. Record
// dates are stamped in loc, UTC when nil. Call Load to restore the
// persisted ledger.
func NewLedgerService(slots domain.SlotStore, loc *time.Location) *LedgerService {
	if loc == nil {
		loc = time.UTC
	}
	return &LedgerService{
		slots:   slots,
		records: []domain.Expense{},
		loc:     loc,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// Load replaces the in-memory ledger with the persisted one. A missing,
// unreadable or corrupt slot yields an empty ledger.
func (s *LedgerService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = []domain.Expense{}

	raw, err := s.slots.Get(ctx, domain.SlotExpenses)
	if err != nil {
		if !errors.Is(err, domain.ErrSlotNotFound) {
			log.Warn().Err(err).Str("slot", domain.SlotExpenses).Msg("Ledger slot unavailable, starting empty")
		}
		return
	}

	records, err := decodeRecords(raw)
	if err != nil {
		log.Warn().Err(err).Str("slot", domain.SlotExpenses).Msg("Ledger slot corrupt, starting empty")
		return
	}

	s.records = records
	log.Info().Int("records", len(records)).Msg("Ledger loaded")
}

// Persist writes the whole ledger to the slot
func (s *LedgerService) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx, s.records)
}

// List returns a copy of the ledger, newest first
func (s *LedgerService) List() []domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Expense, len(s.records))
	copy(out, s.records)
	return out
}

// Summary recomputes the category totals from the current ledger
func (s *LedgerService) Summary() domain.LedgerSummary {
	return domain.Summarize(s.List())
}

// Append validates the input and inserts a new record at the head of the
// ledger. Invalid input leaves the ledger untouched.
func (s *LedgerService) Append(ctx context.Context, input domain.ExpenseInput) (*domain.Expense, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}

	amount, _ := domain.ParseAmount(input.Amount)
	category, _ := domain.ParseCategory(input.Category)
	method, _ := domain.ParsePaymentMethod(input.PaymentMethod)

	s.mu.Lock()
	defer s.mu.Unlock()

	record := domain.Expense{
		ID:            s.newID(),
		Title:         strings.TrimSpace(input.Title),
		Amount:        amount,
		Category:      category,
		PaymentMethod: method,
		Date:          s.now().In(s.loc).Format(domain.DateLayout),
	}

	next := make([]domain.Expense, 0, len(s.records)+1)
	next = append(next, record)
	next = append(next, s.records...)

	if err := s.commitLocked(ctx, next); err != nil {
		return nil, err
	}

	log.Info().
		Str("expense_id", record.ID).
		Int64("amount", record.Amount).
		Str("category", string(record.Category)).
		Msg("Expense appended")

	return &record, nil
}

// Remove deletes every record with the given id. Removing an absent id is
// a no-op and does not touch the slot.
func (s *LedgerService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Expense, 0, len(s.records))
	for _, r := range s.records {
		if r.ID != id {
			next = append(next, r)
		}
	}
	if len(next) == len(s.records) {
		return nil
	}

	if err := s.commitLocked(ctx, next); err != nil {
		return err
	}

	log.Info().Str("expense_id", id).Msg("Expense removed")
	return nil
}

// ReplaceAll discards the ledger and installs records in its place. Every
// record must be well formed, otherwise nothing changes and the error
// matches domain.ErrMalformedImport.
func (s *LedgerService) ReplaceAll(ctx context.Context, records []domain.Expense) error {
	next := make([]domain.Expense, 0, len(records))
	for i, r := range records {
		normalized, err := normalizeRecord(r)
		if err != nil {
			return fmt.Errorf("%w: record %d: %v", domain.ErrMalformedImport, i, err)
		}
		next = append(next, normalized)
	}
	if err := checkUniqueIDs(next); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commitLocked(ctx, next); err != nil {
		return err
	}

	log.Info().Int("records", len(next)).Msg("Ledger replaced by import")
	return nil
}

// commitLocked persists next and only then swaps it in, so a failed write
// leaves memory and slot agreeing
func (s *LedgerService) commitLocked(ctx context.Context, next []domain.Expense) error {
	if err := s.persistLocked(ctx, next); err != nil {
		return err
	}
	s.records = next
	return nil
}

func (s *LedgerService) persistLocked(ctx context.Context, records []domain.Expense) error {
	blob, err := encodeRecords(records)
	if err != nil {
		return err
	}
	if err := s.slots.Set(ctx, domain.SlotExpenses, blob); err != nil {
		log.Error().Err(err).Str("slot", domain.SlotExpenses).Msg("Failed to persist ledger")
		return fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

func encodeRecords(records []domain.Expense) (string, error) {
	if records == nil {
		records = []domain.Expense{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to encode ledger: %w", err)
	}
	return string(data), nil
}

func normalizeRecord(r domain.Expense) (domain.Expense, error) {
	if r.ID == "" {
		return r, errors.New("missing id")
	}
	if strings.TrimSpace(r.Title) == "" {
		return r, errors.New("missing title")
	}
	if r.Amount < 0 {
		return r, errors.New("negative amount")
	}
	if r.Amount > domain.MaxAmount {
		return r, fmt.Errorf("amount %d exceeds %d", r.Amount, domain.MaxAmount)
	}
	category, ok := domain.ParseCategory(string(r.Category))
	if !ok {
		return r, fmt.Errorf("unknown category %q", r.Category)
	}
	method, ok := domain.ParsePaymentMethod(string(r.PaymentMethod))
	if !ok {
		return r, fmt.Errorf("unknown payment method %q", r.PaymentMethod)
	}
	r.Category = category
	r.PaymentMethod = method
	return r, nil
}
