package service

import (
	"context"
	"testing"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/dafibh/tabi/tabi-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []domain.Expense {
	return []domain.Expense{
		{ID: "1732770000001", Title: "明太子", Amount: 2400, Category: domain.CategoryPurchase, PaymentMethod: domain.PaymentCard, Date: "11/29"},
		{ID: "1732770000000", Title: "拉麵", Amount: 1200, Category: domain.CategoryFood, PaymentMethod: domain.PaymentCash, Date: "11/28"},
		{ID: "x<&>", Title: "bus \"night\"", Amount: 0, Category: domain.CategoryTransport, PaymentMethod: domain.PaymentCash, Date: ""},
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	records := sampleRecords()

	blob, err := ExportText(records)
	require.NoError(t, err)

	imported, err := ImportText(blob)
	require.NoError(t, err)
	assert.Equal(t, records, imported)
}

func TestExportText_EmptyLedger(t *testing.T) {
	blob, err := ExportText(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", blob)

	imported, err := ImportText(blob)
	require.NoError(t, err)
	assert.Empty(t, imported)
}

func TestImportText_LegacyBlob(t *testing.T) {
	blob := `[{"id":"1732770000000","title":"手帕","amount":800,"category":"buy","paymentMethod":"card","date":"11/28"}]`

	records, err := ImportText(blob)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.CategoryPurchase, records[0].Category)
}

func TestImportText_Malformed(t *testing.T) {
	blobs := map[string]string{
		"invalid json":       "{not valid json",
		"empty":              "",
		"object":             `{"id":"1"}`,
		"null":               "null",
		"number":             "42",
		"array of numbers":   "[1, 2]",
		"missing id":         `[{"title":"a","amount":1,"category":"food","paymentMethod":"cash","date":""}]`,
		"numeric id":         `[{"id":1,"title":"a","amount":1,"category":"food","paymentMethod":"cash","date":""}]`,
		"empty title":        `[{"id":"1","title":" ","amount":1,"category":"food","paymentMethod":"cash","date":""}]`,
		"string amount":      `[{"id":"1","title":"a","amount":"1","category":"food","paymentMethod":"cash","date":""}]`,
		"fractional amount":  `[{"id":"1","title":"a","amount":1.5,"category":"food","paymentMethod":"cash","date":""}]`,
		"negative amount":    `[{"id":"1","title":"a","amount":-1,"category":"food","paymentMethod":"cash","date":""}]`,
		"unknown category":   `[{"id":"1","title":"a","amount":1,"category":"hotel","paymentMethod":"cash","date":""}]`,
		"unknown payment":    `[{"id":"1","title":"a","amount":1,"category":"food","paymentMethod":"bitcoin","date":""}]`,
		"missing date":       `[{"id":"1","title":"a","amount":1,"category":"food","paymentMethod":"cash"}]`,
		"null element":       `[null]`,
		"trailing garbage":   `[] []`,
		"duplicate ids":      `[{"id":"x","title":"a","amount":1,"category":"food","paymentMethod":"cash","date":""},{"id":"x","title":"b","amount":2,"category":"food","paymentMethod":"cash","date":""}]`,
		"amount over cap":    `[{"id":"1","title":"a","amount":1000000000001,"category":"food","paymentMethod":"cash","date":""}]`,
		"amount overflows":   `[{"id":"1","title":"a","amount":9223372036854775808,"category":"food","paymentMethod":"cash","date":""}]`,
	}

	for name, blob := range blobs {
		t.Run(name, func(t *testing.T) {
			_, err := ImportText(blob)
			assert.ErrorIs(t, err, domain.ErrMalformedImport)
		})
	}
}

func TestImportText_NeverMutatesLedger(t *testing.T) {
	ctx := context.Background()
	slots := testutil.NewMockSlotStore()
	ledger := NewLedgerService(slots, nil)

	_, err := ledger.Append(ctx, domain.ExpenseInput{Title: "keep", Amount: "100", Category: "food", PaymentMethod: "cash"})
	require.NoError(t, err)
	before := ledger.List()
	writes := slots.Writes

	_, err = ImportText("{not valid json")
	assert.ErrorIs(t, err, domain.ErrMalformedImport)

	_, err = ImportText("[]")
	require.NoError(t, err)

	assert.Equal(t, before, ledger.List())
	assert.Equal(t, writes, slots.Writes)
}

func TestImportText_ConfirmedEmptyImportClearsLedger(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedgerService(testutil.NewMockSlotStore(), nil)

	_, err := ledger.Append(ctx, domain.ExpenseInput{Title: "old", Amount: "100", Category: "food", PaymentMethod: "cash"})
	require.NoError(t, err)

	records, err := ImportText("[]")
	require.NoError(t, err)
	require.NoError(t, ledger.ReplaceAll(ctx, records))

	assert.Empty(t, ledger.List())
	assert.Equal(t, int64(0), ledger.Summary().Total)
}
