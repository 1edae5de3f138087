package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExpense_Success(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/v1/expenses",
		strings.NewReader(`{"title": "拉麵", "amount": 1200, "category": "food", "paymentMethod": "cash"}`), "application/json")
	requireStatus(t, rec, http.StatusCreated)

	expense := decode[domain.Expense](t, rec)
	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, "拉麵", expense.Title)
	assert.Equal(t, int64(1200), expense.Amount)
	assert.Equal(t, domain.CategoryFood, expense.Category)
	assert.Equal(t, 1, app.slots.Writes)
}

func TestCreateExpense_AmountAsString(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/v1/expenses",
		strings.NewReader(`{"title": "Suica", "amount": "3000", "category": "transport", "paymentMethod": "card"}`), "application/json")
	requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, int64(3000), decode[domain.Expense](t, rec).Amount)
}

func TestCreateExpense_ValidationErrors(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/v1/expenses",
		strings.NewReader(`{"title": "  ", "amount": "-5", "category": "food", "paymentMethod": "cash"}`), "application/json")
	requireStatus(t, rec, http.StatusBadRequest)

	problem := decode[ProblemDetails](t, rec)
	assert.Equal(t, ErrorTypeValidation, problem.Type)
	fields := make([]string, 0, len(problem.Errors))
	for _, e := range problem.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"title", "amount"}, fields)
	assert.Empty(t, app.ledger.List())
	assert.Zero(t, app.slots.Writes)
}

func TestCreateExpense_InvalidJSON(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/v1/expenses", strings.NewReader(`{"title":`), "application/json")
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateExpense_PersistenceFailure(t *testing.T) {
	app := newTestApp(t)
	app.slots.SetErr = errors.New("disk full")

	rec := app.do(http.MethodPost, "/api/v1/expenses",
		strings.NewReader(`{"title": "Coffee", "amount": 500, "category": "food", "paymentMethod": "cash"}`), "application/json")
	requireStatus(t, rec, http.StatusServiceUnavailable)
	assert.Empty(t, app.ledger.List())
}

func TestListExpenses_WithSummary(t *testing.T) {
	app := newTestApp(t)
	for _, body := range []string{
		`{"title": "Ramen", "amount": 1200, "category": "food", "paymentMethod": "cash"}`,
		`{"title": "Train", "amount": 300, "category": "transport", "paymentMethod": "card"}`,
	} {
		requireStatus(t, app.do(http.MethodPost, "/api/v1/expenses", strings.NewReader(body), "application/json"), http.StatusCreated)
	}

	rec := app.do(http.MethodGet, "/api/v1/expenses", nil, "")
	requireStatus(t, rec, http.StatusOK)

	resp := decode[LedgerResponse](t, rec)
	require.Len(t, resp.Expenses, 2)
	assert.Equal(t, "Train", resp.Expenses[0].Title, "newest first")
	assert.Equal(t, int64(1500), resp.Summary.Total)
	assert.Equal(t, int64(0), resp.Summary.PerCategory[domain.CategoryPurchase])
	assert.Len(t, resp.Summary.Chart, 2)
}

func TestListExpenses_EmptyIsArray(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/api/v1/expenses", nil, "")
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `"expenses":[]`)
}

func TestDeleteExpense_Idempotent(t *testing.T) {
	app := newTestApp(t)
	rec := app.do(http.MethodPost, "/api/v1/expenses",
		strings.NewReader(`{"title": "Ramen", "amount": 1200, "category": "food", "paymentMethod": "cash"}`), "application/json")
	id := decode[domain.Expense](t, rec).ID

	requireStatus(t, app.do(http.MethodDelete, "/api/v1/expenses/"+id, nil, ""), http.StatusNoContent)
	assert.Empty(t, app.ledger.List())
	writes := app.slots.Writes

	requireStatus(t, app.do(http.MethodDelete, "/api/v1/expenses/"+id, nil, ""), http.StatusNoContent)
	assert.Equal(t, writes, app.slots.Writes)
}

func TestExportImport_RoundTrip(t *testing.T) {
	source := newTestApp(t)
	for _, body := range []string{
		`{"title": "Ramen", "amount": 1200, "category": "food", "paymentMethod": "cash"}`,
		`{"title": "Gift", "amount": 2500, "category": "purchase", "paymentMethod": "card"}`,
	} {
		requireStatus(t, source.do(http.MethodPost, "/api/v1/expenses", strings.NewReader(body), "application/json"), http.StatusCreated)
	}

	rec := source.do(http.MethodGet, "/api/v1/expenses/export", nil, "")
	requireStatus(t, rec, http.StatusOK)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	blob := rec.Body.String()

	target := newTestApp(t)
	rec = target.do(http.MethodPost, "/api/v1/expenses/import?confirm=true", strings.NewReader(blob), "text/plain")
	requireStatus(t, rec, http.StatusOK)

	assert.Equal(t, source.ledger.List(), target.ledger.List())
}

func TestImportExpenses_RequiresConfirmation(t *testing.T) {
	app := newTestApp(t)
	blob := `[{"id":"a","title":"Ramen","amount":1200,"category":"food","paymentMethod":"cash","date":"11/28"}]`

	rec := app.do(http.MethodPost, "/api/v1/expenses/import", strings.NewReader(blob), "text/plain")
	requireStatus(t, rec, http.StatusConflict)
	assert.Equal(t, 1, decode[ImportPreviewResponse](t, rec).Records)
	assert.Empty(t, app.ledger.List())
	assert.Zero(t, app.slots.Writes)
}

func TestImportExpenses_Malformed(t *testing.T) {
	app := newTestApp(t)
	requireStatus(t, app.do(http.MethodPost, "/api/v1/expenses",
		strings.NewReader(`{"title": "Ramen", "amount": 1200, "category": "food", "paymentMethod": "cash"}`), "application/json"),
		http.StatusCreated)

	blobs := []string{
		"",
		"not json",
		`{"id":"a"}`,
		`[{"id":"a","title":"x","amount":"12","category":"food","paymentMethod":"cash","date":"11/28"}]`,
		`[{"id":"a","title":"x","amount":1,"category":"food","paymentMethod":"cash","date":""},{"id":"a","title":"y","amount":2,"category":"food","paymentMethod":"cash","date":""}]`,
	}
	for _, blob := range blobs {
		rec := app.do(http.MethodPost, "/api/v1/expenses/import?confirm=true", strings.NewReader(blob), "text/plain")
		requireStatus(t, rec, http.StatusUnprocessableEntity)
	}
	assert.Len(t, app.ledger.List(), 1)
}

func TestImportExpenses_LegacyCategory(t *testing.T) {
	app := newTestApp(t)
	blob := `[{"id":"a","title":"Souvenir","amount":800,"category":"buy","paymentMethod":"card","date":"11/29"}]`

	rec := app.do(http.MethodPost, "/api/v1/expenses/import?confirm=true", strings.NewReader(blob), "text/plain")
	requireStatus(t, rec, http.StatusOK)

	resp := decode[LedgerResponse](t, rec)
	require.Len(t, resp.Expenses, 1)
	assert.Equal(t, domain.CategoryPurchase, resp.Expenses[0].Category)
}
