package domain

import (
	"strconv"
	"strings"
)

// Category is the fixed expense classification
type Category string

const (
	CategoryFood      Category = "food"
	CategoryTransport Category = "transport"
	CategoryPurchase  Category = "purchase"
	CategoryOther     Category = "other"
)

// legacyCategoryPurchase is how older exported ledgers spell CategoryPurchase
const legacyCategoryPurchase = "buy"

// Categories lists every category in chart order
var Categories = []Category{CategoryFood, CategoryTransport, CategoryPurchase, CategoryOther}

// CategoryDisplay is the fixed label and color of a category
type CategoryDisplay struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var categoryDisplay = map[Category]CategoryDisplay{
	CategoryFood:      {Label: "餐飲", Color: "#FF9F1C"},
	CategoryTransport: {Label: "交通", Color: "#2B2E4A"},
	CategoryPurchase:  {Label: "購物", Color: "#2EC4B6"},
	CategoryOther:     {Label: "其他", Color: "#E84545"},
}

// Display returns the label and color for the category
func (c Category) Display() CategoryDisplay {
	return categoryDisplay[c]
}

// ParseCategory resolves a wire value, accepting the legacy "buy" spelling
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == legacyCategoryPurchase {
		return CategoryPurchase, true
	}
	c := Category(s)
	if _, ok := categoryDisplay[c]; !ok {
		return "", false
	}
	return c, true
}

// PaymentMethod is how an expense was paid
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// ParsePaymentMethod resolves a wire value
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch p := PaymentMethod(strings.TrimSpace(s)); p {
	case PaymentCash, PaymentCard:
		return p, true
	}
	return "", false
}

// Expense is a single ledger record. Records are never mutated after
// creation; the JSON names are the export blob format.
type Expense struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Amount        int64         `json:"amount"`
	Category      Category      `json:"category"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Date          string        `json:"date"`
}

// ExpenseInput is the raw form a user submits to append a record
type ExpenseInput struct {
	Title         string `json:"title" validate:"notblank"`
	Amount        string `json:"amount" validate:"amount"`
	Category      string `json:"category" validate:"category"`
	PaymentMethod string `json:"paymentMethod" validate:"payment"`
}

// MaxAmount bounds a single record so ledger totals stay within int64
const MaxAmount int64 = 1_000_000_000_000

// ParseAmount parses a base-10 integer amount between 0 and MaxAmount
func ParseAmount(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 || n > MaxAmount {
		return 0, false
	}
	return n, true
}

// DateLayout is the MM/DD display format of Expense.Date
const DateLayout = "01/02"
