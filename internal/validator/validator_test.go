package validator

import (
	"errors"
	"testing"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_ValidExpense(t *testing.T) {
	err := Struct(domain.ExpenseInput{
		Title:         "拉麵",
		Amount:        "1200",
		Category:      "food",
		PaymentMethod: "cash",
	})
	assert.NoError(t, err)
}

func TestStruct_LegacyCategoryAccepted(t *testing.T) {
	err := Struct(domain.ExpenseInput{Title: "手帕", Amount: "800", Category: "buy", PaymentMethod: "card"})
	assert.NoError(t, err)
}

func TestStruct_CollectsEveryViolation(t *testing.T) {
	err := Struct(domain.ExpenseInput{
		Title:         "   ",
		Amount:        "12a",
		Category:      "lodging",
		PaymentMethod: "paypay",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var inputErr *domain.InputError
	require.True(t, errors.As(err, &inputErr))

	fields := make([]string, 0, len(inputErr.Violations))
	for _, v := range inputErr.Violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"title", "amount", "category", "paymentMethod"}, fields)
}

func TestStruct_NegativeAmount(t *testing.T) {
	err := Struct(domain.ExpenseInput{Title: "x", Amount: "-1", Category: "food", PaymentMethod: "cash"})

	var inputErr *domain.InputError
	require.True(t, errors.As(err, &inputErr))
	require.Len(t, inputErr.Violations, 1)
	assert.Equal(t, "amount", inputErr.Violations[0].Field)
	assert.Equal(t, "must be a whole number from 0 to 1000000000000", inputErr.Violations[0].Message)
}
