package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/dafibh/tabi/tabi-backend/internal/service"
	"github.com/dafibh/tabi/tabi-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) (*service.LedgerService, *testutil.MockSlotStore) {
	t.Helper()
	slots := testutil.NewMockSlotStore()
	ledger := service.NewLedgerService(slots, nil)
	ledger.Load(context.Background())
	return ledger, slots
}

func runCmd(t *testing.T, ledger *service.LedgerService, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &out, ledger)
	return out.String(), err
}

func TestRun_AddListSummary(t *testing.T) {
	ledger, slots := newLedger(t)

	out, err := runCmd(t, ledger, "", "add", "-title", "拉麵", "-amount", "1200")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))

	_, err = runCmd(t, ledger, "", "add", "-title", "Suica", "-amount", "3000", "-category", "transport", "-payment", "card")
	require.NoError(t, err)
	assert.Equal(t, 2, slots.Writes)

	out, err = runCmd(t, ledger, "", "ls")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Suica")
	assert.Contains(t, lines[2], "¥1200")

	out, err = runCmd(t, ledger, "", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL  ¥4200")
	assert.Contains(t, out, "購物")
}

func TestRun_AddInvalid(t *testing.T) {
	ledger, slots := newLedger(t)

	_, err := runCmd(t, ledger, "", "add", "-title", "x", "-amount", "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, exitCode(err))
	assert.Zero(t, slots.Writes)
}

func TestRun_Remove(t *testing.T) {
	ledger, _ := newLedger(t)
	out, err := runCmd(t, ledger, "", "add", "-title", "Coffee", "-amount", "450")
	require.NoError(t, err)

	_, err = runCmd(t, ledger, "", "rm", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Empty(t, ledger.List())

	_, err = runCmd(t, ledger, "", "rm")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_ExportImport(t *testing.T) {
	source, _ := newLedger(t)
	_, err := runCmd(t, source, "", "add", "-title", "Gift", "-amount", "2500", "-category", "purchase")
	require.NoError(t, err)
	blob, err := runCmd(t, source, "", "export")
	require.NoError(t, err)

	target, slots := newLedger(t)
	out, err := runCmd(t, target, blob, "import")
	assert.ErrorIs(t, err, errNotConfirmed)
	assert.Equal(t, 2, exitCode(err))
	assert.Equal(t, "1 records would replace 0 current records\n", out)
	assert.Zero(t, slots.Writes)

	out, err = runCmd(t, target, blob, "import", "-yes")
	require.NoError(t, err)
	assert.Equal(t, "imported 1 records\n", out)
	assert.Equal(t, source.List(), target.List())
}

func TestRun_ImportMalformed(t *testing.T) {
	ledger, _ := newLedger(t)

	_, err := runCmd(t, ledger, "hello", "import", "-yes")
	assert.ErrorIs(t, err, domain.ErrMalformedImport)
}

func TestRun_Usage(t *testing.T) {
	ledger, _ := newLedger(t)

	_, err := runCmd(t, ledger, "")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCmd(t, ledger, "", "sync")
	assert.ErrorIs(t, err, errUnknownCommand)
	assert.Equal(t, 2, exitCode(err))

	_, err = runCmd(t, ledger, "", "add", "-bogus")
	assert.ErrorIs(t, err, errUsage)
}
