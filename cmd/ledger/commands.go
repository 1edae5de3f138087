package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/dafibh/tabi/tabi-backend/internal/service"
)

var (
	errUsage          = errors.New("usage: ledger <ls|summary|add|rm|export|import> [flags]")
	errNotConfirmed   = errors.New("import replaces the whole ledger; rerun with -yes to confirm")
	errUnknownCommand = errors.New("unknown command")
)

// run dispatches one subcommand against ledger
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, ledger *service.LedgerService) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "ls":
		return listCmd(stdout, ledger)
	case "summary":
		return summaryCmd(stdout, ledger)
	case "add":
		return addCmd(ctx, rest, stdout, ledger)
	case "rm":
		if len(rest) != 1 {
			return fmt.Errorf("%w: rm takes exactly one id", errUsage)
		}
		return ledger.Remove(ctx, rest[0])
	case "export":
		blob, err := service.ExportText(ledger.List())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, blob)
		return err
	case "import":
		return importCmd(ctx, rest, stdin, stdout, ledger)
	}
	return fmt.Errorf("%w %q", errUnknownCommand, cmd)
}

func listCmd(stdout io.Writer, ledger *service.LedgerService) error {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTITLE\tCATEGORY\tPAYMENT\tAMOUNT")
	for _, e := range ledger.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t¥%d\n",
			e.ID, e.Date, e.Title, e.Category.Display().Label, e.PaymentMethod, e.Amount)
	}
	return w.Flush()
}

func summaryCmd(stdout io.Writer, ledger *service.LedgerService) error {
	summary := ledger.Summary()
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, c := range domain.Categories {
		fmt.Fprintf(w, "%s\t¥%d\n", c.Display().Label, summary.PerCategory[c])
	}
	fmt.Fprintf(w, "TOTAL\t¥%d\n", summary.Total)
	return w.Flush()
}

func addCmd(ctx context.Context, args []string, stdout io.Writer, ledger *service.LedgerService) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	title := fs.String("title", "", "what the money was spent on")
	amount := fs.String("amount", "", "amount in yen")
	category := fs.String("category", string(domain.CategoryFood), "food, transport, purchase or other")
	payment := fs.String("payment", string(domain.PaymentCash), "cash or card")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	expense, err := ledger.Append(ctx, domain.ExpenseInput{
		Title:         *title,
		Amount:        *amount,
		Category:      *category,
		PaymentMethod: *payment,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, expense.ID)
	return err
}

func importCmd(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, ledger *service.LedgerService) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	yes := fs.Bool("yes", false, "replace the current ledger")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	blob, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("failed to read import: %w", err)
	}
	records, err := service.ImportText(string(blob))
	if err != nil {
		return err
	}

	if !*yes {
		fmt.Fprintf(stdout, "%d records would replace %d current records\n", len(records), len(ledger.List()))
		return errNotConfirmed
	}

	if err := ledger.ReplaceAll(ctx, records); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "imported %d records\n", len(records))
	return err
}

// exitCode is 2 for usage mistakes and 1 for everything else
func exitCode(err error) int {
	switch {
	case errors.Is(err, errUsage), errors.Is(err, errUnknownCommand), errors.Is(err, errNotConfirmed):
		return 2
	}
	return 1
}
