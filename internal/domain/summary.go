package domain

// ChartEntry is one slice of the category chart
type ChartEntry struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Value    int64    `json:"value"`
	Color    string   `json:"color"`
}

// LedgerSummary is derived from the ledger on every read and never stored
type LedgerSummary struct {
	Total       int64              `json:"total"`
	PerCategory map[Category]int64 `json:"perCategory"`
	Chart       []ChartEntry       `json:"chart"`
}

// Summarize totals the records per category. Every category is present in
// PerCategory; Chart only carries categories with a nonzero total, in
// Categories order.
func Summarize(records []Expense) LedgerSummary {
	perCategory := make(map[Category]int64, len(Categories))
	for _, c := range Categories {
		perCategory[c] = 0
	}

	var total int64
	for _, r := range records {
		total += r.Amount
		perCategory[r.Category] += r.Amount
	}

	chart := make([]ChartEntry, 0, len(Categories))
	for _, c := range Categories {
		value := perCategory[c]
		if value == 0 {
			continue
		}
		display := c.Display()
		chart = append(chart, ChartEntry{
			Category: c,
			Label:    display.Label,
			Value:    value,
			Color:    display.Color,
		})
	}

	return LedgerSummary{
		Total:       total,
		PerCategory: perCategory,
		Chart:       chart,
	}
}
