// Package ledger provides the read-side rollups behind the dashboard
// cards. Everything here is a pure reducer over the entities the
// fulfillment pipeline produces; no new invariants are introduced.
package ledger

import (
	"time"

	"tripdesk/models"
)

// Summary feeds the dashboard cards in one shot.
type Summary struct {
	Revenue             float64            `json:"revenue"`
	Outstanding         float64            `json:"outstanding"`
	InvoiceCount        int                `json:"invoice_count"`
	CommissionsByStatus map[string]float64 `json:"commissions_by_status"`
	CommissionsTotal    float64            `json:"commissions_total"`
	Expenses            float64            `json:"expenses"`
	NetPosition         float64            `json:"net_position"`
}

// Revenue sums the amounts customers have actually paid.
func Revenue(invoices []models.Invoice) float64 {
	total := 0.0
	for _, inv := range invoices {
		if inv.Status == models.InvoiceStatusVoid || inv.Status == models.InvoiceStatusCancelled {
			continue
		}
		total += inv.PaidAmount
	}
	return total
}

// Outstanding sums what is still owed on open invoices.
func Outstanding(invoices []models.Invoice) float64 {
	total := 0.0
	for _, inv := range invoices {
		switch inv.Status {
		case models.InvoiceStatusSent, models.InvoiceStatusPartial:
			total += inv.RemainingAmount
		}
	}
	return total
}

// CommissionsByStatus breaks commission amounts down by payout state.
func CommissionsByStatus(commissions []models.Commission) map[string]float64 {
	out := make(map[string]float64)
	for _, c := range commissions {
		out[string(c.Status)] += c.CommissionAmount
	}
	return out
}

// ExpensesBetween sums expenses whose date falls within [from, to].
// Zero bounds are open-ended.
func ExpensesBetween(expenses []models.Expense, from, to time.Time) float64 {
	total := 0.0
	for _, e := range expenses {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		total += e.Amount
	}
	return total
}

// FilterInvoicesByStatus keeps invoices in the given status.
func FilterInvoicesByStatus(invoices []models.Invoice, status models.InvoiceStatus) []models.Invoice {
	var out []models.Invoice
	for _, inv := range invoices {
		if inv.Status == status {
			out = append(out, inv)
		}
	}
	return out
}

// BuildSummary rolls everything up for the dashboard.
func BuildSummary(invoices []models.Invoice, commissions []models.Commission, expenses []models.Expense) Summary {
	byStatus := CommissionsByStatus(commissions)
	commTotal := 0.0
	for _, v := range byStatus {
		commTotal += v
	}
	revenue := Revenue(invoices)
	expenseTotal := ExpensesBetween(expenses, time.Time{}, time.Time{})
	return Summary{
		Revenue:             revenue,
		Outstanding:         Outstanding(invoices),
		InvoiceCount:        len(invoices),
		CommissionsByStatus: byStatus,
		CommissionsTotal:    commTotal,
		Expenses:            expenseTotal,
		NetPosition:         revenue - expenseTotal,
	}
}
