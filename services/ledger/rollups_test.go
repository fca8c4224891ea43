package ledger

import (
	"testing"
	"time"

	"tripdesk/models"

	"github.com/stretchr/testify/assert"
)

func fixtureInvoices() []models.Invoice {
	return []models.Invoice{
		{ID: "i1", Status: models.InvoiceStatusPaid, Total: 1000, PaidAmount: 1000, RemainingAmount: 0},
		{ID: "i2", Status: models.InvoiceStatusPartial, Total: 600, PaidAmount: 200, RemainingAmount: 400},
		{ID: "i3", Status: models.InvoiceStatusSent, Total: 300, PaidAmount: 0, RemainingAmount: 300},
		{ID: "i4", Status: models.InvoiceStatusVoid, Total: 500, PaidAmount: 500, RemainingAmount: 0},
	}
}

func TestRevenueIgnoresVoidedInvoices(t *testing.T) {
	assert.Equal(t, 1200.0, Revenue(fixtureInvoices()))
}

func TestOutstandingCountsOpenInvoicesOnly(t *testing.T) {
	assert.Equal(t, 700.0, Outstanding(fixtureInvoices()))
}

func TestCommissionsByStatus(t *testing.T) {
	commissions := []models.Commission{
		{CommissionAmount: 50, Status: models.CommissionStatusPending},
		{CommissionAmount: 30, Status: models.CommissionStatusPending},
		{CommissionAmount: 80, Status: models.CommissionStatusPaid},
	}
	got := CommissionsByStatus(commissions)
	assert.Equal(t, 80.0, got["pending"])
	assert.Equal(t, 80.0, got["paid"])
}

func TestExpensesBetween(t *testing.T) {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		{Amount: 100, Date: jan},
		{Amount: 250, Date: feb},
	}

	assert.Equal(t, 350.0, ExpensesBetween(expenses, time.Time{}, time.Time{}))
	assert.Equal(t, 100.0, ExpensesBetween(expenses, time.Time{}, jan))
	assert.Equal(t, 250.0, ExpensesBetween(expenses, feb, time.Time{}))
}

func TestBuildSummary(t *testing.T) {
	commissions := []models.Commission{
		{CommissionAmount: 50, Status: models.CommissionStatusPending},
		{CommissionAmount: 80, Status: models.CommissionStatusPaid},
	}
	expenses := []models.Expense{{Amount: 200, Date: time.Now()}}

	got := BuildSummary(fixtureInvoices(), commissions, expenses)
	assert.Equal(t, 1200.0, got.Revenue)
	assert.Equal(t, 700.0, got.Outstanding)
	assert.Equal(t, 4, got.InvoiceCount)
	assert.Equal(t, 130.0, got.CommissionsTotal)
	assert.Equal(t, 200.0, got.Expenses)
	assert.Equal(t, 1000.0, got.NetPosition)
}
