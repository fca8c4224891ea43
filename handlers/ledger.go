package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	commissionRepo "tripdesk/database/repository/commissions"
	expenseRepo "tripdesk/database/repository/expenses"
	invoiceRepo "tripdesk/database/repository/invoices"
	"tripdesk/models"
	"tripdesk/services/ledger"
	"tripdesk/utils"
)

// LedgerHandler serves the dashboard rollups and the expense entries that
// feed them.
type LedgerHandler struct {
	Invoices    invoiceRepo.InvoiceRepository
	Commissions commissionRepo.CommissionRepository
	Expenses    expenseRepo.ExpenseRepository
}

func NewLedgerHandler(inv invoiceRepo.InvoiceRepository, comm commissionRepo.CommissionRepository, exp expenseRepo.ExpenseRepository) *LedgerHandler {
	return &LedgerHandler{Invoices: inv, Commissions: comm, Expenses: exp}
}

// SummaryHandler handles GET /api/ledger/summary.
func (h *LedgerHandler) SummaryHandler(c *gin.Context) {
	ctx := c.Request.Context()

	invoices, err := h.Invoices.List(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load invoices", err.Error())
		return
	}
	commissions, err := h.Commissions.List(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load commissions", err.Error())
		return
	}
	expenses, err := h.Expenses.List(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load expenses", err.Error())
		return
	}

	c.JSON(http.StatusOK, ledger.BuildSummary(invoices, commissions, expenses))
}

// ListInvoicesHandler handles GET /api/ledger/invoices with an optional
// status filter.
func (h *LedgerHandler) ListInvoicesHandler(c *gin.Context) {
	invoices, err := h.Invoices.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load invoices", err.Error())
		return
	}
	if status := c.Query("status"); status != "" {
		invoices = ledger.FilterInvoicesByStatus(invoices, models.InvoiceStatus(status))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(invoices), "invoices": invoices})
}

// ListCommissionsHandler handles GET /api/ledger/commissions with an
// optional agent filter.
func (h *LedgerHandler) ListCommissionsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		commissions []models.Commission
		err         error
	)
	if agentID := c.Query("agent"); agentID != "" {
		commissions, err = h.Commissions.ListByAgent(ctx, agentID)
	} else {
		commissions, err = h.Commissions.List(ctx)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load commissions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(commissions), "commissions": commissions})
}

// CreateExpenseHandler handles POST /api/ledger/expenses.
func (h *LedgerHandler) CreateExpenseHandler(c *gin.Context) {
	var e models.Expense
	if err := c.ShouldBindJSON(&e); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if e.Amount <= 0 {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid expense", "amount must be positive")
		return
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	id, err := h.Expenses.Create(c.Request.Context(), e)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store expense", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListExpensesHandler handles GET /api/ledger/expenses.
func (h *LedgerHandler) ListExpensesHandler(c *gin.Context) {
	expenses, err := h.Expenses.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load expenses", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(expenses), "expenses": expenses})
}
