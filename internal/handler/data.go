package handler

import (
	"net/http"
	"time"

	"github.com/chandu2812/budget-plan/internal/middleware"
	"github.com/chandu2812/budget-plan/internal/models"
	"github.com/chandu2812/budget-plan/internal/money"
	"github.com/chandu2812/budget-plan/internal/stats"
	"github.com/chandu2812/budget-plan/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// unread notifications included in the aggregated payload
const unreadFeedLimit = 10

// DataHandler assembles the aggregated read model the dashboard
// consumes. It performs no mutation.
type DataHandler struct {
	DB *gorm.DB
}

func NewDataHandler(db *gorm.DB) *DataHandler {
	return &DataHandler{DB: db}
}

type incomeResp struct {
	Amount     float64    `json:"amount"`
	AmountCent int64      `json:"amount_cent"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type budgetResp struct {
	Amount     float64 `json:"amount"`
	AmountCent int64   `json:"amount_cent"`
}

type expenseResp struct {
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	AmountCent  int64     `json:"amount_cent"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type goalResp struct {
	Target      float64 `json:"target"`
	Current     float64 `json:"current"`
	TargetCent  int64   `json:"target_cent"`
	CurrentCent int64   `json:"current_cent"`
	Deadline    string  `json:"deadline"`
}

type notificationResp struct {
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// GetData returns the canonical snapshot: current-month income and
// budgets, the full expense history newest-first, goals newest-first,
// the ten most recent unread notifications, and the derived
// current-month summary of the read-model contract.
func (h *DataHandler) GetData(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	now := time.Now()
	monthKey := stats.MonthKey(now)

	// income: zero sentinel when no row exists for the month
	income := incomeResp{}
	var incomeRow models.Income
	err := h.DB.
		Where("user_id = ? AND month_year = ?", user.ID, monthKey).
		First(&incomeRow).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query income failed")
		return
	}
	if err == nil {
		updated := incomeRow.UpdatedAt
		income = incomeResp{
			Amount:     money.CentToFloat(incomeRow.AmountCent),
			AmountCent: incomeRow.AmountCent,
			UpdatedAt:  &updated,
		}
	}

	var budgetRows []models.Budget
	if err := h.DB.
		Where("user_id = ? AND month_year = ?", user.ID, monthKey).
		Find(&budgetRows).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query budgets failed")
		return
	}
	budgets := make(map[string]budgetResp, len(budgetRows))
	for _, b := range budgetRows {
		budgets[b.Category] = budgetResp{
			Amount:     money.CentToFloat(b.AmountCent),
			AmountCent: b.AmountCent,
		}
	}

	var expenseRows []models.Expense
	if err := h.DB.
		Where("user_id = ?", user.ID).
		Order("timestamp DESC, id DESC").
		Find(&expenseRows).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query expenses failed")
		return
	}
	expenses := make([]expenseResp, 0, len(expenseRows))
	monthStart := stats.MonthStart(now)
	var spentCent int64
	for _, e := range expenseRows {
		expenses = append(expenses, expenseResp{
			Category:    e.Category,
			Amount:      money.CentToFloat(e.AmountCent),
			AmountCent:  e.AmountCent,
			Description: e.Description,
			Timestamp:   e.Timestamp,
		})
		if !e.Timestamp.Before(monthStart) {
			spentCent += e.AmountCent
		}
	}

	var goalRows []models.Goal
	if err := h.DB.
		Where("user_id = ?", user.ID).
		Order("created_at DESC, id DESC").
		Find(&goalRows).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query goals failed")
		return
	}
	goals := make(map[string]goalResp, len(goalRows))
	for _, g := range goalRows {
		goals[g.Name] = goalResp{
			Target:      money.CentToFloat(g.TargetCent),
			Current:     money.CentToFloat(g.CurrentCent),
			TargetCent:  g.TargetCent,
			CurrentCent: g.CurrentCent,
			Deadline:    g.Deadline.Format("2006-01-02"),
		}
	}

	var notificationRows []models.Notification
	if err := h.DB.
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Order("created_at DESC, id DESC").
		Limit(unreadFeedLimit).
		Find(&notificationRows).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query notifications failed")
		return
	}
	notifications := make([]notificationResp, 0, len(notificationRows))
	for _, n := range notificationRows {
		notifications = append(notifications, notificationResp{
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	remaining := stats.Remaining(income.AmountCent, spentCent)
	summary := gin.H{
		"total_spent":      money.CentToFloat(spentCent),
		"total_spent_cent": spentCent,
		"remaining":        money.CentToFloat(remaining),
		"remaining_cent":   remaining,
		"savings_rate":     stats.SavingsRate(income.AmountCent, spentCent),
	}

	util.Success(c, util.Response{
		"income":        income,
		"budgets":       budgets,
		"expenses":      expenses,
		"goals":         goals,
		"notifications": notifications,
		"summary":       summary,
	})
}
