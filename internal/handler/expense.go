package handler

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/chandu2812/budget-plan/internal/middleware"
	"github.com/chandu2812/budget-plan/internal/models"
	"github.com/chandu2812/budget-plan/internal/money"
	"github.com/chandu2812/budget-plan/internal/stats"
	"github.com/chandu2812/budget-plan/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NotificationTypeDanger tags overspend alerts.
const NotificationTypeDanger = "danger"

// ExpenseHandler records expenses and runs the overspend check.
type ExpenseHandler struct {
	DB *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{DB: db}
}

type addExpenseReq struct {
	Category    string `json:"category" binding:"required"`
	Amount      Amount `json:"amount" binding:"required"`
	Description string `json:"description" binding:"max=255"`
}

// AddExpense appends a spending record with a server-assigned timestamp
// and then checks the category budget. The check is best-effort: its
// failure never rolls back or fails the insert.
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req addExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if err := util.ValidateCategory(req.Category); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	cents, err := req.Amount.Cent()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}
	if err := util.ValidateAmountCent(cents); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	expense := models.Expense{
		UserID:      user.ID,
		Category:    req.Category,
		AmountCent:  cents,
		Description: strings.TrimSpace(req.Description),
		Timestamp:   time.Now(),
	}
	if err := h.DB.Create(&expense).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save expense failed")
		return
	}

	if err := h.checkOverspending(user.ID, req.Category); err != nil {
		// advisory only; the expense is already committed
		log.Printf("overspend check failed for user=%d category=%q: %v", user.ID, req.Category, err)
	}

	util.Success(c, util.Response{
		"message": "expense saved",
	})
}

// checkOverspending compares month-to-date spend in the expense's
// category against the active budget and emits one alert per qualifying
// expense. No budget for the category means no check. Alerts are not
// deduplicated: every expense past the threshold produces another one.
func (h *ExpenseHandler) checkOverspending(userID uint, category string) error {
	now := time.Now()

	var budget models.Budget
	err := h.DB.
		Where("user_id = ? AND category = ? AND month_year = ?", userID, category, stats.MonthKey(now)).
		First(&budget).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load budget: %w", err)
	}

	var spent int64
	if err := h.DB.Model(&models.Expense{}).
		Where("user_id = ? AND category = ? AND timestamp >= ?", userID, category, stats.MonthStart(now)).
		Select("COALESCE(SUM(amount_cent), 0)").
		Scan(&spent).Error; err != nil {
		return fmt.Errorf("sum expenses: %w", err)
	}

	if spent <= budget.AmountCent {
		return nil
	}

	overspent := spent - budget.AmountCent
	notification := models.Notification{
		UserID: userID,
		Message: fmt.Sprintf("Overspending alert! You've exceeded your '%s' budget by %s",
			category, money.FormatCent(overspent)),
		Type: NotificationTypeDanger,
	}
	if err := h.DB.Create(&notification).Error; err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}
