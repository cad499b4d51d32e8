package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/chandu2812/budget-plan/internal/middleware"
	"github.com/chandu2812/budget-plan/internal/models"
	"github.com/chandu2812/budget-plan/internal/stats"
	"github.com/chandu2812/budget-plan/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetHandler maintains the per-category budgets of the current month.
type BudgetHandler struct {
	DB *gorm.DB
}

func NewBudgetHandler(db *gorm.DB) *BudgetHandler {
	return &BudgetHandler{DB: db}
}

type upsertBudgetReq struct {
	Category string `json:"category" binding:"required"`
	Amount   Amount `json:"amount" binding:"required"`
}

// UpsertBudget writes or replaces the (user, category, current month)
// budget row; the amount is overwritten on conflict.
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req upsertBudgetReq
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

	budget := models.Budget{
		UserID:     user.ID,
		Category:   req.Category,
		AmountCent: cents,
		MonthYear:  stats.MonthKey(time.Now()),
	}
	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category"}, {Name: "month_year"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount_cent": cents,
			"updated_at":  time.Now(),
		}),
	}).Create(&budget).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save budget failed")
		return
	}

	util.Success(c, util.Response{
		"message": "budget saved",
	})
}

type deleteBudgetReq struct {
	Category string `json:"category" binding:"required"`
}

// DeleteBudget removes the current month's budget for a category.
// Budgets of other months are untouched; deleting an absent budget is a
// no-op success.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req deleteBudgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	if err := h.DB.
		Where("user_id = ? AND category = ? AND month_year = ?",
			user.ID, strings.TrimSpace(req.Category), stats.MonthKey(time.Now())).
		Delete(&models.Budget{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete budget failed")
		return
	}

	util.Success(c, util.Response{
		"message": "budget deleted",
	})
}
