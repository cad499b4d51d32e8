package handler

import (
	"net/http"
	"time"

	"github.com/chandu2812/budget-plan/internal/middleware"
	"github.com/chandu2812/budget-plan/internal/models"
	"github.com/chandu2812/budget-plan/internal/stats"
	"github.com/chandu2812/budget-plan/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IncomeHandler sets the monthly income.
type IncomeHandler struct {
	DB *gorm.DB
}

func NewIncomeHandler(db *gorm.DB) *IncomeHandler {
	return &IncomeHandler{DB: db}
}

type setIncomeReq struct {
	Amount Amount `json:"amount" binding:"required"`
}

// SetIncome upserts the income row for (user, current month).
// Zero is a valid income; negative or non-numeric amounts are rejected
// before any write. Last writer for a month wins.
func (h *IncomeHandler) SetIncome(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req setIncomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	cents, err := req.Amount.Cent()
	if err != nil || cents < 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}

	income := models.Income{
		UserID:     user.ID,
		AmountCent: cents,
		MonthYear:  stats.MonthKey(time.Now()),
	}
	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "month_year"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount_cent": cents,
			"updated_at":  time.Now(),
		}),
	}).Create(&income).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save income failed")
		return
	}

	util.Success(c, util.Response{
		"message": "income saved",
	})
}
