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

const trendMonths = 6

// AnalyticsHandler computes the spending trend.
type AnalyticsHandler struct {
	DB *gorm.DB
}

func NewAnalyticsHandler(db *gorm.DB) *AnalyticsHandler {
	return &AnalyticsHandler{DB: db}
}

// GetTrends sums expenses per calendar month over the trailing six
// months (current month inclusive), ascending. Months without expenses
// are omitted, so labels and totals are sparse parallel sequences.
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	windowStart := stats.TrendWindowStart(time.Now(), trendMonths)

	type monthTotal struct {
		Month     string
		TotalCent int64
	}
	var rows []monthTotal
	if err := h.DB.Model(&models.Expense{}).
		Select("strftime('%Y-%m', timestamp) AS month, SUM(amount_cent) AS total_cent").
		Where("user_id = ? AND timestamp >= ?", user.ID, windowStart).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query trends failed")
		return
	}

	labels := make([]string, 0, len(rows))
	totals := make([]float64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Month)
		totals = append(totals, money.CentToFloat(r.TotalCent))
	}

	util.Success(c, util.Response{
		"labels":   labels,
		"expenses": totals,
	})
}
