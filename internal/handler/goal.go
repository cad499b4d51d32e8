package handler

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/chandu2812/budget-plan/internal/middleware"
	"github.com/chandu2812/budget-plan/internal/models"
	"github.com/chandu2812/budget-plan/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GoalHandler manages savings goals and contributions.
type GoalHandler struct {
	DB *gorm.DB
}

func NewGoalHandler(db *gorm.DB) *GoalHandler {
	return &GoalHandler{DB: db}
}

type addGoalReq struct {
	Name     string `json:"name" binding:"required,max=100"`
	Target   Amount `json:"target" binding:"required"`
	Deadline string `json:"deadline" binding:"required"`
}

// AddGoal creates a savings goal. A second goal with the same name for
// the same owner is a hard duplicate error.
func (h *GoalHandler) AddGoal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req addGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "goal name is empty")
		return
	}

	targetCents, err := req.Target.Cent()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid target amount")
		return
	}
	if err := util.ValidateAmountCent(targetCents); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	if err := util.ValidateDate(req.Deadline); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	deadline, _ := time.Parse("2006-01-02", req.Deadline)

	var count int64
	if err := h.DB.Model(&models.Goal{}).
		Where("user_id = ? AND name = ?", user.ID, req.Name).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query goal failed")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeDuplicate,
			"A goal with the name '"+req.Name+"' already exists.")
		return
	}

	goal := models.Goal{
		UserID:     user.ID,
		Name:       req.Name,
		TargetCent: targetCents,
		Deadline:   deadline,
	}
	if err := h.DB.Create(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create goal failed")
		return
	}

	util.Success(c, util.Response{
		"message": "goal created",
	})
}

type deleteGoalReq struct {
	Name string `json:"name" binding:"required"`
}

// DeleteGoal removes the named goal. Deleting an absent goal is a no-op
// success.
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req deleteGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	if err := h.DB.
		Where("user_id = ? AND name = ?", user.ID, strings.TrimSpace(req.Name)).
		Delete(&models.Goal{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete goal failed")
		return
	}

	util.Success(c, util.Response{
		"message": "goal deleted",
	})
}

type addSavingReq struct {
	GoalName string `json:"goal_name" binding:"required"`
	Amount   Amount `json:"amount" binding:"required"`
}

// AddSaving increments a goal's accumulated amount. When the goal does
// not exist the update touches zero rows and the call still reports
// success; contributions are lenient where creation is strict. The
// zero-row case is logged so the gap stays visible.
func (h *GoalHandler) AddSaving(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req addSavingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
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

	res := h.DB.Model(&models.Goal{}).
		Where("user_id = ? AND name = ?", user.ID, strings.TrimSpace(req.GoalName)).
		Update("current_cent", gorm.Expr("current_cent + ?", cents))
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save contribution failed")
		return
	}
	if res.RowsAffected == 0 {
		log.Printf("saving to unknown goal %q for user=%d ignored", req.GoalName, user.ID)
	}

	util.Success(c, util.Response{
		"message": "saving added",
	})
}
