package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chandu2812/budget-plan/internal/database"
	"github.com/chandu2812/budget-plan/internal/middleware"
	"github.com/chandu2812/budget-plan/internal/models"
	"github.com/chandu2812/budget-plan/internal/stats"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

// ==================== test harness ====================

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newTestRouter wires the API routes the way main wires them, minus
// templates and static files.
func newTestRouter(db *gorm.DB, demoLogin bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")

	authHandler := NewAuthHandler(db, testJWTSecret, "budget-plan", 1, bcrypt.MinCost, demoLogin)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(testJWTSecret, db))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/me", authHandler.GetMe)
	protected.GET("/data", NewDataHandler(db).GetData)
	protected.POST("/income", NewIncomeHandler(db).SetIncome)

	budgetHandler := NewBudgetHandler(db)
	protected.POST("/budget", budgetHandler.UpsertBudget)
	protected.POST("/budget/delete", budgetHandler.DeleteBudget)

	protected.POST("/expense", NewExpenseHandler(db).AddExpense)

	goalHandler := NewGoalHandler(db)
	protected.POST("/goal", goalHandler.AddGoal)
	protected.POST("/goal/delete", goalHandler.DeleteGoal)
	protected.POST("/saving", goalHandler.AddSaving)

	protected.GET("/notifications", NewNotificationHandler(db).ListNotifications)
	protected.GET("/analytics/trends", NewAnalyticsHandler(db).GetTrends)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return payload
}

func mustOK(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	payload := decode(t, w)
	if code, _ := payload["code"].(float64); code != 0 {
		t.Fatalf("business code = %v, body = %s", payload["code"], w.Body.String())
	}
	data, _ := payload["data"].(map[string]interface{})
	return data
}

func registerAndLogin(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username":         username,
		"password":         password,
		"confirm_password": password,
	})
	mustOK(t, w)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	data := mustOK(t, w)
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

// ==================== auth ====================

func TestRegister_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)

	body := gin.H{"username": "alice", "password": "secret1", "confirm_password": "secret1"}
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/auth/register", "", body))

	// same name, different case
	body["username"] = "Alice"
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d", w.Code)
	}
	payload := decode(t, w)
	if code, _ := payload["code"].(float64); code != 40901 {
		t.Errorf("business code = %v, want 40901", payload["code"])
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("user rows = %d, want 1", count)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "password": "secret1", "confirm_password": "secret1",
	}))

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "alice", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestUnauthorizedRequest(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)

	w := doJSON(t, r, http.MethodGet, "/api/data", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/data", "not-a-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status with garbage token = %d, want 401", w.Code)
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	mustOK(t, doJSON(t, r, http.MethodGet, "/api/data", token, nil))
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/auth/logout", token, nil))

	w := doJSON(t, r, http.MethodGet, "/api/data", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status after logout = %d, want 401", w.Code)
	}
}

func TestDemoLogin(t *testing.T) {
	db := newTestDB(t)

	// disabled: unknown user is just a failed login
	r := newTestRouter(db, false)
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "demo", "password": "demo",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("demo login while disabled: status = %d, want 401", w.Code)
	}

	// enabled: first login provisions the account
	r = newTestRouter(db, true)
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "demo", "password": "demo",
	})
	mustOK(t, w)

	var count int64
	db.Model(&models.User{}).Where("username = ?", "demo").Count(&count)
	if count != 1 {
		t.Errorf("demo user rows = %d, want 1", count)
	}
}

// ==================== income ====================

func TestSetIncome_UpsertLastWins(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/income", token, gin.H{"amount": "5000"}))
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/income", token, gin.H{"amount": "6200.50"}))

	var rows []models.Income
	if err := db.Find(&rows).Error; err != nil {
		t.Fatalf("query income: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("income rows = %d, want 1", len(rows))
	}
	if rows[0].AmountCent != 620050 {
		t.Errorf("amount_cent = %d, want 620050", rows[0].AmountCent)
	}
	if rows[0].MonthYear != stats.MonthKey(time.Now()) {
		t.Errorf("month_year = %q, want current month", rows[0].MonthYear)
	}
}

func TestSetIncome_InvalidRejectedWithoutWrite(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	for _, amount := range []interface{}{"-100", "abc", "12.345"} {
		w := doJSON(t, r, http.MethodPost, "/api/income", token, gin.H{"amount": amount})
		if w.Code != http.StatusBadRequest {
			t.Errorf("amount %v: status = %d, want 400", amount, w.Code)
		}
	}

	var count int64
	db.Model(&models.Income{}).Count(&count)
	if count != 0 {
		t.Errorf("income rows after rejected writes = %d, want 0", count)
	}
}

func TestSetIncome_ZeroAllowed(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/income", token, gin.H{"amount": "0"}))

	var row models.Income
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("query income: %v", err)
	}
	if row.AmountCent != 0 {
		t.Errorf("amount_cent = %d, want 0", row.AmountCent)
	}
}

// ==================== budgets ====================

func TestUpsertBudget_LastWins(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/budget", token, gin.H{
		"category": "Food", "amount": "300",
	}))
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/budget", token, gin.H{
		"category": "Food", "amount": "450",
	}))

	var rows []models.Budget
	if err := db.Find(&rows).Error; err != nil {
		t.Fatalf("query budgets: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("budget rows = %d, want 1", len(rows))
	}
	if rows[0].AmountCent != 45000 {
		t.Errorf("amount_cent = %d, want 45000", rows[0].AmountCent)
	}
}

func TestDeleteBudget_AbsentIsNoop(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/budget", token, gin.H{
		"category": "Food", "amount": "300",
	}))

	// deleting a category that was never budgeted still succeeds
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/budget/delete", token, gin.H{
		"category": "Travel",
	}))

	var count int64
	db.Model(&models.Budget{}).Count(&count)
	if count != 1 {
		t.Errorf("budget rows = %d, want 1", count)
	}

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/budget/delete", token, gin.H{
		"category": "Food",
	}))
	db.Model(&models.Budget{}).Count(&count)
	if count != 0 {
		t.Errorf("budget rows after delete = %d, want 0", count)
	}
}

// ==================== expenses and overspend alerts ====================

func TestOverspendNotifications(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/budget", token, gin.H{
		"category": "Food", "amount": "300",
	}))

	// under budget: no alert
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/expense", token, gin.H{
		"category": "Food", "amount": "120", "description": "groceries",
	}))
	var count int64
	db.Model(&models.Notification{}).Count(&count)
	if count != 0 {
		t.Fatalf("notifications under budget = %d, want 0", count)
	}

	// crosses the limit: exactly one alert with the overage
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/expense", token, gin.H{
		"category": "Food", "amount": "250", "description": "restaurant",
	}))
	var alerts []models.Notification
	db.Find(&alerts)
	if len(alerts) != 1 {
		t.Fatalf("notifications after overspend = %d, want 1", len(alerts))
	}
	if !strings.Contains(alerts[0].Message, "'Food'") || !strings.Contains(alerts[0].Message, "70.00") {
		t.Errorf("alert message = %q, want category and 70.00 overage", alerts[0].Message)
	}
	if alerts[0].Type != NotificationTypeDanger {
		t.Errorf("alert type = %q, want %q", alerts[0].Type, NotificationTypeDanger)
	}

	// alerts are not deduplicated: the next qualifying expense adds another
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/expense", token, gin.H{
		"category": "Food", "amount": "10",
	}))
	db.Find(&alerts)
	if len(alerts) != 2 {
		t.Fatalf("notifications after second overspend = %d, want 2", len(alerts))
	}
	if !strings.Contains(alerts[1].Message, "80.00") {
		t.Errorf("second alert message = %q, want 80.00 overage", alerts[1].Message)
	}
}

func TestExpense_NoBudgetNoNotification(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/expense", token, gin.H{
		"category": "Travel", "amount": "9999",
	}))

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	if count != 0 {
		t.Errorf("notifications without a budget = %d, want 0", count)
	}
}

// ==================== goals and savings ====================

func TestAddGoal_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	body := gin.H{"name": "Vacation", "target": "2000", "deadline": "2027-06-30"}
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/goal", token, body))

	w := doJSON(t, r, http.MethodPost, "/api/goal", token, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate goal status = %d, want 400", w.Code)
	}
	payload := decode(t, w)
	if code, _ := payload["code"].(float64); code != 40901 {
		t.Errorf("business code = %v, want 40901", payload["code"])
	}

	var count int64
	db.Model(&models.Goal{}).Count(&count)
	if count != 1 {
		t.Errorf("goal rows = %d, want 1", count)
	}
}

func TestAddSaving(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/goal", token, gin.H{
		"name": "Vacation", "target": "2000", "deadline": "2027-06-30",
	}))

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/saving", token, gin.H{
		"goal_name": "Vacation", "amount": "150.25",
	}))
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/saving", token, gin.H{
		"goal_name": "Vacation", "amount": "49.75",
	}))

	var goal models.Goal
	if err := db.First(&goal, "name = ?", "Vacation").Error; err != nil {
		t.Fatalf("query goal: %v", err)
	}
	if goal.CurrentCent != 20000 {
		t.Errorf("current_cent = %d, want 20000", goal.CurrentCent)
	}

	// contributing to a goal that does not exist succeeds without effect
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/saving", token, gin.H{
		"goal_name": "Nonexistent", "amount": "10",
	}))
	db.First(&goal, "name = ?", "Vacation")
	if goal.CurrentCent != 20000 {
		t.Errorf("current_cent after stray saving = %d, want 20000", goal.CurrentCent)
	}
}

func TestDeleteGoal_AbsentIsNoop(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/goal/delete", token, gin.H{
		"name": "Never existed",
	}))
}

// ==================== trends ====================

func TestTrends_SparseMonths(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	var user models.User
	if err := db.First(&user, "username = ?", "alice").Error; err != nil {
		t.Fatalf("query user: %v", err)
	}

	now := time.Now()
	twoMonthsAgo := stats.MonthStart(now).AddDate(0, -2, 0).Add(time.Hour)
	outsideWindow := stats.TrendWindowStart(now, 6).Add(-time.Hour)

	seed := []models.Expense{
		{UserID: user.ID, Category: "Food", AmountCent: 12000, Timestamp: now},
		{UserID: user.ID, Category: "Food", AmountCent: 3000, Timestamp: now},
		{UserID: user.ID, Category: "Rent", AmountCent: 80000, Timestamp: twoMonthsAgo},
		{UserID: user.ID, Category: "Rent", AmountCent: 99999, Timestamp: outsideWindow},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed expense: %v", err)
		}
	}

	data := mustOK(t, doJSON(t, r, http.MethodGet, "/api/analytics/trends", token, nil))
	labels, _ := data["labels"].([]interface{})
	totals, _ := data["expenses"].([]interface{})

	// only the two months with expenses appear, oldest first
	if len(labels) != 2 || len(totals) != 2 {
		t.Fatalf("labels = %v, expenses = %v, want 2 entries each", labels, totals)
	}
	if labels[0] != stats.MonthKey(twoMonthsAgo) || labels[1] != stats.MonthKey(now) {
		t.Errorf("labels = %v, want [%s %s]", labels, stats.MonthKey(twoMonthsAgo), stats.MonthKey(now))
	}
	if totals[0].(float64) != 800 {
		t.Errorf("older month total = %v, want 800", totals[0])
	}
	if totals[1].(float64) != 150 {
		t.Errorf("current month total = %v, want 150", totals[1])
	}
}

// ==================== aggregated read model ====================

func TestDashboardScenario(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/income", token, gin.H{"amount": "5000"}))
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/budget", token, gin.H{
		"category": "Food", "amount": "300",
	}))
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/expense", token, gin.H{
		"category": "Food", "amount": "120", "description": "groceries",
	}))
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/expense", token, gin.H{
		"category": "Food", "amount": "250", "description": "restaurant",
	}))

	data := mustOK(t, doJSON(t, r, http.MethodGet, "/api/data", token, nil))

	income, _ := data["income"].(map[string]interface{})
	if income["amount_cent"].(float64) != 500000 {
		t.Errorf("income amount_cent = %v, want 500000", income["amount_cent"])
	}
	if income["updated_at"] == nil {
		t.Error("income updated_at should be set")
	}

	budgets, _ := data["budgets"].(map[string]interface{})
	food, _ := budgets["Food"].(map[string]interface{})
	if food == nil || food["amount_cent"].(float64) != 30000 {
		t.Errorf("budgets[Food] = %v, want amount_cent 30000", budgets["Food"])
	}

	expenses, _ := data["expenses"].([]interface{})
	if len(expenses) != 2 {
		t.Fatalf("expenses = %d entries, want 2", len(expenses))
	}
	// newest first
	first, _ := expenses[0].(map[string]interface{})
	if first["amount_cent"].(float64) != 25000 {
		t.Errorf("newest expense amount_cent = %v, want 25000", first["amount_cent"])
	}

	notifications, _ := data["notifications"].([]interface{})
	if len(notifications) != 1 {
		t.Fatalf("unread notifications = %d, want 1", len(notifications))
	}
	alert, _ := notifications[0].(map[string]interface{})
	if msg, _ := alert["message"].(string); !strings.Contains(msg, "70.00") {
		t.Errorf("alert message = %q, want 70.00 overage", msg)
	}

	summary, _ := data["summary"].(map[string]interface{})
	if summary["total_spent_cent"].(float64) != 37000 {
		t.Errorf("total_spent_cent = %v, want 37000", summary["total_spent_cent"])
	}
	if summary["remaining_cent"].(float64) != 463000 {
		t.Errorf("remaining_cent = %v, want 463000", summary["remaining_cent"])
	}
	if summary["savings_rate"].(float64) != 92.6 {
		t.Errorf("savings_rate = %v, want 92.6", summary["savings_rate"])
	}
}

func TestData_EmptyAccount(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "bob", "secret1")

	data := mustOK(t, doJSON(t, r, http.MethodGet, "/api/data", token, nil))

	income, _ := data["income"].(map[string]interface{})
	if income["amount_cent"].(float64) != 0 {
		t.Errorf("income amount_cent = %v, want 0", income["amount_cent"])
	}
	if income["updated_at"] != nil {
		t.Errorf("income updated_at = %v, want null", income["updated_at"])
	}

	summary, _ := data["summary"].(map[string]interface{})
	if summary["savings_rate"].(float64) != 0 {
		t.Errorf("savings_rate with no income = %v, want 0", summary["savings_rate"])
	}
}

// ==================== per-user isolation ====================

func TestData_IsolatedPerUser(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	aliceToken := registerAndLogin(t, r, "alice", "secret1")
	bobToken := registerAndLogin(t, r, "bob", "secret2")

	mustOK(t, doJSON(t, r, http.MethodPost, "/api/income", aliceToken, gin.H{"amount": "5000"}))
	mustOK(t, doJSON(t, r, http.MethodPost, "/api/expense", aliceToken, gin.H{
		"category": "Food", "amount": "42",
	}))

	data := mustOK(t, doJSON(t, r, http.MethodGet, "/api/data", bobToken, nil))
	income, _ := data["income"].(map[string]interface{})
	if income["amount_cent"].(float64) != 0 {
		t.Errorf("bob sees income amount_cent = %v, want 0", income["amount_cent"])
	}
	expenses, _ := data["expenses"].([]interface{})
	if len(expenses) != 0 {
		t.Errorf("bob sees %d expenses, want 0", len(expenses))
	}
}

// ==================== notification feed ====================

func TestListNotifications(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, false)
	token := registerAndLogin(t, r, "alice", "secret1")

	var user models.User
	if err := db.First(&user, "username = ?", "alice").Error; err != nil {
		t.Fatalf("query user: %v", err)
	}
	for i := 0; i < 3; i++ {
		n := models.Notification{
			UserID:  user.ID,
			Message: fmt.Sprintf("alert %d", i),
			Type:    NotificationTypeDanger,
			IsRead:  i == 0,
		}
		if err := db.Create(&n).Error; err != nil {
			t.Fatalf("seed notification: %v", err)
		}
	}

	// the full feed includes read rows
	data := mustOK(t, doJSON(t, r, http.MethodGet, "/api/notifications", token, nil))
	items, _ := data["notifications"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("feed length = %d, want 3", len(items))
	}

	// the dashboard snapshot only carries unread ones
	data = mustOK(t, doJSON(t, r, http.MethodGet, "/api/data", token, nil))
	items, _ = data["notifications"].([]interface{})
	if len(items) != 2 {
		t.Errorf("unread in snapshot = %d, want 2", len(items))
	}
}
