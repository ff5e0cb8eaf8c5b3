package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/yu086868-ui/iFinance-app/internal/middleware"
	"github.com/yu086868-ui/iFinance-app/internal/models"
	"github.com/yu086868-ui/iFinance-app/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetHandler 负责预算相关接口
type BudgetHandler struct {
	DB *gorm.DB
}

func NewBudgetHandler(db *gorm.DB) *BudgetHandler {
	return &BudgetHandler{DB: db}
}

type setBudgetReq struct {
	Category      string          `json:"category" binding:"required,max=32"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Period        string          `json:"period"` // 目前只有 monthly
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	AlertsEnabled *bool           `json:"alerts_enabled"`
	Threshold     *int            `json:"threshold"`
}

type budgetResp struct {
	ID            uint      `json:"id"`
	Category      string    `json:"category"`
	CategoryName  string    `json:"category_name"`
	AmountCent    int64     `json:"amount_cent"`
	Amount        string    `json:"amount"`
	Period        string    `json:"period"`
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	AlertsEnabled bool      `json:"alerts_enabled"`
	Threshold     int       `json:"threshold"`
	CreatedAt     time.Time `json:"created_at"`
}

func toBudgetResp(b *models.Budget) budgetResp {
	return budgetResp{
		ID:            b.ID,
		Category:      b.Category,
		CategoryName:  models.CategoryName(b.Category),
		AmountCent:    b.AmountCent,
		Amount:        util.FormatCent(b.AmountCent),
		Period:        b.Period,
		Year:          b.Year,
		Month:         b.Month,
		AlertsEnabled: b.AlertsEnabled,
		Threshold:     b.Threshold,
		CreatedAt:     b.CreatedAt,
	}
}

// ListBudgets 查询预算列表，支持 year / year+month 筛选
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	base := h.DB.Model(&models.Budget{}).Where("user_id = ?", user.ID)

	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr != "" && monthStr != "" {
		year, err1 := strconv.Atoi(yearStr)
		month, err2 := strconv.Atoi(monthStr)
		if err1 != nil || err2 != nil || util.ValidateYearMonth(year, month) != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "年月参数错误")
			return
		}
		base = base.Where("year = ? AND month = ?", year, month)
	} else if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "年份参数错误")
			return
		}
		base = base.Where("year = ?", year)
	}

	var budgets []models.Budget
	if err := base.Order("year DESC, month DESC, category ASC").Find(&budgets).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "获取预算失败")
		return
	}

	items := make([]budgetResp, 0, len(budgets))
	for i := range budgets {
		items = append(items, toBudgetResp(&budgets[i]))
	}

	util.Success(c, util.Response{
		"budgets": items,
	})
}

// SetBudget 设置预算：同一 (user, category, year, month) 存在则更新金额，否则插入。
// 用数据库级 ON CONFLICT DO UPDATE 一步完成，并发下不会出现重复行或瞬时缺行。
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	var req setBudgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "请提供有效的分类和金额")
		return
	}

	amountCent, err := util.ParseAmountToCent(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "请提供有效的分类和金额")
		return
	}

	// 预算只针对支出分类
	if !models.ValidCategory("expense", req.Category) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "无效的分类")
		return
	}

	if req.Period == "" {
		req.Period = "monthly"
	}
	if req.Period != "monthly" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "暂不支持的预算周期")
		return
	}

	// 年月缺省为当前月
	now := time.Now()
	if req.Year == 0 {
		req.Year = now.Year()
	}
	if req.Month == 0 {
		req.Month = int(now.Month())
	}
	if err := util.ValidateYearMonth(req.Year, req.Month); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "年月参数错误")
		return
	}

	budget := models.Budget{
		UserID:        user.ID,
		Category:      req.Category,
		AmountCent:    amountCent,
		Period:        req.Period,
		Year:          req.Year,
		Month:         req.Month,
		AlertsEnabled: true,
		Threshold:     80,
	}
	if req.AlertsEnabled != nil {
		budget.AlertsEnabled = *req.AlertsEnabled
	}
	if req.Threshold != nil {
		budget.Threshold = *req.Threshold
	}

	// 原子 upsert：冲突时更新金额；提醒设置只在请求里带了才覆盖，
	// 不带时保留已有行的自定义值
	assignments := map[string]interface{}{
		"amount_cent": budget.AmountCent,
		"updated_at":  time.Now(),
	}
	if req.AlertsEnabled != nil {
		assignments["alerts_enabled"] = budget.AlertsEnabled
	}
	if req.Threshold != nil {
		assignments["threshold"] = budget.Threshold
	}

	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "category"}, {Name: "year"}, {Name: "month"},
		},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&budget).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "设置预算失败")
		return
	}

	// 冲突更新时 budget 里是请求的默认值，回读一次保证返回的是库里的实际行
	var saved models.Budget
	if err := h.DB.
		Where("user_id = ? AND category = ? AND year = ? AND month = ?",
			user.ID, req.Category, req.Year, req.Month).
		First(&saved).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "设置预算失败")
		return
	}

	util.Success(c, util.Response{
		"message": "预算设置成功",
		"budget":  toBudgetResp(&saved),
	})
}

// DeleteBudget 删除预算（只能删自己的）
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return
	}

	result := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Budget{})
	if result.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "删除预算失败")
		return
	}
	if result.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "预算不存在")
		return
	}

	util.Success(c, util.Response{
		"message": "预算删除成功",
	})
}
