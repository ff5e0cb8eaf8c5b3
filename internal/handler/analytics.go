package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/yu086868-ui/iFinance-app/internal/middleware"
	"github.com/yu086868-ui/iFinance-app/internal/models"
	"github.com/yu086868-ui/iFinance-app/internal/stats"
	"github.com/yu086868-ui/iFinance-app/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AnalyticsHandler 负责统计分析接口：总览和预算使用率。
// 先把 owner + 时间窗内的行取出来，再交给 stats 包做纯内存聚合。
type AnalyticsHandler struct {
	DB *gorm.DB
}

func NewAnalyticsHandler(db *gorm.DB) *AnalyticsHandler {
	return &AnalyticsHandler{DB: db}
}

// fetchWindow 取出某用户闭区间 [start, end] 内的全部记录
func (h *AnalyticsHandler) fetchWindow(userID uint, start, end string) ([]models.Record, error) {
	var records []models.Record
	err := h.DB.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&records).Error
	return records, err
}

// GetOverview 返回某年的收支总览
// 收入/支出各自的总额和笔数、支出的分类/账户分布、结余
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	year := time.Now().Year()
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1970 || y > 9999 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "年份参数错误")
			return
		}
		year = y
	}

	start, end := stats.YearWindow(year)
	records, err := h.fetchWindow(user.ID, start, end)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "获取统计数据失败")
		return
	}

	ov := stats.Summarize(records)

	categories := make([]gin.H, 0, len(ov.Categories))
	for _, cs := range ov.Categories {
		categories = append(categories, gin.H{
			"category":      cs.Category,
			"category_name": models.CategoryName(cs.Category),
			"total_cent":    cs.TotalCent,
			"total":         util.FormatCent(cs.TotalCent),
			"count":         cs.Count,
		})
	}
	accounts := make([]gin.H, 0, len(ov.Accounts))
	for _, as := range ov.Accounts {
		accounts = append(accounts, gin.H{
			"account":      as.Account,
			"account_name": models.AccountName(as.Account),
			"total_cent":   as.TotalCent,
			"total":        util.FormatCent(as.TotalCent),
			"count":        as.Count,
		})
	}

	util.Success(c, util.Response{
		"year": year,
		"income": gin.H{
			"total_cent": ov.Income.TotalCent,
			"total":      util.FormatCent(ov.Income.TotalCent),
			"count":      ov.Income.Count,
		},
		"expense": gin.H{
			"total_cent": ov.Expense.TotalCent,
			"total":      util.FormatCent(ov.Expense.TotalCent),
			"count":      ov.Expense.Count,
		},
		"categories":   categories,
		"accounts":     accounts,
		"balance_cent": ov.BalanceCent,
		"balance":      util.FormatCent(ov.BalanceCent),
	})
}

// GetBudgetUsage 返回某月每条预算的使用情况和汇总
// 汇总只统计有预算行的分类（没设预算的支出不计入 total_actual）
func (h *AnalyticsHandler) GetBudgetUsage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "年份参数错误")
			return
		}
		year = y
	}
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "月份参数错误")
			return
		}
		month = m
	}
	if err := util.ValidateYearMonth(year, month); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "年月参数错误")
		return
	}

	var budgets []models.Budget
	if err := h.DB.
		Where("user_id = ? AND year = ? AND month = ?", user.ID, year, month).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "获取预算失败")
		return
	}

	start, end := stats.MonthWindow(year, month)
	records, err := h.fetchWindow(user.ID, start, end)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "获取支出数据失败")
		return
	}

	usage, summary := stats.ComputeBudgetUsage(budgets, stats.ExpenseByCategory(records))

	items := make([]gin.H, 0, len(usage))
	for _, u := range usage {
		items = append(items, gin.H{
			"id":               u.Budget.ID,
			"category":         u.Budget.Category,
			"category_name":    models.CategoryName(u.Budget.Category),
			"amount_cent":      u.Budget.AmountCent,
			"amount":           util.FormatCent(u.Budget.AmountCent),
			"period":           u.Budget.Period,
			"year":             u.Budget.Year,
			"month":            u.Budget.Month,
			"alerts_enabled":   u.Budget.AlertsEnabled,
			"threshold":        u.Budget.Threshold,
			"actual_cent":      u.ActualCent,
			"actual_amount":    util.FormatCent(u.ActualCent),
			"remaining_cent":   u.RemainingCent,
			"remaining_amount": util.FormatCent(u.RemainingCent),
			"usage_percent":    u.UsagePercent,
			"is_over_budget":   u.IsOverBudget,
		})
	}

	util.Success(c, util.Response{
		"year":    year,
		"month":   month,
		"budgets": items,
		"summary": gin.H{
			"total_budget_cent":    summary.TotalBudgetCent,
			"total_budget":         util.FormatCent(summary.TotalBudgetCent),
			"total_actual_cent":    summary.TotalActualCent,
			"total_actual":         util.FormatCent(summary.TotalActualCent),
			"total_remaining_cent": summary.TotalRemainingCent,
			"total_remaining":      util.FormatCent(summary.TotalRemainingCent),
		},
	})
}
