package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/yu086868-ui/iFinance-app/internal/models"
)

// 聚合引擎：对已经按 owner + 时间窗取出的记录做纯内存统计。
// 金额全程用分（int64），不经过浮点。

// Stat 一组记录的总额和笔数
type Stat struct {
	TotalCent int64 `json:"total_cent"`
	Count     int   `json:"count"`
}

// CategoryStat 按分类汇总的支出
type CategoryStat struct {
	Category  string `json:"category"`
	TotalCent int64  `json:"total_cent"`
	Count     int    `json:"count"`
}

// AccountStat 按账户汇总的支出
type AccountStat struct {
	Account   string `json:"account"`
	TotalCent int64  `json:"total_cent"`
	Count     int    `json:"count"`
}

// Overview 收支总览
// 任何分组为空时返回零值，不会缺字段
type Overview struct {
	Income      Stat           `json:"income"`
	Expense     Stat           `json:"expense"`
	Categories  []CategoryStat `json:"categories"`
	Accounts    []AccountStat  `json:"accounts"`
	BalanceCent int64          `json:"balance_cent"` // 收入 - 支出
}

// Summarize 计算一组记录的收支总览。
// 分类、账户统计只针对支出；分类按总额降序排列。
func Summarize(records []models.Record) Overview {
	var ov Overview

	catMap := make(map[string]*CategoryStat)
	accMap := make(map[string]*AccountStat)

	for i := range records {
		r := &records[i]

		if r.Type == "income" {
			ov.Income.TotalCent += r.AmountCent
			ov.Income.Count++
			continue
		}

		ov.Expense.TotalCent += r.AmountCent
		ov.Expense.Count++

		cs, ok := catMap[r.Category]
		if !ok {
			cs = &CategoryStat{Category: r.Category}
			catMap[r.Category] = cs
		}
		cs.TotalCent += r.AmountCent
		cs.Count++

		as, ok := accMap[r.Account]
		if !ok {
			as = &AccountStat{Account: r.Account}
			accMap[r.Account] = as
		}
		as.TotalCent += r.AmountCent
		as.Count++
	}

	ov.Categories = make([]CategoryStat, 0, len(catMap))
	for _, cs := range catMap {
		ov.Categories = append(ov.Categories, *cs)
	}
	sort.Slice(ov.Categories, func(i, j int) bool {
		if ov.Categories[i].TotalCent != ov.Categories[j].TotalCent {
			return ov.Categories[i].TotalCent > ov.Categories[j].TotalCent
		}
		return ov.Categories[i].Category < ov.Categories[j].Category
	})

	ov.Accounts = make([]AccountStat, 0, len(accMap))
	for _, as := range accMap {
		ov.Accounts = append(ov.Accounts, *as)
	}
	sort.Slice(ov.Accounts, func(i, j int) bool {
		if ov.Accounts[i].TotalCent != ov.Accounts[j].TotalCent {
			return ov.Accounts[i].TotalCent > ov.Accounts[j].TotalCent
		}
		return ov.Accounts[i].Account < ov.Accounts[j].Account
	})

	ov.BalanceCent = ov.Income.TotalCent - ov.Expense.TotalCent
	return ov
}

// ExpenseByCategory 按分类汇总支出金额（分），供预算使用率计算。
func ExpenseByCategory(records []models.Record) map[string]int64 {
	sums := make(map[string]int64)
	for i := range records {
		if records[i].Type == "expense" {
			sums[records[i].Category] += records[i].AmountCent
		}
	}
	return sums
}

// LastDayOfMonth 返回某年某月的最后一天（28/29/30/31）。
// 用下个月第 0 天的技巧，闰年二月自动正确。
func LastDayOfMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthWindow 返回某年某月的闭区间日期窗口 [YYYY-MM-01, YYYY-MM-最后一天]。
// 固定宽度补零，区间比较可以直接按字典序。
func MonthWindow(year, month int) (start, end string) {
	start = fmt.Sprintf("%04d-%02d-01", year, month)
	end = fmt.Sprintf("%04d-%02d-%02d", year, month, LastDayOfMonth(year, month))
	return start, end
}

// YearWindow 返回某年的闭区间日期窗口 [YYYY-01-01, YYYY-12-31]。
func YearWindow(year int) (start, end string) {
	return fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year)
}

// BudgetUsage 单条预算的使用情况
type BudgetUsage struct {
	Budget        models.Budget
	ActualCent    int64   // 该分类当月实际支出
	RemainingCent int64   // 剩余额度（可以为负）
	UsagePercent  float64 // 使用率百分比
	IsOverBudget  bool
}

// UsageSummary 预算使用情况汇总
// 只统计有预算行的分类：没设预算的分类即使有支出也不计入汇总
type UsageSummary struct {
	TotalBudgetCent    int64 `json:"total_budget_cent"`
	TotalActualCent    int64 `json:"total_actual_cent"`
	TotalRemainingCent int64 `json:"total_remaining_cent"`
}

// ComputeBudgetUsage 把预算行和分类支出汇总合成使用情况。
// 预算为 0 时使用率按 0 处理，避免除零。
func ComputeBudgetUsage(budgets []models.Budget, expenseByCategory map[string]int64) ([]BudgetUsage, UsageSummary) {
	usage := make([]BudgetUsage, 0, len(budgets))
	var summary UsageSummary

	for _, b := range budgets {
		actual := expenseByCategory[b.Category]
		remaining := b.AmountCent - actual

		percent := 0.0
		if b.AmountCent > 0 {
			percent = float64(actual) / float64(b.AmountCent) * 100
		}

		usage = append(usage, BudgetUsage{
			Budget:        b,
			ActualCent:    actual,
			RemainingCent: remaining,
			UsagePercent:  percent,
			IsOverBudget:  remaining < 0,
		})

		summary.TotalBudgetCent += b.AmountCent
		summary.TotalActualCent += actual
	}
	summary.TotalRemainingCent = summary.TotalBudgetCent - summary.TotalActualCent

	return usage, summary
}
