package stats

import (
	"testing"

	"github.com/yu086868-ui/iFinance-app/internal/models"
)

func expense(category, account string, cent int64, date string) models.Record {
	return models.Record{Type: "expense", Category: category, Account: account, AmountCent: cent, Date: date}
}

func income(category, account string, cent int64, date string) models.Record {
	return models.Record{Type: "income", Category: category, Account: account, AmountCent: cent, Date: date}
}

// TestSummarize_Empty 空记录集应返回全零值，而不是缺字段
func TestSummarize_Empty(t *testing.T) {
	ov := Summarize(nil)

	if ov.Income.TotalCent != 0 || ov.Income.Count != 0 {
		t.Errorf("income = %+v, want zero", ov.Income)
	}
	if ov.Expense.TotalCent != 0 || ov.Expense.Count != 0 {
		t.Errorf("expense = %+v, want zero", ov.Expense)
	}
	if ov.BalanceCent != 0 {
		t.Errorf("balance = %d, want 0", ov.BalanceCent)
	}
	if len(ov.Categories) != 0 || len(ov.Accounts) != 0 {
		t.Errorf("categories/accounts should be empty, got %d/%d", len(ov.Categories), len(ov.Accounts))
	}
}

// TestSummarize_EndToEnd 样例场景：支出 100+50 餐饮，收入 2000 工资
func TestSummarize_EndToEnd(t *testing.T) {
	records := []models.Record{
		expense("food", "alipay", 10000, "2024-10-01"),
		expense("food", "wechat", 5000, "2024-10-15"),
		income("salary", "bank", 200000, "2024-10-01"),
	}

	ov := Summarize(records)

	if ov.Expense.TotalCent != 15000 || ov.Expense.Count != 2 {
		t.Errorf("expense = %+v, want {15000 2}", ov.Expense)
	}
	if ov.Income.TotalCent != 200000 || ov.Income.Count != 1 {
		t.Errorf("income = %+v, want {200000 1}", ov.Income)
	}
	if ov.BalanceCent != 185000 {
		t.Errorf("balance = %d, want 185000", ov.BalanceCent)
	}
	if len(ov.Categories) != 1 {
		t.Fatalf("categories = %d, want 1", len(ov.Categories))
	}
	cs := ov.Categories[0]
	if cs.Category != "food" || cs.TotalCent != 15000 || cs.Count != 2 {
		t.Errorf("category = %+v, want {food 15000 2}", cs)
	}
}

// TestSummarize_Invariants 结余恒等于收入减支出，分类总和恒等于支出总和
func TestSummarize_Invariants(t *testing.T) {
	records := []models.Record{
		expense("food", "alipay", 3500, "2024-10-01"),
		expense("transport", "wechat", 800, "2024-10-02"),
		expense("food", "cash", 12000, "2024-10-02"),
		expense("shopping", "credit", 29900, "2024-10-04"),
		income("salary", "bank", 800000, "2024-10-01"),
		income("other", "wechat", 30000, "2024-10-10"),
	}

	ov := Summarize(records)

	if ov.BalanceCent != ov.Income.TotalCent-ov.Expense.TotalCent {
		t.Errorf("balance = %d, want income - expense = %d",
			ov.BalanceCent, ov.Income.TotalCent-ov.Expense.TotalCent)
	}

	var catSum int64
	var catCount int
	for _, cs := range ov.Categories {
		catSum += cs.TotalCent
		catCount += cs.Count
	}
	if catSum != ov.Expense.TotalCent {
		t.Errorf("sum of category totals = %d, want %d", catSum, ov.Expense.TotalCent)
	}
	if catCount != ov.Expense.Count {
		t.Errorf("sum of category counts = %d, want %d", catCount, ov.Expense.Count)
	}

	var accSum int64
	for _, as := range ov.Accounts {
		accSum += as.TotalCent
	}
	if accSum != ov.Expense.TotalCent {
		t.Errorf("sum of account totals = %d, want %d", accSum, ov.Expense.TotalCent)
	}
}

// TestSummarize_CategoryOrder 分类按总额降序排列
func TestSummarize_CategoryOrder(t *testing.T) {
	records := []models.Record{
		expense("food", "cash", 100, "2024-10-01"),
		expense("shopping", "cash", 5000, "2024-10-01"),
		expense("transport", "cash", 800, "2024-10-01"),
	}

	ov := Summarize(records)

	want := []string{"shopping", "transport", "food"}
	if len(ov.Categories) != len(want) {
		t.Fatalf("categories = %d, want %d", len(ov.Categories), len(want))
	}
	for i, cs := range ov.Categories {
		if cs.Category != want[i] {
			t.Errorf("categories[%d] = %s, want %s", i, cs.Category, want[i])
		}
	}
}

// TestLastDayOfMonth 覆盖 28/29/30/31 和闰年二月
func TestLastDayOfMonth(t *testing.T) {
	testCases := []struct {
		year, month, want int
	}{
		{2024, 1, 31},
		{2024, 2, 29}, // 闰年
		{2023, 2, 28},
		{2000, 2, 29}, // 世纪闰年
		{1900, 2, 28}, // 世纪平年
		{2024, 4, 30},
		{2024, 12, 31},
	}

	for _, tc := range testCases {
		got := LastDayOfMonth(tc.year, tc.month)
		if got != tc.want {
			t.Errorf("LastDayOfMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

// TestMonthWindow 月份窗口必须是定宽补零的闭区间
func TestMonthWindow(t *testing.T) {
	testCases := []struct {
		year, month int
		start, end  string
	}{
		{2024, 2, "2024-02-01", "2024-02-29"},
		{2023, 2, "2023-02-01", "2023-02-28"},
		{2024, 10, "2024-10-01", "2024-10-31"},
		{2024, 11, "2024-11-01", "2024-11-30"},
	}

	for _, tc := range testCases {
		start, end := MonthWindow(tc.year, tc.month)
		if start != tc.start || end != tc.end {
			t.Errorf("MonthWindow(%d, %d) = (%s, %s), want (%s, %s)",
				tc.year, tc.month, start, end, tc.start, tc.end)
		}
	}
}

// TestYearWindow 年份窗口
func TestYearWindow(t *testing.T) {
	start, end := YearWindow(2024)
	if start != "2024-01-01" || end != "2024-12-31" {
		t.Errorf("YearWindow(2024) = (%s, %s)", start, end)
	}
}

// TestComputeBudgetUsage_Normal 预算 1000，实际 800 -> 80%，剩余 200，未超支
func TestComputeBudgetUsage_Normal(t *testing.T) {
	budgets := []models.Budget{
		{Category: "food", AmountCent: 100000},
	}
	sums := map[string]int64{"food": 80000}

	usage, summary := ComputeBudgetUsage(budgets, sums)

	if len(usage) != 1 {
		t.Fatalf("usage = %d rows, want 1", len(usage))
	}
	u := usage[0]
	if u.ActualCent != 80000 {
		t.Errorf("actual = %d, want 80000", u.ActualCent)
	}
	if u.RemainingCent != 20000 {
		t.Errorf("remaining = %d, want 20000", u.RemainingCent)
	}
	if u.UsagePercent != 80.0 {
		t.Errorf("usage percent = %f, want 80.0", u.UsagePercent)
	}
	if u.IsOverBudget {
		t.Error("is_over_budget = true, want false")
	}
	if summary.TotalBudgetCent != 100000 || summary.TotalActualCent != 80000 || summary.TotalRemainingCent != 20000 {
		t.Errorf("summary = %+v", summary)
	}
}

// TestComputeBudgetUsage_Over 实际 1200 超出预算 1000
func TestComputeBudgetUsage_Over(t *testing.T) {
	budgets := []models.Budget{
		{Category: "food", AmountCent: 100000},
	}
	sums := map[string]int64{"food": 120000}

	usage, _ := ComputeBudgetUsage(budgets, sums)

	u := usage[0]
	if u.RemainingCent != -20000 {
		t.Errorf("remaining = %d, want -20000", u.RemainingCent)
	}
	if !u.IsOverBudget {
		t.Error("is_over_budget = false, want true")
	}
}

// TestComputeBudgetUsage_ZeroBudget 预算为 0 时使用率取 0，不能除零
func TestComputeBudgetUsage_ZeroBudget(t *testing.T) {
	budgets := []models.Budget{
		{Category: "food", AmountCent: 0},
	}
	sums := map[string]int64{"food": 5000}

	usage, _ := ComputeBudgetUsage(budgets, sums)

	if usage[0].UsagePercent != 0 {
		t.Errorf("usage percent = %f, want 0", usage[0].UsagePercent)
	}
}

// TestComputeBudgetUsage_NoSpend 没有支出的分类实际金额为 0
func TestComputeBudgetUsage_NoSpend(t *testing.T) {
	budgets := []models.Budget{
		{Category: "transport", AmountCent: 50000},
	}

	usage, summary := ComputeBudgetUsage(budgets, map[string]int64{})

	u := usage[0]
	if u.ActualCent != 0 || u.RemainingCent != 50000 || u.UsagePercent != 0 || u.IsOverBudget {
		t.Errorf("usage = %+v", u)
	}
	if summary.TotalActualCent != 0 {
		t.Errorf("total actual = %d, want 0", summary.TotalActualCent)
	}
}

// TestComputeBudgetUsage_UnbudgetedExcluded 没设预算的分类支出不计入汇总
func TestComputeBudgetUsage_UnbudgetedExcluded(t *testing.T) {
	budgets := []models.Budget{
		{Category: "food", AmountCent: 100000},
	}
	sums := map[string]int64{
		"food":     30000,
		"shopping": 99999, // 没有预算行，不应出现在汇总里
	}

	usage, summary := ComputeBudgetUsage(budgets, sums)

	if len(usage) != 1 {
		t.Fatalf("usage = %d rows, want 1", len(usage))
	}
	if summary.TotalActualCent != 30000 {
		t.Errorf("total actual = %d, want 30000 (unbudgeted spending excluded)", summary.TotalActualCent)
	}
	if summary.TotalRemainingCent != 70000 {
		t.Errorf("total remaining = %d, want 70000", summary.TotalRemainingCent)
	}
}

// TestExpenseByCategory 只统计支出，收入不计入
func TestExpenseByCategory(t *testing.T) {
	records := []models.Record{
		expense("food", "cash", 1000, "2024-10-01"),
		expense("food", "alipay", 2000, "2024-10-02"),
		income("salary", "bank", 500000, "2024-10-01"),
	}

	sums := ExpenseByCategory(records)

	if sums["food"] != 3000 {
		t.Errorf("food = %d, want 3000", sums["food"])
	}
	if _, ok := sums["salary"]; ok {
		t.Error("income category should not appear in expense sums")
	}
}
