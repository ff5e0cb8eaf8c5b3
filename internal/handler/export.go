package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/yu086868-ui/iFinance-app/internal/middleware"
	"github.com/yu086868-ui/iFinance-app/internal/models"
	"github.com/yu086868-ui/iFinance-app/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler 负责数据导出接口
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func (h *ExportHandler) loadRecords(userID uint) ([]models.Record, error) {
	var records []models.Record
	err := h.DB.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&records).Error
	return records, err
}

func typeText(recordType string) string {
	if recordType == "income" {
		return "收入"
	}
	return "支出"
}

// ExportCSV 导出记录为 CSV
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	records, err := h.loadRecords(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"records_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM（让 Excel 正确识别中文）
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write([]string{"类型", "分类", "账户", "金额(元)", "币种", "日期", "备注", "标签"})

	for _, r := range records {
		writer.Write([]string{
			typeText(r.Type),
			models.CategoryName(r.Category),
			models.AccountName(r.Account),
			util.FormatCent(r.AmountCent),
			r.Currency,
			r.Date,
			r.Note,
			r.Tags,
		})
	}
}

// ExportXLSX 导出记录为 XLSX
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	records, err := h.loadRecords(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	f := excelize.NewFile()
	sheetName := "收支明细"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建工作表失败")
		return
	}
	f.SetActiveSheet(index)

	headers := []string{"类型", "分类", "账户", "金额(元)", "币种", "日期", "备注", "标签"}
	for i, name := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, name)
	}

	for idx, r := range records {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), typeText(r.Type))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), models.CategoryName(r.Category))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), models.AccountName(r.Account))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), util.FormatCent(r.AmountCent))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Currency)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), r.Note)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), r.Tags)
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "C", 12)
	f.SetColWidth(sheetName, "D", "E", 10)
	f.SetColWidth(sheetName, "F", "F", 12)
	f.SetColWidth(sheetName, "G", "G", 30)
	f.SetColWidth(sheetName, "H", "H", 15)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"records_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "导出失败")
	}
}
