package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/yu086868-ui/iFinance-app/internal/middleware"
	"github.com/yu086868-ui/iFinance-app/internal/models"
	"github.com/yu086868-ui/iFinance-app/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecordHandler 负责收支记录相关接口
type RecordHandler struct {
	DB              *gorm.DB
	DefaultPageSize int
}

func NewRecordHandler(db *gorm.DB, defaultPageSize int) *RecordHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	return &RecordHandler{
		DB:              db,
		DefaultPageSize: defaultPageSize,
	}
}

// ---------- 请求/响应结构 ----------

type createRecordReq struct {
	Type     string          `json:"type" binding:"required,oneof=income expense"`
	Amount   decimal.Decimal `json:"amount" binding:"required"` // 十进制金额（元），接受数字或字符串
	Currency string          `json:"currency"`
	Category string          `json:"category" binding:"required,max=32"`
	Account  string          `json:"account" binding:"required,max=32"`
	Date     string          `json:"date" binding:"required"` // YYYY-MM-DD
	Note     string          `json:"note" binding:"max=255"`
	Tags     string          `json:"tags" binding:"max=255"`
}

type recordResp struct {
	ID           uint      `json:"id"`
	Type         string    `json:"type"`
	AmountCent   int64     `json:"amount_cent"` // 分
	Amount       string    `json:"amount"`      // 元（两位小数字符串，方便前端直接显示）
	Currency     string    `json:"currency"`
	Category     string    `json:"category"`
	CategoryName string    `json:"category_name"`
	Account      string    `json:"account"`
	AccountName  string    `json:"account_name"`
	Date         string    `json:"date"`
	Note         string    `json:"note"`
	Tags         string    `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
}

func toRecordResp(r *models.Record) recordResp {
	return recordResp{
		ID:           r.ID,
		Type:         r.Type,
		AmountCent:   r.AmountCent,
		Amount:       util.FormatCent(r.AmountCent),
		Currency:     r.Currency,
		Category:     r.Category,
		CategoryName: models.CategoryName(r.Category),
		Account:      r.Account,
		AccountName:  models.AccountName(r.Account),
		Date:         r.Date,
		Note:         r.Note,
		Tags:         r.Tags,
		CreatedAt:    r.CreatedAt,
	}
}

// ---------- 记一笔 ----------

func (h *RecordHandler) CreateRecord(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	var req createRecordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "请填写所有必填字段")
		return
	}

	// 金额校验：>0，精确到分
	amountCent, err := util.ParseAmountToCent(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "金额必须大于0")
		return
	}

	// 日期必须是 YYYY-MM-DD
	if err := util.ValidateDate(req.Date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期格式错误，应为 YYYY-MM-DD")
		return
	}

	// 分类、账户是封闭枚举，无效 key 直接拒绝
	if !models.ValidCategory(req.Type, req.Category) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "无效的分类")
		return
	}
	if !models.ValidAccount(req.Account) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "无效的账户")
		return
	}

	if req.Currency == "" {
		req.Currency = user.Currency
	}
	if req.Currency == "" {
		req.Currency = "CNY"
	}

	record := models.Record{
		UserID:     user.ID,
		Type:       req.Type,
		AmountCent: amountCent,
		Currency:   req.Currency,
		Category:   req.Category,
		Account:    req.Account,
		Date:       req.Date,
		Note:       strings.TrimSpace(req.Note),
		Tags:       strings.TrimSpace(req.Tags),
	}

	if err := h.DB.Create(&record).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建记录失败")
		return
	}

	util.Created(c, util.Response{
		"message": "记录创建成功",
		"record":  toRecordResp(&record),
	})
}

// ListRecords 查询记录列表，支持类型/分类/账户/日期区间/关键字筛选
// 所有条件 AND 叠加，按日期降序、创建时间降序，分页返回
func (h *RecordHandler) ListRecords(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	// 分页参数
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.DefaultPageSize)))
	if limit <= 0 || limit > 500 {
		limit = h.DefaultPageSize
	}
	offset := (page - 1) * limit

	base := h.DB.Model(&models.Record{}).Where("user_id = ?", user.ID)

	if t := c.Query("type"); t == "income" || t == "expense" {
		base = base.Where("type = ?", t)
	}
	if cat := c.Query("category"); cat != "" {
		base = base.Where("category = ?", cat)
	}
	if acc := c.Query("account"); acc != "" {
		base = base.Where("account = ?", acc)
	}

	// 日期区间：闭区间，date 列是定宽 YYYY-MM-DD 文本，直接字典序比较
	if start := c.Query("startDate"); start != "" {
		if err := util.ValidateDate(start); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "开始日期格式错误，应为 YYYY-MM-DD")
			return
		}
		base = base.Where("date >= ?", start)
	}
	if end := c.Query("endDate"); end != "" {
		if err := util.ValidateDate(end); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "结束日期格式错误，应为 YYYY-MM-DD")
			return
		}
		base = base.Where("date <= ?", end)
	}

	// 关键字：备注或分类的子串匹配（SQLite LIKE 对 ASCII 不区分大小写）
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		base = base.Where("note LIKE ? OR category LIKE ?", like, like)
	}

	// 总数：完整筛选结果的条数，不是当前页大小
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "获取记录失败")
		return
	}

	var records []models.Record
	if err := base.Session(&gorm.Session{}).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "获取记录失败")
		return
	}

	items := make([]recordResp, 0, len(records))
	for i := range records {
		items = append(items, toRecordResp(&records[i]))
	}

	pages := (total + int64(limit) - 1) / int64(limit)

	util.Success(c, util.Response{
		"records": items,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

// ---------- 删除一条记录 ----------

func (h *RecordHandler) DeleteRecord(c *gin.Context) {
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

	// 只允许删除自己的记录：别人的 id 表现为"记录不存在"
	result := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Record{})
	if result.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "删除记录失败")
		return
	}
	if result.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		return
	}

	util.Success(c, util.Response{
		"message": "记录删除成功",
	})
}
