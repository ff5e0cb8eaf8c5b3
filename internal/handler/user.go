package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yu086868-ui/iFinance-app/internal/middleware"
	"github.com/yu086868-ui/iFinance-app/internal/util"

	"github.com/gin-gonic/gin"
)

// GetMe 返回当前登录用户信息（需要经过 AuthMiddleware）
func GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	// preferences 存的是 JSON 文本，解析失败就回退为空对象
	var prefs map[string]interface{}
	if err := json.Unmarshal([]byte(user.Preferences), &prefs); err != nil {
		prefs = map[string]interface{}{}
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":                  user.ID,
			"username":            user.Username,
			"email":               user.Email,
			"currency":            user.Currency,
			"monthly_budget_cent": user.MonthlyBudgetCent,
			"monthly_budget":      util.FormatCent(user.MonthlyBudgetCent),
			"preferences":         prefs,
			"created_at":          user.CreatedAt,
		},
	})
}
