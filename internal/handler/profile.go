package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/yu086868-ui/iFinance-app/internal/middleware"
	"github.com/yu086868-ui/iFinance-app/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UpdateProfileReq 更新基本资料请求
// monthly_budget 是十进制金额（元），preferences 是自由格式对象
type UpdateProfileReq struct {
	Currency      string                 `json:"currency" binding:"max=8"`
	MonthlyBudget *decimal.Decimal       `json:"monthly_budget"`
	Preferences   map[string]interface{} `json:"preferences"`
}

// ChangePasswordReq 修改密码请求
type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateProfile 更新当前用户的币种、默认预算、偏好设置
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
			return
		}

		var req UpdateProfileReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
			return
		}

		updates := map[string]interface{}{}

		if cur := strings.TrimSpace(req.Currency); cur != "" {
			updates["currency"] = cur
		}

		if req.MonthlyBudget != nil {
			// 默认总预算允许为 0（表示不设置）
			if req.MonthlyBudget.IsZero() {
				updates["monthly_budget_cent"] = int64(0)
			} else {
				cent, err := util.ParseAmountToCent(*req.MonthlyBudget)
				if err != nil {
					util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "请输入有效的预算金额")
					return
				}
				updates["monthly_budget_cent"] = cent
			}
		}

		if req.Preferences != nil {
			b, err := json.Marshal(req.Preferences)
			if err != nil {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "偏好设置格式错误")
				return
			}
			updates["preferences"] = string(b)
		}

		if len(updates) == 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "没有需要更新的字段")
			return
		}

		if err := db.Model(user).Updates(updates).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "更新失败")
			return
		}

		util.Success(c, util.Response{
			"message": "资料已更新",
			"user": gin.H{
				"id":                  user.ID,
				"username":            user.Username,
				"email":               user.Email,
				"currency":            user.Currency,
				"monthly_budget_cent": user.MonthlyBudgetCent,
			},
		})
	}
}

// ChangePassword 修改当前用户密码
func ChangePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
			return
		}

		var req ChangePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
			return
		}

		// 校验旧密码
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "原密码错误")
			return
		}

		if !isStrongPassword(req.NewPassword) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "密码需8-32位，且包含大写、小写字母和数字")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "密码加密失败")
			return
		}

		if err := db.Model(user).Update("password_hash", string(hash)).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "更新密码失败")
			return
		}

		util.Success(c, util.Response{
			"message": "密码修改成功，请使用新密码重新登录",
		})
	}
}
