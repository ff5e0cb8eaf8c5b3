package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/yu086868-ui/iFinance-app/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditMiddleware 给每个请求生成 request id，并把登录用户的操作写入审计日志。
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)

		// 读取请求体（之后要还回去）
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		// 执行请求
		c.Next()

		// 只记录登录用户的操作
		var userID uint
		if user, ok := CurrentUser(c); ok {
			userID = user.ID
		}
		if userID == 0 {
			return
		}

		// 请求体只存摘要，不存原文：改密码等接口的请求体里有明文密码
		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if len(bodyBytes) > 0 {
			sum := sha256.Sum256(bodyBytes)
			action += fmt.Sprintf(" body=sha256:%s(%d bytes)", hex.EncodeToString(sum[:8]), len(bodyBytes))
		}

		log := models.AuditLog{
			UserID:    &userID,
			RequestID: requestID,
			Path:      path,
			Method:    c.Request.Method,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		_ = db.Create(&log).Error
	}
}
