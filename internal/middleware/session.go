package middleware

import (
	"learning_path_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware 解析或分配会话ID
// 每个会话持有独立的对话状态；没带头的请求归入默认会话，
// 显式要求新会话时签发 uuid 并回写响应头
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := strings.TrimSpace(c.GetHeader(util.SessionHeader))

		switch sessionID {
		case "":
			sessionID = util.DefaultSessionID
		case "new":
			sessionID = uuid.New().String()
		}

		c.Header(util.SessionHeader, sessionID)
		c.Set("sessionID", sessionID)
		c.Next()
	}
}

// SessionID 从请求上下文取会话ID
func SessionID(c *gin.Context) string {
	if v, exists := c.Get("sessionID"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return util.DefaultSessionID
}
