package middleware

import (
	"net/http"
	"strings"

	"snapgram/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 验证会话 token 是否有效
// The session cookie is the primary carrier; a Bearer header is accepted as
// a fallback for non-browser clients. Verification is signature + expiry
// only, nothing is looked up server-side.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("token")
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated", "success": false})
				c.Abort()
				return
			}
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token", "success": false})
			c.Abort()
			return
		}

		// 将用户信息写入上下文
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
