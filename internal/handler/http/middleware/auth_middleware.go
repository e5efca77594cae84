package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"counselconnect/internal/domain/entity"
	usecasecontract "counselconnect/internal/usecase/contract"
)

// AuthMiddleWare authenticates the request from its Bearer token,
// falling back to the access_token cookie when no header is set. The
// user is re-read from the store on every request so bans and role
// changes take effect immediately, not at token expiry.
func AuthMiddleWare(userUC usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie("access_token"); err == nil {
			token = cookie
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization token"})
			return
		}

		user, err := userUC.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", string(user.Role))
		c.Set("user", user)
		c.Next()
	}
}

// RequireRoles rejects authenticated users whose role is not listed.
func RequireRoles(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("userRole")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}
		role := entity.UserRole(roleVal.(string))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	}
}

// CurrentUser pulls the authenticated user set by AuthMiddleWare.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := val.(*entity.User)
	return user, ok
}
