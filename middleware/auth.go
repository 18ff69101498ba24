package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"yatube/models"
	"yatube/utils"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "yatube_session"
	// ContextUserKey is the key used to store the authenticated user in Gin context.
	ContextUserKey = "current_user"
	// LoginURL is where anonymous requests to protected pages are sent.
	LoginURL = "/auth/login/"
)

// CurrentUser resolves the session cookie into a user record and stores it in
// the request context. It never aborts; anonymous requests pass through.
func CurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(SessionCookieName)
		if err != nil || token == "" {
			ctx.Next()
			return
		}

		if utils.IsTokenBlacklisted(token) {
			ctx.Next()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			ctx.Next()
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			ctx.Next()
			return
		}

		ctx.Set(ContextUserKey, &user)
		ctx.Next()
	}
}

// LoginRequired redirects anonymous requests to the login page with a
// return-path parameter pointing back at the originally requested URL.
func LoginRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := GetCurrentUser(ctx); !ok {
			ctx.Redirect(http.StatusFound, LoginURL+"?next="+ctx.Request.URL.Path)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// GetCurrentUser returns the authenticated user stored by CurrentUser.
func GetCurrentUser(ctx *gin.Context) (*models.User, bool) {
	value, exists := ctx.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}
