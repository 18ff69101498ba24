package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"yatube/config"
	"yatube/middleware"
	"yatube/models"
	"yatube/utils"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,64}$`)

// AuthController provides the minimal session provider the blog pages rely
// on: signup, login with a return path, and logout with token revocation.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// LoginForm renders the login page, preserving the ?next= return path.
func (a *AuthController) LoginForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, "login.html", gin.H{
		"Next":     safeNext(ctx.Query("next")),
		"Username": "",
	})
}

// Login authenticates the submitted credentials and establishes a session cookie.
func (a *AuthController) Login(ctx *gin.Context) {
	username := strings.TrimSpace(ctx.PostForm("username"))
	password := ctx.PostForm("password")
	next := safeNext(ctx.PostForm("next"))

	user, err := models.UserByUsername(a.db, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			a.loginRejected(ctx, username, next)
			return
		}
		renderServerError(ctx, err)
		return
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		a.loginRejected(ctx, username, next)
		return
	}

	if err := a.startSession(ctx, user); err != nil {
		renderServerError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusFound, next)
}

// SignupForm renders the registration page.
func (a *AuthController) SignupForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, "signup.html", gin.H{"Username": ""})
}

// Signup registers a new user and logs them in.
func (a *AuthController) Signup(ctx *gin.Context) {
	username := strings.TrimSpace(ctx.PostForm("username"))
	password := ctx.PostForm("password")

	errs := map[string]string{}
	if !usernameRe.MatchString(username) {
		errs["username"] = "Username must be 3-64 characters: letters, digits, _ . -"
	}
	if len(password) < 8 {
		errs["password"] = "Password must be at least 8 characters."
	}
	if len(errs) == 0 {
		if _, err := models.UserByUsername(a.db, username); err == nil {
			errs["username"] = "This username is already taken."
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			renderServerError(ctx, err)
			return
		}
	}
	if len(errs) > 0 {
		render(ctx, http.StatusOK, "signup.html", gin.H{
			"Errors":   errs,
			"Username": username,
		})
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		renderServerError(ctx, err)
		return
	}

	user := models.User{Username: username, PasswordHash: hash}
	if err := a.db.Create(&user).Error; err != nil {
		renderServerError(ctx, err)
		return
	}

	if err := a.startSession(ctx, &user); err != nil {
		renderServerError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

// Logout revokes the session token and clears the cookie.
func (a *AuthController) Logout(ctx *gin.Context) {
	if token, err := ctx.Cookie(middleware.SessionCookieName); err == nil && token != "" {
		if claims, err := utils.ParseToken(token); err == nil && claims.ExpiresAt != nil {
			utils.BlacklistToken(token, claims.ExpiresAt.Time)
		}
	}
	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusFound, "/")
}

func (a *AuthController) startSession(ctx *gin.Context, user *models.User) error {
	ttl := time.Duration(config.Get().SessionTTLHours) * time.Hour
	token, err := utils.GenerateToken(user.ID, user.Username, ttl)
	if err != nil {
		return err
	}
	ctx.SetCookie(middleware.SessionCookieName, token, int(ttl.Seconds()), "/", "", false, true)
	return nil
}

func (a *AuthController) loginRejected(ctx *gin.Context, username, next string) {
	render(ctx, http.StatusOK, "login.html", gin.H{
		"Error":    "Invalid username or password.",
		"Username": username,
		"Next":     next,
	})
}

// safeNext keeps redirects on-site: only same-origin absolute paths pass.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
