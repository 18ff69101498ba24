package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"yatube/config"
	"yatube/controllers"
	"yatube/middleware"
	"yatube/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Access log through zap instead of gin's console logger.
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Use(middleware.RequestID())
	r.Use(middleware.CurrentUser(db))
	r.Use(middleware.PageViewRecorder(db))

	r.LoadHTMLGlob(cfg.TemplateGlob)

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	postController := controllers.NewPostController(db)
	authController := controllers.NewAuthController(db)

	r.GET("/", postController.Index)
	r.GET("/group/:slug/", postController.GroupPosts)
	r.GET("/profile/:username/", postController.Profile)
	r.GET("/posts/:id/", postController.Detail)

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit())
	auth.GET("/login/", authController.LoginForm)
	auth.POST("/login/", authController.Login)
	auth.GET("/signup/", authController.SignupForm)
	auth.POST("/signup/", authController.Signup)
	auth.POST("/logout/", authController.Logout)

	authed := r.Group("")
	authed.Use(middleware.LoginRequired())
	authed.GET("/create/", postController.CreateForm)
	authed.POST("/create/", postController.Create)
	authed.GET("/posts/:id/edit/", postController.EditForm)
	authed.POST("/posts/:id/edit/", postController.Edit)

	r.NoRoute(func(ctx *gin.Context) {
		ctx.HTML(http.StatusNotFound, "404.html", gin.H{"Path": ctx.Request.URL.Path})
	})

	return r
}
