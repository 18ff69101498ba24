package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"yatube/models"
)

func newPVRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:mw_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PageView{}))

	r := gin.New()
	r.Use(PageViewRecorder(db))
	r.GET("/posts/1/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/broken", func(c *gin.Context) { c.String(http.StatusInternalServerError, "boom") })
	return db, r
}

func hit(r *gin.Engine, method, path string) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
}

func TestPageViewRecorderCountsContentGets(t *testing.T) {
	db, r := newPVRouter(t)

	hit(r, http.MethodGet, "/posts/1/")
	hit(r, http.MethodGet, "/posts/1/")

	var pv models.PageView
	require.NoError(t, db.Where("path = ?", "/posts/1/").First(&pv).Error)
	assert.Equal(t, int64(2), pv.Count)
}

func TestPageViewRecorderSkipsNoise(t *testing.T) {
	db, r := newPVRouter(t)

	hit(r, http.MethodGet, "/health")
	hit(r, http.MethodGet, "/broken")

	var count int64
	require.NoError(t, db.Model(&models.PageView{}).Count(&count).Error)
	assert.Zero(t, count)
}
