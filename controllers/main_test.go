package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"yatube/middleware"
	"yatube/models"
	"yatube/routes"
	"yatube/utils"
)

func TestMain(m *testing.M) {
	// Config is loaded once per process; pin it down before any Get().
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("GIN_MODE", "test")
	os.Setenv("GIN_PATH", filepath.Join(os.TempDir(), "yatube_gin_test.log"))
	os.Setenv("TEMPLATE_GLOB", filepath.Join("..", "templates", "*.html"))
	os.Setenv("RATE_LIMIT_PER_MINUTE", "100000")
	os.Exit(m.Run())
}

func newTestApp(t *testing.T) (*gorm.DB, http.Handler) {
	t.Helper()
	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Group{}, &models.Post{}, &models.PageView{}))
	return db, routes.SetupRouter(db)
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("sup3r-secret")
	require.NoError(t, err)
	user := models.User{Username: username, PasswordHash: hash}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createGroup(t *testing.T, db *gorm.DB, slug string) *models.Group {
	t.Helper()
	group := models.Group{Title: "Group " + slug, Slug: slug, Description: "about " + slug}
	require.NoError(t, db.Create(&group).Error)
	return &group
}

func createPost(t *testing.T, db *gorm.DB, author *models.User, text string, groupID *uint) *models.Post {
	t.Helper()
	post := models.Post{Text: text, AuthorID: author.ID, GroupID: groupID}
	require.NoError(t, db.Create(&post).Error)
	return &post
}

func sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, user.Username, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token, Path: "/"}
}

func doGet(r http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPostForm(r http.Handler, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func articleCount(body string) int {
	return strings.Count(body, "<article>")
}
