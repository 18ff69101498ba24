package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/middleware"
	"yatube/models"
)

func findSessionCookie(w *http.Response) *http.Cookie {
	for _, c := range w.Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestSignupCreatesUserAndSession(t *testing.T) {
	db, r := newTestApp(t)

	form := url.Values{"username": {"newcomer"}, "password": {"long-enough-pass"}}
	w := doPostForm(r, "/auth/signup/", form)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookie := findSessionCookie(w.Result())
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)

	user, err := models.UserByUsername(db, "newcomer")
	require.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "long-enough-pass", user.PasswordHash)
}

func TestSignupRejectsBadInput(t *testing.T) {
	db, r := newTestApp(t)
	createUser(t, db, "taken")

	cases := []url.Values{
		{"username": {"x"}, "password": {"long-enough-pass"}},
		{"username": {"validname"}, "password": {"short"}},
		{"username": {"taken"}, "password": {"long-enough-pass"}},
	}
	for _, form := range cases {
		w := doPostForm(r, "/auth/signup/", form)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, findSessionCookie(w.Result()))
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLoginHonorsNextParameter(t *testing.T) {
	db, r := newTestApp(t)
	createUser(t, db, "returning")

	form := url.Values{
		"username": {"returning"},
		"password": {"sup3r-secret"},
		"next":     {"/posts/1/edit/"},
	}
	w := doPostForm(r, "/auth/login/", form)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/1/edit/", w.Header().Get("Location"))
	assert.NotNil(t, findSessionCookie(w.Result()))
}

func TestLoginRejectsOffSiteNext(t *testing.T) {
	db, r := newTestApp(t)
	createUser(t, db, "careful")

	form := url.Values{
		"username": {"careful"},
		"password": {"sup3r-secret"},
		"next":     {"https://evil.example/"},
	}
	w := doPostForm(r, "/auth/login/", form)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestLoginWrongPasswordRerenders(t *testing.T) {
	db, r := newTestApp(t)
	createUser(t, db, "victim")

	form := url.Values{"username": {"victim"}, "password": {"wrong"}}
	w := doPostForm(r, "/auth/login/", form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password.")
	assert.Nil(t, findSessionCookie(w.Result()))
}

func TestLoginUnknownUserRerenders(t *testing.T) {
	_, r := newTestApp(t)

	form := url.Values{"username": {"nobody"}, "password": {"whatever"}}
	w := doPostForm(r, "/auth/login/", form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password.")
}

func TestLogoutRevokesSession(t *testing.T) {
	db, r := newTestApp(t)
	user := createUser(t, db, "leaver")
	cookie := sessionCookie(t, user)

	// Session works before logout.
	before := doGet(r, "/create/", cookie)
	require.Equal(t, http.StatusOK, before.Code)

	w := doPostForm(r, "/auth/logout/", url.Values{}, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// The old token is blacklisted even if replayed.
	after := doGet(r, "/create/", cookie)
	require.Equal(t, http.StatusFound, after.Code)
	assert.Equal(t, "/auth/login/?next=/create/", after.Header().Get("Location"))
}

func TestLoginPageRendersWithNext(t *testing.T) {
	_, r := newTestApp(t)
	w := doGet(r, "/auth/login/?next=/create/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="next" value="/create/"`)
}
