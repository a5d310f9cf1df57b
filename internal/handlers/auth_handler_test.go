package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abagency/backend/internal/middleware"
)

func postForm(path string, values url.Values) *http.Request {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	r, _, _ := setupTest(t)

	w := doRequest(r, postForm("/login", url.Values{
		"email":    {" Artist@ABagency.com "},
		"password": {"User123!"},
	}))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/workspace", w.Header().Get("Location"))

	cookie := w.Header().Get("Set-Cookie")
	require.NotEmpty(t, cookie)
	assert.Contains(t, cookie, middleware.SessionCookieName+"=")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r, _, _ := setupTest(t)

	wrongPassword := doRequest(r, postForm("/login", url.Values{
		"email":    {"artist@abagency.com"},
		"password": {"nope"},
	}))
	unknownEmail := doRequest(r, postForm("/login", url.Values{
		"email":    {"ghost@abagency.com"},
		"password": {"whatever"},
	}))

	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Empty(t, wrongPassword.Header().Get("Set-Cookie"))
	assert.Empty(t, unknownEmail.Header().Get("Set-Cookie"))
}

func TestSessionResolvesCurrentUser(t *testing.T) {
	r, db, cfg := setupTest(t)
	artist := findUser(t, db, "artist@abagency.com")

	req, _ := http.NewRequest(http.MethodGet, "/api/me", nil)
	withSession(t, req, cfg, artist.ID)
	w := doRequest(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "artist@abagency.com")
}

func TestDeletedUserSessionIsNoUser(t *testing.T) {
	r, db, cfg := setupTest(t)
	artist := findUser(t, db, "artist@abagency.com")
	require.NoError(t, db.Delete(artist).Error)

	req, _ := http.NewRequest(http.MethodGet, "/api/me", nil)
	withSession(t, req, cfg, artist.ID)
	w := doRequest(r, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWorkspaceRedirectsWhenUnauthenticated(t *testing.T) {
	r, _, _ := setupTest(t)

	req, _ := http.NewRequest(http.MethodGet, "/workspace", nil)
	w := doRequest(r, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestWorkspaceRendersForAuthenticatedUser(t *testing.T) {
	r, db, cfg := setupTest(t)
	artist := findUser(t, db, "artist@abagency.com")

	req, _ := http.NewRequest(http.MethodGet, "/workspace", nil)
	withSession(t, req, cfg, artist.ID)
	w := doRequest(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Artiste Résident")
}

func TestAPIRoutesReturn401WithoutSession(t *testing.T) {
	r, _, _ := setupTest(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/me"},
		{http.MethodPost, "/api/profile"},
		{http.MethodPost, "/api/events"},
		{http.MethodPost, "/api/performances"},
		{http.MethodPost, "/api/media/url"},
		{http.MethodPost, "/api/messages"},
	} {
		req, _ := http.NewRequest(route.method, route.path, nil)
		w := doRequest(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	r, _, _ := setupTest(t)

	req, _ := http.NewRequest(http.MethodGet, "/logout", nil)
	w := doRequest(r, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.SessionCookieName+"=;")
}

func TestRegisterCreatesCommunityUser(t *testing.T) {
	r, db, _ := setupTest(t)

	req, _ := http.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"email":"nouveau@abagency.com","password":"Secret123","name":"Nouveau"}`))
	req.Header.Set("Content-Type", "application/json")
	w := doRequest(r, req)

	require.Equal(t, http.StatusCreated, w.Code)
	user := findUser(t, db, "nouveau@abagency.com")
	assert.Equal(t, "community", user.Role)
	assert.NotEqual(t, "Secret123", user.PasswordHash)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	r, _, _ := setupTest(t)

	req, _ := http.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"email":"artist@abagency.com","password":"Secret123","name":"Doublon"}`))
	req.Header.Set("Content-Type", "application/json")
	w := doRequest(r, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
