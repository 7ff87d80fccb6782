package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"nanopage/pkg/config"
	"nanopage/pkg/services"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func contentTree(t *testing.T) string {
	root := t.TempDir()
	writeFile(t, root, "pages/hello/hello.md", "Preview text---# Hello\nWorld")
	writeFile(t, root, "pages/hello/config.yaml", "title: Hello\n")
	writeFile(t, root, "pages/drafts/drafts.md", "secret")
	writeFile(t, root, "pages/drafts/config.yaml", "title: Drafts\nslug: _draft\n")
	writeFile(t, root, "templates/hello.html", "<main>{{.Content}}</main>")
	writeFile(t, root, "templates/drafts.html", "{{.Content}}")
	writeFile(t, root, "static/style.css", "body{}")
	return root
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := New(services.NewStore(contentTree(t)), services.NewRenderer())

	r := gin.New()
	r.Use(sessions.Sessions("nanopage", cookie.NewStore([]byte("test-secret"))))

	r.GET("/login", LoginPage)
	r.POST("/login", Login)
	r.GET("/logout", Logout)
	r.GET("/", h.Home)
	r.GET("/page/:slug", h.ShowPage)
	r.GET("/api/pages", h.ListPages)
	r.GET("/static/*filepath", h.ServeFile)
	r.GET("/pages/*filepath", h.ServeFile)
	return r
}

func doGet(r *gin.Engine, path, sessionCookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// logIn runs the password login and returns the privileged session cookie.
func logIn(t *testing.T, r *gin.Engine, password string) string {
	t.Helper()
	form := url.Values{"password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0].Name + "=" + cookies[0].Value
}

func withAdminPassword(t *testing.T, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	old := config.AdminPasswordHash
	config.AdminPasswordHash = string(hash)
	t.Cleanup(func() { config.AdminPasswordHash = old })
}

func TestShowPage(t *testing.T) {
	r := newRouter(t)

	w := doGet(r, "/page/hello", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<main>")
	assert.Contains(t, w.Body.String(), "Hello")
}

func TestShowPageUnknown(t *testing.T) {
	w := doGet(newRouter(t), "/page/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHiddenPageRequiresPrivilegedSession(t *testing.T) {
	withAdminPassword(t, "hunter2")
	r := newRouter(t)

	w := doGet(r, "/page/_draft", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	session := logIn(t, r, "hunter2")
	w = doGet(r, "/page/_draft", session)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "secret")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	withAdminPassword(t, "hunter2")
	r := newRouter(t)

	form := url.Values{"password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListPagesVisibility(t *testing.T) {
	withAdminPassword(t, "hunter2")
	r := newRouter(t)

	var body struct {
		Pages []struct {
			Slug string `json:"slug"`
		} `json:"pages"`
		Errors []any `json:"errors"`
	}

	w := doGet(r, "/api/pages", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Pages, 1)
	assert.Equal(t, "hello", body.Pages[0].Slug)
	assert.Empty(t, body.Errors)

	session := logIn(t, r, "hunter2")
	w = doGet(r, "/api/pages", session)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Pages, 2)
}

func TestServeStaticFile(t *testing.T) {
	r := newRouter(t)

	w := doGet(r, "/static/style.css", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())
}

func TestServePageAssetBlocksSources(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusNotFound, doGet(r, "/pages/hello/hello.md", "").Code)
	assert.Equal(t, http.StatusNotFound, doGet(r, "/pages/hello/config.yaml", "").Code)
	assert.Equal(t, http.StatusNotFound, doGet(r, "/static/missing.css", "").Code)
}
