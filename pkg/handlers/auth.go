package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"nanopage/pkg/config"
	"nanopage/pkg/pages"
)

const sessionPrivileged = "privileged"

// ModeFromSession maps the request session onto a catalog visibility mode.
func ModeFromSession(c *gin.Context) pages.Mode {
	session := sessions.Default(c)
	if v, ok := session.Get(sessionPrivileged).(bool); ok && v {
		return pages.ModePrivileged
	}
	return pages.ModeNormal
}

const loginForm = `<!DOCTYPE html>
<html><body>
<form method="post" action="/login">
<input type="password" name="password" placeholder="Password">
<button type="submit">Log in</button>
</form>
</body></html>`

func LoginPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginForm))
}

func Login(c *gin.Context) {
	if config.AdminPasswordHash == "" {
		c.String(http.StatusForbidden, "privileged login is disabled")
		return
	}

	password := c.PostForm("password")
	if err := bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(password)); err != nil {
		c.String(http.StatusUnauthorized, "invalid password")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionPrivileged, true)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
