package handlers

import (
	"errors"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"nanopage/pkg/config"
	"nanopage/pkg/vfs"
)

// ServeFile serves a stored (path, content) pair from the virtual file set
// byte-for-byte. Markdown sources and config documents under the pages root
// are never served.
func (h *Handler) ServeFile(c *gin.Context) {
	p := vfs.Normalize(strings.TrimPrefix(c.Request.URL.Path, "/"))
	if blockedAsset(p) {
		c.Status(http.StatusNotFound)
		return
	}

	fsys, err := h.Store.FS()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "content tree unavailable"})
		return
	}

	content, err := fsys.Lookup(p)
	if errors.Is(err, vfs.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	ctype := mime.TypeByExtension(path.Ext(p))
	if ctype == "" {
		ctype = http.DetectContentType(content)
	}
	c.Data(http.StatusOK, ctype, content)
}

func blockedAsset(p string) bool {
	if !vfs.IsUnder(p, config.PagesRoot) {
		return false
	}
	base := path.Base(p)
	return path.Ext(p) == ".md" || strings.HasPrefix(base, "config.")
}
