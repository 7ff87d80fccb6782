package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nanopage/pkg/config"
	"nanopage/pkg/pages"
	"nanopage/pkg/services"
)

type Handler struct {
	Store    *services.Store
	Renderer *services.Renderer
}

func New(store *services.Store, renderer *services.Renderer) *Handler {
	return &Handler{Store: store, Renderer: renderer}
}

// catalog assembles a per-request catalog over the current file set, with
// the visibility mode taken from the session.
func (h *Handler) catalog(c *gin.Context) (*pages.Catalog, error) {
	fsys, err := h.Store.FS()
	if err != nil {
		return nil, err
	}
	builder := pages.NewBuilder(fsys, h.Renderer, pages.Options{
		PagesRoot:        config.PagesRoot,
		TemplatesRoot:    config.TemplatesRoot,
		PlaceholderImage: config.PlaceholderImage,
	})
	return pages.NewCatalog(builder, ModeFromSession(c)), nil
}

func (h *Handler) Home(c *gin.Context) {
	h.renderSlug(c, "index")
}

func (h *Handler) ShowPage(c *gin.Context) {
	h.renderSlug(c, c.Param("slug"))
}

func (h *Handler) renderSlug(c *gin.Context, slug string) {
	catalog, err := h.catalog(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "content tree unavailable"})
		return
	}

	page, err := catalog.FindBySlug(slug)
	if errors.Is(err, pages.ErrPageNotFound) {
		c.String(http.StatusNotFound, "page not found")
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out, err := pages.Render(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", out)
}

func (h *Handler) ListPages(c *gin.Context) {
	catalog, err := h.catalog(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "content tree unavailable"})
		return
	}

	infos, failed := catalog.VisibleInfos()
	buildErrors := make([]gin.H, 0, len(failed))
	for _, be := range failed {
		buildErrors = append(buildErrors, gin.H{"dir": be.Dir, "error": be.Err.Error()})
	}
	c.JSON(http.StatusOK, gin.H{"pages": infos, "errors": buildErrors})
}
