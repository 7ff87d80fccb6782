package pages

import (
	"fmt"
	"strings"

	"nanopage/pkg/models"
	"nanopage/pkg/vfs"
)

// Mode gates the visibility of hidden pages. It is threaded explicitly
// through catalog construction, one catalog per request.
type Mode string

const (
	ModeNormal     Mode = "normal"
	ModePrivileged Mode = "privileged"
)

// Catalog enumerates page directories, builds pages in bulk, and applies
// the visibility rules.
type Catalog struct {
	builder *Builder
	mode    Mode
}

func NewCatalog(b *Builder, mode Mode) *Catalog {
	if mode == "" {
		mode = ModeNormal
	}
	return &Catalog{builder: b, mode: mode}
}

// ListPageDirectories returns the names of all directories directly under
// the pages root, in first-discovery order. Directories whose name begins
// with a dot are never candidates, independent of mode.
func (c *Catalog) ListPageDirectories() []string {
	root := vfs.Normalize(c.builder.opts.PagesRoot)
	var names []string
	for _, dir := range c.builder.fs.ListDirectories(root) {
		rest := dir
		if root != "" {
			if dir == root {
				continue
			}
			rest = strings.TrimPrefix(dir, root+"/")
		}
		if strings.Contains(rest, "/") {
			// Nested below a page directory, not a page itself.
			continue
		}
		if strings.HasPrefix(rest, ".") {
			continue
		}
		names = append(names, rest)
	}
	return names
}

// BuildAll builds every listed page directory. Per-page failures are
// captured and reported with their directory; one broken page does not
// abort the rest.
func (c *Catalog) BuildAll() ([]*models.Page, []BuildError) {
	return c.buildAll(c.builder.Build)
}

// BuildAllMeta is the metadata-only bulk build used for listings and slug
// lookups.
func (c *Catalog) BuildAllMeta() ([]*models.Page, []BuildError) {
	return c.buildAll(c.builder.BuildMeta)
}

func (c *Catalog) buildAll(build func(string) (*models.Page, error)) ([]*models.Page, []BuildError) {
	var built []*models.Page
	var failed []BuildError
	for _, dir := range c.ListPageDirectories() {
		page, err := build(dir)
		if err != nil {
			failed = append(failed, BuildError{Dir: dir, Err: err})
			continue
		}
		built = append(built, page)
	}
	return built, failed
}

// VisiblePages filters the bulk build by the visibility rules: hidden pages
// are excluded unless the catalog mode is privileged.
func (c *Catalog) VisiblePages() ([]*models.Page, []BuildError) {
	built, failed := c.BuildAll()
	return c.filterVisible(built), failed
}

// VisibleInfos returns the summary projection of every visible page.
func (c *Catalog) VisibleInfos() ([]models.PageInfo, []BuildError) {
	built, failed := c.VisiblePages()
	infos := make([]models.PageInfo, 0, len(built))
	for _, page := range built {
		infos = append(infos, page.Info())
	}
	return infos, failed
}

func (c *Catalog) filterVisible(built []*models.Page) []*models.Page {
	if c.mode == ModePrivileged {
		return built
	}
	visible := make([]*models.Page, 0, len(built))
	for _, page := range built {
		if page.Hidden() {
			continue
		}
		visible = append(visible, page)
	}
	return visible
}

// FindBySlug resolves a page by its slug using the metadata-only scan, then
// runs the full build for the match. Hidden pages resolve only in
// privileged mode.
func (c *Catalog) FindBySlug(slug string) (*models.Page, error) {
	metas, _ := c.BuildAllMeta()
	for _, meta := range metas {
		if meta.Slug != slug {
			continue
		}
		if meta.Hidden() && c.mode != ModePrivileged {
			break
		}
		return c.builder.Build(meta.Dir)
	}
	return nil, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
}
