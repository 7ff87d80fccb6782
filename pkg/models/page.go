package models

import "html/template"

// Branding fallbacks applied when a page config omits the optional fields.
var (
	DefaultDescription = "This is a nanoPage page"
	DefaultAuthor      = "nanoPage"
	DefaultKeywords    = []string{"nanoPage", "Website", "CMS", "Content management system", "Go"}
)

// PageConfig is the decoded metadata document of a page. Title is the only
// required field; everything else falls back to a documented default through
// the Get accessors. Unknown keys in the document are ignored.
type PageConfig struct {
	Title       string   `yaml:"title" toml:"title" json:"title"`
	Slug        string   `yaml:"slug" toml:"slug" json:"slug"`
	Keywords    []string `yaml:"keywords" toml:"keywords" json:"keywords"`
	Tags        []string `yaml:"tags" toml:"tags" json:"tags"`
	Categories  []string `yaml:"categories" toml:"categories" json:"categories"`
	Description string   `yaml:"description" toml:"description" json:"description"`
	Author      string   `yaml:"author" toml:"author" json:"author"`
}

func (c PageConfig) GetDescription() string {
	if c.Description == "" {
		return DefaultDescription
	}
	return c.Description
}

func (c PageConfig) GetAuthor() string {
	if c.Author == "" {
		return DefaultAuthor
	}
	return c.Author
}

func (c PageConfig) GetKeywords() []string {
	if len(c.Keywords) == 0 {
		return DefaultKeywords
	}
	return c.Keywords
}

func (c PageConfig) GetTags() []string {
	if c.Tags == nil {
		return []string{}
	}
	return c.Tags
}

func (c PageConfig) GetCategories() []string {
	if c.Categories == nil {
		return []string{}
	}
	return c.Categories
}

// Page is one fully built content unit. Template is nil for metadata-only
// builds. Pages are immutable once built.
type Page struct {
	Dir          string
	Slug         string
	Config       PageConfig
	Content      template.HTML
	Preview      template.HTML
	PreviewImage string
	Template     *template.Template
}

// Hidden reports whether the page is excluded from default listings.
func (p *Page) Hidden() bool {
	return HiddenSlug(p.Slug)
}

// Info projects the page into its externally safe summary record.
func (p *Page) Info() PageInfo {
	return PageInfo{
		Title:        p.Config.Title,
		Slug:         p.Slug,
		Author:       p.Config.GetAuthor(),
		Preview:      p.Preview,
		Tags:         p.Config.GetTags(),
		Categories:   p.Config.GetCategories(),
		PreviewImage: p.PreviewImage,
	}
}

// PageInfo is the reduced projection of a Page used by listing views. It
// never exposes the template handle or the raw config.
type PageInfo struct {
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	Author       string        `json:"author"`
	Preview      template.HTML `json:"preview"`
	Tags         []string      `json:"tags"`
	Categories   []string      `json:"categories"`
	PreviewImage string        `json:"preview_image"`
}
