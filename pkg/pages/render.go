package pages

import (
	"bytes"
	"fmt"

	"nanopage/pkg/models"
)

// Bindings is the key/value set handed to a page's template.
func Bindings(p *models.Page) map[string]any {
	return map[string]any{
		"Title":        p.Config.Title,
		"Slug":         p.Slug,
		"Author":       p.Config.GetAuthor(),
		"Description":  p.Config.GetDescription(),
		"Keywords":     p.Config.GetKeywords(),
		"Tags":         p.Config.GetTags(),
		"Categories":   p.Config.GetCategories(),
		"Content":      p.Content,
		"Preview":      p.Preview,
		"PreviewImage": p.PreviewImage,
	}
}

// Render executes the page's compiled template against its bindings.
func Render(p *models.Page) ([]byte, error) {
	if p.Template == nil {
		return nil, fmt.Errorf("page %s was built without a template", p.Dir)
	}
	var buf bytes.Buffer
	if err := p.Template.Execute(&buf, Bindings(p)); err != nil {
		return nil, fmt.Errorf("render page %s: %w", p.Dir, err)
	}
	return buf.Bytes(), nil
}
