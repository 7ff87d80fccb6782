package services

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts markdown fragments to sanitized HTML and post-processes
// them for serving. It satisfies the builder's ContentTransformer boundary.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// ToHTML converts markdown to HTML and sanitizes the result. Raw HTML
// embedded in the markdown never survives the policy.
func (r *Renderer) ToHTML(markdown []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(markdown, &buf); err != nil {
		return "", err
	}
	return r.policy.Sanitize(buf.String()), nil
}
