package pages

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"path"
	"strings"

	"nanopage/pkg/models"
	"nanopage/pkg/vfs"
)

// previewDelimiter splits a markdown file into preview and body at its
// first occurrence anywhere in the raw bytes.
const previewDelimiter = "---"

const markdownExt = ".md"

// ContentTransformer is the external markdown/HTML boundary the builder
// calls as pure text-transform functions.
type ContentTransformer interface {
	ToHTML(markdown []byte) (string, error)
	RewriteLinks(html, baseDir string) (string, error)
	FirstImage(html string) (string, bool)
	StripImages(html string) (string, error)
}

type Options struct {
	PagesRoot        string
	TemplatesRoot    string
	PlaceholderImage string
}

// Builder turns one page directory into a renderable Page. Builds are pure
// functions of the injected file set and share no mutable state, so building
// pages concurrently needs no locks.
type Builder struct {
	fs        *vfs.FS
	transform ContentTransformer
	opts      Options
}

func NewBuilder(fs *vfs.FS, transform ContentTransformer, opts Options) *Builder {
	if opts.PagesRoot == "" {
		opts.PagesRoot = "pages"
	}
	if opts.TemplatesRoot == "" {
		opts.TemplatesRoot = "templates"
	}
	if opts.PlaceholderImage == "" {
		opts.PlaceholderImage = "/static/placeholder.png"
	}
	return &Builder{fs: fs, transform: transform, opts: opts}
}

// SplitPreview divides raw markdown at the first preview delimiter. Without
// a delimiter the whole input is content and the preview is empty.
func SplitPreview(raw []byte) (preview, content []byte) {
	if i := bytes.Index(raw, []byte(previewDelimiter)); i >= 0 {
		return raw[:i], raw[i+len(previewDelimiter):]
	}
	return nil, raw
}

// Build runs the full page pipeline for the named page directory: locate
// the single markdown file, compile the template coupled to its filename,
// split and transform preview and body, load the config, compose the Page.
// It stops at the first failure.
func (b *Builder) Build(dir string) (*models.Page, error) {
	mdPath, err := b.locateMarkdown(dir)
	if err != nil {
		return nil, err
	}

	tmpl, err := b.compileTemplate(mdPath)
	if err != nil {
		return nil, err
	}

	raw, err := b.fs.Lookup(mdPath)
	if err != nil {
		return nil, err
	}
	previewMD, contentMD := SplitPreview(raw)

	// Relative asset references inside the page resolve against the page's
	// own directory once served.
	base := "/" + path.Join(b.opts.PagesRoot, dir)

	content, err := b.transformFragment(contentMD, base)
	if err != nil {
		return nil, err
	}
	preview, err := b.transformFragment(previewMD, base)
	if err != nil {
		return nil, err
	}

	img, ok := b.transform.FirstImage(preview)
	if !ok {
		img = b.opts.PlaceholderImage
	}
	// The listing thumbnail comes from PreviewImage; the preview fragment
	// must not repeat it inline.
	preview, err = b.transform.StripImages(preview)
	if err != nil {
		return nil, err
	}

	cfg, err := b.loadConfig(dir)
	if err != nil {
		return nil, err
	}
	slug, err := models.Slugify(cfg)
	if err != nil {
		return nil, err
	}

	return &models.Page{
		Dir:          dir,
		Slug:         slug,
		Config:       cfg,
		Content:      template.HTML(content),
		Preview:      template.HTML(preview),
		PreviewImage: img,
		Template:     tmpl,
	}, nil
}

// BuildMeta is the light variant for listing and slug lookups: config and
// slug only, no content transform and no template work.
func (b *Builder) BuildMeta(dir string) (*models.Page, error) {
	cfg, err := b.loadConfig(dir)
	if err != nil {
		return nil, err
	}
	slug, err := models.Slugify(cfg)
	if err != nil {
		return nil, err
	}
	return &models.Page{Dir: dir, Slug: slug, Config: cfg}, nil
}

func (b *Builder) locateMarkdown(dir string) (string, error) {
	pageDir := path.Join(b.opts.PagesRoot, dir)
	found := b.fs.FindByExtension(markdownExt, pageDir)
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrZeroMarkdown, pageDir)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: %s has %d", ErrAmbiguousMarkdown, pageDir, len(found))
	}
}

// compileTemplate resolves the template coupled to the markdown filename
// (index.md -> index.html) and compiles it under that name. A missing or
// malformed template source fails with ErrTemplateCompile.
func (b *Builder) compileTemplate(mdPath string) (*template.Template, error) {
	name := strings.TrimSuffix(path.Base(mdPath), markdownExt) + ".html"
	src, err := b.fs.Lookup(path.Join(b.opts.TemplatesRoot, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateCompile, err)
	}
	tmpl, err := template.New(name).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateCompile, err)
	}
	return tmpl, nil
}

func (b *Builder) transformFragment(markdown []byte, base string) (string, error) {
	html, err := b.transform.ToHTML(markdown)
	if err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	html, err = b.transform.RewriteLinks(html, base)
	if err != nil {
		return "", fmt.Errorf("rewrite links: %w", err)
	}
	return html, nil
}

func (b *Builder) loadConfig(dir string) (models.PageConfig, error) {
	pageDir := path.Join(b.opts.PagesRoot, dir)
	for _, name := range configNames {
		doc, err := b.fs.Lookup(path.Join(pageDir, name))
		if errors.Is(err, vfs.ErrNotFound) {
			continue
		}
		if err != nil {
			return models.PageConfig{}, err
		}
		return ParseConfig(doc, name)
	}
	return models.PageConfig{}, fmt.Errorf("page config: %w: %s", vfs.ErrNotFound, path.Join(pageDir, configNames[0]))
}
