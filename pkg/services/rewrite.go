package services

import (
	"bytes"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteLinks anchors every relative href/src in the fragment at base, so
// that assets referenced relative to a page's directory resolve once the
// page is served from its route. Absolute URLs and fragment links pass
// through untouched.
func (r *Renderer) RewriteLinks(fragment, base string) (string, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}
	for _, n := range nodes {
		walk(n, func(el *html.Node) {
			for i, attr := range el.Attr {
				if attr.Key != "href" && attr.Key != "src" {
					continue
				}
				if rewritten, ok := rewriteRef(attr.Val, base); ok {
					el.Attr[i].Val = rewritten
				}
			}
		})
	}
	return renderNodes(nodes)
}

// FirstImage returns the src of the first image in the fragment.
func (r *Renderer) FirstImage(fragment string) (string, bool) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", false
	}
	for _, n := range nodes {
		src := ""
		walk(n, func(el *html.Node) {
			if src != "" || el.DataAtom != atom.Img {
				return
			}
			for _, attr := range el.Attr {
				if attr.Key == "src" {
					src = attr.Val
					return
				}
			}
		})
		if src != "" {
			return src, true
		}
	}
	return "", false
}

// StripImages removes every image element from the fragment.
func (r *Renderer) StripImages(fragment string) (string, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}
	var kept []*html.Node
	for _, n := range nodes {
		if n.Type == html.ElementNode && n.DataAtom == atom.Img {
			continue
		}
		var doomed []*html.Node
		walk(n, func(el *html.Node) {
			if el.DataAtom == atom.Img {
				doomed = append(doomed, el)
			}
		})
		for _, img := range doomed {
			if img.Parent != nil {
				img.Parent.RemoveChild(img)
			}
		}
		kept = append(kept, n)
	}
	return renderNodes(kept)
}

func rewriteRef(ref, base string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "#") {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() {
		return "", false
	}
	u.Path = path.Join(base, u.Path)
	return u.String(), true
}

func parseFragment(fragment string) ([]*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	return html.ParseFragment(strings.NewReader(fragment), body)
}

func renderNodes(nodes []*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}
