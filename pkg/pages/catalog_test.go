package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanopage/pkg/services"
	"nanopage/pkg/vfs"
)

func catalogEntries() []vfs.Entry {
	return []vfs.Entry{
		{Path: "pages/hello/hello.md", Content: []byte("Preview---# Hello")},
		{Path: "pages/hello/config.yaml", Content: []byte("title: Hello\n")},
		{Path: "pages/drafts/drafts.md", Content: []byte("wip")},
		{Path: "pages/drafts/config.yaml", Content: []byte("title: Drafts\nslug: _draft\n")},
		{Path: "pages/broken/config.yaml", Content: []byte("title: Broken\n")},
		{Path: "pages/.meta/notes.txt", Content: []byte("system dir")},
		{Path: "templates/hello.html", Content: []byte("{{.Content}}")},
		{Path: "templates/drafts.html", Content: []byte("{{.Content}}")},
	}
}

func newTestCatalog(mode Mode) *Catalog {
	b := NewBuilder(vfs.New(catalogEntries()), services.NewRenderer(), Options{})
	return NewCatalog(b, mode)
}

func TestListPageDirectories(t *testing.T) {
	c := newTestCatalog(ModeNormal)

	// First-discovery order, dot-directories never listed regardless of
	// mode.
	assert.Equal(t, []string{"hello", "drafts", "broken"}, c.ListPageDirectories())
	assert.Equal(t, []string{"hello", "drafts", "broken"}, newTestCatalog(ModePrivileged).ListPageDirectories())
}

func TestBuildAllCapturesPerPageFailures(t *testing.T) {
	c := newTestCatalog(ModeNormal)

	built, failed := c.BuildAll()
	require.Len(t, built, 2)
	require.Len(t, failed, 1)
	assert.Equal(t, "broken", failed[0].Dir)
	assert.ErrorIs(t, failed[0].Err, ErrZeroMarkdown)
}

func TestVisiblePagesHidesDrafts(t *testing.T) {
	built, _ := newTestCatalog(ModeNormal).VisiblePages()
	require.Len(t, built, 1)
	assert.Equal(t, "hello", built[0].Slug)

	built, _ = newTestCatalog(ModePrivileged).VisiblePages()
	require.Len(t, built, 2)
}

func TestVisibleInfos(t *testing.T) {
	infos, failed := newTestCatalog(ModeNormal).VisibleInfos()
	require.Len(t, infos, 1)
	require.Len(t, failed, 1)
	assert.Equal(t, "Hello", infos[0].Title)
	assert.Contains(t, string(infos[0].Preview), "Preview")
}

func TestFindBySlug(t *testing.T) {
	page, err := newTestCatalog(ModeNormal).FindBySlug("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", page.Dir)
	require.NotNil(t, page.Template)
}

func TestFindBySlugHiddenRequiresPrivileged(t *testing.T) {
	_, err := newTestCatalog(ModeNormal).FindBySlug("_draft")
	assert.ErrorIs(t, err, ErrPageNotFound)

	page, err := newTestCatalog(ModePrivileged).FindBySlug("_draft")
	require.NoError(t, err)
	assert.Equal(t, "drafts", page.Dir)
}

func TestFindBySlugUnknown(t *testing.T) {
	_, err := newTestCatalog(ModePrivileged).FindBySlug("nope")
	assert.ErrorIs(t, err, ErrPageNotFound)
}
