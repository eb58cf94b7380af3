package site

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katariya/portfolio/internal/catalog"
)

func TestTemplates_AllNamesPresent(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"index.html", "projects.html", "contact.html", "contact-success.html", "contact-error.html",
		"privacy.html", "admin-login.html", "admin-dashboard.html", "admin-visitors.html", "admin-error.html",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestRenderPage_FilteredGrid(t *testing.T) {
	doc := testDocument(t)
	tmpl, err := Templates()
	require.NoError(t, err)

	f := catalog.NewFilter(doc.Projects)
	f.Set("Education")

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, tmpl, NewPage(doc, f, ServerLinker{})))
	html := buf.String()

	assert.Contains(t, html, "SUSHMITA KATARIYA")
	assert.Contains(t, html, "Download Resume")
	assert.Contains(t, html, `href="/resume.pdf"`)
	assert.Contains(t, html, "DSA Visualizer")
	assert.Contains(t, html, "Algorithms • Education")
	assert.Contains(t, html, "Planned")
	assert.NotContains(t, html, "AI Career Coach")
	assert.Contains(t, html, `hx-get="/contact-form"`)
}

func TestRenderPage_UnknownTag(t *testing.T) {
	doc := testDocument(t)
	tmpl, err := Templates()
	require.NoError(t, err)

	f := catalog.NewFilter(doc.Projects)
	f.Set("Unknown")

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, tmpl, NewPage(doc, f, ServerLinker{})))
	assert.Contains(t, buf.String(), "No projects tagged Unknown yet.")
	assert.NotContains(t, buf.String(), "data-project-id")
}

func TestExport(t *testing.T) {
	doc := testDocument(t)
	dir := filepath.Join(t.TempDir(), "dist")

	files, err := Export(dir, doc)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"index.html", "tag-ai.html", "tag-full-stack.html", "tag-career.html", "tag-mern.html",
		"tag-payments.html", "tag-foodtech.html", "tag-algorithms.html", "tag-education.html",
	}, files)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(index), "data-project-id"))
	assert.NotContains(t, string(index), "htmx.org")

	mern, err := os.ReadFile(filepath.Join(dir, "tag-mern.html"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(mern), "data-project-id"))
	assert.Contains(t, string(mern), "DELISH")
	assert.Contains(t, string(mern), `href="index.html#projects"`)
}
