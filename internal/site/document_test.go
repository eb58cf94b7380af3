package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katariya/portfolio/internal/catalog"
)

func TestLoadDocument_Default(t *testing.T) {
	doc, err := LoadDocument("")
	require.NoError(t, err)

	assert.Equal(t, "SUSHMITA KATARIYA", doc.Profile.Name)
	assert.Equal(t, "/resume.pdf", doc.Profile.ResumePath)
	assert.Equal(t, "AI and Software", doc.Profile.Hero.Highlight)
	require.Len(t, doc.Projects, 3)
	assert.Equal(t, "DELISH — Food Delivery & Tiffin App", doc.Projects[1].Title)
	assert.Equal(t, []string{
		"All", "AI", "Full-stack", "Career", "MERN", "Payments", "FoodTech", "Algorithms", "Education",
	}, catalog.AvailableTags(doc.Projects))
}

func TestLoadDocument_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	content := `
profile:
  name: Jane
projects:
  - id: 7
    title: Tiny
    tags: [Go]
    status: Done
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane", doc.Profile.Name)
	require.Len(t, doc.Projects, 1)
	assert.Equal(t, []string{"Go"}, doc.Projects[0].Tags)
}

func TestLoadDocument_MissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseDocument_Invalid(t *testing.T) {
	_, err := ParseDocument([]byte("projects: [{id: 1, title: x}]"))
	assert.ErrorIs(t, err, catalog.ErrNoTags)

	_, err = ParseDocument([]byte("projects: [{id: 1, tags: [a]}, {id: 1, tags: [b]}]"))
	assert.ErrorIs(t, err, catalog.ErrDuplicateID)

	_, err = ParseDocument([]byte("projects: [{id: 1, tags: [All, Go]}, {id: 2, tags: [Web]}]"))
	assert.ErrorIs(t, err, catalog.ErrReservedTag)

	_, err = ParseDocument([]byte("projects: {"))
	assert.Error(t, err)
}
