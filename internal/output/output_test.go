package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katariya/portfolio/internal/catalog"
)

func newTestUI() (*UI, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &UI{Out: out, ErrOut: errOut}, out, errOut
}

func TestMessages(t *testing.T) {
	u, out, errOut := newTestUI()

	u.Info("hello %s", "world")
	u.Success("wrote %d files", 9)
	u.Warning("careful")
	u.Error("failed %s", "badly")

	assert.Contains(t, out.String(), "hello world")
	assert.Contains(t, out.String(), "wrote 9 files")
	assert.Contains(t, errOut.String(), "careful")
	assert.Contains(t, errOut.String(), "failed badly")
}

func TestVerbosef(t *testing.T) {
	u, out, _ := newTestUI()
	u.Verbosef("hidden")
	assert.Empty(t, out.String())

	u.Verbose = true
	u.Verbosef("shown")
	assert.Contains(t, out.String(), "shown")
}

func TestStatusColor_KeepsText(t *testing.T) {
	for _, s := range []string{"In Progress", "Prototype", "Planned", "Archived"} {
		assert.Contains(t, StatusColor(s), s)
	}

	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
	assert.Equal(t, "Archived", StatusColor("Archived"))
}

func TestMessages_Prefixes(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	u, out, errOut := newTestUI()
	u.Success("done")
	u.Error("broken")

	assert.Equal(t, "✓ done\n", out.String())
	assert.Equal(t, "✗ broken\n", errOut.String())
}

func TestProjects(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	u, out, _ := newTestUI()
	require.NoError(t, u.Projects([]catalog.Project{
		{ID: 1, Title: "AI Career Coach", Tags: []string{"AI", "Career"}, Status: "In Progress"},
		{ID: 12, Title: "DSA Visualizer", Tags: []string{"Education"}, Status: "Planned"},
	}))

	got := out.String()
	assert.Contains(t, got, "AI Career Coach")
	assert.Contains(t, got, "AI • Career")
	assert.Contains(t, got, "DSA Visualizer")
	assert.Contains(t, got, "In Progress")
	assert.Less(t, strings.Index(got, "AI Career Coach"), strings.Index(got, "DSA Visualizer"))
}
