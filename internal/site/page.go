package site

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/katariya/portfolio/internal/catalog"
)

// TagOption is one filter button in the project section.
type TagOption struct {
	Label    string
	Href     string
	Fragment string
	Active   bool
}

// Page is the view model behind index.html and the projects fragment.
type Page struct {
	Profile  Profile
	Selected string
	Tags     []TagOption
	Projects []catalog.Project
	Static   bool
}

// Linker decides where a filter button points.
type Linker interface {
	TagHref(label string) string
	// FragmentHref returns the partial-page URL for label, or "" when the
	// output has no server behind it.
	FragmentHref(label string) string
}

// NewPage renders the filter's current state into a page.
func NewPage(doc *Document, f *catalog.Filter, linker Linker) Page {
	tags := f.AvailableTags()
	options := make([]TagOption, 0, len(tags))
	for _, tag := range tags {
		options = append(options, TagOption{
			Label:    tag,
			Href:     linker.TagHref(tag),
			Fragment: linker.FragmentHref(tag),
			Active:   tag == f.Selected(),
		})
	}

	_, static := linker.(StaticLinker)
	return Page{
		Profile:  doc.Profile,
		Selected: f.Selected(),
		Tags:     options,
		Projects: f.Visible(),
		Static:   static,
	}
}

// ServerLinker links filter buttons to query-string URLs on the live server.
type ServerLinker struct{}

func (ServerLinker) TagHref(label string) string {
	if label == catalog.All {
		return "/#projects"
	}
	return "/?tag=" + url.QueryEscape(label) + "#projects"
}

func (ServerLinker) FragmentHref(label string) string {
	if label == catalog.All {
		return "/projects"
	}
	return "/projects?tag=" + url.QueryEscape(label)
}

// StaticLinker links filter buttons to the pre-rendered pages of an export.
type StaticLinker struct {
	slugs map[string]string
}

// NewStaticLinker assigns every tag of the catalog a file name.
func NewStaticLinker(tags []string) StaticLinker {
	return StaticLinker{slugs: Slugs(tags)}
}

// FileName is the exported file holding the page for label.
func (l StaticLinker) FileName(label string) string {
	if label == catalog.All {
		return "index.html"
	}
	slug, ok := l.slugs[label]
	if !ok {
		slug = slugify(label)
	}
	return fmt.Sprintf("tag-%s.html", slug)
}

func (l StaticLinker) TagHref(label string) string {
	return l.FileName(label) + "#projects"
}

func (StaticLinker) FragmentHref(string) string {
	return ""
}

// Slugs maps each tag other than All to a unique, URL-safe slug. Tags that
// slugify identically are numbered in first-seen order.
func Slugs(tags []string) map[string]string {
	out := make(map[string]string, len(tags))
	taken := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if tag == catalog.All {
			continue
		}
		if _, ok := out[tag]; ok {
			continue
		}
		base := slugify(tag)
		slug := base
		for n := 2; taken[slug]; n++ {
			slug = fmt.Sprintf("%s-%d", base, n)
		}
		taken[slug] = true
		out[tag] = slug
	}
	return out
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "tag"
	}
	return slug
}
