package catalog

import "github.com/samber/lo"

// All is the sentinel selection that shows every project.
const All = "All"

// AvailableTags returns All followed by every distinct tag in first-seen order.
func AvailableTags(projects []Project) []string {
	tags := lo.Uniq(lo.FlatMap(projects, func(p Project, _ int) []string {
		return p.Tags
	}))
	return append([]string{All}, tags...)
}

// VisibleProjects returns the projects matching label, keeping their original order.
// Matching is exact and case-sensitive; an unknown label yields an empty slice.
func VisibleProjects(projects []Project, label string) []Project {
	if label == All {
		return append(make([]Project, 0, len(projects)), projects...)
	}
	return lo.Filter(projects, func(p Project, _ int) bool {
		return Contains(p.Tags, label)
	})
}

// Contains reports whether label is one of tags.
func Contains(tags []string, label string) bool {
	return lo.Contains(tags, label)
}

// ByID looks a project up by its identifier.
func ByID(projects []Project, id int) (Project, bool) {
	return lo.Find(projects, func(p Project) bool {
		return p.ID == id
	})
}

// Filter holds the selected tag for one viewing of the catalog and notifies
// subscribers whenever the selection is set. It is not safe for concurrent use.
type Filter struct {
	projects    []Project
	selected    string
	subscribers []func(label string)
}

// NewFilter returns a Filter over projects with All selected.
func NewFilter(projects []Project) *Filter {
	return &Filter{projects: projects, selected: All}
}

// Subscribe registers fn to be called synchronously after every Set.
func (f *Filter) Subscribe(fn func(label string)) {
	f.subscribers = append(f.subscribers, fn)
}

// Set replaces the selection. Labels are not checked against AvailableTags.
func (f *Filter) Set(label string) {
	f.selected = label
	for _, fn := range f.subscribers {
		fn(label)
	}
}

func (f *Filter) Selected() string {
	return f.selected
}

func (f *Filter) AvailableTags() []string {
	return AvailableTags(f.projects)
}

func (f *Filter) Visible() []Project {
	return VisibleProjects(f.projects, f.selected)
}
