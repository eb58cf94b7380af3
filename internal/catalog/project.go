package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID = errors.New("duplicate project id")
	ErrNoTags      = errors.New("project has no tags")
	ErrReservedTag = errors.New("tag is reserved")
)

// Project is one portfolio item shown as a card in the project grid.
type Project struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Tags        []string `json:"tags" yaml:"tags"`
	Description string   `json:"description" yaml:"description"`
	Status      string   `json:"status" yaml:"status"`
	Image       string   `json:"image" yaml:"image"`
}

// Validate checks that ids are unique, every project carries at least one tag,
// and no tag collides with the All sentinel.
func Validate(projects []Project) error {
	seen := make(map[int]struct{}, len(projects))
	for _, p := range projects {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}

		if len(p.Tags) == 0 {
			return fmt.Errorf("%w: %d (%s)", ErrNoTags, p.ID, p.Title)
		}
		if Contains(p.Tags, All) {
			return fmt.Errorf("%w: %q on project %d (%s)", ErrReservedTag, All, p.ID, p.Title)
		}
	}
	return nil
}
