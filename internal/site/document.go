package site

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katariya/portfolio/internal/catalog"
)

//go:embed content/portfolio.yaml
var defaultContent embed.FS

// Link is an anchor shown on the page.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Hero holds the copy of the hero block.
type Hero struct {
	Lead         string `yaml:"lead"`
	Highlight    string `yaml:"highlight"`
	Trail        string `yaml:"trail"`
	Paragraph    string `yaml:"paragraph"`
	Image        string `yaml:"image"`
	ImageAlt     string `yaml:"image_alt"`
	PrimaryCTA   Link   `yaml:"primary_cta"`
	SecondaryCTA Link   `yaml:"secondary_cta"`
	ProfileLink  Link   `yaml:"profile_link"`
}

// Profile is the header and hero content of the page.
type Profile struct {
	Name          string `yaml:"name"`
	Tagline       string `yaml:"tagline"`
	ContactAnchor string `yaml:"contact_anchor"`
	ResumePath    string `yaml:"resume_path"`
	Hero          Hero   `yaml:"hero"`
}

// Document is everything the page renders: the profile copy and the project catalog.
type Document struct {
	Profile  Profile           `yaml:"profile"`
	Projects []catalog.Project `yaml:"projects"`
}

// LoadDocument reads the content document at path, or the bundled sample when path is empty.
func LoadDocument(path string) (*Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = defaultContent.ReadFile("content/portfolio.yaml")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return ParseDocument(data)
}

// ParseDocument decodes a YAML content document and validates its catalog.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := catalog.Validate(doc.Projects); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return &doc, nil
}
