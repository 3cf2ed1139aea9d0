package frontmatter

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontmatterPattern = regexp.MustCompile(`(?s)^---\r?\n(.*?)\r?\n---\r?\n?(.*)`)

// Frontmatter holds the note metadata a bookmark can borrow its label from.
type Frontmatter struct {
	Title   string   `yaml:"title"`
	Aliases []string `yaml:"aliases,flow"`
	Tags    []string `yaml:"tags,flow"`
	Icon    string   `yaml:"icon,omitempty"` // Iconize-style note icon
	Banner  string   `yaml:"banner_icon,omitempty"`
}

// Parse extracts frontmatter from content and returns the parsed data and body
func Parse(content string) (*Frontmatter, string, error) {
	matches := frontmatterPattern.FindStringSubmatch(content)
	if len(matches) != 3 {
		// No frontmatter found
		return nil, content, nil
	}

	frontmatterStr := matches[1]
	bodyContent := matches[2]

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(frontmatterStr), &fm); err != nil {
		return nil, content, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	// Ensure arrays are never nil
	if fm.Aliases == nil {
		fm.Aliases = []string{}
	}
	if fm.Tags == nil {
		fm.Tags = []string{}
	}

	return &fm, bodyContent, nil
}

// ParseFile reads the note at path and parses its frontmatter.
func ParseFile(path string) (*Frontmatter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fm, _, err := Parse(string(data))
	return fm, err
}

// Label returns the name and icon a bookmark for this note should show.
// Either may be empty.
func (fm *Frontmatter) Label() (name, emojicon string) {
	if fm == nil {
		return "", ""
	}
	name = strings.TrimSpace(fm.Title)
	if name == "" && len(fm.Aliases) > 0 {
		name = strings.TrimSpace(fm.Aliases[0])
	}
	emojicon = strings.TrimSpace(fm.Icon)
	if emojicon == "" {
		emojicon = strings.TrimSpace(fm.Banner)
	}
	return name, emojicon
}
