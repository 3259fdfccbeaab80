// Package catalog holds the project cards shown in listings and the loader
// for the YAML file they come from.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

// Status values a card may carry.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Card is one project in a listing.
type Card struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Creator  string   `yaml:"creator" json:"creator"`
	Summary  string   `yaml:"summary" json:"summary"`
	Category string   `yaml:"category" json:"category"`
	Tags     TagList  `yaml:"tags" json:"tags"`
	Status   string   `yaml:"status" json:"status"`
	Goal     float64  `yaml:"goal" json:"goal"`
	Raised   float64  `yaml:"raised" json:"raised"`
	Backers  int      `yaml:"backers" json:"backers"`
	DaysLeft int      `yaml:"days_left" json:"days_left"`
	Images   []string `yaml:"images" json:"images,omitempty"`
}

// EffectiveStatus treats a blank status as active.
func (c Card) EffectiveStatus() string {
	if s := strings.ToLower(strings.TrimSpace(c.Status)); s != "" {
		return s
	}
	return StatusActive
}

// Funded is Raised/Goal as a percentage, 0 when there is no goal.
func (c Card) Funded() float64 {
	if c.Goal <= 0 {
		return 0
	}
	return c.Raised / c.Goal * 100
}

// TagList decodes either a YAML sequence or a comma-separated string.
type TagList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TagList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*t = SplitTags(node.Value)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*t = SplitTags(strings.Join(list, ","))
		return nil
	}
	return fmt.Errorf("catalog: tags must be a string or list, line %d", node.Line)
}

// SplitTags splits a comma-separated tag string, dropping blanks.
func SplitTags(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Catalog is the card list plus the category names used by pickers.
type Catalog struct {
	Categories []string `yaml:"categories"`
	Cards      []Card   `yaml:"cards"`
}

// Find returns the card with id.
func (c *Catalog) Find(id string) (*Card, bool) {
	for i := range c.Cards {
		if c.Cards[i].ID == id {
			return &c.Cards[i], true
		}
	}
	return nil, false
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	for i := range c.Cards {
		if c.Cards[i].ID == "" {
			c.Cards[i].ID = fmt.Sprintf("p%d", i+1)
		}
	}
	if len(c.Categories) == 0 {
		c.Categories = categoriesOf(c.Cards)
	}
	return &c, nil
}

// Load reads path, or returns the built-in sample when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Sample(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("catalog: %s does not exist", path)
		}
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	return Parse(data)
}

// Sample returns the built-in catalog.
func Sample() *Catalog {
	c, err := Parse(sampleYAML)
	if err != nil {
		panic(err)
	}
	return c
}

func categoriesOf(cards []Card) []string {
	seen := map[string]bool{}
	var out []string
	for _, c := range cards {
		if c.Category == "" || seen[c.Category] {
			continue
		}
		seen[c.Category] = true
		out = append(out, c.Category)
	}
	return out
}

// Tags returns every tag used by the cards, in first-seen order.
func (c *Catalog) Tags() []string {
	seen := map[string]bool{}
	var out []string
	for _, card := range c.Cards {
		for _, t := range card.Tags {
			key := strings.ToLower(t)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, t)
		}
	}
	return out
}

// AddCategory appends name unless a category with that name exists. It
// reports whether the list changed.
func (c *Catalog) AddCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, existing := range c.Categories {
		if strings.EqualFold(existing, name) {
			return false
		}
	}
	c.Categories = append(c.Categories, name)
	return true
}

// Replace stores card over the card with the same id.
func (c *Catalog) Replace(card Card) bool {
	for i := range c.Cards {
		if c.Cards[i].ID == card.ID {
			c.Cards[i] = card
			return true
		}
	}
	return false
}

// ByCreator returns the cards whose creator matches name, ignoring case.
func (c *Catalog) ByCreator(name string) []Card {
	var out []Card
	for _, card := range c.Cards {
		if strings.EqualFold(card.Creator, name) {
			out = append(out, card)
		}
	}
	return out
}
