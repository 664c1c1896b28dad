package preferences

import (
	"fmt"
	"strings"
)

// Category is one taxonomy bucket with its legal labels.
type Category struct {
	Name   string
	Labels []string
}

// Taxonomy is the fixed preference taxonomy. It is declared once and
// injected wherever categorization or rendering needs it; category order is
// the declaration order and drives sentence order.
type Taxonomy struct {
	Categories []Category
}

// Default is the taxonomy backing the preferences form.
func Default() Taxonomy {
	return Taxonomy{Categories: []Category{
		{
			Name:   "Dietary",
			Labels: []string{"Vegan", "Vegetarian", "Gluten-Free"},
		},
		{
			Name: "Dining Styles & Venues",
			Labels: []string{
				"Bars", "Cafes", "Brunch", "Fine Dining", "Casual Dining",
				"Street Food", "Food Trucks", "Buffet", "Takeout", "Delivery", "Farm-to-Table",
			},
		},
		{
			Name: "Activities",
			Labels: []string{
				"Outdoor", "Live Music", "Museums", "Fitness", "Spa",
				"Animals", "Shows",
			},
		},
	}}
}

// Categorize partitions the selections by taxonomy category, preserving
// selection order within each bucket. Labels outside the taxonomy are
// silently dropped.
func (t Taxonomy) Categorize(selections []string) map[string][]string {
	result := make(map[string][]string, len(t.Categories))
	for _, category := range t.Categories {
		matched := []string{}
		for _, selection := range selections {
			if contains(category.Labels, selection) {
				matched = append(matched, selection)
			}
		}
		result[category.Name] = matched
	}
	return result
}

// Sentences synthesizes one sentence per non-empty category, in taxonomy
// order.
func (t Taxonomy) Sentences(selections []string) []string {
	categorized := t.Categorize(selections)

	sentences := []string{}
	for _, category := range t.Categories {
		matched := categorized[category.Name]
		if len(matched) == 0 {
			continue
		}
		sentences = append(sentences, fmt.Sprintf(
			"User has %s preferences of %s.", category.Name, strings.Join(matched, ", ")))
	}
	return sentences
}

// SentencesText is the single text blob the search backend indexes: all
// sentences joined by single spaces, empty when nothing matched.
func (t Taxonomy) SentencesText(selections []string) string {
	return strings.Join(t.Sentences(selections), " ")
}

func contains(labels []string, value string) bool {
	for _, label := range labels {
		if label == value {
			return true
		}
	}
	return false
}
