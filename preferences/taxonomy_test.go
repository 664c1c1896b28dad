package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentencesTextMatchesFormExactly(t *testing.T) {
	taxonomy := Default()

	got := taxonomy.SentencesText([]string{"Vegan", "Bars", "Outdoor", "UnknownLabel"})

	assert.Equal(t,
		"User has Dietary preferences of Vegan. "+
			"User has Dining Styles & Venues preferences of Bars. "+
			"User has Activities preferences of Outdoor.",
		got)
}

func TestSentencesTextEmptySelections(t *testing.T) {
	taxonomy := Default()

	assert.Equal(t, "", taxonomy.SentencesText([]string{}))
	assert.Equal(t, "", taxonomy.SentencesText(nil))
}

func TestSentencesFollowTaxonomyOrderNotSelectionOrder(t *testing.T) {
	taxonomy := Default()

	// Activities selected first, Dietary last; output order is still
	// Dietary, Dining, Activities.
	got := taxonomy.Sentences([]string{"Museums", "Cafes", "Vegetarian"})

	assert.Equal(t, []string{
		"User has Dietary preferences of Vegetarian.",
		"User has Dining Styles & Venues preferences of Cafes.",
		"User has Activities preferences of Museums.",
	}, got)
}

func TestSentencesJoinMultipleLabelsWithCommas(t *testing.T) {
	taxonomy := Default()

	got := taxonomy.Sentences([]string{"Vegan", "Gluten-Free"})

	assert.Equal(t, []string{"User has Dietary preferences of Vegan, Gluten-Free."}, got)
}

func TestCategorizeDropsUnknownLabelsSilently(t *testing.T) {
	taxonomy := Default()

	got := taxonomy.Categorize([]string{"Spelunking", "Vegan"})

	assert.Equal(t, []string{"Vegan"}, got["Dietary"])
	assert.Empty(t, got["Dining Styles & Venues"])
	assert.Empty(t, got["Activities"])
	for _, labels := range got {
		assert.NotContains(t, labels, "Spelunking")
	}
}
