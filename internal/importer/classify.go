package importer

import (
	"strings"

	"github.com/example/citizenprep/pkg/models"
)

type rule struct {
	category string
	keywords []string
}

// Checked in order; the first rule with a matching keyword wins
var rules = []rule{
	{
		category: models.CategoryHistory,
		keywords: []string{
			"history", "confederation", "war", "battle", "first world war", "second world war",
			"vimy ridge", "plains of abraham", "underground railroad", "residential schools",
		},
	},
	{
		category: models.CategoryGovernment,
		keywords: []string{
			"government", "parliament", "prime minister", "governor general", "senate",
			"house of commons", "election", "vote", "political party", "cabinet",
		},
	},
	{
		category: models.CategoryGeography,
		keywords: []string{
			"province", "territory", "capital", "city", "geography",
			"region", "ocean", "lake", "river", "mountain",
		},
	},
	{
		category: models.CategoryRights,
		keywords: []string{
			"right", "freedom", "charter", "responsibility",
			"citizen", "vote", "equality", "law",
		},
	},
}

// Classify assigns a category to question text by case-insensitive substring match.
// Text matching no keyword is general.
func Classify(text string) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return models.CategoryGeneral
}
