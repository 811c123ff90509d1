package models

// Category is a topical grouping of quiz questions
type Category struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   int    `json:"available"`
}

// Category keys
const (
	CategoryGeneral    = "general"
	CategoryHistory    = "history"
	CategoryGovernment = "government"
	CategoryGeography  = "geography"
	CategoryRights     = "rights"
	CategoryFull       = "full" // Mixed test drawn from every category
)

// ProvinceAll matches questions that apply to every province
const ProvinceAll = "all"

// Categories is the ordered catalogue of practice categories
var Categories = []Category{
	{Key: CategoryGeneral, Name: "General Knowledge", Description: "Symbols, economy and everyday facts about Canada"},
	{Key: CategoryHistory, Name: "Canadian History", Description: "Confederation, the world wars and the people who shaped Canada"},
	{Key: CategoryGovernment, Name: "Government & Politics", Description: "Parliament, elections and how Canada is governed"},
	{Key: CategoryGeography, Name: "Geography & Symbols", Description: "Provinces, territories, capitals and landmarks"},
	{Key: CategoryRights, Name: "Rights & Responsibilities", Description: "The Charter and the duties of citizenship"},
	{Key: CategoryFull, Name: "Full Practice Test", Description: "Questions from every category"},
}

// Provinces lists the accepted province codes
var Provinces = []string{
	ProvinceAll, "ab", "bc", "mb", "nb", "nl", "ns", "nt", "nu", "on", "pe", "qc", "sk", "yt",
}

// IsCategory reports whether key names a known category
func IsCategory(key string) bool {
	for _, c := range Categories {
		if c.Key == key {
			return true
		}
	}
	return false
}

// IsProvince reports whether code is an accepted province code
func IsProvince(code string) bool {
	for _, p := range Provinces {
		if p == code {
			return true
		}
	}
	return false
}

// CategoryName returns the display name for a category key, or the key itself
func CategoryName(key string) string {
	for _, c := range Categories {
		if c.Key == key {
			return c.Name
		}
	}
	return key
}
