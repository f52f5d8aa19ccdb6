package event

import "strings"

// Category classifies an event into one of a fixed closed set of tags.
type Category string

const (
	CategoryMusic      Category = "music"
	CategorySports     Category = "sports"
	CategoryArts       Category = "arts"
	CategoryTechnology Category = "technology"
	CategoryFood       Category = "food"
	CategoryEducation  Category = "education"
	CategoryNetworking Category = "networking"
	CategoryOther      Category = "other"
)

// categoryKeywords maps each category to the substrings that select it.
// Declared as an ordered slice, not a map: when a text matches keywords
// from several categories, the first declared category wins. "other"
// has no keywords and is the default.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryMusic, []string{"concert", "band", "dj", "music", "live music", "festival", "acoustic", "jazz", "rock", "pop"}},
	{CategorySports, []string{"game", "match", "tournament", "league", "sports", "football", "basketball", "soccer", "tennis", "golf"}},
	{CategoryArts, []string{"art", "museum", "gallery", "exhibition", "theater", "performance", "dance", "ballet", "opera", "sculpture"}},
	{CategoryTechnology, []string{"tech", "coding", "hackathon", "conference", "workshop", "ai", "startup", "programming", "software", "digital"}},
	{CategoryFood, []string{"food", "cooking", "tasting", "restaurant", "culinary", "wine", "beer", "chef", "dining", "cuisine"}},
	{CategoryEducation, []string{"workshop", "seminar", "lecture", "course", "training", "webinar", "class", "learning", "tutorial"}},
	{CategoryNetworking, []string{"networking", "meetup", "professional", "business", "career", "entrepreneur", "corporate"}},
	{CategoryOther, nil},
}

// Categories returns all valid categories in declaration order.
func Categories() []Category {
	cats := make([]Category, 0, len(categoryKeywords))
	for _, entry := range categoryKeywords {
		cats = append(cats, entry.category)
	}
	return cats
}

// ValidCategory reports whether s names a member of the category set.
func ValidCategory(s string) bool {
	for _, entry := range categoryKeywords {
		if string(entry.category) == s {
			return true
		}
	}
	return false
}

// Categorize classifies an event by scanning its title and description
// for category keywords. The first category in declaration order with
// at least one substring match wins; CategoryOther if nothing matches.
func Categorize(title, description string) Category {
	text := strings.ToLower(title + " " + description)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.category
			}
		}
	}
	return CategoryOther
}
