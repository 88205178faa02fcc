package recommend

import (
	"sort"
	"strings"
)

const (
	// TopK is the maximum number of recommendations returned per call.
	TopK = 3

	defaultComfort   = 5
	minComfort       = 1
	maxComfort       = 10
	similarityWeight = 0.8
	comfortWeight    = 0.2
	highComfort      = 7
)

// Preferences is the subset of a user profile the ranker reads.
type Preferences struct {
	FavoriteColors []string `json:"favorite_colors"`
	Style          string   `json:"style"`
	BodyType       string   `json:"body_type"`
}

// Item is a wardrobe record scoped to one user. Comfort 0 means unset.
type Item struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Color    string `json:"color"`
	Occasion string `json:"occasion"`
	Comfort  int    `json:"comfort"`
	Tags     string `json:"tags"`
}

// Recommendation is a scored, explained candidate.
type Recommendation struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Color       string  `json:"color"`
	Occasion    string  `json:"occasion"`
	Comfort     float64 `json:"comfort"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// Rank filters items by exact occasion match, scores them against prefs, and
// returns at most TopK results ordered by descending score. Ties keep the
// input order. The occasion comparison is case-sensitive.
func Rank(prefs Preferences, items []Item, occasion string) []Recommendation {
	candidates := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Occasion != occasion {
			continue
		}
		if it.Comfort == 0 {
			it.Comfort = defaultComfort
		}
		candidates = append(candidates, it)
	}
	if len(candidates) == 0 {
		return []Recommendation{}
	}

	docs := make([]string, 0, len(candidates)+1)
	for _, it := range candidates {
		docs = append(docs, featureText(it))
	}
	docs = append(docs, profileText(prefs))
	space := fitTFIDF(docs)
	profileRow := len(docs) - 1
	degenerate := space.empty()

	out := make([]Recommendation, len(candidates))
	for i, it := range candidates {
		var sim float64
		if !degenerate {
			sim = space.cosine(i, profileRow)
		}
		out[i] = Recommendation{
			ID:          it.ID,
			Category:    it.Category,
			Color:       it.Color,
			Occasion:    it.Occasion,
			Comfort:     float64(it.Comfort),
			Score:       similarityWeight*sim + ComfortScore(it.Comfort),
			Explanation: Explain(prefs, it),
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > TopK {
		out = out[:TopK]
	}
	return out
}

// ComfortScore maps comfort in [1,10] linearly onto [0, 0.2].
func ComfortScore(comfort int) float64 {
	return float64(comfort-1) / 9.0 * comfortWeight
}

// Explain lists the reasons an item suits prefs, in a fixed order.
func Explain(prefs Preferences, it Item) string {
	reasons := make([]string, 0, 3)
	if matchesFavoriteColor(prefs.FavoriteColors, it.Color) {
		reasons = append(reasons, "matches favorite color")
	}
	if style := strings.ToLower(prefs.Style); style != "" && strings.Contains(strings.ToLower(it.Tags), style) {
		reasons = append(reasons, "matches preferred style")
	}
	comfort := it.Comfort
	if comfort == 0 {
		comfort = defaultComfort
	}
	if comfort >= highComfort {
		reasons = append(reasons, "high comfort")
	}
	if len(reasons) == 0 {
		return "good match"
	}
	return strings.Join(reasons, "; ")
}

func matchesFavoriteColor(favorites []string, color string) bool {
	color = strings.ToLower(color)
	for _, fav := range favorites {
		if fav == "" {
			continue
		}
		if strings.Contains(color, strings.ToLower(fav)) {
			return true
		}
	}
	return false
}

func featureText(it Item) string {
	return it.Color + " " + it.Category + " " + it.Tags
}

func profileText(prefs Preferences) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{strings.Join(prefs.FavoriteColors, " "), prefs.Style, prefs.BodyType} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
