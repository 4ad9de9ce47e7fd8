// Package genres maps raw API genre identifiers to French display names.
package genres

// french maps the catalogue API's English genre names to their French
// display form. Unmapped names pass through unchanged.
var french = map[string]string{
	"Action":      "Action",
	"Adventure":   "Aventure",
	"Animation":   "Animation",
	"Biography":   "Biographie",
	"Comedy":      "Comédie",
	"Crime":       "Policier",
	"Documentary": "Documentaire",
	"Drama":       "Drame",
	"Family":      "Famille",
	"Fantasy":     "Fantastique",
	"Film-Noir":   "Film noir",
	"History":     "Histoire",
	"Horror":      "Horreur",
	"Music":       "Musique",
	"Musical":     "Comédie musicale",
	"Mystery":     "Mystère",
	"News":        "Actualités",
	"Reality-TV":  "Télé-réalité",
	"Romance":     "Romance",
	"Sci-Fi":      "Science-fiction",
	"Sport":       "Sport",
	"Thriller":    "Thriller",
	"War":         "Guerre",
	"Western":     "Western",
}

// Translate returns the French display name for an API genre, or the
// name itself when no mapping exists.
func Translate(name string) string {
	if fr, ok := french[name]; ok {
		return fr
	}
	return name
}

// TranslateAll maps Translate over a list of genre names.
func TranslateAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, Translate(n))
	}
	return out
}
