package catalogue

// Title represents a film summary from the listing endpoints.
type Title struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	ImageURL  string  `json:"image_url"`
	IMDbScore float64 `json:"imdb_score"`
}

// TitleDetails represents the full film record from the detail endpoint.
type TitleDetails struct {
	ID                   int      `json:"id"`
	Title                string   `json:"title"`
	OriginalTitle        string   `json:"original_title"`
	Year                 int      `json:"year"`
	ImageURL             string   `json:"image_url"`
	Description          string   `json:"description"`
	LongDescription      string   `json:"long_description"`
	Genres               []string `json:"genres"`
	Rated                string   `json:"rated"`
	Duration             int      `json:"duration"`
	Countries            []string `json:"countries"`
	IMDbScore            float64  `json:"imdb_score"`
	WorldwideGrossIncome int64    `json:"worldwide_gross_income"`
	Directors            []string `json:"directors"`
	Actors               []string `json:"actors"`
}

// Genre represents a genre entry from the genre listing endpoint.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// page is the paginated API response envelope. A nil Results slice after
// decoding means the field was absent, which the paginator treats as a
// failed page.
type page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
