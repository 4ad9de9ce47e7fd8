// Package render populates explicit view targets with catalogue data and
// turns them into styled terminal output.
//
// Targets are passed in by the caller rather than looked up globally, so
// every write is visible in the data flow and testable in isolation.
package render

import (
	"strings"

	"github.com/mlegrand/cinescope/internal/catalogue"
	"github.com/mlegrand/cinescope/internal/catalogue/genres"
)

// Placeholder text used when a detail fetch returned no data.
const unavailable = "Film indisponible"

// HeroTarget is the render target for the "best film" panel.
type HeroTarget struct {
	Title     string
	ImageSrc  string
	Synopsis  string
	DetailsID int
}

// Fill populates the hero target from a detail record. A nil record
// leaves a placeholder instead of crashing the view.
func (h *HeroTarget) Fill(d *catalogue.TitleDetails) {
	if d == nil {
		*h = HeroTarget{Title: unavailable}
		return
	}
	h.Title = d.Title
	h.ImageSrc = d.ImageURL
	h.Synopsis = d.Description
	h.DetailsID = d.ID
}

// CardSlot is one pre-sized placeholder in a film rail. TitleID is the
// identifier later used to look up full detail.
type CardSlot struct {
	Title    string
	ImageSrc string
	TitleID  int
}

// Rail is a heading plus a fixed number of card slots.
type Rail struct {
	Heading string
	Slots   []CardSlot
	Filled  int
}

// NewRail creates a rail with size empty card slots.
func NewRail(heading string, size int) Rail {
	return Rail{
		Heading: heading,
		Slots:   make([]CardSlot, size),
	}
}

// Fill populates the slots positionally from titles and returns the
// number of cards filled: min(len(titles), len(slots)). Extra titles are
// dropped, extra slots are cleared.
func (r *Rail) Fill(titles []catalogue.Title) int {
	n := min(len(titles), len(r.Slots))
	for i := range r.Slots {
		if i < n {
			r.Slots[i] = CardSlot{
				Title:    titles[i].Title,
				ImageSrc: titles[i].ImageURL,
				TitleID:  titles[i].ID,
			}
		} else {
			r.Slots[i] = CardSlot{}
		}
	}
	r.Filled = n
	return n
}

// ModalTarget is the fixed field set of the film detail overlay.
type ModalTarget struct {
	Title       string
	ImageSrc    string
	Genres      string
	YearRated   string
	Score       string
	Duration    string
	Countries   string
	GrossIncome string
	Directors   string
	Synopsis    string
	Actors      string
}

// Fill populates the modal fields from a detail record, translating
// genres to their French display names. A nil record yields placeholder
// content.
func (m *ModalTarget) Fill(d *catalogue.TitleDetails) {
	if d == nil {
		*m = ModalTarget{Title: unavailable}
		return
	}
	*m = ModalTarget{
		Title:       d.Title,
		ImageSrc:    d.ImageURL,
		Genres:      strings.Join(genres.TranslateAll(d.Genres), ", "),
		YearRated:   formatYearRated(d.Year, d.Rated),
		Score:       formatScore(d.IMDbScore),
		Duration:    formatDuration(d.Duration),
		Countries:   strings.Join(d.Countries, " / "),
		GrossIncome: formatGross(d.WorldwideGrossIncome),
		Directors:   strings.Join(d.Directors, ", "),
		Synopsis:    firstNonEmpty(d.LongDescription, d.Description),
		Actors:      strings.Join(d.Actors, ", "),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
