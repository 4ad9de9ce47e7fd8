package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlegrand/cinescope/internal/catalogue"
)

func summaries(names ...string) []catalogue.Title {
	out := make([]catalogue.Title, 0, len(names))
	for i, n := range names {
		out = append(out, catalogue.Title{ID: 100 + i, Title: n, ImageURL: "http://img/" + n})
	}
	return out
}

func TestRailFillExactCount(t *testing.T) {
	rail := NewRail("Top rated", 3)
	n := rail.Fill(summaries("A", "B", "C"))

	assert.Equal(t, 3, n)
	assert.Equal(t, "A", rail.Slots[0].Title)
	assert.Equal(t, 102, rail.Slots[2].TitleID)
	assert.Equal(t, "http://img/B", rail.Slots[1].ImageSrc)
}

func TestRailFillTruncatesExtraTitles(t *testing.T) {
	rail := NewRail("Top rated", 2)
	n := rail.Fill(summaries("A", "B", "C", "D"))

	assert.Equal(t, 2, n)
	assert.Equal(t, "B", rail.Slots[1].Title)
}

func TestRailFillClearsUnusedSlots(t *testing.T) {
	rail := NewRail("Mystère", 4)
	rail.Fill(summaries("A", "B", "C", "D"))

	n := rail.Fill(summaries("X"))
	assert.Equal(t, 1, n)
	assert.Equal(t, "X", rail.Slots[0].Title)
	for i := 1; i < 4; i++ {
		assert.Empty(t, rail.Slots[i].Title, "slot %d should be cleared", i)
	}
}

func TestRailFillEmpty(t *testing.T) {
	rail := NewRail("Action", 6)
	assert.Equal(t, 0, rail.Fill(nil))
}

// Seven summaries, skip the first (it feeds the hero), take the next six:
// the top-rated rail shows exactly summaries[1..6].
func TestTopRatedRailFromSevenSummaries(t *testing.T) {
	all := summaries("best", "s1", "s2", "s3", "s4", "s5", "s6")

	rail := NewRail("Films les mieux notés", 6)
	n := rail.Fill(all[1:])

	assert.Equal(t, 6, n)
	view := RailView(rail, -1)
	for _, want := range []string{"s1", "s2", "s3", "s4", "s5", "s6"} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "best")
}

func TestHeroFill(t *testing.T) {
	var hero HeroTarget
	hero.Fill(&catalogue.TitleDetails{
		ID:          55,
		Title:       "Parasite",
		ImageURL:    "http://img/parasite.jpg",
		Description: "A poor family schemes.",
	})

	assert.Equal(t, "Parasite", hero.Title)
	assert.Equal(t, 55, hero.DetailsID)

	view := HeroView(hero, 60)
	assert.Contains(t, view, "Parasite")
	assert.Contains(t, view, "A poor family schemes.")
}

func TestHeroFillNilDetails(t *testing.T) {
	hero := HeroTarget{Title: "stale", DetailsID: 9}
	hero.Fill(nil)

	assert.Equal(t, unavailable, hero.Title)
	assert.Zero(t, hero.DetailsID)
}

func TestModalFillTranslatesGenres(t *testing.T) {
	var m ModalTarget
	m.Fill(&catalogue.TitleDetails{
		Title:           "Old Boy",
		Year:            2003,
		Rated:           "R",
		Genres:          []string{"Mystery", "Drama", "Telenovela"},
		Duration:        120,
		IMDbScore:       8.4,
		Countries:       []string{"South Korea"},
		Directors:       []string{"Park Chan-wook"},
		Actors:          []string{"Choi Min-sik", "Yoo Ji-tae"},
		LongDescription: "A man is imprisoned for fifteen years.",
	})

	assert.Equal(t, "Mystère, Drame, Telenovela", m.Genres)
	assert.Equal(t, "2003 - R", m.YearRated)
	assert.Equal(t, "8.4/10", m.Score)
	assert.Equal(t, "2h00", m.Duration)

	view := ModalView(m, 70)
	assert.Contains(t, view, "Old Boy")
	assert.Contains(t, view, "Park Chan-wook")
	assert.Contains(t, view, "Choi Min-sik")
}

func TestModalFillNilDetails(t *testing.T) {
	var m ModalTarget
	m.Fill(nil)
	assert.Equal(t, unavailable, m.Title)
	assert.Empty(t, m.Actors)
}

func TestModalFillPrefersLongDescription(t *testing.T) {
	var m ModalTarget
	m.Fill(&catalogue.TitleDetails{Description: "short", LongDescription: "long"})
	assert.Equal(t, "long", m.Synopsis)

	m.Fill(&catalogue.TitleDetails{Description: "short"})
	assert.Equal(t, "short", m.Synopsis)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "45 min", formatDuration(45))
	assert.Equal(t, "1h30", formatDuration(90))
	assert.Empty(t, formatDuration(0))

	assert.Equal(t, "$1.5M", formatGross(1_500_000))
	assert.Equal(t, "$2.1B", formatGross(2_100_000_000))
	assert.Equal(t, "$999", formatGross(999))
	assert.Empty(t, formatGross(0))

	assert.Equal(t, "2010", formatYearRated(2010, ""))
	assert.Equal(t, "R", formatYearRated(0, "R"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	long := strings.Repeat("x", 30)
	got := truncate(long, 10)
	assert.Equal(t, 10, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}
