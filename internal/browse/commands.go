package browse

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlegrand/cinescope/internal/catalogue/genres"
	"github.com/mlegrand/cinescope/internal/render"
)

// Rail headings. The hero feeds on the first entry of the top listing,
// the top-rated rail on the six after it.
const (
	topRatedHeading = "Films les mieux notés"
)

// loadCatalogue builds the whole initial page: hero, top-rated rail,
// fixed genre rails, the first selectable genre rail, and the genre
// list. Failures degrade to empty regions, they never abort the load.
func (m Model) loadCatalogue() tea.Cmd {
	return func() tea.Msg {
		size := m.opts.RailSize

		// One listing drives both the hero and the top-rated rail:
		// first entry is the best film, the next size entries fill the rail.
		top := m.opts.Catalogue.TopTitles(m.ctx, "", size+1)

		var hero render.HeroTarget
		if len(top) > 0 {
			details, err := m.opts.Catalogue.GetTitle(m.ctx, top[0].ID)
			if err != nil {
				details = nil // placeholder hero
			}
			hero.Fill(details)
			hero.ImageSrc = m.opts.Posters.Resolve(m.ctx, hero.ImageSrc)
		} else {
			hero.Fill(nil)
		}

		rails := make([]render.Rail, 0, len(m.opts.FixedGenres)+2)

		topRail := render.NewRail(topRatedHeading, size)
		if len(top) > 1 {
			topRail.Fill(top[1:])
		}
		m.resolvePosters(&topRail)
		rails = append(rails, topRail)

		for _, g := range m.opts.FixedGenres {
			rail := render.NewRail(genres.Translate(g), size)
			rail.Fill(m.opts.Catalogue.TopTitles(m.ctx, g, size))
			m.resolvePosters(&rail)
			rails = append(rails, rail)
		}

		names := m.opts.Catalogue.AllGenres(m.ctx)

		// Selectable rail starts on the first known genre.
		selectable := render.NewRail("", size)
		if len(names) > 0 {
			selectable = m.buildGenreRail(names[0])
		}
		rails = append(rails, selectable)

		return catalogueLoadedMsg{hero: hero, rails: rails, genres: names}
	}
}

// loadGenreRail re-fetches the selectable rail for a newly picked genre.
func (m Model) loadGenreRail(token int, genre string) tea.Cmd {
	return func() tea.Msg {
		return genreRailMsg{token: token, rail: m.buildGenreRail(genre)}
	}
}

func (m Model) buildGenreRail(genre string) render.Rail {
	rail := render.NewRail(genres.Translate(genre), m.opts.RailSize)
	rail.Fill(m.opts.Catalogue.TopTitles(m.ctx, genre, m.opts.RailSize))
	m.resolvePosters(&rail)
	return rail
}

// loadDetail fetches the full record for the modal.
func (m Model) loadDetail(id int) tea.Cmd {
	return func() tea.Msg {
		details, err := m.opts.Catalogue.GetTitle(m.ctx, id)
		if err != nil {
			details = nil // placeholder modal
		}
		var modal render.ModalTarget
		modal.Fill(details)
		modal.ImageSrc = m.opts.Posters.Resolve(m.ctx, modal.ImageSrc)
		return detailMsg{modal: modal}
	}
}

// resolvePosters probes every filled card's image and substitutes the
// fallback for unreachable ones.
func (m Model) resolvePosters(rail *render.Rail) {
	for i := 0; i < rail.Filled; i++ {
		rail.Slots[i].ImageSrc = m.opts.Posters.Resolve(m.ctx, rail.Slots[i].ImageSrc)
	}
}
