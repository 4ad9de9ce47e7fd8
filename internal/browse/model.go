// Package browse implements the interactive catalogue browser: a hero
// "best film" panel, film rails, a genre selector, and a detail overlay.
package browse

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlegrand/cinescope/internal/core"
	"github.com/mlegrand/cinescope/internal/render"
)

// Options configures the browse model.
type Options struct {
	Catalogue core.Catalogue
	Posters   core.PosterResolver
	RailSize  int
	// FixedGenres are the always-shown genre rails; a selectable genre
	// rail is appended after them.
	FixedGenres []string
}

// catalogueLoadedMsg carries the initial page load.
type catalogueLoadedMsg struct {
	hero   render.HeroTarget
	rails  []render.Rail
	genres []string
}

// genreRailMsg carries a re-fetched selectable genre rail. The token
// identifies which selection issued the fetch; stale tokens are dropped.
type genreRailMsg struct {
	token int
	rail  render.Rail
}

// detailMsg carries a fetched detail record for the modal.
type detailMsg struct {
	modal render.ModalTarget
}

// Model is the Bubble Tea model for the catalogue browser.
type Model struct {
	ctx  context.Context
	opts Options

	spinner spinner.Model
	loading bool

	hero   render.HeroTarget
	rails  []render.Rail
	genres []string // raw API genre names for the selectable rail

	railIdx  int
	cardIdx  int
	genreIdx int

	// genreToken increases on every genre change; a rail response
	// carrying an older token is superseded and ignored.
	genreToken int

	modal     render.ModalTarget
	modalOpen bool

	width  int
	height int
}

// New creates a browse model. The context bounds every fetch the model issues.
func New(ctx context.Context, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{
		ctx:     ctx,
		opts:    opts,
		spinner: s,
		loading: true,
	}
}

// Init kicks off the initial catalogue load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCatalogue())
}

// Update handles incoming messages and user input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case catalogueLoadedMsg:
		m.loading = false
		m.hero = msg.hero
		m.rails = msg.rails
		m.genres = msg.genres
		return m, nil

	case genreRailMsg:
		if msg.token != m.genreToken {
			// A newer selection is in flight; this response lost the race.
			return m, nil
		}
		if len(m.rails) > 0 {
			m.rails[len(m.rails)-1] = msg.rail
		}
		return m, nil

	case detailMsg:
		m.modal = msg.modal
		m.modalOpen = true
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey dispatches key events.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" || msg.String() == "q" {
		return m, tea.Quit
	}

	if m.modalOpen {
		switch msg.String() {
		case "esc", "enter", " ":
			m.modalOpen = false
		}
		return m, nil
	}

	if m.loading {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.railIdx > 0 {
			m.railIdx--
			m.clampCard()
		}
	case "down", "j":
		if m.railIdx < len(m.rails)-1 {
			m.railIdx++
			m.clampCard()
		}
	case "left", "h":
		if m.cardIdx > 0 {
			m.cardIdx--
		}
	case "right", "l":
		if m.cardIdx < m.currentRailFilled()-1 {
			m.cardIdx++
		}
	case "tab", "]":
		return m.cycleGenre(1)
	case "shift+tab", "[":
		return m.cycleGenre(-1)
	case "enter":
		return m, m.openSelected()
	case "b":
		if m.hero.DetailsID != 0 {
			return m, m.loadDetail(m.hero.DetailsID)
		}
	}
	return m, nil
}

// cycleGenre moves the genre selection by delta and re-fetches the
// selectable rail. The previous in-flight fetch, if any, is superseded
// by bumping the token.
func (m Model) cycleGenre(delta int) (tea.Model, tea.Cmd) {
	if len(m.genres) == 0 {
		return m, nil
	}
	m.genreIdx = (m.genreIdx + delta + len(m.genres)) % len(m.genres)
	m.genreToken++
	return m, m.loadGenreRail(m.genreToken, m.genres[m.genreIdx])
}

// openSelected fetches detail for the card under the cursor.
func (m Model) openSelected() tea.Cmd {
	if m.railIdx >= len(m.rails) {
		return nil
	}
	rail := m.rails[m.railIdx]
	if m.cardIdx >= rail.Filled {
		return nil
	}
	return m.loadDetail(rail.Slots[m.cardIdx].TitleID)
}

func (m *Model) clampCard() {
	if n := m.currentRailFilled(); m.cardIdx >= n {
		m.cardIdx = max(n-1, 0)
	}
}

func (m Model) currentRailFilled() int {
	if m.railIdx >= len(m.rails) {
		return 0
	}
	return m.rails[m.railIdx].Filled
}
