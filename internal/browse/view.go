package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mlegrand/cinescope/internal/catalogue/genres"
	"github.com/mlegrand/cinescope/internal/render"
)

var (
	styleAppTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5"))

	styleHelp = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	styleGenrePicker = lipgloss.NewStyle().
				Foreground(lipgloss.Color("14")).
				Bold(true)
)

// View renders the browse page, or the detail overlay when it is open.
func (m Model) View() string {
	if m.loading {
		return m.spinner.View() + styleHelp.Render(" Chargement du catalogue...") + "\n"
	}

	if m.modalOpen {
		return render.ModalView(m.modal, m.width) + "\n" +
			styleHelp.Render("esc: fermer  q: quitter") + "\n"
	}

	var sections []string
	sections = append(sections, styleAppTitle.Render("Cinescope"))
	sections = append(sections, render.HeroView(m.hero, m.width))

	for i, rail := range m.rails {
		cursor := -1
		if i == m.railIdx {
			cursor = m.cardIdx
		}
		if i == len(m.rails)-1 {
			sections = append(sections, m.genrePickerLine())
		}
		sections = append(sections, render.RailView(rail, cursor))
	}

	sections = append(sections, styleHelp.Render(
		"←→: film  ↑↓: rail  tab: genre  entrée: détails  b: meilleur film  q: quitter",
	))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// genrePickerLine shows the selectable genre with cycling arrows.
func (m Model) genrePickerLine() string {
	if len(m.genres) == 0 {
		return styleHelp.Render("Aucun genre disponible")
	}
	current := genres.Translate(m.genres[m.genreIdx])
	var b strings.Builder
	b.WriteString(styleHelp.Render("Genre: "))
	b.WriteString(styleGenrePicker.Render("‹ " + current + " ›"))
	return b.String()
}
