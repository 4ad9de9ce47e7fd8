package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const cardWidth = 22

// Lipgloss styles for the catalogue views.
var (
	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5")).
			MarginBottom(1)

	styleHeroBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8")).
			Width(cardWidth).
			Padding(0, 1)

	styleCardSelected = styleCard.
				BorderForeground(lipgloss.Color("12")).
				Bold(true)

	styleModalBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("5")).
			Padding(1, 2)

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// HeroView renders the "best film" panel.
func HeroView(h HeroTarget, width int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(h.Title))
	b.WriteString("\n")
	if h.ImageSrc != "" {
		b.WriteString(styleDim.Render(h.ImageSrc))
		b.WriteString("\n")
	}
	if h.Synopsis != "" {
		b.WriteString("\n")
		b.WriteString(h.Synopsis)
	}
	box := styleHeroBox
	if width > 0 {
		box = box.Width(width - 2)
	}
	return box.Render(b.String())
}

// RailView renders a film rail, highlighting the card at cursor when
// cursor is non-negative. Only filled slots produce cards.
func RailView(r Rail, cursor int) string {
	cards := make([]string, 0, r.Filled)
	for i := 0; i < r.Filled; i++ {
		slot := r.Slots[i]
		body := truncate(slot.Title, cardWidth-2) + "\n" + styleDim.Render(truncate(slot.ImageSrc, cardWidth-2))
		if i == cursor {
			cards = append(cards, styleCardSelected.Render(body))
		} else {
			cards = append(cards, styleCard.Render(body))
		}
	}

	heading := styleHeading.Render(r.Heading)
	if len(cards) == 0 {
		return heading + "\n" + styleDim.Render("Aucun film")
	}
	return heading + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// ModalView renders the film detail overlay.
func ModalView(m ModalTarget, width int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(m.Title))
	b.WriteString("\n")
	if m.ImageSrc != "" {
		b.WriteString(styleDim.Render(m.ImageSrc))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styleLabel.Render(label + ": "))
		b.WriteString(value)
		b.WriteString("\n")
	}

	writeField("Genres", m.Genres)
	writeField("Sortie", m.YearRated)
	writeField("Score IMDb", m.Score)
	writeField("Durée", m.Duration)
	writeField("Pays", m.Countries)
	writeField("Recettes", m.GrossIncome)
	writeField("Réalisation", m.Directors)

	if m.Synopsis != "" {
		b.WriteString("\n")
		b.WriteString(m.Synopsis)
		b.WriteString("\n")
	}
	if m.Actors != "" {
		b.WriteString("\n")
		b.WriteString(styleDim.Render("Avec " + m.Actors))
	}

	box := styleModalBox
	if width > 0 {
		box = box.Width(width - 2)
	}
	return box.Render(b.String())
}

// Formatting helpers shared by the modal and one-shot CLI views.

func formatYearRated(year int, rated string) string {
	switch {
	case year == 0:
		return rated
	case rated == "":
		return fmt.Sprintf("%d", year)
	default:
		return fmt.Sprintf("%d - %s", year, rated)
	}
}

func formatScore(score float64) string {
	if score == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f/10", score)
}

func formatDuration(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}

func formatGross(income int64) string {
	if income <= 0 {
		return ""
	}
	switch {
	case income >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", float64(income)/1_000_000_000)
	case income >= 1_000_000:
		return fmt.Sprintf("$%.1fM", float64(income)/1_000_000)
	default:
		return fmt.Sprintf("$%d", income)
	}
}

func truncate(s string, max int) string {
	if max <= 0 || len([]rune(s)) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
