package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mlegrand/cinescope/internal/catalogue"
	"github.com/mlegrand/cinescope/internal/catalogue/genres"
	"github.com/mlegrand/cinescope/internal/render"
)

const maxButtonsPerRow = 3

// mdV2Replacer escapes special characters for Telegram MarkdownV2.
var mdV2Replacer = strings.NewReplacer(
	`\`, `\\`,
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

// EscapeMdV2 escapes a string for safe use in Telegram MarkdownV2.
func EscapeMdV2(s string) string {
	return mdV2Replacer.Replace(s)
}

// FormatBold returns MarkdownV2 bold text.
func FormatBold(s string) string {
	return "*" + EscapeMdV2(s) + "*"
}

// FormatTitleList formats a ranked film listing as MarkdownV2.
func FormatTitleList(genre string, titles []catalogue.Title) string {
	var b strings.Builder

	heading := "Films les mieux notés"
	if genre != "" {
		heading = "Top " + genres.Translate(genre)
	}
	b.WriteString(FormatBold(heading))
	b.WriteString("\n\n")

	for i, t := range titles {
		line := fmt.Sprintf("%d. %s", i+1, t.Title)
		if t.Year > 0 {
			line += fmt.Sprintf(" (%d)", t.Year)
		}
		if t.IMDbScore > 0 {
			line += fmt.Sprintf(" - %.1f", t.IMDbScore)
		}
		b.WriteString(EscapeMdV2(line))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatGenreList formats the genre catalogue with French display names.
func FormatGenreList(names []string) string {
	var b strings.Builder
	b.WriteString(FormatBold("Genres"))
	b.WriteString("\n\n")
	for _, n := range names {
		fr := genres.Translate(n)
		if fr == n {
			b.WriteString(EscapeMdV2(n))
		} else {
			b.WriteString(EscapeMdV2(fmt.Sprintf("%s (%s)", fr, n)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatDetails formats a full film record as MarkdownV2. The field
// composition is shared with the terminal modal.
func FormatDetails(details *catalogue.TitleDetails) string {
	var m render.ModalTarget
	m.Fill(details)

	var b strings.Builder
	b.WriteString(FormatBold(m.Title))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(EscapeMdV2(label + ": " + value))
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
		b.WriteString(EscapeMdV2(m.Synopsis))
		b.WriteString("\n")
	}
	if m.Actors != "" {
		b.WriteString("\n")
		b.WriteString(EscapeMdV2("Avec " + m.Actors))
	}
	return b.String()
}

// buildDetailKeyboard builds numbered inline buttons carrying "det:<id>"
// callback data, matching the numbering of FormatTitleList.
func buildDetailKeyboard(titles []catalogue.Title) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for i, t := range titles {
		btn := tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%s%d", detailPrefix, t.ID),
		)
		row = append(row, btn)
		if len(row) == maxButtonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
