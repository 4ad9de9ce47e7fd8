package telegram

import (
	"strings"
	"testing"

	"github.com/mlegrand/cinescope/internal/catalogue"
)

func TestEscapeMdV2(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "hello world", want: "hello world"},
		{name: "dots", in: "hello.", want: "hello\\."},
		{name: "parentheses", in: "(1994)", want: "\\(1994\\)"},
		{name: "mixed", in: "Old Boy (2003) - 8.4", want: "Old Boy \\(2003\\) \\- 8\\.4"},
		{name: "all specials", in: "_*[]()~`>#+-=|{}.!", want: "\\_\\*\\[\\]\\(\\)\\~\\`\\>\\#\\+\\-\\=\\|\\{\\}\\.\\!"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeMdV2(tt.in)
			if got != tt.want {
				t.Errorf("EscapeMdV2(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatTitleList(t *testing.T) {
	titles := []catalogue.Title{
		{ID: 1, Title: "The Godfather", Year: 1972, IMDbScore: 9.2},
		{ID: 2, Title: "Old Boy"},
	}

	got := FormatTitleList("", titles)
	if !strings.Contains(got, "*Films les mieux notés*") {
		t.Errorf("missing heading in %q", got)
	}
	if !strings.Contains(got, "1\\. The Godfather \\(1972\\) \\- 9\\.2") {
		t.Errorf("missing first entry in %q", got)
	}
	if !strings.Contains(got, "2\\. Old Boy") {
		t.Errorf("missing second entry in %q", got)
	}
}

func TestFormatTitleListWithGenre(t *testing.T) {
	got := FormatTitleList("Mystery", []catalogue.Title{{ID: 1, Title: "Se7en"}})
	if !strings.Contains(got, "Top Mystère") {
		t.Errorf("expected translated genre heading, got %q", got)
	}
}

func TestFormatGenreList(t *testing.T) {
	got := FormatGenreList([]string{"Comedy", "Action", "Telenovela"})

	// Translated names show the raw API name alongside.
	if !strings.Contains(got, "Comédie \\(Comedy\\)") {
		t.Errorf("missing translated entry in %q", got)
	}
	// Identity mappings are shown once.
	if strings.Contains(got, "Action \\(Action\\)") {
		t.Errorf("identity mapping duplicated in %q", got)
	}
	if !strings.Contains(got, "Telenovela") {
		t.Errorf("unmapped genre missing in %q", got)
	}
}

func TestFormatDetails(t *testing.T) {
	got := FormatDetails(&catalogue.TitleDetails{
		Title:       "Old Boy",
		Year:        2003,
		Rated:       "R",
		Genres:      []string{"Mystery"},
		IMDbScore:   8.4,
		Directors:   []string{"Park Chan-wook"},
		Actors:      []string{"Choi Min-sik"},
		Description: "Revenge.",
	})

	for _, want := range []string{"*Old Boy*", "Mystère", "2003 \\- R", "Park Chan\\-wook", "Avec Choi Min\\-sik"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestFormatDetailsNil(t *testing.T) {
	got := FormatDetails(nil)
	if !strings.Contains(got, "Film indisponible") {
		t.Errorf("expected placeholder, got %q", got)
	}
}

func TestBuildDetailKeyboard(t *testing.T) {
	titles := []catalogue.Title{
		{ID: 10, Title: "a"}, {ID: 20, Title: "b"}, {ID: 30, Title: "c"}, {ID: 40, Title: "d"},
	}
	kb := buildDetailKeyboard(titles)

	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(kb.InlineKeyboard))
	}
	if len(kb.InlineKeyboard[0]) != 3 || len(kb.InlineKeyboard[1]) != 1 {
		t.Errorf("unexpected row sizes: %d, %d", len(kb.InlineKeyboard[0]), len(kb.InlineKeyboard[1]))
	}

	first := kb.InlineKeyboard[0][0]
	if first.Text != "1" || *first.CallbackData != "det:10" {
		t.Errorf("unexpected first button: %+v", first)
	}
}
