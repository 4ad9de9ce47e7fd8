package telegram

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mlegrand/cinescope/internal/catalogue"
)

// sendRecorder captures outbound messages instead of hitting the Telegram API.
type sendRecorder struct {
	sent []tgbotapi.Chattable
}

func (r *sendRecorder) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	r.sent = append(r.sent, c)
	return tgbotapi.Message{}, nil
}

// texts returns the body of every recorded message, skipping callback acks.
func (r *sendRecorder) texts() []string {
	var out []string
	for _, c := range r.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg.Text)
		}
	}
	return out
}

type fakeCatalogue struct {
	top       []catalogue.Title
	genres    []string
	details   map[int]*catalogue.TitleDetails
	lastGenre string
	lastLimit int
	topCalls  int
}

func (f *fakeCatalogue) TopTitles(_ context.Context, genre string, limit int) []catalogue.Title {
	f.topCalls++
	f.lastGenre = genre
	f.lastLimit = limit
	return f.top
}

func (f *fakeCatalogue) AllGenres(_ context.Context) []string {
	return f.genres
}

func (f *fakeCatalogue) GetTitle(_ context.Context, id int) (*catalogue.TitleDetails, error) {
	d, ok := f.details[id]
	if !ok {
		return nil, errors.New("title not found")
	}
	return d, nil
}

func newTestBot(cat *fakeCatalogue, allowedUserIDs []int64) (*Bot, *sendRecorder) {
	rec := &sendRecorder{}
	return &Bot{
		send:      rec,
		catalogue: cat,
		sessions:  newSessionManager(allowedUserIDs),
		railSize:  6,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, rec
}

func textMessage(userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: userID},
		Text: text,
	}
}

func TestHandleMessageDispatch(t *testing.T) {
	cat := &fakeCatalogue{
		top:    []catalogue.Title{{ID: 1, Title: "Se7en", Year: 1995, IMDbScore: 8.6}},
		genres: []string{"Comedy", "Action"},
		details: map[int]*catalogue.TitleDetails{
			42: {Title: "Old Boy", Year: 2003},
		},
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "start shows help", text: "/start", want: "/top"},
		{name: "help shows help", text: "/help", want: "/genres"},
		{name: "unknown command shows help", text: "/frobnicate", want: "/movie"},
		{name: "top sends ranked list", text: "/top", want: "Se7en"},
		{name: "genres sends genre list", text: "/genres", want: "Comédie"},
		{name: "genre without arg shows usage", text: "/genre", want: "Usage: /genre"},
		{name: "movie with bad id shows usage", text: "/movie abc", want: "Usage: /movie"},
		{name: "movie without arg shows usage", text: "/movie", want: "Usage: /movie"},
		{name: "movie sends details", text: "/movie 42", want: "Old Boy"},
		{name: "movie fetch failure degrades", text: "/movie 99", want: unknownMovieMsg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, rec := newTestBot(cat, nil)
			b.handleMessage(context.Background(), textMessage(1, tt.text))

			texts := rec.texts()
			if len(texts) != 1 {
				t.Fatalf("expected 1 message, got %d", len(texts))
			}
			if !strings.Contains(texts[0], tt.want) {
				t.Errorf("expected %q in reply, got %q", tt.want, texts[0])
			}
		})
	}
}

func TestHandleMessageTopWithGenre(t *testing.T) {
	cat := &fakeCatalogue{top: []catalogue.Title{{ID: 1, Title: "Se7en"}}}
	b, _ := newTestBot(cat, nil)

	b.handleMessage(context.Background(), textMessage(1, "/top Mystery"))

	if cat.lastGenre != "Mystery" {
		t.Errorf("expected genre Mystery forwarded, got %q", cat.lastGenre)
	}
	if cat.lastLimit != 6 {
		t.Errorf("expected rail-sized limit 6, got %d", cat.lastLimit)
	}
	if b.sessions.genre(1) != "Mystery" {
		t.Errorf("expected genre persisted in session, got %q", b.sessions.genre(1))
	}

	// A bare /top reuses the stored selection.
	b.handleMessage(context.Background(), textMessage(1, "/top"))
	if cat.lastGenre != "Mystery" {
		t.Errorf("expected stored genre reused, got %q", cat.lastGenre)
	}
}

func TestHandleMessageGenreSticksForUser(t *testing.T) {
	cat := &fakeCatalogue{top: []catalogue.Title{{ID: 1, Title: "Se7en"}}}
	b, _ := newTestBot(cat, nil)

	b.handleMessage(context.Background(), textMessage(7, "/genre Comedy"))
	if cat.lastGenre != "Comedy" {
		t.Errorf("expected immediate listing for Comedy, got %q", cat.lastGenre)
	}

	b.handleMessage(context.Background(), textMessage(8, "/top"))
	if cat.lastGenre != "" {
		t.Errorf("another user's selection leaked: %q", cat.lastGenre)
	}
}

func TestHandleMessageUnauthorized(t *testing.T) {
	cat := &fakeCatalogue{top: []catalogue.Title{{ID: 1, Title: "Se7en"}}}
	b, rec := newTestBot(cat, []int64{100})

	b.handleMessage(context.Background(), textMessage(200, "/top"))

	texts := rec.texts()
	if len(texts) != 1 || texts[0] != unauthorizedMsg {
		t.Fatalf("expected unauthorized reply, got %v", texts)
	}
	if cat.topCalls != 0 {
		t.Error("catalogue must not be queried for unauthorized users")
	}
}

func TestHandleMessageEmptyCatalogue(t *testing.T) {
	b, rec := newTestBot(&fakeCatalogue{}, nil)

	b.handleMessage(context.Background(), textMessage(1, "/top"))

	texts := rec.texts()
	if len(texts) != 1 || texts[0] != noFilmsMsg {
		t.Fatalf("expected empty-catalogue reply, got %v", texts)
	}
}

func TestHandleMessageTopAttachesDetailKeyboard(t *testing.T) {
	cat := &fakeCatalogue{top: []catalogue.Title{{ID: 10, Title: "a"}, {ID: 20, Title: "b"}}}
	b, rec := newTestBot(cat, nil)

	b.handleMessage(context.Background(), textMessage(1, "/top"))

	if len(rec.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(rec.sent))
	}
	msg, ok := rec.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("expected MessageConfig, got %T", rec.sent[0])
	}
	kb, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("expected inline keyboard, got %T", msg.ReplyMarkup)
	}
	if *kb.InlineKeyboard[0][0].CallbackData != "det:10" {
		t.Errorf("unexpected callback data %q", *kb.InlineKeyboard[0][0].CallbackData)
	}
}

func TestHandleCallback(t *testing.T) {
	cat := &fakeCatalogue{
		details: map[int]*catalogue.TitleDetails{42: {Title: "Old Boy"}},
	}

	query := func(userID int64, data string) *tgbotapi.CallbackQuery {
		return &tgbotapi.CallbackQuery{
			ID:      "cb",
			From:    &tgbotapi.User{ID: userID},
			Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: userID}},
			Data:    data,
		}
	}

	t.Run("detail button sends details", func(t *testing.T) {
		b, rec := newTestBot(cat, nil)
		b.handleCallback(context.Background(), query(1, "det:42"))

		if len(rec.sent) != 2 {
			t.Fatalf("expected ack + details, got %d sends", len(rec.sent))
		}
		if _, ok := rec.sent[0].(tgbotapi.CallbackConfig); !ok {
			t.Errorf("expected callback ack first, got %T", rec.sent[0])
		}
		texts := rec.texts()
		if len(texts) != 1 || !strings.Contains(texts[0], "Old Boy") {
			t.Errorf("expected details message, got %v", texts)
		}
	})

	t.Run("unknown data acked and ignored", func(t *testing.T) {
		b, rec := newTestBot(cat, nil)
		b.handleCallback(context.Background(), query(1, "sel:42"))

		if len(rec.sent) != 1 {
			t.Fatalf("expected ack only, got %d sends", len(rec.sent))
		}
	})

	t.Run("unauthorized user acked and ignored", func(t *testing.T) {
		b, rec := newTestBot(cat, []int64{100})
		b.handleCallback(context.Background(), query(200, "det:42"))

		if len(rec.sent) != 1 {
			t.Fatalf("expected ack only, got %d sends", len(rec.sent))
		}
	})
}

func TestParseDetailCallback(t *testing.T) {
	tests := []struct {
		data   string
		wantID int
		wantOK bool
	}{
		{data: "det:42", wantID: 42, wantOK: true},
		{data: "det:0", wantID: 0, wantOK: true},
		{data: "sel:42", wantOK: false},
		{data: "det:abc", wantOK: false},
		{data: "det:", wantOK: false},
		{data: "", wantOK: false},
	}
	for _, tt := range tests {
		id, ok := parseDetailCallback(tt.data)
		if ok != tt.wantOK || id != tt.wantID {
			t.Errorf("parseDetailCallback(%q) = %d, %v; want %d, %v",
				tt.data, id, ok, tt.wantID, tt.wantOK)
		}
	}
}
