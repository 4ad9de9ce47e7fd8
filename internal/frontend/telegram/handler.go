package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	unauthorizedMsg = "Sorry, you are not authorized to use this bot."
	welcomeMsg      = "Welcome to Cinescope! Commands:\n" +
		"/top - best-rated films\n" +
		"/genres - list genres\n" +
		"/genre <name> - pick a genre for /top\n" +
		"/movie <id> - film details"
	noFilmsMsg      = "No films found. The catalogue may be unreachable."
	unknownMovieMsg = "Could not load that film. It may not exist or the catalogue is unreachable."

	detailPrefix = "det:" // callback data prefix for detail buttons
)

// handleMessage processes an incoming text message.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	b.logger.Debug("received message", slog.Int64("user_id", userID))

	if !b.sessions.isAllowed(userID) {
		b.sendText(chatID, unauthorizedMsg)
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	command, arg, _ := strings.Cut(text, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "/start", "/help":
		b.sendText(chatID, welcomeMsg)
	case "/top":
		if arg != "" {
			b.sessions.setGenre(userID, arg)
		}
		b.sendTop(ctx, chatID, b.sessions.genre(userID))
	case "/genres":
		b.sendGenres(ctx, chatID)
	case "/genre":
		if arg == "" {
			b.sendText(chatID, "Usage: /genre <name> (see /genres)")
			return
		}
		b.sessions.setGenre(userID, arg)
		b.sendTop(ctx, chatID, arg)
	case "/movie":
		id, err := strconv.Atoi(arg)
		if err != nil {
			b.sendText(chatID, "Usage: /movie <numeric id>")
			return
		}
		b.sendDetails(ctx, chatID, id)
	default:
		b.sendText(chatID, welcomeMsg)
	}
}

// handleCallback processes inline keyboard callback queries.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID

	b.logger.Debug("received callback",
		slog.Int64("user_id", userID),
		slog.String("data", cq.Data),
	)

	// Acknowledge the callback immediately.
	callback := tgbotapi.NewCallback(cq.ID, "")
	b.send.Send(callback) //nolint:errcheck // best-effort ack

	if !b.sessions.isAllowed(userID) {
		return
	}

	id, ok := parseDetailCallback(cq.Data)
	if !ok {
		return
	}
	b.sendDetails(ctx, chatID, id)
}

// sendTop sends the ranked film listing, scoped to genre when set, with
// one detail button per film.
func (b *Bot) sendTop(ctx context.Context, chatID int64, genre string) {
	titles := b.catalogue.TopTitles(ctx, genre, b.railSize)
	if len(titles) == 0 {
		b.sendText(chatID, noFilmsMsg)
		return
	}

	keyboard := buildDetailKeyboard(titles)
	b.sendMarkdown(chatID, FormatTitleList(genre, titles), &keyboard)
}

// sendGenres sends every known genre with its French display name.
func (b *Bot) sendGenres(ctx context.Context, chatID int64) {
	names := b.catalogue.AllGenres(ctx)
	if len(names) == 0 {
		b.sendText(chatID, noFilmsMsg)
		return
	}
	b.sendMarkdown(chatID, FormatGenreList(names), nil)
}

// sendDetails sends the full film record.
func (b *Bot) sendDetails(ctx context.Context, chatID int64, id int) {
	details, err := b.catalogue.GetTitle(ctx, id)
	if err != nil {
		b.sendText(chatID, unknownMovieMsg)
		return
	}
	b.sendMarkdown(chatID, FormatDetails(details), nil)
}

// parseDetailCallback extracts the title ID from "det:<id>" callback data.
func parseDetailCallback(data string) (int, bool) {
	if !strings.HasPrefix(data, detailPrefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(data, detailPrefix))
	if err != nil {
		return 0, false
	}
	return id, true
}
