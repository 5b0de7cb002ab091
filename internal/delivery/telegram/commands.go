package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/video-quiz-bot/internal/i18n"
	"github.com/aliskhannn/video-quiz-bot/internal/service"
)

// commandHandler dispatches a bot command.
func (h *Handler) commandHandler(m *tgbotapi.Message, lang string) HandlerFunc {
	args := m.CommandArguments()

	switch m.Command() {
	case "start":
		return h.handleStart(lang)
	case "quiz":
		return h.handleQuiz(lang)
	case "range":
		return h.handleRange(args, lang)
	case "count":
		return h.handleCount(args, lang)
	case "lang":
		return h.handleLanguage(args, lang)
	case "reset":
		return h.handleReset()
	case "help":
		return h.reply(lang, "help")
	default:
		return h.reply(lang, "unknownCommand")
	}
}

// reply sends a single translated string.
func (h *Handler) reply(lang, key string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.send(newHTMLMessage(chatID, direction(i18n.IsRTL(lang))+escape(h.translator.T(lang, key))))
		return nil
	}
}

// handleStart opens the quiz catalog, discarding whatever the chat was doing.
func (h *Handler) handleStart(lang string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		v := h.flows.Get(chatID).ResetToQuizSelection()
		h.show(chatID, h.renderer(lang).render(v))
		return nil
	}
}

// handleQuiz re-sends the current screen so the chat can resume where it left off.
func (h *Handler) handleQuiz(lang string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		v := h.flows.Get(chatID).View()
		h.show(chatID, h.renderer(lang).render(v))
		return nil
	}
}

// handleRange sets the question range: /range N M.
func (h *Handler) handleRange(argsStr, lang string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		args := strings.Fields(argsStr)
		if len(args) != 2 {
			return h.reply(lang, "invalidRange")(ctx, chatID)
		}

		from, errFrom := strconv.Atoi(args[0])
		to, errTo := strconv.Atoi(args[1])
		if errFrom != nil || errTo != nil || from < 1 || from > to {
			return h.reply(lang, "invalidRange")(ctx, chatID)
		}

		return h.configure(ctx, chatID, lang, func(c *entities.QuizConfig) {
			c.SetRangeStart(from)
			c.SetRangeEnd(to)
		})
	}
}

// handleCount sets the number of questions: /count K.
func (h *Handler) handleCount(argsStr, lang string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		n, err := strconv.Atoi(strings.TrimSpace(argsStr))
		if err != nil || n < 1 {
			return h.reply(lang, "invalidCount")(ctx, chatID)
		}

		return h.configure(ctx, chatID, lang, func(c *entities.QuizConfig) {
			c.SetCount(n)
		})
	}
}

func (h *Handler) configure(ctx context.Context, chatID int64, lang string, mutate func(*entities.QuizConfig)) error {
	v, err := h.flows.Get(chatID).Configure(mutate)
	if errors.Is(err, service.ErrNotConfigurable) {
		return h.reply(lang, "notConfiguring")(ctx, chatID)
	}
	if err != nil {
		return err
	}

	h.show(chatID, h.renderer(lang).render(v))
	return nil
}

// handleLanguage switches to the given language, or toggles when none is given.
func (h *Handler) handleLanguage(argsStr, lang string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		next := strings.ToLower(strings.TrimSpace(argsStr))
		if next == "" {
			next = otherLanguage(lang)
		}

		if err := h.switchLanguage(ctx, chatID, next); err != nil {
			if errors.Is(err, service.ErrUnsupportedLanguage) {
				return h.reply(lang, "unknownCommand")(ctx, chatID)
			}
			return err
		}

		if err := h.reply(next, "languageChanged")(ctx, chatID); err != nil {
			return err
		}
		h.show(chatID, h.renderer(next).render(h.flows.Get(chatID).View()))
		return nil
	}
}

// handleReset forgets the chat's preferences and its quiz flow.
func (h *Handler) handleReset() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.flows.Delete(chatID)
		if err := h.settingsService.Reset(ctx, chatID); err != nil {
			return err
		}

		h.logger.Info("chat reset", zap.Int64("chat_id", chatID))
		return h.reply(h.language(ctx, chatID), "preferencesReset")(ctx, chatID)
	}
}

// show sends a rendered screen as new messages.
func (h *Handler) show(chatID int64, s screen) {
	for i, page := range s.pages {
		msg := newHTMLMessage(chatID, page)
		if i == len(s.pages)-1 && s.keyboard != nil {
			msg.ReplyMarkup = *s.keyboard
		}
		h.send(msg)
	}
}

// replace edits messageID in place with the first page; further pages follow as new messages.
func (h *Handler) replace(chatID int64, messageID int, s screen) {
	if len(s.pages) == 0 {
		return
	}

	edit := newHTMLEdit(chatID, messageID, s.pages[0])
	if len(s.pages) == 1 {
		edit.ReplyMarkup = s.keyboard
		h.send(edit)
		return
	}

	h.send(edit)
	h.show(chatID, screen{pages: s.pages[1:], keyboard: s.keyboard})
}
