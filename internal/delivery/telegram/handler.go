package telegram

import (
	"context"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
)

// Handler turns Telegram updates into quiz flow operations and renders the result.
type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	flows           FlowStorage
	settingsService SettingsService
	translator      Translator
	catalog         []entities.CatalogEntry
	defaultLanguage string
	loadTimeout     time.Duration

	wg sync.WaitGroup // in-flight loads
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	flows FlowStorage,
	settingsService SettingsService,
	translator Translator,
	catalog []entities.CatalogEntry,
	defaultLanguage string,
	loadTimeout time.Duration,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		flows:           flows,
		settingsService: settingsService,
		translator:      translator,
		catalog:         catalog,
		defaultLanguage: defaultLanguage,
		loadTimeout:     loadTimeout,
	}
}

// Commands lists the bot commands shown in the Telegram menu.
func Commands() tgbotapi.SetMyCommandsConfig {
	return tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "quiz", Description: "Choose a quiz"},
		tgbotapi.BotCommand{Command: "range", Description: "Set question range: /range N M"},
		tgbotapi.BotCommand{Command: "count", Description: "Set number of questions: /count K"},
		tgbotapi.BotCommand{Command: "lang", Description: "Switch language"},
		tgbotapi.BotCommand{Command: "reset", Description: "Forget preferences and current quiz"},
		tgbotapi.BotCommand{Command: "help", Description: "Show help"},
	)
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			h.wg.Wait()
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	lang := h.language(ctx, chatID)

	if !update.Message.IsCommand() {
		h.send(newHTMLMessage(chatID, escape(h.translator.T(lang, "unknownCommand"))))
		return
	}

	_ = h.withErrorHandling(h.commandHandler(update.Message, lang))(ctx, chatID)
}

// language returns the chat's interface language, falling back to the
// configured default when preferences are unavailable.
func (h *Handler) language(ctx context.Context, chatID int64) string {
	settings, err := h.settingsService.GetOrCreate(ctx, chatID)
	if err != nil {
		h.logger.Error("failed to get chat settings",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return h.defaultLanguage
	}
	return settings.LanguageCode
}

func (h *Handler) sendError(chatID int64, lang string) {
	h.send(newHTMLMessage(chatID, escape(h.translator.T(lang, "internalError"))))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		// Re-rendering an unchanged screen, e.g. a clamped stepper.
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
