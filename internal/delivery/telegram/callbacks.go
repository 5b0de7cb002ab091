package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/video-quiz-bot/internal/report"
	"github.com/aliskhannn/video-quiz-bot/internal/service"
)

var errBadCallback = errors.New("malformed callback data")

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	notice := ""
	defer func() {
		// Remove the user's "clock".
		if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, notice)); err != nil {
			h.logger.Debug("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	lang := h.language(ctx, chatID)
	data := decodeCallback(cb.Data)

	err := h.dispatchCallback(ctx, chatID, messageID, lang, data)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrStaleSession), errors.Is(err, service.ErrNoSession):
		notice = h.translator.T(lang, "staleButton")
		h.logger.Debug("stale callback", zap.Int64("chat_id", chatID), zap.String("data", cb.Data))
	case isPrecondition(err), errors.Is(err, errBadCallback):
		h.logger.Debug("callback ignored",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
	default:
		h.logger.Error("handle callback error",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		notice = h.translator.T(lang, "internalError")
	}
}

func (h *Handler) dispatchCallback(ctx context.Context, chatID int64, messageID int, lang string, data callbackData) error {
	flow := h.flows.Get(chatID)

	var (
		v   service.QuizView
		err error
	)

	switch data.Action {
	case actionNoop:
		return nil

	case actionPick:
		i, ok := data.intParam(0)
		if !ok || i < 0 || i >= len(h.catalog) {
			return errBadCallback
		}
		h.load(ctx, chatID, messageID, lang, flow, h.catalog[i].SourceID)
		return nil

	case actionCatalog:
		v = flow.ResetToQuizSelection()

	case actionConfig:
		mutate, ok := configMutation(data)
		if !ok {
			return errBadCallback
		}
		v, err = flow.Configure(mutate)

	case actionStart:
		v, err = flow.Start()
		if err == nil {
			h.logger.Info("quiz started",
				zap.Int64("chat_id", chatID),
				zap.String("source_id", v.SourceID),
				zap.String("session_id", v.SessionID),
				zap.Int("questions", v.Total),
			)
		}

	case actionAnswer:
		v, err = h.answer(flow, data)

	case actionNext:
		v, err = flow.Advance(data.param(0))

	case actionRetake:
		v, err = flow.RestartSameConfiguration(data.param(0))

	case actionReconfig:
		v = flow.ResetToConfiguration()

	case actionLanguage:
		next := data.param(0)
		if err := h.switchLanguage(ctx, chatID, next); err != nil {
			return err
		}
		lang = next
		v = flow.View()

	case actionReport:
		return h.sendReport(chatID, flow, data.param(0))

	default:
		return fmt.Errorf("%w: unknown action %q", errBadCallback, data.Action)
	}

	if err != nil {
		return err
	}

	h.replace(chatID, messageID, h.renderer(lang).render(v))
	return nil
}

// answer maps the pressed letter to an option of the question it was rendered for.
func (h *Handler) answer(flow *service.QuizFlow, data callbackData) (service.QuizView, error) {
	sessionID := data.param(0)
	questionIndex, okQ := data.intParam(1)
	optionIndex, okO := data.intParam(2)
	if !okQ || !okO {
		return service.QuizView{}, errBadCallback
	}

	current := flow.View()
	if current.Screen != service.ScreenQuestion || current.SessionID != sessionID || current.Index != questionIndex {
		return current, service.ErrStaleSession
	}
	if optionIndex < 0 || optionIndex >= len(current.Question.Options) {
		return current, service.ErrUnknownOption
	}

	return flow.SelectOption(sessionID, current.Question.Options[optionIndex].ID)
}

// configMutation turns "cfg:<field>:<delta>" or "cfg:shuffle" into a config change.
func configMutation(data callbackData) (func(*entities.QuizConfig), bool) {
	field := data.param(0)
	if field == configShuffle {
		return func(c *entities.QuizConfig) { c.SetShuffleQuestions(!c.ShuffleQuestions) }, true
	}

	delta, ok := data.intParam(1)
	if !ok {
		return nil, false
	}

	switch field {
	case configRangeStart:
		return func(c *entities.QuizConfig) { c.SetRangeStart(c.RangeStart + delta) }, true
	case configRangeEnd:
		return func(c *entities.QuizConfig) { c.SetRangeEnd(c.RangeEnd + delta) }, true
	case configCount:
		return func(c *entities.QuizConfig) { c.SetCount(c.Count + delta) }, true
	default:
		return nil, false
	}
}

// load shows the loading screen and fetches the question set in the background.
// The result is rendered into the same message unless a newer selection won.
func (h *Handler) load(ctx context.Context, chatID int64, messageID int, lang string, flow *service.QuizFlow, sourceID string) {
	// The ticket is taken here so that picks are ordered as the user made them.
	ticket, loading := flow.BeginLoad(sourceID)

	r := h.renderer(lang)
	h.replace(chatID, messageID, r.render(loading))
	if ticket.SourceID == "" {
		return
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		loadCtx, cancel := context.WithTimeout(ctx, h.loadTimeout)
		defer cancel()

		start := time.Now()
		v, applied := flow.CompleteLoad(loadCtx, ticket)
		if !applied {
			h.logger.Debug("stale load discarded",
				zap.Int64("chat_id", chatID),
				zap.String("source_id", sourceID),
			)
			return
		}

		if v.Screen == service.ScreenLoadError {
			h.logger.Warn("question set load failed",
				zap.Int64("chat_id", chatID),
				zap.String("source_id", sourceID),
				zap.String("error", v.LoadError),
			)
		} else {
			h.logger.Debug("question set loaded",
				zap.Int64("chat_id", chatID),
				zap.String("source_id", sourceID),
				zap.Int("questions", v.Config.SetSize),
				zap.Duration("took", time.Since(start)),
			)
		}

		h.replace(chatID, messageID, r.render(v))
	}()
}

// sendReport sends the summary of a finished session as a PDF document.
func (h *Handler) sendReport(chatID int64, flow *service.QuizFlow, sessionID string) error {
	v := flow.View()
	if v.SessionID != sessionID {
		return service.ErrStaleSession
	}
	if v.Summary == nil {
		return service.ErrNotFinished
	}

	// Core PDF fonts have no Hebrew glyphs, the report is always in English.
	name := h.renderer("en").quizName(v.SourceID)
	pdf, err := report.SummaryPDF(report.SummaryData{
		QuizName: name,
		Date:     time.Now(),
		Summary:  *v.Summary,
	})
	if err != nil {
		return err
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: "quiz-summary.pdf", Bytes: pdf})
	h.send(doc)
	return nil
}
