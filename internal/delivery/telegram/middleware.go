package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/video-quiz-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			if isPrecondition(err) {
				h.logger.Debug("operation not allowed in current state",
					zap.Int64("chat_id", chatID),
					zap.Error(err),
				)
				return nil
			}

			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, h.language(ctx, chatID))
			return nil
		}
		return nil
	}
}

// preconditionErrors are raised when a button or command does not fit the current state.
var preconditionErrors = []error{
	service.ErrNotConfigurable,
	service.ErrQuizNotReady,
	service.ErrStaleSession,
	service.ErrNoSession,
	service.ErrNotInProgress,
	service.ErrAlreadyRevealed,
	service.ErrNotRevealed,
	service.ErrUnknownOption,
	service.ErrNotFinished,
	service.ErrEmptyQuiz,
	service.ErrUnsupportedLanguage,
}

func isPrecondition(err error) bool {
	for _, target := range preconditionErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
