package telegram

import (
	"context"

	"go.uber.org/zap"
)

// switchLanguage stores the interface language of a chat.
func (h *Handler) switchLanguage(ctx context.Context, chatID int64, lang string) error {
	if err := h.settingsService.UpdateLanguage(ctx, chatID, lang); err != nil {
		return err
	}

	h.logger.Debug("language changed",
		zap.Int64("chat_id", chatID),
		zap.String("language", lang),
	)
	return nil
}
