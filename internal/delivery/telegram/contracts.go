package telegram

import (
	"context"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/video-quiz-bot/internal/service"
)

type SettingsService interface {
	GetOrCreate(ctx context.Context, chatID int64) (*entities.ChatSettings, error)
	UpdateLanguage(ctx context.Context, chatID int64, languageCode string) error
	Reset(ctx context.Context, chatID int64) error
}

// FlowStorage hands out the quiz flow of a chat.
type FlowStorage interface {
	Get(chatID int64) *service.QuizFlow
	Delete(chatID int64)
}

type Translator interface {
	T(lang, key string) string
	Supports(lang string) bool
}
