package entities

import (
	"time"
)

// Supported interface languages.
const (
	LanguageHebrew  = "he"
	LanguageEnglish = "en"
)

// ChatSettings stores chat-specific preferences. Quiz results are never stored here.
type ChatSettings struct {
	ChatID       int64
	LanguageCode string // "he" or "en"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewChatSettings creates settings with the given default language.
func NewChatSettings(chatID int64, defaultLanguage string) *ChatSettings {
	now := time.Now()
	return &ChatSettings{
		ChatID:       chatID,
		LanguageCode: defaultLanguage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
