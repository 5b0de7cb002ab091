package repository

import (
	"context"
	"sync"
	"time"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
)

// MemorySettingsRepository keeps chat preferences in process memory.
// It is used when no database is configured.
type MemorySettingsRepository struct {
	mu       sync.RWMutex
	settings map[int64]entities.ChatSettings
}

func NewMemorySettingsRepository() *MemorySettingsRepository {
	return &MemorySettingsRepository{settings: make(map[int64]entities.ChatSettings)}
}

func (r *MemorySettingsRepository) Create(_ context.Context, settings *entities.ChatSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.settings[settings.ChatID]; ok {
		return nil
	}
	r.settings[settings.ChatID] = *settings
	return nil
}

func (r *MemorySettingsRepository) GetByChatID(_ context.Context, chatID int64) (*entities.ChatSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.settings[chatID]
	if !ok {
		return nil, ErrSettingsNotFound
	}
	return &s, nil
}

func (r *MemorySettingsRepository) UpdateLanguage(_ context.Context, chatID int64, languageCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.settings[chatID]
	if !ok {
		return ErrSettingsNotFound
	}
	s.LanguageCode = languageCode
	s.UpdatedAt = time.Now()
	r.settings[chatID] = s
	return nil
}

func (r *MemorySettingsRepository) Delete(_ context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.settings, chatID)
	return nil
}
