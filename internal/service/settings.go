package service

import (
	"context"
	"errors"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/video-quiz-bot/internal/repository"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

type SettingsRepository interface {
	Create(ctx context.Context, settings *entities.ChatSettings) error
	GetByChatID(ctx context.Context, chatID int64) (*entities.ChatSettings, error)
	UpdateLanguage(ctx context.Context, chatID int64, languageCode string) error
	Delete(ctx context.Context, chatID int64) error
}

type SettingsService struct {
	repository      SettingsRepository
	defaultLanguage string
}

func NewSettingsService(repository SettingsRepository, defaultLanguage string) *SettingsService {
	return &SettingsService{
		repository:      repository,
		defaultLanguage: defaultLanguage,
	}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, chatID int64) (*entities.ChatSettings, error) {
	settings, err := s.repository.GetByChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			// Create default settings.
			if err := s.repository.Create(ctx, entities.NewChatSettings(chatID, s.defaultLanguage)); err != nil {
				return nil, err
			}
			// Retrieve newly created settings.
			return s.repository.GetByChatID(ctx, chatID)
		}
		return nil, err
	}

	return settings, nil
}

func (s *SettingsService) UpdateLanguage(ctx context.Context, chatID int64, languageCode string) error {
	if languageCode != entities.LanguageHebrew && languageCode != entities.LanguageEnglish {
		return ErrUnsupportedLanguage
	}

	if _, err := s.GetOrCreate(ctx, chatID); err != nil {
		return err
	}
	return s.repository.UpdateLanguage(ctx, chatID, languageCode)
}

// Reset forgets the chat preferences; the next access recreates defaults.
func (s *SettingsService) Reset(ctx context.Context, chatID int64) error {
	return s.repository.Delete(ctx, chatID)
}
