package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/video-quiz-bot/internal/repository"
)

func TestSettingsService(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(repository.NewMemorySettingsRepository(), entities.LanguageHebrew)

	s, err := svc.GetOrCreate(ctx, 42)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if s.LanguageCode != entities.LanguageHebrew {
		t.Fatalf("default settings = %+v", s)
	}

	if err := svc.UpdateLanguage(ctx, 42, entities.LanguageEnglish); err != nil {
		t.Fatalf("update: %v", err)
	}
	s, _ = svc.GetOrCreate(ctx, 42)
	if s.LanguageCode != entities.LanguageEnglish {
		t.Fatalf("language = %q", s.LanguageCode)
	}

	if err := svc.UpdateLanguage(ctx, 42, "fr"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("unsupported: err = %v", err)
	}

	if err := svc.Reset(ctx, 42); err != nil {
		t.Fatalf("reset: %v", err)
	}
	s, _ = svc.GetOrCreate(ctx, 42)
	if s.LanguageCode != entities.LanguageHebrew {
		t.Fatalf("after reset = %q", s.LanguageCode)
	}
}

func TestSettingsServiceUpdateCreatesMissing(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(repository.NewMemorySettingsRepository(), entities.LanguageHebrew)

	if err := svc.UpdateLanguage(ctx, 7, entities.LanguageEnglish); err != nil {
		t.Fatalf("update: %v", err)
	}
	s, err := svc.GetOrCreate(ctx, 7)
	if err != nil || s.LanguageCode != entities.LanguageEnglish {
		t.Fatalf("settings = %+v, err = %v", s, err)
	}
}
