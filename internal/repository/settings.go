package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
)

var ErrSettingsNotFound = errors.New("settings not found")

const settingsSchema = `
	CREATE TABLE IF NOT EXISTS chat_settings (
		chat_id       BIGINT PRIMARY KEY,
		language_code VARCHAR(8) NOT NULL,
		created_at    TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)
`

// SettingsRepository stores chat preferences in PostgreSQL.
type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Migrate creates the settings table if it does not exist.
func (r *SettingsRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, settingsSchema); err != nil {
		return fmt.Errorf("migrate chat settings: %w", err)
	}
	return nil
}

// Create creates settings for a new chat.
func (r *SettingsRepository) Create(ctx context.Context, settings *entities.ChatSettings) error {
	query := `
        INSERT INTO chat_settings (chat_id, language_code, created_at, updated_at)
        VALUES ($1, $2, NOW(), NOW())
        ON CONFLICT (chat_id) DO NOTHING
    `

	_, err := r.db.Exec(ctx, query, settings.ChatID, settings.LanguageCode)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByChatID retrieves settings by chat ID.
// Returns ErrSettingsNotFound if settings don't exist.
func (r *SettingsRepository) GetByChatID(ctx context.Context, chatID int64) (*entities.ChatSettings, error) {
	query := `
        SELECT chat_id, language_code, created_at, updated_at
        FROM chat_settings
        WHERE chat_id = $1
    `

	var settings entities.ChatSettings
	err := r.db.QueryRow(ctx, query, chatID).Scan(
		&settings.ChatID,
		&settings.LanguageCode,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings by chat id: %w", err)
	}

	return &settings, nil
}

// UpdateLanguage updates only the language_code field.
func (r *SettingsRepository) UpdateLanguage(ctx context.Context, chatID int64, languageCode string) error {
	query := `
        UPDATE chat_settings
        SET language_code = $2, updated_at = NOW()
        WHERE chat_id = $1
    `

	cmdTag, err := r.db.Exec(ctx, query, chatID, languageCode)
	if err != nil {
		return fmt.Errorf("update language: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// Delete deletes settings for a chat.
func (r *SettingsRepository) Delete(ctx context.Context, chatID int64) error {
	query := `DELETE FROM chat_settings WHERE chat_id = $1`

	_, err := r.db.Exec(ctx, query, chatID)
	if err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}

	return nil
}
