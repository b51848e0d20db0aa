package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"globalmart/models"
)

type SettingsRepository struct{}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Get returns the raw JSON value for key, or nil when the key is absent.
func (r *SettingsRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var value []byte
	err := models.DB.QueryRow(ctx,
		`SELECT value FROM website_settings WHERE key = $1 LIMIT 1`, key,
	).Scan(&value)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(value), nil
}

// GetString unwraps a JSON string value, returning fallback when the key
// is absent or holds something other than a string.
func (r *SettingsRepository) GetString(ctx context.Context, key, fallback string) (string, error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return fallback, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return fallback, nil
	}
	return s, nil
}

// Set upserts the value for key, bumping updated_at on overwrite.
func (r *SettingsRepository) Set(ctx context.Context, key string, value json.RawMessage) error {
	_, err := models.DB.Exec(ctx, `
		INSERT INTO website_settings (key, value)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()`,
		key, string(value),
	)
	return err
}

// SetString stores a plain string value as JSON.
func (r *SettingsRepository) SetString(ctx context.Context, key, value string) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, encoded)
}
