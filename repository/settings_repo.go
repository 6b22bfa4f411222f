package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"comment_monitor/models"
	"comment_monitor/utils"
)

var settingsColumns = []string{
	"user_id", "tone", "language", "max_length", "use_emojis", "creativity",
	"system_prompt", "daily_limit", "timezone", "notifications", "telegram_chat_id", "updated_at",
}

// GetSettings loads the owner's settings. ErrNotFound means defaults apply.
func (s *Store) GetSettings(ctx context.Context, ownerID string) (*models.OwnerSettings, error) {
	row, err := s.queryRow(ctx, s.db, s.sb.Select(settingsColumns...).From("owner_settings").
		Where(sq.Eq{"user_id": ownerID}))
	if err != nil {
		return nil, err
	}

	var st models.OwnerSettings
	err = row.Scan(&st.OwnerID, &st.Tone, &st.Language, &st.MaxLength, &st.UseEmojis, &st.Creativity,
		&st.SystemPrompt, &st.DailyLimit, &st.Timezone, &st.Notifications, &st.TelegramChatID, &st.UpdatedAt)
	if utils.IsSQLNoRowsError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &st, nil
}

// SaveSettings updates the owner's row if one exists, otherwise inserts it.
func (s *Store) SaveSettings(ctx context.Context, st *models.OwnerSettings) error {
	st.UpdatedAt = s.now()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		n, err := s.count(ctx, tx, s.sb.Select("COUNT(1)").From("owner_settings").
			Where(sq.Eq{"user_id": st.OwnerID}))
		if err != nil {
			return fmt.Errorf("check settings: %w", err)
		}

		if n > 0 {
			_, err = s.exec(ctx, tx, s.sb.Update("owner_settings").SetMap(map[string]any{
				"tone":             st.Tone,
				"language":         st.Language,
				"max_length":       st.MaxLength,
				"use_emojis":       st.UseEmojis,
				"creativity":       st.Creativity,
				"system_prompt":    st.SystemPrompt,
				"daily_limit":      st.DailyLimit,
				"timezone":         st.Timezone,
				"notifications":    st.Notifications,
				"telegram_chat_id": st.TelegramChatID,
				"updated_at":       st.UpdatedAt,
			}).Where(sq.Eq{"user_id": st.OwnerID}))
			if err != nil {
				return fmt.Errorf("update settings: %w", err)
			}
			return nil
		}

		_, err = s.exec(ctx, tx, s.sb.Insert("owner_settings").
			Columns(settingsColumns...).
			Values(st.OwnerID, st.Tone, st.Language, st.MaxLength, st.UseEmojis, st.Creativity,
				st.SystemPrompt, st.DailyLimit, st.Timezone, st.Notifications, st.TelegramChatID, st.UpdatedAt))
		if err != nil {
			return fmt.Errorf("insert settings: %w", err)
		}
		return nil
	})
}
