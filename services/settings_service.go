package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"comment_monitor/models"
	"comment_monitor/repository"
)

const maxDailyLimit = 1000

type SettingsService struct {
	store             *repository.Store
	defaultDailyLimit int
}

func NewSettingsService(store *repository.Store, defaultDailyLimit int) *SettingsService {
	return &SettingsService{store: store, defaultDailyLimit: defaultDailyLimit}
}

// Get returns the stored settings, or the defaults when the owner never saved any.
func (s *SettingsService) Get(ctx context.Context, ownerID string) (*models.OwnerSettings, error) {
	st, err := s.store.GetSettings(ctx, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		d := models.DefaultSettings(ownerID, s.defaultDailyLimit)
		return &d, nil
	}
	return st, err
}

// Save validates and stores the owner's settings.
func (s *SettingsService) Save(ctx context.Context, ownerID string, st models.OwnerSettings) (*models.OwnerSettings, error) {
	st.OwnerID = ownerID
	st.Tone = models.Tone(strings.ToLower(strings.TrimSpace(string(st.Tone))))
	st.Language = strings.TrimSpace(st.Language)
	st.Timezone = strings.TrimSpace(st.Timezone)
	st.SystemPrompt = strings.TrimSpace(st.SystemPrompt)

	if err := validateSettings(st); err != nil {
		return nil, err
	}
	if err := s.store.SaveSettings(ctx, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func validateSettings(st models.OwnerSettings) error {
	switch {
	case !st.Tone.Valid():
		return invalid("tone", "must be professional, friendly, casual, formal or enthusiastic")
	case st.Language != models.LanguagePortuguese && st.Language != models.LanguageEnglish:
		return invalid("language", "must be %s or %s", models.LanguagePortuguese, models.LanguageEnglish)
	case st.MaxLength < models.MinCommentLength || st.MaxLength > models.MaxCommentLength:
		return invalid("max_length", "must be between %d and %d", models.MinCommentLength, models.MaxCommentLength)
	case st.Creativity < 0 || st.Creativity > 100:
		return invalid("creativity", "must be between 0 and 100")
	case st.DailyLimit < 1 || st.DailyLimit > maxDailyLimit:
		return invalid("daily_limit", "must be between 1 and %d", maxDailyLimit)
	case st.Notifications && st.TelegramChatID == 0:
		return invalid("telegram_chat_id", "is required when notifications are enabled")
	}
	if st.Timezone != "" {
		if _, err := time.LoadLocation(st.Timezone); err != nil {
			return invalid("timezone", "unknown time zone %q", st.Timezone)
		}
	}
	return nil
}
