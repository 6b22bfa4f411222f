package models

import (
	"time"
	_ "time/tzdata" // embedded IANA zones
)

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneCasual       Tone = "casual"
	ToneFormal       Tone = "formal"
	ToneEnthusiastic Tone = "enthusiastic"
)

func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneFriendly, ToneCasual, ToneFormal, ToneEnthusiastic:
		return true
	}
	return false
}

const (
	LanguagePortuguese = "pt-BR"
	LanguageEnglish    = "en-US"
)

const (
	MinCommentLength     = 50
	MaxCommentLength     = 1000
	DefaultCommentLength = 280
)

// OwnerSettings holds the AI and automation preferences of one owner.
type OwnerSettings struct {
	OwnerID        string    `db:"user_id" json:"owner_id"`
	Tone           Tone      `db:"tone" json:"tone"`
	Language       string    `db:"language" json:"language"`
	MaxLength      int       `db:"max_length" json:"max_length"`
	UseEmojis      bool      `db:"use_emojis" json:"use_emojis"`
	Creativity     int       `db:"creativity" json:"creativity"` // 0..100
	SystemPrompt   string    `db:"system_prompt" json:"system_prompt"`
	DailyLimit     int       `db:"daily_limit" json:"daily_limit"`
	Timezone       string    `db:"timezone" json:"timezone"`
	Notifications  bool      `db:"notifications" json:"notifications"`
	TelegramChatID int64     `db:"telegram_chat_id" json:"telegram_chat_id"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultSettings mirrors the dashboard's initial values.
func DefaultSettings(ownerID string, dailyLimit int) OwnerSettings {
	return OwnerSettings{
		OwnerID:    ownerID,
		Tone:       ToneProfessional,
		Language:   LanguagePortuguese,
		MaxLength:  DefaultCommentLength,
		UseEmojis:  true,
		Creativity: 70,
		DailyLimit: dailyLimit,
		Timezone:   "America/Sao_Paulo",
	}
}

// Location resolves Timezone, falling back to UTC.
func (s OwnerSettings) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
