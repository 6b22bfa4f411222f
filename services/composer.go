package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"

	"comment_monitor/config"
	"comment_monitor/logger"
	"comment_monitor/models"
	"comment_monitor/utils"
)

type phrasebook struct {
	withTerm map[models.Tone]string // term, first name
	generic  string                 // first name
}

var phrasebooks = map[string]phrasebook{
	models.LanguagePortuguese: {
		withTerm: map[models.Tone]string{
			models.ToneProfessional: "%s: excelente análise, %s. Obrigado por compartilhar essa perspectiva.",
			models.ToneFriendly:     "%s é um tema que eu adoro! Valeu por compartilhar, %s.",
			models.ToneCasual:       "%s? Curti demais esse post, %s!",
			models.ToneFormal:       "%s: agradeço a contribuição, %s. Uma reflexão muito pertinente.",
			models.ToneEnthusiastic: "%s! Que conteúdo incrível, %s! Parabéns!",
		},
		generic: "Excelente reflexão, %s. Obrigado por compartilhar!",
	},
	models.LanguageEnglish: {
		withTerm: map[models.Tone]string{
			models.ToneProfessional: "%s: great analysis, %s. Thanks for sharing this perspective.",
			models.ToneFriendly:     "%s is a topic I love! Thanks for sharing, %s.",
			models.ToneCasual:       "%s? Really enjoyed this one, %s!",
			models.ToneFormal:       "%s: thank you for the contribution, %s. A very relevant reflection.",
			models.ToneEnthusiastic: "%s! What an amazing post, %s! Congrats!",
		},
		generic: "Great insight, %s. Thanks for sharing!",
	},
}

var toneEmoji = map[models.Tone]string{
	models.ToneProfessional: "👏",
	models.ToneFriendly:     "😊",
	models.ToneCasual:       "🙌",
	models.ToneEnthusiastic: "🚀",
}

// TemplateComposer fills a tone and language template. It never fails and
// always opens with the first matched term.
type TemplateComposer struct{}

func (TemplateComposer) Compose(_ context.Context, req CompositionRequest) (string, error) {
	book, ok := phrasebooks[req.Settings.Language]
	if !ok {
		book = phrasebooks[models.LanguagePortuguese]
	}
	name := firstName(req.Profile)

	var text string
	if len(req.MatchedTerms) == 0 {
		text = fmt.Sprintf(book.generic, name)
	} else {
		tmpl, ok := book.withTerm[req.Settings.Tone]
		if !ok {
			tmpl = book.withTerm[models.ToneProfessional]
		}
		text = fmt.Sprintf(tmpl, req.MatchedTerms[0], name)
	}

	if req.Settings.UseEmojis {
		if e := toneEmoji[req.Settings.Tone]; e != "" {
			text += " " + e
		}
	}
	return text, nil
}

func firstName(p models.MonitoredProfile) string {
	if fields := strings.Fields(p.DisplayName); len(fields) > 0 {
		return fields[0]
	}
	return "@" + strings.TrimPrefix(p.Handle, "@")
}

// OpenAIComposer asks a chat completion model for the comment.
// Any OpenAI compatible endpoint works through BaseURL.
type OpenAIComposer struct {
	client    *openai.Client
	model     string
	maxTokens int
	log       *slog.Logger
}

// NewOpenAIComposer returns nil when no api key is configured.
func NewOpenAIComposer(cfg *config.Config) *OpenAIComposer {
	if cfg.OpenAI.APIKey == "" {
		return nil
	}
	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.OpenAI.BaseURL, "/")
	}
	return &OpenAIComposer{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.OpenAI.Model,
		maxTokens: cfg.OpenAI.MaxTokens,
		log:       logger.With("component", "openai_composer"),
	}
}

func (c *OpenAIComposer) Compose(ctx context.Context, req CompositionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: temperature(req.Settings.Creativity),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemPrompt(req.Settings)},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(req)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	text := utils.CleanGeneratedText(resp.Choices[0].Message.Content)
	c.log.Debug("comment composed", "profile_id", req.Profile.ID, "tokens", resp.Usage.TotalTokens)
	return text, nil
}

// temperature maps creativity 0..100 onto 0..1. Zero is sent as the smallest
// positive float because the client drops a zero temperature from the request.
func temperature(creativity int) float32 {
	if creativity <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(creativity) / 100
}
