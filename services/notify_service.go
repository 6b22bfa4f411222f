package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"comment_monitor/logger"
	"comment_monitor/models"
)

// TelegramNotifier sends run summaries through the Telegram Bot API.
type TelegramNotifier struct {
	bot *tgbotapi.BotAPI
	log *slog.Logger
}

// NewTelegramNotifier authenticates the bot. apiEndpoint may be empty for
// the public API; it uses the "https://host/bot%s/%s" form otherwise.
func NewTelegramNotifier(token, apiEndpoint string, client *http.Client) (*TelegramNotifier, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is empty")
	}
	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}
	if client == nil {
		client = &http.Client{}
	}
	bot, err := tgbotapi.NewBotAPIWithClient(token, apiEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	log := logger.With("component", "telegram")
	log.Info("telegram notifier ready", "bot", bot.Self.UserName)
	return &TelegramNotifier{bot: bot, log: log}, nil
}

func (n *TelegramNotifier) NotifyRun(ctx context.Context, chatID int64, summary *models.MonitorSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, FormatRunMessage(summary))
	msg.DisableWebPagePreview = true
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	n.log.Debug("run notification sent", "chat_id", chatID, "drafts", summary.DraftsCreated)
	return nil
}

// FormatRunMessage renders a summary as a short plain-text message.
func FormatRunMessage(summary *models.MonitorSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Monitoring run finished: %d new comment drafts from %d profiles.\n",
		summary.DraftsCreated, summary.MonitoredProfiles)
	for _, a := range summary.ActivitySummary {
		if a.DraftsCreated == 0 {
			continue
		}
		fmt.Fprintf(&b, "- %s (%s): %d drafts", a.ProfileName, a.Platform, a.DraftsCreated)
		if len(a.KeywordMatches) > 0 {
			fmt.Fprintf(&b, ", keywords: %s", strings.Join(a.KeywordMatches, ", "))
		}
		b.WriteString("\n")
	}
	if len(summary.Errors) > 0 {
		fmt.Fprintf(&b, "%d profiles reported errors.", len(summary.Errors))
	}
	return strings.TrimSpace(b.String())
}
