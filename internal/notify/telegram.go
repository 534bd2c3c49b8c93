package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"civigo/backend/internal/models"
)

// TelegramNotifier posts high-severity reports to a municipal Telegram chat
// so field teams hear about dangerous problems without polling the app.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier authorizes the bot with the given token.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize telegram bot: %w", err)
	}
	log.Printf("Telegram notifier authorized as @%s", bot.Self.UserName)
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// ComplaintCreated sends an alert for high-severity complaints and silently
// skips the rest.
func (n *TelegramNotifier) ComplaintCreated(c *models.Complaint) error {
	if c.Severity != models.SeverityHigh {
		return nil
	}
	msg := tgbotapi.NewMessage(n.chatID, FormatAlert(c))
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram alert: %w", err)
	}
	return nil
}

// FormatAlert renders the alert text for a complaint.
func FormatAlert(c *models.Complaint) string {
	text := fmt.Sprintf("🚨 %s\n%s\n📍 %s\nreportado por %s", c.Type, c.Description, c.Location, c.UserName)
	if c.Coordinates != nil {
		text += fmt.Sprintf(" (%.4f, %.4f)", c.Coordinates.Lat, c.Coordinates.Lng)
	}
	return text
}
