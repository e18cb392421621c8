// Package notify delivers admin notifications about booking inquiries
package notify

import (
	"context"
	"fmt"
	"strings"

	"roomfinder/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// TelegramNotifier posts booking inquiries to an admin Telegram chat
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier authenticates the bot token against the Telegram API
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	log.Info().Str("bot", bot.Self.UserName).Int64("chat_id", chatID).Msg("telegram notifier ready")
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// NotifyBooking sends a summary of the inquiry to the admin chat
func (n *TelegramNotifier) NotifyBooking(ctx context.Context, booking *model.Booking, room *model.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatID, BookingMessage(booking, room))
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// NopNotifier drops every notification. Used when no bot is configured
type NopNotifier struct{}

// NotifyBooking does nothing
func (NopNotifier) NotifyBooking(ctx context.Context, booking *model.Booking, room *model.Room) error {
	return nil
}

// BookingMessage renders the plain-text admin message for an inquiry
func BookingMessage(booking *model.Booking, room *model.Room) string {
	var b strings.Builder
	b.WriteString("🏠 New booking inquiry\n")
	if room != nil {
		fmt.Fprintf(&b, "Room: %s (%s)\n", orDash(model.StringValue(room.Title)), room.ID)
		if room.Rent != nil {
			fmt.Fprintf(&b, "Rent: ₹%.0f\n", *room.Rent)
		}
	}
	fmt.Fprintf(&b, "Name: %s\n", booking.Name)
	fmt.Fprintf(&b, "Phone: %s\n", booking.Phone)
	if booking.Email != nil {
		fmt.Fprintf(&b, "Email: %s\n", *booking.Email)
	}
	if booking.Message != nil {
		fmt.Fprintf(&b, "Message: %s\n", *booking.Message)
	}
	fmt.Fprintf(&b, "Booking ID: %s", booking.ID)
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
