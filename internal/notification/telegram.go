package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/khs61254/app-caravan/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, guest *domain.User, caravan *domain.Caravan, res *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation requested*\n\nCaravan: %s\nDates: %s - %s\nTotal: %.2f\nWaiting for the host to confirm.",
		caravan.Name,
		res.Range.Start.Format(dateLayout),
		res.Range.End.Format(dateLayout),
		res.TotalPrice,
	)
	n.send(ctx, guest.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationConfirmed(ctx context.Context, guest *domain.User, caravan *domain.Caravan, res *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation confirmed!*\n\nCaravan: %s\nDates: %s - %s",
		caravan.Name,
		res.Range.Start.Format(dateLayout),
		res.Range.End.Format(dateLayout),
	)
	n.send(ctx, guest.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, guest *domain.User, caravan *domain.Caravan, res *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation cancelled*\n\nCaravan: %s\nDates: %s - %s",
		caravan.Name,
		res.Range.Start.Format(dateLayout),
		res.Range.End.Format(dateLayout),
	)
	n.send(ctx, guest.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
