package handler

import (
	"context"

	"github.com/pkg/errors"
	tele "gopkg.in/telebot.v3"
)

// BotNotifier sends due reminders as Telegram messages
type BotNotifier struct {
	bot *tele.Bot
}

// NewBotNotifier creates a notifier that writes through bot
func NewBotNotifier(bot *tele.Bot) *BotNotifier {
	return &BotNotifier{bot: bot}
}

// NotifyDue tells the user how many cards are waiting
func (n *BotNotifier) NotifyDue(ctx context.Context, userID int64, due int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := n.bot.Send(tele.ChatID(userID), formatReminder(due), mainMenuMarkup()); err != nil {
		return errors.Wrapf(err, "sending reminder to %d", userID)
	}
	return nil
}
