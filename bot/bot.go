// Package bot is the operator surface: a Telegram bot that builds carts
// from the menu, commits them as orders and serves the daily
// reconciliation report. All invariants live in the core packages; this
// package only routes updates.
package bot

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rest-pos/cart"
	"rest-pos/catalog"
	"rest-pos/config"
	"rest-pos/mailer"
	"rest-pos/report"
	"rest-pos/storage"
)

// cashMode marks a chat that was prompted for a cash amount.
type cashMode int

const (
	cashNone cashMode = iota
	cashAdd
	cashEdit
)

type Bot struct {
	api       *tgbotapi.BotAPI
	store     storage.Store
	catalog   *catalog.Catalog
	engine    *report.Engine
	mail      *mailer.Mailer
	exportDir string
	admins    map[int64]struct{}

	mu          sync.Mutex
	carts       map[int64]*cart.Cart
	pendingCash map[int64]cashMode
}

func New(cfg *config.Config, store storage.Store, cat *catalog.Catalog,
	engine *report.Engine, mail *mailer.Mailer) (*Bot, error) {

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}

	admins := make(map[int64]struct{}, len(cfg.Telegram.AdminIDs))
	for _, id := range cfg.Telegram.AdminIDs {
		admins[id] = struct{}{}
	}

	return &Bot{
		api:         api,
		store:       store,
		catalog:     cat,
		engine:      engine,
		mail:        mail,
		exportDir:   cfg.Report.ExportDir,
		admins:      admins,
		carts:       make(map[int64]*cart.Cart),
		pendingCash: make(map[int64]cashMode),
	}, nil
}

// Start blocks, processing updates until the update channel closes.
func (b *Bot) Start() {
	_ = b.setBotCommands()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	slog.Info("operator bot started", "username", b.api.Self.UserName)

	for update := range updates {
		if update.CallbackQuery != nil {
			if b.allowed(update.CallbackQuery.From.ID) {
				b.handleCallback(update.CallbackQuery)
			}
			continue
		}
		if update.Message == nil {
			continue
		}
		if !b.allowed(update.Message.From.ID) {
			b.send(update.Message.Chat.ID, "This terminal is restricted to registered operators.")
			continue
		}
		b.handleMessage(update.Message)
	}
}

// allowed reports whether the user may operate this terminal. An empty
// admin list means the install is unrestricted.
func (b *Bot) allowed(userID int64) bool {
	if len(b.admins) == 0 {
		return true
	}
	_, ok := b.admins[userID]
	return ok
}

func (b *Bot) setBotCommands() error {
	cmds := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "menu", Description: "Show the menu"},
		tgbotapi.BotCommand{Command: "cart", Description: "Show the current cart"},
		tgbotapi.BotCommand{Command: "undo", Description: "Undo the last sale"},
		tgbotapi.BotCommand{Command: "commit", Description: "Commit the cart as an order"},
		tgbotapi.BotCommand{Command: "cancel", Description: "Discard the cart"},
		tgbotapi.BotCommand{Command: "report", Description: "Today's reconciliation report"},
		tgbotapi.BotCommand{Command: "export", Description: "Export today's report to a file"},
		tgbotapi.BotCommand{Command: "send", Description: "Email today's report"},
		tgbotapi.BotCommand{Command: "logs", Description: "Recent operator actions"},
		tgbotapi.BotCommand{Command: "addcash", Description: "Add to today's cash"},
		tgbotapi.BotCommand{Command: "editcash", Description: "Overwrite today's cash"},
		tgbotapi.BotCommand{Command: "annul", Description: "Annul one of today's orders"},
	)
	_, err := b.api.Request(cmds)
	return err
}

// cartFor returns the chat's cart, creating it on first use.
func (b *Bot) cartFor(chatID int64) *cart.Cart {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.carts[chatID]
	if !ok {
		c = cart.New()
		b.carts[chatID] = c
	}
	return c
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		slog.Error("send message", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) sendMono(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "```\n"+text+"```")
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := b.api.Send(msg); err != nil {
		slog.Error("send message", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) sendWithInline(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		slog.Error("send message", "chat_id", chatID, "error", err)
	}
}

// logAction appends to the persistent action log; a failing log write is
// reported but never blocks the operator.
func (b *Bot) logAction(action string) {
	if err := b.store.LogAction(context.Background(), action); err != nil {
		slog.Error("log action", "action", action, "error", err)
	}
}
