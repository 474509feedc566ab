package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rest-pos/metrics"
	"rest-pos/models"
	"rest-pos/report"
	"rest-pos/storage"
)

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch text {
	case "/start":
		b.send(chatID, "Welcome. Use /menu to start a sale.")
		b.sendCategories(chatID)
	case "/menu":
		b.sendCategories(chatID)
	case "/cart":
		b.showCart(chatID)
	case "/undo":
		b.undoLast(chatID)
	case "/commit":
		b.askTaxed(chatID)
	case "/cancel":
		b.discardCart(chatID)
	case "/report":
		b.sendReport(chatID)
	case "/export":
		b.exportReport(chatID)
	case "/send":
		b.mailReport(chatID)
	case "/addcash":
		b.promptCash(chatID, cashAdd)
	case "/editcash":
		b.promptCash(chatID, cashEdit)
	case "/annul":
		b.sendAnnulList(chatID)
	case "/logs":
		b.sendLogs(chatID)
	default:
		b.handlePlainText(chatID, text)
	}
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	data := cq.Data

	switch {
	case strings.HasPrefix(data, "cat:"):
		b.answerCallback(cq.ID, "")
		b.sendItems(chatID, strings.TrimPrefix(data, "cat:"))
	case strings.HasPrefix(data, "add:"):
		b.addSelection(cq, strings.TrimPrefix(data, "add:"))
	case data == "undo":
		b.answerCallback(cq.ID, "")
		b.undoLast(chatID)
	case data == "cart":
		b.answerCallback(cq.ID, "")
		b.showCart(chatID)
	case data == "commit":
		b.answerCallback(cq.ID, "")
		b.askTaxed(chatID)
	case data == "back":
		b.answerCallback(cq.ID, "")
		b.sendCategories(chatID)
	case strings.HasPrefix(data, "taxed:"):
		b.answerCallback(cq.ID, "Committing...")
		// off the update loop so a slow store never freezes input
		go b.commitCart(chatID, data == "taxed:1")
	case strings.HasPrefix(data, "annul:"):
		b.answerCallback(cq.ID, "")
		b.confirmAnnul(chatID, strings.TrimPrefix(data, "annul:"))
	case strings.HasPrefix(data, "annulok:"):
		b.answerCallback(cq.ID, "")
		go b.annulOrder(chatID, strings.TrimPrefix(data, "annulok:"))
	default:
		b.answerCallback(cq.ID, "")
	}
}

func (b *Bot) answerCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		slog.Error("answer callback", "error", err)
	}
}

func (b *Bot) sendCategories(chatID int64) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, category := range b.catalog.Categories() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(category, "cat:"+category),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Cart", "cart"),
		tgbotapi.NewInlineKeyboardButtonData("Commit", "commit"),
	))
	b.sendWithInline(chatID, "Pick a category:", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) sendItems(chatID int64, category string) {
	items := b.catalog.ItemsInCategory(category)
	if len(items) == 0 {
		b.send(chatID, "No items in this category.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range items {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s — %.2f", item.Name, item.Price),
				fmt.Sprintf("add:%d", item.ID),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Undo", "undo"),
		tgbotapi.NewInlineKeyboardButtonData("Commit", "commit"),
		tgbotapi.NewInlineKeyboardButtonData("Back", "back"),
	))
	b.sendWithInline(chatID, category+":", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) addSelection(cq *tgbotapi.CallbackQuery, rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		b.answerCallback(cq.ID, "Unknown item.")
		return
	}
	item, ok := b.catalog.Item(id)
	if !ok {
		b.answerCallback(cq.ID, "Unknown item.")
		return
	}

	chatID := cq.Message.Chat.ID
	c := b.cartFor(chatID)
	b.mu.Lock()
	c.Add(item)
	total := c.Total()
	count := c.Len()
	b.mu.Unlock()

	b.answerCallback(cq.ID, fmt.Sprintf("%s added. %d selections, total %.2f", item.Name, count, total))
	b.logAction(fmt.Sprintf("User added sale: %s (%.2f)", item.Name, item.Price))
}

func (b *Bot) showCart(chatID int64) {
	b.mu.Lock()
	var (
		lines []models.OrderLine
		total float64
	)
	if c, ok := b.carts[chatID]; ok {
		lines = c.Aggregate()
		total = c.Total()
	}
	b.mu.Unlock()

	b.send(chatID, cartSummary(lines, total))
}

func (b *Bot) undoLast(chatID int64) {
	b.mu.Lock()
	c, ok := b.carts[chatID]
	if ok {
		c.RemoveLast()
	}
	empty := !ok || c.Empty()
	var total float64
	if ok {
		total = c.Total()
	}
	b.mu.Unlock()

	if empty {
		b.send(chatID, "The cart is empty.")
		return
	}
	b.send(chatID, fmt.Sprintf("Last sale removed. Total: %.2f", total))
	b.logAction("User removed last sale")
}

func (b *Bot) discardCart(chatID int64) {
	b.mu.Lock()
	if c, ok := b.carts[chatID]; ok {
		c.Clear()
	}
	b.mu.Unlock()

	b.send(chatID, "Cart discarded.")
	b.logAction("User discarded cart")
}

func (b *Bot) askTaxed(chatID int64) {
	b.mu.Lock()
	c, ok := b.carts[chatID]
	empty := !ok || c.Empty()
	b.mu.Unlock()

	if empty {
		b.send(chatID, "The cart is empty, nothing to commit.")
		return
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Taxed", "taxed:1"),
		tgbotapi.NewInlineKeyboardButtonData("Untaxed", "taxed:0"),
	))
	b.sendWithInline(chatID, "Commit this order as taxed or untaxed?", kb)
}

// commitCart persists the cart. It runs off the update loop; the cart is
// cleared only after the store confirms the commit.
func (b *Bot) commitCart(chatID int64, taxed bool) {
	b.mu.Lock()
	c := b.carts[chatID]
	var lines []models.OrderLine
	if c != nil {
		lines = c.Aggregate()
	}
	b.mu.Unlock()

	orderID, err := b.store.SaveOrder(context.Background(), lines, taxed)
	if err != nil {
		slog.Error("commit order", "error", err)
		b.logAction("Order commit FAILED: " + err.Error())
		b.send(chatID, "Could not commit the order; nothing was saved. Try again.")
		return
	}
	if orderID == storage.InvalidOrderID {
		b.send(chatID, "The cart is empty, nothing to commit.")
		return
	}

	b.mu.Lock()
	if c != nil {
		c.Clear()
	}
	b.mu.Unlock()

	metrics.OrdersCommitted.Inc()
	b.logAction(fmt.Sprintf("User committed order #%d (taxed=%v)", orderID, taxed))
	b.send(chatID, fmt.Sprintf("Order #%d committed.", orderID))
}

func (b *Bot) sendReport(chatID int64) {
	r, err := b.engine.Build(context.Background())
	if err != nil {
		slog.Error("build report", "error", err)
		b.logAction("Report generation FAILED: " + err.Error())
		b.send(chatID, "Could not build the report. Try again.")
		return
	}
	metrics.ReportsGenerated.Inc()
	b.logAction("User viewed reports")
	b.sendMono(chatID, report.Render(r))
}

func (b *Bot) exportReport(chatID int64) {
	r, err := b.engine.Build(context.Background())
	if err != nil {
		slog.Error("build report", "error", err)
		b.send(chatID, "Could not build the report. Try again.")
		return
	}
	path, err := report.Export(b.exportDir, r)
	if err != nil {
		slog.Error("export report", "error", err)
		b.logAction("Export report to file FAILED")
		b.send(chatID, "Could not export the report.")
		return
	}
	metrics.ReportsGenerated.Inc()
	b.logAction("Exported report to file")
	b.send(chatID, "Report exported to "+path)
}

func (b *Bot) mailReport(chatID int64) {
	if !b.mail.Configured() {
		b.send(chatID, "Email delivery is not configured.")
		return
	}
	r, err := b.engine.Build(context.Background())
	if err != nil {
		slog.Error("build report", "error", err)
		b.send(chatID, "Could not build the report. Try again.")
		return
	}
	if err := b.mail.SendReport("Daily Sales Report", report.Render(r)); err != nil {
		slog.Error("mail report", "error", err)
		b.logAction("User sending reports via email FAILED")
		b.send(chatID, "Could not send the report by email.")
		return
	}
	metrics.ReportsGenerated.Inc()
	b.logAction("User sent reports via email")
	b.send(chatID, "Report sent by email.")
}

func (b *Bot) promptCash(chatID int64, mode cashMode) {
	b.mu.Lock()
	b.pendingCash[chatID] = mode
	b.mu.Unlock()

	if mode == cashAdd {
		b.send(chatID, "Enter the amount to add to today's cash:")
		return
	}
	b.send(chatID, "Enter today's total received cash:")
}

// handlePlainText consumes a pending cash amount; anything else gets a
// gentle hint.
func (b *Bot) handlePlainText(chatID int64, text string) {
	b.mu.Lock()
	mode := b.pendingCash[chatID]
	delete(b.pendingCash, chatID)
	b.mu.Unlock()

	if mode == cashNone {
		b.send(chatID, "Use /menu to start a sale or /report for today's report.")
		return
	}

	amount, err := parseAmount(text)
	if err != nil {
		b.logAction("User cash input rejected: " + text)
		b.send(chatID, "That is not a valid amount. Use /addcash or /editcash and enter a number.")
		return
	}

	ctx := context.Background()
	if mode == cashAdd {
		err = b.store.AddCash(ctx, amount)
	} else {
		err = b.store.SetTodayCash(ctx, amount)
	}
	if err != nil {
		slog.Error("cash update", "error", err)
		b.logAction("User cash update FAILED")
		b.send(chatID, "Could not update the cash register. Try again.")
		return
	}

	metrics.CashUpdates.Inc()
	if mode == cashAdd {
		b.logAction(fmt.Sprintf("User added cash: %.2f", amount))
	} else {
		b.logAction(fmt.Sprintf("User edited cash: %.2f", amount))
	}

	total, err := b.store.TodayCash(ctx)
	if err != nil {
		b.send(chatID, "Cash recorded.")
		return
	}
	b.send(chatID, fmt.Sprintf("Cash recorded. Today's cash: %.2f", total))
}

func (b *Bot) sendAnnulList(chatID int64) {
	orders, err := b.store.OrdersForToday(context.Background())
	if err != nil {
		slog.Error("list today orders", "error", err)
		b.send(chatID, "Could not load today's orders.")
		return
	}
	if len(orders) == 0 {
		b.send(chatID, "No orders today.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, o := range orders {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(orderLabel(o), fmt.Sprintf("annul:%d", o.ID)),
		))
	}
	b.sendWithInline(chatID, "Pick an order to annul:", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) confirmAnnul(chatID int64, rawID string) {
	orderID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		b.send(chatID, "Unknown order.")
		return
	}
	taxed, ok, err := b.store.TaxedFlag(context.Background(), orderID)
	if err != nil {
		slog.Error("taxed flag", "order_id", orderID, "error", err)
		b.send(chatID, "Could not look up the order. Try again.")
		return
	}
	if !ok {
		b.send(chatID, "That order no longer exists.")
		return
	}

	kind := "untaxed"
	if taxed {
		kind = "taxed"
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Yes, annul", "annulok:"+rawID),
		tgbotapi.NewInlineKeyboardButtonData("No", "back"),
	))
	b.sendWithInline(chatID,
		fmt.Sprintf("Annul %s order #%d? This removes it from today's sales.", kind, orderID), kb)
}

func (b *Bot) annulOrder(chatID int64, rawID string) {
	orderID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		b.send(chatID, "Unknown order.")
		return
	}
	if err := b.store.DeleteOrder(context.Background(), orderID); err != nil {
		slog.Error("annul order", "order_id", orderID, "error", err)
		b.logAction(fmt.Sprintf("Annul order #%d FAILED", orderID))
		b.send(chatID, "Could not annul the order. Try again.")
		return
	}
	metrics.OrdersAnnulled.Inc()
	b.logAction(fmt.Sprintf("User annulled order #%d", orderID))
	b.send(chatID, fmt.Sprintf("Order #%d annulled.", orderID))
}

func (b *Bot) sendLogs(chatID int64) {
	entries, err := b.store.Logs(context.Background())
	if err != nil {
		slog.Error("load logs", "error", err)
		b.send(chatID, "Could not load the action log.")
		return
	}
	b.sendMono(chatID, logSummary(entries, 20))
}
