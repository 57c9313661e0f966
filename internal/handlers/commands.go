package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-translate-bot/internal/messages"
)

func (h *Handler) HandleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.HandleStart(msg)
	case "settings":
		h.HandleSettings(msg.Chat.ID)
	case "help":
		h.send(msg.Chat.ID, txtHelp)
	}
}

// ---------------- /start --------------------
func (h *Handler) HandleStart(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	// Создаёт строку настроек при первом обращении.
	p := h.prefs(msg.From.ID)

	h.send(chatID, txtStart)
	h.send(chatID, messages.Summary(p))
}

func (h *Handler) HandleSettings(chatID int64) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(menuLanguage, cbCfgLanguage),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(menuSource, cbCfgSource),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(menuAudio, cbCfgAudio),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(menuVoice, cbCfgVoice),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(menuSpeed, cbCfgSpeed),
		),
	)

	reply := tgbotapi.NewMessage(chatID, txtSettingsMenu)
	reply.ReplyMarkup = kb
	_, _ = h.Bot.Send(reply)
}
