package handlers

import (
	"errors"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-translate-bot/internal/catalog"
	"telegram-translate-bot/internal/storage"
)

const (
	cbCfgLanguage = "cfg_language"
	cbCfgSource   = "cfg_source"
	cbCfgAudio    = "cfg_audio"
	cbCfgVoice    = "cfg_voice"
	cbCfgSpeed    = "cfg_speed"

	cbSetPrefix = "set:"
)

var speedOptions = []string{"0.5", "0.75", "1.0", "1.25", "1.5", "2.0"}

func (h *Handler) HandleCallback(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	data := cq.Data

	// always answer callback
	_, _ = h.Bot.Request(tgbotapi.NewCallback(cq.ID, ""))

	switch {
	case data == cbCfgLanguage:
		h.sendOptions(chatID, txtPickLanguage, codeKeyboard(catalog.Languages, "language", nil))
	case data == cbCfgSource:
		auto := tgbotapi.NewInlineKeyboardButtonData(
			catalog.AutoDetectLabel, cbSetPrefix+"source:"+catalog.AutoDetect)
		h.sendOptions(chatID, txtPickSource, codeKeyboard(catalog.Languages, "source", &auto))
	case data == cbCfgAudio:
		h.sendOptions(chatID, txtPickAudio, codeKeyboard(catalog.AudioLanguages, "audio", nil))
	case data == cbCfgVoice:
		h.sendOptions(chatID, txtPickVoice, codeKeyboard(catalog.VoiceTypes, "voice", nil))
	case data == cbCfgSpeed:
		h.sendOptions(chatID, txtPickSpeed, speedKeyboard())
	case strings.HasPrefix(data, cbSetPrefix):
		h.handleSet(chatID, cq.From.ID, data)
	}
}

func (h *Handler) sendOptions(chatID int64, title string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, title)
	msg.ReplyMarkup = kb
	_, _ = h.Bot.Send(msg)
}

// handleSet применяет выбор вида "set:<field>:<code>".
func (h *Handler) handleSet(chatID, userID int64, data string) {
	field, code, ok := parseSet(data)
	if !ok {
		return
	}

	p := h.prefs(userID)

	var err error
	var saved string
	switch field {
	case "language":
		err = p.UpdateLanguage(code)
		saved = "Язык перевода: " + p.LanguageName
	case "source":
		err = p.UpdateSourceLanguage(code)
		saved = "Исходный язык: " + p.SourceLanguageName
	case "audio":
		err = p.UpdateAudioLanguage(code)
		saved = "Язык озвучки: " + p.AudioLanguageName
	case "voice":
		err = p.UpdateVoiceType(code)
		saved = "Тип голоса: " + p.VoiceTypeName
	case "speed":
		err = p.UpdateSpeed(code)
		saved = "Скорость: " + code
	default:
		return
	}

	if err != nil {
		var verr *storage.ValidationError
		if errors.As(err, &verr) {
			h.send(chatID, txtBadSpeed)
			return
		}
		h.send(chatID, txtSaveFailed)
		return
	}
	h.send(chatID, "Сохранено. "+saved)
}

// parseSet разбирает "set:<field>:<code>"; код может содержать дефисы (zh-CN).
func parseSet(data string) (field, code string, ok bool) {
	rest, found := strings.CutPrefix(data, cbSetPrefix)
	if !found {
		return "", "", false
	}
	field, code, found = strings.Cut(rest, ":")
	if !found || field == "" || code == "" {
		return "", "", false
	}
	return field, code, true
}

// codeKeyboard строит клавиатуру по справочнику, по две кнопки в ряд,
// стабильный порядок по коду. extra вставляется отдельным первым рядом.
func codeKeyboard(table map[string]string, field string, extra *tgbotapi.InlineKeyboardButton) tgbotapi.InlineKeyboardMarkup {
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var rows [][]tgbotapi.InlineKeyboardButton
	if extra != nil {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(*extra))
	}

	var row []tgbotapi.InlineKeyboardButton
	for _, code := range codes {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			table[code], cbSetPrefix+field+":"+code))
		if len(row) == 2 {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func speedKeyboard() tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, s := range speedOptions {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(s+"x", cbSetPrefix+"speed:"+s))
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(row[:3]...),
		tgbotapi.NewInlineKeyboardRow(row[3:]...),
	)
}
