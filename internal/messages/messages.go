package messages

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-translate-bot/internal/prefs"
)

// --- outgoing replies -------------------------------------------------------

func SendText(bot *tgbotapi.BotAPI, chatID int64, text string) error {
	_, err := bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// Reply отвечает на конкретное сообщение (видно, к чему относится перевод).
func Reply(bot *tgbotapi.BotAPI, chatID int64, replyTo int, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyTo
	_, err := bot.Send(msg)
	return err
}

// SendVoice отправляет голосовое сообщение из ogg/opus файла.
func SendVoice(bot *tgbotapi.BotAPI, chatID int64, oggPath string) error {
	_, err := bot.Send(tgbotapi.NewVoice(chatID, tgbotapi.FilePath(oggPath)))
	return err
}

// Summary — текущие настройки пользователя одним сообщением.
func Summary(p *prefs.Preferences) string {
	return fmt.Sprintf(
		"Текущие настройки:\n\n"+
			"Исходный язык: %s\n"+
			"Язык перевода: %s\n"+
			"Язык озвучки: %s\n"+
			"Тип голоса: %s\n"+
			"Скорость: %g",
		p.SourceLanguageName, p.LanguageName, p.AudioLanguageName,
		p.VoiceTypeName, p.Speed,
	)
}
