package main

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"telegram-translate-bot/internal/catalog"
	"telegram-translate-bot/internal/config"
	"telegram-translate-bot/internal/handlers"
	"telegram-translate-bot/internal/scheduler"
	"telegram-translate-bot/internal/speech"
	"telegram-translate-bot/internal/storage"
	"telegram-translate-bot/internal/translate"
	"telegram-translate-bot/internal/tts"
	"telegram-translate-bot/internal/utils"
)

func main() {
	_ = godotenv.Load() // TELEGRAM_BOT_TOKEN etc.

	cfg := config.Load()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	utils.Must(err)

	db, err := storage.New(cfg.DBPath, catalog.DefaultSettings())
	utils.Must(err)

	// Цепочка распознавания: офлайн Vosk (если есть модель), затем
	// Google, затем Whisper (если задан ключ).
	var recognizers []speech.Recognizer
	if cfg.VoskModelPath != "" {
		if v, err := speech.NewVosk(cfg.VoskModelPath); err != nil {
			log.Println("Vosk недоступен:", err)
		} else {
			recognizers = append(recognizers, v)
		}
	}
	recognizers = append(recognizers, speech.NewGoogle())
	if cfg.OpenAIToken != "" {
		recognizers = append(recognizers, speech.NewWhisper(cfg.OpenAIToken))
	}

	h := &handlers.Handler{
		Bot:        bot,
		DB:         db,
		Defaults:   catalog.DefaultSettings(),
		Translator: translate.NewClient(),
		Recognizer: speech.NewChain(recognizers...),
		TTS:        tts.NewClient(),
		TempDir:    cfg.TempDir,
	}

	_, err = scheduler.Start(cfg.TempDir, handlers.TempPrefix)
	utils.Must(err)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := bot.GetUpdatesChan(updateConfig)

	for upd := range updates {
		if upd.Message != nil {
			msg := upd.Message
			switch {
			case msg.IsCommand():
				h.HandleCommand(msg)
			case msg.Voice != nil:
				h.HandleVoice(msg)
			case len(msg.Photo) > 0:
				h.HandlePhoto(msg)
			case msg.Text != "":
				h.HandleText(msg)
			}
		}
		if upd.CallbackQuery != nil {
			h.HandleCallback(upd.CallbackQuery)
		}
	}
}
