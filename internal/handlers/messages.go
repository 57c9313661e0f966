package handlers

import (
	"context"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"telegram-translate-bot/internal/audio"
	"telegram-translate-bot/internal/messages"
	"telegram-translate-bot/internal/ocr"
	"telegram-translate-bot/internal/prefs"
)

// HandleText переводит текстовое сообщение.
func (h *Handler) HandleText(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	p := h.prefs(msg.From.ID)
	translated := h.translateOrOriginal(ctx, p, msg.Text)
	_ = messages.Reply(h.Bot, msg.Chat.ID, msg.MessageID, translated)
}

// HandleVoice: скачать → WAV → распознать → перевести → озвучить → отправить.
func (h *Handler) HandleVoice(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	chatID := msg.Chat.ID
	p := h.prefs(msg.From.ID)

	oggPath, err := h.download(msg.Voice.FileID, ".oga")
	if err != nil {
		log.Printf("Не скачали голосовое из чата %d: %v", chatID, err)
		h.send(chatID, txtVoiceFailed)
		return
	}
	defer os.Remove(oggPath)

	wavPath := h.tempFile(".wav")
	if err := audio.ToWAV(ctx, oggPath, wavPath); err != nil {
		log.Printf("Не сконвертировали голосовое из чата %d: %v", chatID, err)
		h.send(chatID, txtVoiceFailed)
		return
	}
	defer os.Remove(wavPath)

	recognized, err := h.Recognizer.Transcribe(ctx, wavPath, p.SourceLanguage)
	if err != nil {
		log.Printf("Не распознали голосовое из чата %d: %v", chatID, err)
		h.send(chatID, txtNoSpeech)
		return
	}

	translated := h.translateOrOriginal(ctx, p, recognized)
	_ = messages.Reply(h.Bot, chatID, msg.MessageID,
		"🎤 "+recognized+"\n\n➡️ "+translated)

	// Озвучка — best effort: текст уже у пользователя.
	h.speak(ctx, chatID, p, translated)
}

// HandlePhoto извлекает текст с картинки и переводит его.
func (h *Handler) HandlePhoto(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	chatID := msg.Chat.ID
	p := h.prefs(msg.From.ID)

	// Последний элемент — самое большое разрешение.
	photo := msg.Photo[len(msg.Photo)-1]
	imgPath, err := h.download(photo.FileID, ".jpg")
	if err != nil {
		log.Printf("Не скачали фото из чата %d: %v", chatID, err)
		h.send(chatID, txtNoImageText)
		return
	}
	defer os.Remove(imgPath)

	text, err := ocr.ExtractText(imgPath)
	if err != nil {
		log.Printf("OCR не справился с фото из чата %d: %v", chatID, err)
		h.send(chatID, txtNoImageText)
		return
	}
	if text == "" {
		h.send(chatID, txtNoImageText)
		return
	}

	translated := h.translateOrOriginal(ctx, p, text)
	_ = messages.Reply(h.Bot, chatID, msg.MessageID, translated)
}

// translateOrOriginal переводит текст, при ошибке возвращая оригинал —
// лучше показать исходник, чем ничего.
func (h *Handler) translateOrOriginal(ctx context.Context, p *prefs.Preferences, text string) string {
	translated, err := h.Translator.Translate(ctx, text, p.SourceLanguage, p.Language)
	if err != nil {
		log.Printf("Перевод не удался для пользователя %s: %v", p.UserID, err)
		return text
	}
	return translated
}

// speak синтезирует переведённый текст и отправляет голосовым сообщением.
func (h *Handler) speak(ctx context.Context, chatID int64, p *prefs.Preferences, text string) {
	mp3, err := h.TTS.Synthesize(ctx, text, p.AudioLanguage, p.VoiceType)
	if err != nil {
		log.Printf("Озвучка не удалась для пользователя %s: %v", p.UserID, err)
		return
	}

	mp3Path := h.tempFile(".mp3")
	if err := os.WriteFile(mp3Path, mp3, 0o644); err != nil {
		log.Printf("Не записали аудио для пользователя %s: %v", p.UserID, err)
		return
	}
	defer os.Remove(mp3Path)

	voiceSrc := mp3Path
	if p.Speed != 1.0 {
		adjPath := h.tempFile(".mp3")
		if err := audio.AdjustSpeed(ctx, mp3Path, adjPath, p.Speed); err != nil {
			log.Printf("Не изменили скорость аудио для пользователя %s: %v", p.UserID, err)
		} else {
			defer os.Remove(adjPath)
			voiceSrc = adjPath
		}
	}

	oggPath := h.tempFile(".ogg")
	if err := audio.ToVoice(ctx, voiceSrc, oggPath); err != nil {
		log.Printf("Не сконвертировали аудио в ogg для пользователя %s: %v", p.UserID, err)
		return
	}
	defer os.Remove(oggPath)

	if err := messages.SendVoice(h.Bot, chatID, oggPath); err != nil {
		log.Printf("Не отправили голосовое в чат %d: %v", chatID, err)
	}
}
