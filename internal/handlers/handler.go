package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-translate-bot/internal/catalog"
	"telegram-translate-bot/internal/messages"
	"telegram-translate-bot/internal/prefs"
	"telegram-translate-bot/internal/speech"
	"telegram-translate-bot/internal/storage"
	"telegram-translate-bot/internal/translate"
	"telegram-translate-bot/internal/tts"
)

// Сколько живёт одна интеракция с внешними движками.
const requestTimeout = 60 * time.Second

// TempPrefix помечает наши файлы во временном каталоге —
// чистильщик в scheduler удаляет только их.
const TempPrefix = "ttb_"

type Handler struct {
	Bot        *tgbotapi.BotAPI
	DB         *storage.DB
	Defaults   catalog.Defaults
	Translator *translate.Client
	Recognizer *speech.Chain
	TTS        *tts.Client
	TempDir    string
}

// prefs создаёт фасад настроек на одну интеракцию.
func (h *Handler) prefs(userID int64) *prefs.Preferences {
	return prefs.New(h.DB, h.Defaults, strconv.FormatInt(userID, 10))
}

func (h *Handler) send(chatID int64, text string) {
	_ = messages.SendText(h.Bot, chatID, text)
}

// tempFile возвращает путь для временного файла с нужным расширением.
func (h *Handler) tempFile(ext string) string {
	name := fmt.Sprintf("%s%d%s", TempPrefix, time.Now().UnixNano(), ext)
	return filepath.Join(h.TempDir, name)
}

// download скачивает файл Telegram по прямой ссылке во временный файл.
func (h *Handler) download(fileID, ext string) (string, error) {
	url, err := h.Bot.GetFileDirectURL(fileID)
	if err != nil {
		return "", err
	}

	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: status %d", resp.StatusCode)
	}

	path := h.tempFile(ext)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
