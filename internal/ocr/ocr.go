// Package ocr — извлечение текста из картинок через Tesseract.
package ocr

import (
	"fmt"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"
	log "github.com/sirupsen/logrus"
)

// ExtractText распознаёт текст на картинке. Пустой результат — не ошибка:
// на фото просто может не быть текста.
func ExtractText(imagePath string) (string, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return "", fmt.Errorf("ocr: image not found: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	// Русский и английский покрывают основную аудиторию бота.
	if err := client.SetLanguage("rus", "eng"); err != nil {
		return "", err
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", err
	}

	text, err := client.Text()
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	log.Printf("Извлекли %d символов из картинки", len(text))
	return text, nil
}
