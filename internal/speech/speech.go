// Package speech — распознавание речи через цепочку провайдеров.
// Провайдеры пробуются по порядку, побеждает первый непустой результат.
package speech

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

// ErrNoSpeech — ни один провайдер не распознал речь.
var ErrNoSpeech = errors.New("speech: not recognized")

// Recognizer — интерфейс движка распознавания речи.
type Recognizer interface {
	// Transcribe распознаёт речь из WAV-файла (16kHz, mono, s16le).
	// lang — предпочитаемый язык ("ru", "en", "auto").
	Transcribe(ctx context.Context, wavPath, lang string) (string, error)

	// Name возвращает название движка (для логирования).
	Name() string
}

// Chain перебирает распознаватели до первого успеха.
type Chain struct {
	recognizers []Recognizer
}

func NewChain(recognizers ...Recognizer) *Chain {
	return &Chain{recognizers: recognizers}
}

func (c *Chain) Transcribe(ctx context.Context, wavPath, lang string) (string, error) {
	for _, r := range c.recognizers {
		text, err := r.Transcribe(ctx, wavPath, lang)
		if err != nil {
			log.Printf("Движок %s не справился: %v", r.Name(), err)
			continue
		}
		if text == "" {
			log.Printf("Движок %s вернул пустой текст", r.Name())
			continue
		}
		log.Printf("Распознали речь движком %s", r.Name())
		return text, nil
	}
	return "", ErrNoSpeech
}
