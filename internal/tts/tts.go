// Package tts — синтез речи через Google Translate TTS (то, что оборачивает gTTS).
package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
)

type Client struct {
	httpClient *http.Client
	// host подменяется в тестах; пустой — собираем по tld.
	host string
}

func NewClient() *Client {
	return &Client{httpClient: &http.Client{Timeout: 30 * time.Second}}
}

// voiceParams — домен и медленный режим под тип голоса.
// Британский домен даёт более чёткий акцент, ca — более живой
// латиноамериканский/канадский вариант для романских языков.
func voiceParams(lang, voiceType string) (tld string, slow bool) {
	tld = "com"
	switch voiceType {
	case "slow":
		slow = true
	case "clear":
		switch lang {
		case "en", "fr", "es", "it", "pt":
			tld = "co.uk"
		case "ru":
			tld = "ru"
		}
	case "emotional":
		switch lang {
		case "es", "it", "fr":
			tld = "ca"
		}
	}
	// Азиатские языки стабильнее через .com, медленный режим и для clear.
	switch lang {
	case "ja", "zh-CN", "ko":
		if voiceType == "slow" || voiceType == "clear" {
			slow = true
		}
		tld = "com"
	}
	return tld, slow
}

// Synthesize озвучивает text на языке lang и возвращает MP3.
func (c *Client) Synthesize(ctx context.Context, text, lang, voiceType string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("tts: empty text")
	}

	tld, slow := voiceParams(lang, voiceType)
	host := c.host
	if host == "" {
		host = "https://translate.google." + tld
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", lang)
	q.Set("q", text)
	if slow {
		q.Set("ttsspeed", "0.3")
	}

	log.Printf("Озвучиваем текст: язык %s, тип голоса %s", lang, voiceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		host+"/translate_tts?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
