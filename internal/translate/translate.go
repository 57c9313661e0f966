// Package translate — клиент перевода текста через Google Translate.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"telegram-translate-bot/internal/catalog"
)

// Client is a minimal Google Translate client (gtx endpoint, без ключа).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    "https://translate.googleapis.com",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Translate переводит text на target. source может быть "auto".
// Пустой текст и совпадающие языки возвращаются как есть без запроса.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if text == "" || target == "" {
		return text, nil
	}
	if source != catalog.AutoDetect && source == target {
		log.Printf("Исходный и целевой языки совпадают (%s), перевод не нужен", target)
		return text, nil
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/translate_a/single?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: status %d", resp.StatusCode)
	}

	// Ответ gtx — вложенные массивы: [[["перевод","оригинал",...],...],...]
	var raw []any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", err
	}
	return joinSegments(raw)
}

func joinSegments(raw []any) (string, error) {
	if len(raw) == 0 {
		return "", errors.New("translate: empty response")
	}
	segments, ok := raw[0].([]any)
	if !ok {
		return "", errors.New("translate: unexpected response shape")
	}
	var b strings.Builder
	for _, s := range segments {
		seg, ok := s.([]any)
		if !ok || len(seg) == 0 {
			continue
		}
		if text, ok := seg[0].(string); ok {
			b.WriteString(text)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("translate: no text in response")
	}
	return b.String(), nil
}
