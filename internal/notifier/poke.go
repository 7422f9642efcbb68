// Package notifier реализует канал уведомлений поверх webhook-сервиса Poke.
// Канал принимает текст сообщения и возвращает ошибку при неудачной доставке;
// решение о повторной отправке принимает вызывающая сторона.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/magabrotheeeer/bills-tracker/internal/config"
)

// ErrNoAPIKey возвращается, когда ключ Poke не задан в конфигурации.
var ErrNoAPIKey = errors.New("poke api key is not configured")

// Client клиент webhook-сервиса Poke.
type Client struct {
	apiKey     string
	apiURL     string
	from       string
	httpClient *http.Client
}

// NewClient создаёт новый клиент Poke.
func NewClient(cfg config.Poke) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		apiURL:     cfg.APIURL,
		from:       cfg.From,
		httpClient: &http.Client{Timeout: cfg.SendTimeout},
	}
}

type sendRequest struct {
	Message string `json:"message"`
	From    string `json:"from"`
}

// Send доставляет текстовое сообщение через webhook.
// Любая ошибка (включая таймаут клиента) трактуется как обычный сбой
// доставки: запись в журнал не делается и следующий запуск повторит попытку.
func (c *Client) Send(ctx context.Context, message string) error {
	const op = "notifier.Send"

	if c.apiKey == "" {
		return fmt.Errorf("%s: %w", op, ErrNoAPIKey)
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(sendRequest{Message: message, From: c.from}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, &buf)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}
	return nil
}
