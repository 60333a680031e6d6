// Package api содержит HTTP-клиент для взаимодействия с сервером записи на встречи.
//
// Клиент инкапсулирует базовый URL сервера и настроенный http.Client
// и предоставляет методы для отправки JSON-запросов (POST/GET/DELETE).
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - Пустое тело ответа (EOF при декодировании) не считается ошибкой.
//   - Сервер отдаёт ошибки JSON-строкой ("User NOT Verified"), клиент
//     раскрывает её в текст ошибки. Если тело не JSON-строка, берётся как есть,
//     а если пустое, то res.Status.
package api

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client реализует HTTP-клиент для общения с сервером.
type Client struct {
	baseURL string
	http    *http.Client
}

// APIError — неуспешный ответ сервера.
//
// Status хранит HTTP-код, Message — текст из тела ответа.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// Параметры:
//   - baseURL: базовый адрес сервера (например: "http://127.0.0.1:8080");
//   - insecure: не проверять TLS-сертификат сервера (самоподписанный сертификат
//     на локальном стенде). Для http:// ни на что не влияет.
func NewClient(baseURL string, insecure bool) *Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: tr,
		},
	}
}

// readAPIErrorBody читает тело ответа сервера и возвращает *APIError.
func readAPIErrorBody(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)

	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		msg = string(raw)
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = res.Status
	}
	return &APIError{Status: res.StatusCode, Message: msg}
}

// StatusOf возвращает HTTP-код из ошибки клиента или 0, если это не ответ сервера.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// decodeJSONOrOK декодирует JSON из r в resp.
//
// Если resp == nil, тело не читается. Пустое тело (io.EOF) ошибкой не считается.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// do отправляет запрос и разбирает ответ.
//
// Обработка ответа:
//   - не 2xx: *APIError с текстом из тела;
//   - 204 No Content: успех без декодирования;
//   - прочие 2xx: JSON декодируется в resp (если resp != nil).
func (c *Client) do(method, path string, req any, resp any) error {
	var body io.Reader
	if req != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
		body = &buf
	}

	r, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(r)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	if res.StatusCode == http.StatusNoContent {
		return nil
	}

	return decodeJSONOrOK(res.Body, resp)
}

// PostJSON выполняет POST-запрос, сериализуя req в JSON.
// Если req == nil, тело не отправляется и Content-Type не ставится.
func (c *Client) PostJSON(path string, req any, resp any) error {
	return c.do(http.MethodPost, path, req, resp)
}

// GetJSON выполняет GET-запрос и (опционально) декодирует JSON-ответ в resp.
func (c *Client) GetJSON(path string, resp any) error {
	return c.do(http.MethodGet, path, nil, resp)
}

// DeleteJSON выполняет DELETE-запрос и (опционально) декодирует JSON-ответ в resp.
func (c *Client) DeleteJSON(path string, resp any) error {
	return c.do(http.MethodDelete, path, nil, resp)
}
