package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client по умолчанию; тесты могут подменить.
var Client = &http.Client{Timeout: 15 * time.Second}

// Post отправляет тело body с указанным Content-Type. Непустой token передаётся как Bearer.
func Post(ctx context.Context, endpoint, contentType string, body []byte, token string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := Client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, b, nil
}

// InspectRow — строка ответа /api/details/inspect. Value у секретных строк всегда пуст.
type InspectRow struct {
	Label       string `json:"label"`
	Sensitivity string `json:"sensitivity"`
	Kind        string `json:"kind"`
	Value       string `json:"value,omitempty"`
	Heading     bool   `json:"heading,omitempty"`
}

// InspectResponse — ответ /api/details/inspect.
type InspectResponse struct {
	Category string       `json:"category"`
	Icon     string       `json:"icon"`
	Rows     []InspectRow `json:"rows"`
}

// Error — ошибка, которую вернул сервер в теле {"error","message"}.
type Error struct {
	Status  int
	Kind    string `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("server status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server status %d: %s: %s", e.Status, e.Kind, e.Message)
}

// Inspect отправляет деталь на сервер для декодирования и классификации.
func Inspect(ctx context.Context, serverURL, token, category string, detailJSON []byte) (*InspectResponse, error) {
	endpoint := strings.TrimRight(serverURL, "/") + "/api/details/inspect"
	if category != "" {
		endpoint += "?category=" + url.QueryEscape(category)
	}
	resp, body, err := Post(ctx, endpoint, "application/json", detailJSON, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := &Error{Status: resp.StatusCode}
		if json.Unmarshal(body, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return nil, apiErr
	}
	var out InspectResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &out, nil
}
