// Package api реализует HTTP клиент сервера синхронизации: регистрация,
// логин, push мутаций (applyRemote контракт) и probe доступности.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ivolkov/syncpad/internal/client/deltasync"
	"github.com/ivolkov/syncpad/internal/models"
	"github.com/ivolkov/syncpad/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	mu         sync.RWMutex
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken устанавливает access token для авторизованных запросов.
// Безопасен для конкурентного вызова с Apply.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) getToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/register", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Apply is the applyRemote contract used by the delta sync service.
// Маппинг ответов: 2xx → applied, 409 → conflict с состоянием сервера,
// транспортная ошибка и прочие статусы → transient (non-nil error).
func (c *Client) Apply(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*deltasync.ApplyResult, error) {
	path := fmt.Sprintf("/api/v1/entities/%s/%s/push",
		url.PathEscape(entityType), url.PathEscape(entityID))

	req := api.PushRequest{
		Action:      string(action),
		Payload:     payload,
		BaseVersion: baseVersion,
	}

	status, respBody, err := c.doAuthorized(ctx, "POST", path, req)
	if err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}

	switch {
	case status >= 200 && status < 300:
		var resp api.PushResponse
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode push response: %w", err)
		}
		return &deltasync.ApplyResult{
			Status:  deltasync.ApplyStatusApplied,
			Version: resp.Version,
		}, nil

	case status == http.StatusConflict:
		var resp api.PushResponse
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode conflict response: %w", err)
		}
		return &deltasync.ApplyResult{
			Status:        deltasync.ApplyStatusConflict,
			RemoteState:   resp.RemoteState,
			RemoteVersion: resp.RemoteVersion,
		}, nil

	default:
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("server error (%d): %s", status, errResp.Error)
		}
		return nil, fmt.Errorf("push failed with status %d: %s", status, string(respBody))
	}
}

// GetEntity получает текущее состояние сущности на сервере
func (c *Client) GetEntity(ctx context.Context, entityType, entityID string) (*api.EntityResponse, error) {
	path := fmt.Sprintf("/api/v1/entities/%s/%s",
		url.PathEscape(entityType), url.PathEscape(entityID))

	status, respBody, err := c.doAuthorized(ctx, "GET", path, nil)
	if err != nil {
		return nil, fmt.Errorf("get entity request failed: %w", err)
	}

	if status < 200 || status >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("server error (%d): %s", status, errResp.Error)
		}
		return nil, fmt.Errorf("get entity failed with status %d", status)
	}

	var resp api.EntityResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode entity response: %w", err)
	}
	return &resp, nil
}

// Probe проверяет доступность сервера.
// Используется монитором сети как connectivity probe.
func (c *Client) Probe(ctx context.Context) error {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, "GET", "/api/v1/health", nil, &resp); err != nil {
		return fmt.Errorf("health probe failed: %w", err)
	}
	return nil
}

// doAuthorized выполняет запрос с Authorization заголовком и возвращает
// статус с телом ответа без интерпретации статуса: вызывающий сам
// различает applied/conflict/error
func (c *Client) doAuthorized(ctx context.Context, method, path string, body any) (int, []byte, error) {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.getToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// doRequest выполняет HTTP запрос и декодирует успешный ответ
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	status, respBody, err := c.doAuthorized(ctx, method, path, body)
	if err != nil {
		return err
	}

	// Проверяем статус код
	if status < 200 || status >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", status, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", status, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
