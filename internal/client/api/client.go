package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/gophshop/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс для HTTP клиента магазина.
// Методы корзины и избранного принимают bearer-токен вызывающего:
// клиент сам ничего не знает о сессии.
type ClientAPI interface {
	// Register регистрирует нового покупателя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login выполняет аутентификацию покупателя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// CartAdd добавляет позицию в серверную корзину (идемпотентный upsert)
	CartAdd(ctx context.Context, accessToken string, req api.CartItemRequest) error

	// CartUpdate меняет количество позиции в серверной корзине
	CartUpdate(ctx context.Context, accessToken string, req api.CartItemRequest) error

	// CartRemove удаляет позицию из серверной корзины
	CartRemove(ctx context.Context, accessToken string, req api.CartItemRequest) error

	// WishlistAdd добавляет позицию в серверное избранное
	WishlistAdd(ctx context.Context, accessToken string, req api.WishlistItemRequest) error

	// WishlistRemove удаляет позицию из серверного избранного
	WishlistRemove(ctx context.Context, accessToken string, req api.WishlistItemRequest) error
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

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
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового покупателя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию покупателя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// CartAdd добавляет позицию в серверную корзину
func (c *Client) CartAdd(ctx context.Context, accessToken string, req api.CartItemRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/cart", accessToken, req, nil); err != nil {
		return fmt.Errorf("cart add request failed: %w", err)
	}
	return nil
}

// CartUpdate меняет количество позиции в серверной корзине
func (c *Client) CartUpdate(ctx context.Context, accessToken string, req api.CartItemRequest) error {
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/cart", accessToken, req, nil); err != nil {
		return fmt.Errorf("cart update request failed: %w", err)
	}
	return nil
}

// CartRemove удаляет позицию из серверной корзины
func (c *Client) CartRemove(ctx context.Context, accessToken string, req api.CartItemRequest) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/cart", accessToken, req, nil); err != nil {
		return fmt.Errorf("cart remove request failed: %w", err)
	}
	return nil
}

// WishlistAdd добавляет позицию в серверное избранное
func (c *Client) WishlistAdd(ctx context.Context, accessToken string, req api.WishlistItemRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/wishlist", accessToken, req, nil); err != nil {
		return fmt.Errorf("wishlist add request failed: %w", err)
	}
	return nil
}

// WishlistRemove удаляет позицию из серверного избранного
func (c *Client) WishlistRemove(ctx context.Context, accessToken string, req api.WishlistItemRequest) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/wishlist", accessToken, req, nil); err != nil {
		return fmt.Errorf("wishlist remove request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
