package netcheck

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

//go:generate moq -out checker_mock.go . Checker

// Checker answers "can we reach the network" and "can we reach the
// backend specifically". Оба ответа чисто справочные: ошибка пробы
// никогда не поднимается наверх, она означает "нет".
type Checker interface {
	// IsOnline reports whether a public endpoint is reachable
	IsOnline(ctx context.Context) bool

	// IsBackendReachable reports whether the application backend
	// answers on its health endpoint
	IsBackendReachable(ctx context.Context) bool
}

const (
	// DefaultProbeURL — публичный endpoint для generic-пробы.
	// Отдает 204 без тела, стандартная captive-portal проба.
	DefaultProbeURL = "http://clients3.google.com/generate_204"

	onlineTimeout  = 5 * time.Second
	backendTimeout = 8 * time.Second
)

// Prober implements Checker with timed HTTP probes.
// Результат не кэшируется: связность может измениться между вызовами,
// поэтому каждый вызов пробует заново.
type Prober struct {
	httpClient *http.Client
	logger     *slog.Logger
	probeURL   string
	healthURL  string
}

// Compile-time check that Prober implements Checker
var _ Checker = (*Prober)(nil)

// NewProber creates a prober for the given backend base URL.
// probeURL may be empty, then DefaultProbeURL is used.
func NewProber(probeURL, baseURL string, logger *slog.Logger) *Prober {
	if probeURL == "" {
		probeURL = DefaultProbeURL
	}
	return &Prober{
		probeURL:  probeURL,
		healthURL: strings.TrimRight(baseURL, "/") + "/api/v1/health",
		// Таймаут задается на каждую пробу через контекст
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// IsOnline reports whether a public endpoint is reachable.
// Любой HTTP-ответ означает что сеть есть, статус не важен.
func (p *Prober) IsOnline(ctx context.Context) bool {
	if _, ok := p.probe(ctx, p.probeURL, onlineTimeout); !ok {
		p.logger.Debug("network probe failed", "url", p.probeURL)
		return false
	}
	return true
}

// IsBackendReachable reports whether the backend health endpoint
// answers with a 2xx status
func (p *Prober) IsBackendReachable(ctx context.Context) bool {
	status, ok := p.probe(ctx, p.healthURL, backendTimeout)
	if !ok || status < 200 || status >= 300 {
		p.logger.Debug("backend probe failed", "url", p.healthURL, "status", status)
		return false
	}
	return true
}

// probe выполняет один GET с таймаутом; (0, false) на любой ошибке
func (p *Prober) probe(ctx context.Context, url string, timeout time.Duration) (int, bool) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return resp.StatusCode, true
}
