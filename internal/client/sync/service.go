package sync

import (
	"context"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/sony/gobreaker/v2"

	clientapi "github.com/iudanet/gophshop/internal/client/api"
	"github.com/iudanet/gophshop/internal/client/auth"
	"github.com/iudanet/gophshop/internal/client/netcheck"
	"github.com/iudanet/gophshop/internal/client/storage"
	"github.com/iudanet/gophshop/internal/models"
	"github.com/iudanet/gophshop/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// MaxRetries — предел неудачных попыток для одной операции.
// Операция, провалившаяся MaxRetries раз, покидает очередь.
const MaxRetries = 3

// Service определяет интерфейс для sync runner'а
type Service interface {
	// Drain выполняет один проход по очереди отложенных операций.
	// Идемпотентен: безопасно звать по таймеру, по реконнекту и вручную.
	Drain(ctx context.Context) (*Result, error)

	// PendingCount возвращает количество операций, ожидающих отправки
	PendingCount(ctx context.Context) (int, error)
}

// Result contains the outcome of one drain pass
type Result struct {
	Attempted int // операций рассмотрено
	Synced    int // подтверждено сервером и удалено из очереди
	Retried   int // провалено, осталось в очереди с увеличенным счетчиком
	Dropped   int // провалено окончательно, удалено из очереди
	Deferred  bool // проход пропущен: нет сети или бэкенд недоступен
}

// DropHandler is called after an operation exceeds the retry cap and
// leaves the queue. Хук дает хост-приложению шанс показать
// "не синхронизировано" вместо молчаливой потери.
type DropHandler func(op *models.PendingOperation)

// Option configures the sync service
type Option func(*service)

// WithDropHandler replaces the default drop handler (WARN log)
func WithDropHandler(h DropHandler) Option {
	return func(s *service) {
		s.onDrop = h
	}
}

// service drains the durable operation log against the remote API
type service struct {
	apiClient clientapi.ClientAPI
	oplog     storage.OperationLog
	checker   netcheck.Checker
	tokens    auth.TokenProvider
	logger    *slog.Logger
	breaker   *gobreaker.CircuitBreaker[struct{}]
	onDrop    DropHandler

	// mu сериализует проходы: два параллельных drain'а не должны
	// отправить одну операцию дважды
	mu stdsync.Mutex
}

// NewService creates a new sync runner
func NewService(
	apiClient clientapi.ClientAPI,
	oplog storage.OperationLog,
	checker netcheck.Checker,
	tokens auth.TokenProvider,
	logger *slog.Logger,
	opts ...Option,
) Service {
	s := &service{
		apiClient: apiClient,
		oplog:     oplog,
		checker:   checker,
		tokens:    tokens,
		logger:    logger,
	}

	// Breaker страхует от долгих серий отказов бэкенда, но настроен
	// заметно выше retry-лимита: политика "до трех попыток" работает
	// независимо от него
	s.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "sync-dispatch",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 8
		},
	})

	for _, opt := range opts {
		opt(s)
	}

	if s.onDrop == nil {
		s.onDrop = func(op *models.PendingOperation) {
			logger.Warn("operation abandoned after retry cap",
				"operation_id", op.ID,
				"kind", op.Kind,
				"retries", op.RetryCount)
		}
	}

	return s
}

// Drain performs one pass over the pending operation log.
// Каждая операция обрабатывается независимо: отказ одной не
// останавливает и не откатывает остальные. Ошибки синхронизации
// никогда не доходят до UI — наружу уходит только ошибка чтения
// самой очереди.
func (s *service) Drain(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &Result{}

	// Связность проверяется перед каждым проходом, без кэша
	if !s.checker.IsOnline(ctx) {
		s.logger.Debug("offline, drain deferred")
		result.Deferred = true
		return result, nil
	}
	if !s.checker.IsBackendReachable(ctx) {
		s.logger.Debug("backend unreachable, drain deferred")
		result.Deferred = true
		return result, nil
	}

	ops, err := s.oplog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending operations: %w", err)
	}
	if len(ops) == 0 {
		return result, nil
	}

	// Токен берем один раз на проход; его отсутствие — такой же
	// ретраябельный отказ, как сетевая ошибка: неаутентифицированный
	// запрос не отправляем
	token, tokenErr := s.tokens.BearerToken(ctx)
	if tokenErr != nil {
		s.logger.Debug("no bearer token for drain", "error", tokenErr)
	}

	for _, op := range ops {
		result.Attempted++

		dispatchErr := tokenErr
		if dispatchErr == nil {
			dispatchErr = s.dispatch(ctx, token, op)
		}

		if dispatchErr == nil {
			// Сервер подтвердил — операция выполнена
			if err := s.oplog.Remove(ctx, op.ID); err != nil {
				s.logger.Warn("failed to remove synced operation",
					"operation_id", op.ID, "error", err)
				continue
			}
			result.Synced++
			continue
		}

		// Отказ: увеличиваем счетчик, по достижении предела операция
		// покидает очередь
		newCount := op.RetryCount + 1
		if newCount >= MaxRetries {
			if err := s.oplog.Remove(ctx, op.ID); err != nil {
				s.logger.Warn("failed to remove abandoned operation",
					"operation_id", op.ID, "error", err)
				continue
			}
			op.RetryCount = newCount
			result.Dropped++
			s.onDrop(op)
			continue
		}

		if err := s.oplog.UpdateRetry(ctx, op.ID, newCount); err != nil {
			s.logger.Warn("failed to update retry count",
				"operation_id", op.ID, "error", err)
			continue
		}
		s.logger.Debug("operation failed, will retry",
			"operation_id", op.ID,
			"kind", op.Kind,
			"retries", newCount,
			"error", dispatchErr)
		result.Retried++
	}

	s.logger.Info("drain completed",
		"attempted", result.Attempted,
		"synced", result.Synced,
		"retried", result.Retried,
		"dropped", result.Dropped)

	return result, nil
}

// PendingCount возвращает количество операций, ожидающих отправки
func (s *service) PendingCount(ctx context.Context) (int, error) {
	count, err := s.oplog.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending operations: %w", err)
	}
	return count, nil
}

// dispatch отправляет одну операцию через circuit breaker
func (s *service) dispatch(ctx context.Context, token string, op *models.PendingOperation) error {
	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.send(ctx, token, op)
	})
	return err
}

// send вызывает метод API, соответствующий виду операции
func (s *service) send(ctx context.Context, token string, op *models.PendingOperation) error {
	switch op.Kind {
	case models.OpCartAdd:
		return s.apiClient.CartAdd(ctx, token, cartRequest(op.Cart, true))
	case models.OpCartUpdate:
		return s.apiClient.CartUpdate(ctx, token, cartRequest(op.Cart, true))
	case models.OpCartRemove:
		return s.apiClient.CartRemove(ctx, token, cartRequest(op.Cart, false))
	case models.OpWishlistAdd:
		return s.apiClient.WishlistAdd(ctx, token, wishlistRequest(op.Wishlist))
	case models.OpWishlistRemove:
		return s.apiClient.WishlistRemove(ctx, token, wishlistRequest(op.Wishlist))
	default:
		return fmt.Errorf("unknown operation kind: %q", op.Kind)
	}
}

// cartRequest собирает wire-запрос из payload операции
func cartRequest(p *models.CartPayload, withQuantity bool) api.CartItemRequest {
	req := api.CartItemRequest{
		ProductID: p.ProductID,
		Type:      string(p.Type),
		Name:      p.Snapshot.Name,
		Price:     p.Snapshot.EffectivePrice(),
	}
	if withQuantity {
		req.Quantity = p.Quantity
	}
	return req
}

// wishlistRequest собирает wire-запрос из payload операции
func wishlistRequest(p *models.WishlistPayload) api.WishlistItemRequest {
	return api.WishlistItemRequest{
		ProductID: p.ProductID,
		Type:      string(p.Type),
		Name:      p.Snapshot.Name,
	}
}
