package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophshop/internal/client/state"
	"github.com/iudanet/gophshop/internal/client/storage"
	syncsvc "github.com/iudanet/gophshop/internal/client/sync"
	"github.com/iudanet/gophshop/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс менеджера корзины.
// Менеджер владеет локальной (оптимистичной) копией корзины: мутация
// сначала durably сохраняется локально, затем встает в очередь на
// отправку, затем запускается фоновая сверка. Наружу уходят только
// ошибки локального сохранения.
type Service interface {
	// AddItem добавляет товар в корзину; повторное добавление по тому же
	// (productID, type) сливает количества вместо создания дубликата
	AddItem(ctx context.Context, product models.ProductSnapshot, quantity int) error

	// UpdateQuantity меняет количество позиции; ноль означает удаление
	UpdateQuantity(ctx context.Context, itemID string, quantity int) error

	// RemoveItem удаляет позицию по локальному ID
	RemoveItem(ctx context.Context, itemID string) error

	// Clear опустошает локальную корзину
	Clear(ctx context.Context) error

	// List возвращает позиции корзины в порядке добавления
	List(ctx context.Context) ([]*models.CartItem, error)

	// Summary возвращает снимок корзины с агрегатами (количество, суммы)
	Summary(ctx context.Context) (*state.CartSnapshot, error)
}

// Option configures the cart service
type Option func(*service)

// WithRemoteClear makes Clear also enqueue one remove per item, so the
// remote cart does not drift from the local one
func WithRemoteClear(enabled bool) Option {
	return func(s *service) {
		s.remoteClear = enabled
	}
}

// service implements the cart manager
type service struct {
	storage     storage.CartStorage
	oplog       storage.OperationLog
	syncer      syncsvc.Service
	hub         *state.Hub
	logger      *slog.Logger
	remoteClear bool
}

// NewService creates a new cart manager. hub may be nil when nothing
// subscribes to state updates.
func NewService(
	cartStorage storage.CartStorage,
	oplog storage.OperationLog,
	syncer syncsvc.Service,
	hub *state.Hub,
	logger *slog.Logger,
	opts ...Option,
) Service {
	s := &service{
		storage: cartStorage,
		oplog:   oplog,
		syncer:  syncer,
		hub:     hub,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddItem добавляет товар в локальную корзину и ставит CART_ADD в очередь
func (s *service) AddItem(ctx context.Context, product models.ProductSnapshot, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	quantity = min(quantity, product.Limit())

	existing, err := s.storage.FindByKey(ctx, models.ItemKey{ProductID: product.ProductID, Type: product.Type})
	switch {
	case err == nil:
		// Позиция уже есть — сливаем количества с обрезкой по лимиту
		existing.Quantity = min(existing.Quantity+quantity, existing.Limit())
		if err := s.storage.SaveItem(ctx, existing); err != nil {
			return fmt.Errorf("failed to save cart item: %w", err)
		}
	case errors.Is(err, storage.ErrItemNotFound):
		item := newCartItem(product, quantity)
		if err := s.storage.SaveItem(ctx, item); err != nil {
			return fmt.Errorf("failed to save cart item: %w", err)
		}
	default:
		return fmt.Errorf("failed to look up cart item: %w", err)
	}

	// Локальная мутация сохранена; теперь операция для сервера.
	// Snapshot едет в payload, чтобы запрос можно было построить даже
	// когда каталог недоступен.
	op, err := models.NewCartOperation(models.OpCartAdd, models.CartPayload{
		ProductID: product.ProductID,
		Type:      product.Type,
		Quantity:  quantity,
		Snapshot:  product,
	})
	if err != nil {
		return fmt.Errorf("failed to build cart operation: %w", err)
	}
	if err := s.oplog.Enqueue(ctx, op); err != nil {
		return fmt.Errorf("failed to enqueue cart operation: %w", err)
	}

	s.publish(ctx)
	s.kickSync(ctx)
	return nil
}

// UpdateQuantity меняет количество позиции.
// Ноль семантически означает удаление: локально позиция исчезает и в
// очередь встает CART_REMOVE, а не update с нулем.
func (s *service) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	item, err := s.storage.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to get cart item: %w", err)
	}

	// Обрезаем в [0, max]
	quantity = max(quantity, 0)
	quantity = min(quantity, item.Limit())

	if quantity == 0 {
		return s.removeLocalAndEnqueue(ctx, item)
	}

	item.Quantity = quantity
	if err := s.storage.SaveItem(ctx, item); err != nil {
		return fmt.Errorf("failed to save cart item: %w", err)
	}

	op, err := models.NewCartOperation(models.OpCartUpdate, models.CartPayload{
		ProductID: item.ProductID,
		Type:      item.Type,
		Quantity:  quantity,
		Snapshot:  item.Snapshot(),
	})
	if err != nil {
		return fmt.Errorf("failed to build cart operation: %w", err)
	}
	if err := s.oplog.Enqueue(ctx, op); err != nil {
		return fmt.Errorf("failed to enqueue cart operation: %w", err)
	}

	s.publish(ctx)
	s.kickSync(ctx)
	return nil
}

// RemoveItem удаляет позицию по локальному ID
func (s *service) RemoveItem(ctx context.Context, itemID string) error {
	item, err := s.storage.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to get cart item: %w", err)
	}
	return s.removeLocalAndEnqueue(ctx, item)
}

// removeLocalAndEnqueue удаляет позицию локально и ставит CART_REMOVE.
// Серверу локальный ID не известен, операция ключуется (productID, type).
func (s *service) removeLocalAndEnqueue(ctx context.Context, item *models.CartItem) error {
	if err := s.storage.DeleteItem(ctx, item.ID); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	op, err := models.NewCartOperation(models.OpCartRemove, models.CartPayload{
		ProductID: item.ProductID,
		Type:      item.Type,
		Snapshot:  item.Snapshot(),
	})
	if err != nil {
		return fmt.Errorf("failed to build cart operation: %w", err)
	}
	if err := s.oplog.Enqueue(ctx, op); err != nil {
		return fmt.Errorf("failed to enqueue cart operation: %w", err)
	}

	s.publish(ctx)
	s.kickSync(ctx)
	return nil
}

// Clear опустошает локальную корзину. По умолчанию серверная корзина
// не трогается (чистка — сессионное действие); WithRemoteClear(true)
// дополнительно ставит по CART_REMOVE на каждую позицию.
func (s *service) Clear(ctx context.Context) error {
	var items []*models.CartItem
	if s.remoteClear {
		var err error
		items, err = s.storage.ListItems(ctx)
		if err != nil {
			return fmt.Errorf("failed to list cart items: %w", err)
		}
	}

	if err := s.storage.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	for _, item := range items {
		op, err := models.NewCartOperation(models.OpCartRemove, models.CartPayload{
			ProductID: item.ProductID,
			Type:      item.Type,
			Snapshot:  item.Snapshot(),
		})
		if err != nil {
			return fmt.Errorf("failed to build cart operation: %w", err)
		}
		if err := s.oplog.Enqueue(ctx, op); err != nil {
			return fmt.Errorf("failed to enqueue cart operation: %w", err)
		}
	}

	s.publish(ctx)
	if s.remoteClear && len(items) > 0 {
		s.kickSync(ctx)
	}
	return nil
}

// List возвращает позиции корзины в порядке добавления
func (s *service) List(ctx context.Context) ([]*models.CartItem, error) {
	items, err := s.storage.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

// Summary возвращает снимок корзины с агрегатами
func (s *service) Summary(ctx context.Context) (*state.CartSnapshot, error) {
	items, err := s.storage.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	snap := state.BuildCartSnapshot(items)
	return &snap, nil
}

// publish раздает свежий снимок подписчикам; ошибка чтения тут не
// фатальна для уже выполненной мутации
func (s *service) publish(ctx context.Context) {
	if s.hub == nil {
		return
	}
	items, err := s.storage.ListItems(ctx)
	if err != nil {
		s.logger.Warn("failed to build cart snapshot", "error", err)
		return
	}
	s.hub.PublishCart(items)
}

// kickSync запускает фоновую сверку fire-and-forget: мгновенная
// отправка когда сеть есть, отложенная — когда нет, один и тот же путь
func (s *service) kickSync(ctx context.Context) {
	// Сверка переживает контекст вызова: мутация уже закоммичена
	ctx = context.WithoutCancel(ctx)
	go func() {
		if _, err := s.syncer.Drain(ctx); err != nil {
			s.logger.Warn("background drain failed", "error", err)
		}
	}()
}

// newCartItem строит позицию корзины из снимка товара
func newCartItem(product models.ProductSnapshot, quantity int) *models.CartItem {
	return &models.CartItem{
		ID:            uuid.NewString(),
		ProductID:     product.ProductID,
		Type:          product.Type,
		Name:          product.Name,
		ImageURL:      product.ImageURL,
		Category:      product.Category,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Quantity:      quantity,
		MaxQuantity:   product.MaxQuantity,
		AddedAt:       time.Now(),
	}
}
