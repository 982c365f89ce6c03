package wishlist

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

// Service определяет интерфейс менеджера избранного.
// Та же форма что у корзины, но без количественной семантики:
// повторное добавление существующей позиции — no-op.
type Service interface {
	// AddItem добавляет товар в избранное; дубликат по (productID, type)
	// не создается
	AddItem(ctx context.Context, product models.ProductSnapshot) error

	// RemoveItem удаляет позицию по локальному ID
	RemoveItem(ctx context.Context, itemID string) error

	// Clear опустошает локальное избранное
	Clear(ctx context.Context) error

	// List возвращает позиции в порядке добавления
	List(ctx context.Context) ([]*models.WishlistItem, error)

	// Contains сообщает, есть ли товар в избранном
	Contains(ctx context.Context, key models.ItemKey) (bool, error)
}

// service implements the wishlist manager
type service struct {
	storage storage.WishlistStorage
	oplog   storage.OperationLog
	syncer  syncsvc.Service
	hub     *state.Hub
	logger  *slog.Logger
}

// NewService creates a new wishlist manager. hub may be nil.
func NewService(
	wishlistStorage storage.WishlistStorage,
	oplog storage.OperationLog,
	syncer syncsvc.Service,
	hub *state.Hub,
	logger *slog.Logger,
) Service {
	return &service{
		storage: wishlistStorage,
		oplog:   oplog,
		syncer:  syncer,
		hub:     hub,
		logger:  logger,
	}
}

// AddItem добавляет товар в локальное избранное и ставит WISHLIST_ADD
func (s *service) AddItem(ctx context.Context, product models.ProductSnapshot) error {
	key := models.ItemKey{ProductID: product.ProductID, Type: product.Type}

	_, err := s.storage.FindByKey(ctx, key)
	switch {
	case err == nil:
		// Уже в избранном — ни локальной мутации, ни операции
		return nil
	case errors.Is(err, storage.ErrItemNotFound):
		// continue
	default:
		return fmt.Errorf("failed to look up wishlist item: %w", err)
	}

	item := &models.WishlistItem{
		ID:            uuid.NewString(),
		ProductID:     product.ProductID,
		Type:          product.Type,
		Name:          product.Name,
		ImageURL:      product.ImageURL,
		Category:      product.Category,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		AddedAt:       time.Now(),
	}
	if err := s.storage.SaveItem(ctx, item); err != nil {
		return fmt.Errorf("failed to save wishlist item: %w", err)
	}

	op, err := models.NewWishlistOperation(models.OpWishlistAdd, models.WishlistPayload{
		ProductID: product.ProductID,
		Type:      product.Type,
		Snapshot:  product,
	})
	if err != nil {
		return fmt.Errorf("failed to build wishlist operation: %w", err)
	}
	if err := s.oplog.Enqueue(ctx, op); err != nil {
		return fmt.Errorf("failed to enqueue wishlist operation: %w", err)
	}

	s.publish(ctx)
	s.kickSync(ctx)
	return nil
}

// RemoveItem удаляет позицию по локальному ID и ставит WISHLIST_REMOVE
func (s *service) RemoveItem(ctx context.Context, itemID string) error {
	item, err := s.storage.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to get wishlist item: %w", err)
	}

	if err := s.storage.DeleteItem(ctx, item.ID); err != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}

	op, err := models.NewWishlistOperation(models.OpWishlistRemove, models.WishlistPayload{
		ProductID: item.ProductID,
		Type:      item.Type,
		Snapshot:  item.Snapshot(),
	})
	if err != nil {
		return fmt.Errorf("failed to build wishlist operation: %w", err)
	}
	if err := s.oplog.Enqueue(ctx, op); err != nil {
		return fmt.Errorf("failed to enqueue wishlist operation: %w", err)
	}

	s.publish(ctx)
	s.kickSync(ctx)
	return nil
}

// Clear опустошает локальное избранное; серверная копия не трогается
func (s *service) Clear(ctx context.Context) error {
	if err := s.storage.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear wishlist: %w", err)
	}
	s.publish(ctx)
	return nil
}

// List возвращает позиции в порядке добавления
func (s *service) List(ctx context.Context) ([]*models.WishlistItem, error) {
	items, err := s.storage.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist items: %w", err)
	}
	return items, nil
}

// Contains сообщает, есть ли товар в избранном
func (s *service) Contains(ctx context.Context, key models.ItemKey) (bool, error) {
	_, err := s.storage.FindByKey(ctx, key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrItemNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("failed to look up wishlist item: %w", err)
	}
}

// publish раздает свежий снимок подписчикам
func (s *service) publish(ctx context.Context) {
	if s.hub == nil {
		return
	}
	items, err := s.storage.ListItems(ctx)
	if err != nil {
		s.logger.Warn("failed to build wishlist snapshot", "error", err)
		return
	}
	s.hub.PublishWishlist(items)
}

// kickSync запускает фоновую сверку fire-and-forget
func (s *service) kickSync(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if _, err := s.syncer.Drain(ctx); err != nil {
			s.logger.Warn("background drain failed", "error", err)
		}
	}()
}
