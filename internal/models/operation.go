package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OperationKind определяет вид отложенной операции
type OperationKind string

const (
	OpCartAdd        OperationKind = "CART_ADD"
	OpCartUpdate     OperationKind = "CART_UPDATE"
	OpCartRemove     OperationKind = "CART_REMOVE"
	OpWishlistAdd    OperationKind = "WISHLIST_ADD"
	OpWishlistRemove OperationKind = "WISHLIST_REMOVE"
)

// validate проверяет структуры payload по validate-тегам
var validate = validator.New()

// CartPayload представляет типизированный payload операций над корзиной
type CartPayload struct {
	ProductID string          `json:"product_id" validate:"required"`
	Type      ItemType        `json:"type"       validate:"required,oneof=product combo"`
	Quantity  int             `json:"quantity"   validate:"gte=0,lte=99"`
	Snapshot  ProductSnapshot `json:"snapshot"`
}

// WishlistPayload представляет типизированный payload операций над избранным
type WishlistPayload struct {
	ProductID string          `json:"product_id" validate:"required"`
	Type      ItemType        `json:"type"       validate:"required,oneof=product combo"`
	Snapshot  ProductSnapshot `json:"snapshot"`
}

// PendingOperation представляет одну отложенную мутацию для сервера.
// Тип-сумма по пяти видам операций: Kind определяет какой из payload
// полей заполнен, Validate следит за их согласованностью.
type PendingOperation struct {
	EnqueuedAt time.Time        `json:"enqueued_at"`
	Cart       *CartPayload     `json:"cart,omitempty"`
	Wishlist   *WishlistPayload `json:"wishlist,omitempty"`
	ID         string           `json:"id"`
	Kind       OperationKind    `json:"kind"`
	RetryCount int              `json:"retry_count"`
}

// NewCartOperation создает операцию над корзиной с новым ID
func NewCartOperation(kind OperationKind, payload CartPayload) (*PendingOperation, error) {
	op := &PendingOperation{
		ID:         newOperationID(kind),
		Kind:       kind,
		Cart:       &payload,
		EnqueuedAt: time.Now(),
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// NewWishlistOperation создает операцию над избранным с новым ID
func NewWishlistOperation(kind OperationKind, payload WishlistPayload) (*PendingOperation, error) {
	op := &PendingOperation{
		ID:         newOperationID(kind),
		Kind:       kind,
		Wishlist:   &payload,
		EnqueuedAt: time.Now(),
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// Validate проверяет что вид операции известен и payload ему соответствует.
// Некорректная операция не должна попасть в очередь.
func (op *PendingOperation) Validate() error {
	if op.ID == "" {
		return fmt.Errorf("operation id is empty")
	}

	switch op.Kind {
	case OpCartAdd, OpCartUpdate, OpCartRemove:
		if op.Cart == nil {
			return fmt.Errorf("operation %s requires cart payload", op.Kind)
		}
		if op.Wishlist != nil {
			return fmt.Errorf("operation %s must not carry wishlist payload", op.Kind)
		}
		if err := validate.Struct(op.Cart); err != nil {
			return fmt.Errorf("invalid cart payload: %w", err)
		}
	case OpWishlistAdd, OpWishlistRemove:
		if op.Wishlist == nil {
			return fmt.Errorf("operation %s requires wishlist payload", op.Kind)
		}
		if op.Cart != nil {
			return fmt.Errorf("operation %s must not carry cart payload", op.Kind)
		}
		if err := validate.Struct(op.Wishlist); err != nil {
			return fmt.Errorf("invalid wishlist payload: %w", err)
		}
	default:
		return fmt.Errorf("unknown operation kind: %q", op.Kind)
	}

	return nil
}

// newOperationID генерирует уникальный идентификатор операции:
// вид + момент создания + случайный суффикс
func newOperationID(kind OperationKind) string {
	return fmt.Sprintf("%s-%d-%s", kind, time.Now().UnixNano(), uuid.NewString()[:8])
}
