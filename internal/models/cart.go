package models

import "time"

// ItemKey однозначно идентифицирует позицию внутри корзины или избранного.
// Второй add по тому же ключу сливается с существующей позицией,
// а не создает дубликат.
type ItemKey struct {
	ProductID string
	Type      ItemType
}

// CartItem представляет позицию локальной корзины.
// Локальная копия авторитетна для UI: серверная корзина догоняет её
// через очередь отложенных операций.
type CartItem struct {
	AddedAt       time.Time `json:"added_at"`
	ID            string    `json:"id"` // локальный идентификатор (UUID), серверу не известен
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	ImageURL      string    `json:"image_url"`
	Category      string    `json:"category"`
	Type          ItemType  `json:"type"`
	Price         float64   `json:"price"`
	DiscountPrice float64   `json:"discount_price"`
	Quantity      int       `json:"quantity"`
	MaxQuantity   int       `json:"max_quantity"`
}

// Key возвращает ключ уникальности позиции
func (i CartItem) Key() ItemKey {
	return ItemKey{ProductID: i.ProductID, Type: i.Type}
}

// Limit возвращает максимальное количество позиции с учетом дефолта
func (i CartItem) Limit() int {
	if i.MaxQuantity > 0 {
		return i.MaxQuantity
	}
	return DefaultMaxQuantity
}

// EffectivePrice возвращает цену со скидкой, если она задана
func (i CartItem) EffectivePrice() float64 {
	if i.DiscountPrice > 0 && i.DiscountPrice < i.Price {
		return i.DiscountPrice
	}
	return i.Price
}

// Snapshot восстанавливает денормализованный снимок товара из позиции
func (i CartItem) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ProductID:     i.ProductID,
		Type:          i.Type,
		Name:          i.Name,
		ImageURL:      i.ImageURL,
		Category:      i.Category,
		Price:         i.Price,
		DiscountPrice: i.DiscountPrice,
		MaxQuantity:   i.MaxQuantity,
	}
}
