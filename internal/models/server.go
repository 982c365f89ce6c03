package models

// ServerCartItem представляет позицию серверной корзины.
// Сервер каталога не ведет: имя и цена - денормализованный снимок,
// присланный клиентом при добавлении.
type ServerCartItem struct {
	ProductID string   `json:"product_id"`
	Type      ItemType `json:"type"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
}

// ServerWishlistItem представляет позицию серверного избранного
type ServerWishlistItem struct {
	ProductID string   `json:"product_id"`
	Type      ItemType `json:"type"`
	Name      string   `json:"name"`
}
