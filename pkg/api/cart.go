package api

// CartItemRequest представляет позицию корзины в запросах add/update/remove.
// Сервер идентифицирует позицию по паре (product_id, type), поэтому
// локальные идентификаторы клиента сюда не попадают.
type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type"       validate:"required,oneof=product combo"`
	// Name и Price - денормализованный снимок товара на момент добавления.
	// Сервер каталога не ведет, поэтому хранит то, что прислал клиент.
	Name     string  `json:"name,omitempty"`
	Price    float64 `json:"price,omitempty" validate:"gte=0"`
	Quantity int     `json:"quantity,omitempty" validate:"gte=0,lte=99"`
}

// CartItemResponse представляет позицию корзины в ответах сервера
type CartItemResponse struct {
	ProductID string  `json:"product_id"`
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CartResponse представляет состояние корзины на сервере
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}
