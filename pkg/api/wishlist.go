package api

// WishlistItemRequest представляет позицию избранного в запросах add/remove
type WishlistItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type"       validate:"required,oneof=product combo"`
	Name      string `json:"name,omitempty"`
}

// WishlistItemResponse представляет позицию избранного в ответах сервера
type WishlistItemResponse struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
}

// WishlistResponse представляет состояние избранного на сервере
type WishlistResponse struct {
	Items []WishlistItemResponse `json:"items"`
}
