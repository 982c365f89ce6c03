package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/gophshop/internal/models"
	"github.com/iudanet/gophshop/internal/server/storage"
	"github.com/iudanet/gophshop/pkg/api"
)

// WishlistHandler обрабатывает запросы к серверному избранному.
// Мутации идемпотентны по тем же причинам, что и у корзины.
type WishlistHandler struct {
	logger    *slog.Logger
	wishlists storage.WishlistStorage
	validate  *validator.Validate
}

// NewWishlistHandler создает новый handler для избранного
func NewWishlistHandler(logger *slog.Logger, wishlists storage.WishlistStorage) *WishlistHandler {
	return &WishlistHandler{
		logger:    logger,
		wishlists: wishlists,
		validate:  validator.New(),
	}
}

// Handle маршрутизирует запросы /api/v1/wishlist по HTTP методу
func (h *WishlistHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	case http.MethodDelete:
		h.remove(w, r)
	default:
		sendError(h.logger, w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// add обрабатывает POST /api/v1/wishlist
// Повторное добавление уже присутствующей позиции - no-op
func (h *WishlistHandler) add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	req, ok := h.decodeItem(w, r)
	if !ok {
		return
	}

	item := models.ServerWishlistItem{
		ProductID: req.ProductID,
		Type:      models.ItemType(req.Type),
		Name:      req.Name,
	}

	if err := h.wishlists.AddItem(ctx, userID, item); err != nil {
		h.logger.ErrorContext(ctx, "failed to add wishlist item", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "wishlist item added",
		slog.String("user_id", userID),
		slog.String("product_id", req.ProductID))

	w.WriteHeader(http.StatusNoContent)
}

// remove обрабатывает DELETE /api/v1/wishlist
// Удаление отсутствующей позиции отвечает 204: повтор не ошибка
func (h *WishlistHandler) remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	req, ok := h.decodeItem(w, r)
	if !ok {
		return
	}

	if err := h.wishlists.RemoveItem(ctx, userID, req.ProductID, models.ItemType(req.Type)); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove wishlist item", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// list обрабатывает GET /api/v1/wishlist
func (h *WishlistHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.wishlists.ListItems(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list wishlist items", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.WishlistResponse{
		Items: make([]api.WishlistItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, api.WishlistItemResponse{
			ProductID: item.ProductID,
			Type:      string(item.Type),
			Name:      item.Name,
		})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// decodeItem читает и валидирует тело запроса
func (h *WishlistHandler) decodeItem(w http.ResponseWriter, r *http.Request) (api.WishlistItemRequest, bool) {
	var req api.WishlistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to decode wishlist request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return req, false
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid wishlist request", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return req, false
	}

	return req, true
}
