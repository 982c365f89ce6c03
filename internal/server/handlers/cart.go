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

// CartHandler обрабатывает запросы к серверной корзине.
// Все мутации идемпотентны: клиент повторяет операции из offline-очереди,
// и повторная доставка не должна менять итоговое состояние или падать.
type CartHandler struct {
	logger   *slog.Logger
	carts    storage.CartStorage
	validate *validator.Validate
}

// NewCartHandler создает новый handler для корзины
func NewCartHandler(logger *slog.Logger, carts storage.CartStorage) *CartHandler {
	return &CartHandler{
		logger:   logger,
		carts:    carts,
		validate: validator.New(),
	}
}

// Handle маршрутизирует запросы /api/v1/cart по HTTP методу
func (h *CartHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	case http.MethodPut:
		h.update(w, r)
	case http.MethodDelete:
		h.remove(w, r)
	default:
		sendError(h.logger, w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// add обрабатывает POST /api/v1/cart
// Слияние позиции в корзину: повтор add увеличивает количество до лимита
func (h *CartHandler) add(w http.ResponseWriter, r *http.Request) {
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

	if req.Quantity < 1 {
		sendError(h.logger, w, "quantity must be at least 1", http.StatusBadRequest)
		return
	}

	if err := h.carts.AddItem(ctx, userID, serverCartItem(req)); err != nil {
		h.logger.ErrorContext(ctx, "failed to add cart item", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "cart item added",
		slog.String("user_id", userID),
		slog.String("product_id", req.ProductID))

	w.WriteHeader(http.StatusNoContent)
}

// update обрабатывает PUT /api/v1/cart
// Устанавливает абсолютное количество; ноль означает удаление позиции
func (h *CartHandler) update(w http.ResponseWriter, r *http.Request) {
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

	if req.Quantity == 0 {
		if err := h.carts.RemoveItem(ctx, userID, req.ProductID, models.ItemType(req.Type)); err != nil {
			h.logger.ErrorContext(ctx, "failed to remove cart item", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.carts.SetQuantity(ctx, userID, serverCartItem(req)); err != nil {
		h.logger.ErrorContext(ctx, "failed to update cart item", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "cart item updated",
		slog.String("user_id", userID),
		slog.String("product_id", req.ProductID),
		slog.Int("quantity", req.Quantity))

	w.WriteHeader(http.StatusNoContent)
}

// remove обрабатывает DELETE /api/v1/cart
// Удаление отсутствующей позиции отвечает 204: повтор не ошибка
func (h *CartHandler) remove(w http.ResponseWriter, r *http.Request) {
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

	if err := h.carts.RemoveItem(ctx, userID, req.ProductID, models.ItemType(req.Type)); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove cart item", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// list обрабатывает GET /api/v1/cart
func (h *CartHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.carts.ListItems(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list cart items", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.CartResponse{
		Items: make([]api.CartItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, api.CartItemResponse{
			ProductID: item.ProductID,
			Type:      string(item.Type),
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
		resp.Total += item.Price * float64(item.Quantity)
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// decodeItem читает и валидирует тело запроса
func (h *CartHandler) decodeItem(w http.ResponseWriter, r *http.Request) (api.CartItemRequest, bool) {
	var req api.CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to decode cart request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return req, false
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid cart request", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return req, false
	}

	return req, true
}

func serverCartItem(req api.CartItemRequest) models.ServerCartItem {
	return models.ServerCartItem{
		ProductID: req.ProductID,
		Type:      models.ItemType(req.Type),
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
	}
}
