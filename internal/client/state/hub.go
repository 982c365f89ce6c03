package state

import (
	"sync"

	"github.com/iudanet/gophshop/internal/models"
)

// CartSnapshot — локальное состояние корзины с производными агрегатами
// для слоя представления
type CartSnapshot struct {
	Items         []*models.CartItem
	Count         int     // суммарное количество единиц
	Total         float64 // сумма по базовым ценам
	DiscountTotal float64 // сумма по действующим (скидочным) ценам
}

// WishlistSnapshot — локальное состояние избранного
type WishlistSnapshot struct {
	Items []*models.WishlistItem
	Count int
}

// BuildCartSnapshot вычисляет агрегаты по списку позиций
func BuildCartSnapshot(items []*models.CartItem) CartSnapshot {
	snap := CartSnapshot{Items: items}
	for _, item := range items {
		snap.Count += item.Quantity
		snap.Total += item.Price * float64(item.Quantity)
		snap.DiscountTotal += item.EffectivePrice() * float64(item.Quantity)
	}
	return snap
}

// BuildWishlistSnapshot собирает снимок избранного
func BuildWishlistSnapshot(items []*models.WishlistItem) WishlistSnapshot {
	return WishlistSnapshot{Items: items, Count: len(items)}
}

// Hub раздает снимки локального состояния подписчикам (экранам).
// Менеджеры публикуют снимок после каждой мутации; подписчик всегда
// видит последнюю версию. Отправка неблокирующая: медленный экран
// не тормозит мутацию, устаревший снимок просто замещается свежим.
type Hub struct {
	cartSubs map[int]chan CartSnapshot
	wishSubs map[int]chan WishlistSnapshot
	nextID   int
	mu       sync.Mutex
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		cartSubs: make(map[int]chan CartSnapshot),
		wishSubs: make(map[int]chan WishlistSnapshot),
	}
}

// SubscribeCart возвращает канал снимков корзины и функцию отписки
func (h *Hub) SubscribeCart() (<-chan CartSnapshot, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan CartSnapshot, 1)
	h.cartSubs[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.cartSubs, id)
	}
}

// SubscribeWishlist возвращает канал снимков избранного и функцию отписки
func (h *Hub) SubscribeWishlist() (<-chan WishlistSnapshot, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan WishlistSnapshot, 1)
	h.wishSubs[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.wishSubs, id)
	}
}

// PublishCart рассылает снимок корзины всем подписчикам
func (h *Hub) PublishCart(items []*models.CartItem) {
	snap := BuildCartSnapshot(items)

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.cartSubs {
		sendLatest(ch, snap)
	}
}

// PublishWishlist рассылает снимок избранного всем подписчикам
func (h *Hub) PublishWishlist(items []*models.WishlistItem) {
	snap := BuildWishlistSnapshot(items)

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.wishSubs {
		sendLatest(ch, snap)
	}
}

// sendLatest кладет снимок в буферизованный канал, вытесняя
// непрочитанный старый: подписчику важна только последняя версия
func sendLatest[T any](ch chan T, snap T) {
	select {
	case ch <- snap:
		return
	default:
	}
	// Канал занят непрочитанным снимком — забираем его и кладем свежий
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}
