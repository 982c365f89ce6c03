package models

// ItemType определяет вид позиции в корзине или избранном
type ItemType string

const (
	ItemTypeProduct ItemType = "product" // обычный товар
	ItemTypeCombo   ItemType = "combo"   // комбо-набор
)

// DefaultMaxQuantity ограничивает количество одной позиции в корзине,
// если каталог не сообщил собственный лимит
const DefaultMaxQuantity = 99

// ProductSnapshot представляет денормализованную копию товара.
// Снимок сохраняется вместе с позицией и с отложенной операцией,
// чтобы корзина отображалась и отправлялась на сервер даже когда
// каталог недоступен.
type ProductSnapshot struct {
	ProductID     string   `json:"product_id" validate:"required"`
	Type          ItemType `json:"type"       validate:"required,oneof=product combo"`
	Name          string   `json:"name"`
	ImageURL      string   `json:"image_url"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"          validate:"gte=0"`
	DiscountPrice float64  `json:"discount_price" validate:"gte=0"`
	MaxQuantity   int      `json:"max_quantity"   validate:"gte=0"`
}

// EffectivePrice возвращает цену со скидкой, если она задана
func (p ProductSnapshot) EffectivePrice() float64 {
	if p.DiscountPrice > 0 && p.DiscountPrice < p.Price {
		return p.DiscountPrice
	}
	return p.Price
}

// Limit возвращает максимальное количество позиции с учетом дефолта
func (p ProductSnapshot) Limit() int {
	if p.MaxQuantity > 0 {
		return p.MaxQuantity
	}
	return DefaultMaxQuantity
}
