package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/gophshop/internal/models"
)

func (c *Cli) runCartAdd(ctx context.Context) error {
	c.io.Println("=== Add to Cart ===")
	c.io.Println()

	product, err := c.readProduct()
	if err != nil {
		return err
	}

	quantityStr, err := c.io.ReadInput("Quantity [1]: ")
	if err != nil {
		return fmt.Errorf("failed to read quantity: %w", err)
	}
	quantity := 1
	if quantityStr != "" {
		quantity, err = strconv.Atoi(quantityStr)
		if err != nil {
			return fmt.Errorf("invalid quantity: %w", err)
		}
	}

	if err := c.cartService.AddItem(ctx, product, quantity); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Added to cart.")
	return nil
}

func (c *Cli) runCartList(ctx context.Context) error {
	summary, err := c.cartService.Summary(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Cart ===")
	c.io.Println()

	if len(summary.Items) == 0 {
		c.io.Println("Cart is empty.")
		return nil
	}

	for _, item := range summary.Items {
		c.io.Printf("%s  %s (%s) x%d  %.2f\n",
			item.ID, item.Name, item.Type, item.Quantity,
			item.EffectivePrice()*float64(item.Quantity))
	}

	c.io.Println()
	c.io.Printf("Items: %d\n", summary.Count)
	c.io.Printf("Total: %.2f\n", summary.DiscountTotal)
	if summary.Total > summary.DiscountTotal {
		c.io.Printf("You save: %.2f\n", summary.Total-summary.DiscountTotal)
	}
	return nil
}

func (c *Cli) runCartUpdate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: cart update <id> <quantity>")
	}

	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity: %w", err)
	}

	if err := c.cartService.UpdateQuantity(ctx, args[0], quantity); err != nil {
		return err
	}

	if quantity == 0 {
		c.io.Println("✓ Item removed from cart.")
	} else {
		c.io.Println("✓ Quantity updated.")
	}
	return nil
}

func (c *Cli) runCartRemove(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: cart remove <id>")
	}

	if err := c.cartService.RemoveItem(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Item removed from cart.")
	return nil
}

func (c *Cli) runCartClear(ctx context.Context) error {
	confirm, err := c.io.ReadInput("Clear the cart? [y/N]: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if confirm != "y" && confirm != "Y" {
		c.io.Println("Canceled.")
		return nil
	}

	if err := c.cartService.Clear(ctx); err != nil {
		return err
	}

	c.io.Println("✓ Cart cleared.")
	return nil
}

// readProduct запрашивает описание товара у пользователя.
// В полноценном приложении снимок приходит из каталога; CLI собирает
// его с клавиатуры.
func (c *Cli) readProduct() (models.ProductSnapshot, error) {
	var product models.ProductSnapshot

	productID, err := c.io.ReadInput("Product ID: ")
	if err != nil {
		return product, fmt.Errorf("failed to read product id: %w", err)
	}

	typeStr, err := c.io.ReadInput("Type (product/combo) [product]: ")
	if err != nil {
		return product, fmt.Errorf("failed to read type: %w", err)
	}
	itemType := models.ItemTypeProduct
	if typeStr == string(models.ItemTypeCombo) {
		itemType = models.ItemTypeCombo
	}

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return product, fmt.Errorf("failed to read name: %w", err)
	}

	priceStr, err := c.io.ReadInput("Price: ")
	if err != nil {
		return product, fmt.Errorf("failed to read price: %w", err)
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return product, fmt.Errorf("invalid price: %w", err)
	}

	product = models.ProductSnapshot{
		ProductID: productID,
		Type:      itemType,
		Name:      name,
		Price:     price,
	}
	return product, nil
}
