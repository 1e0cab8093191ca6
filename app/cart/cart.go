package cart

import (
	"github.com/shopspring/decimal"
)

// Item is one cart line. Price is a snapshot taken when the shopper
// added the product; it is never reconciled with live product state.
// A null price means the product uses custom pricing.
type Item struct {
	ProductID string              `json:"id"`
	Name      string              `json:"name"`
	Price     decimal.NullDecimal `json:"price"`
	Image     string              `json:"image"`
	Quantity  int                 `json:"quantity"`
}

// Cart holds a shopper's pending items. All mutation goes through the
// methods below so the quantity >= 1 invariant always holds.
type Cart struct {
	Items []Item `json:"items"`
}

func New() *Cart {
	return &Cart{Items: []Item{}}
}

// Add merges by product id: an existing line gains one unit, a new
// product starts at quantity 1.
func (c *Cart) Add(productID, name string, price decimal.NullDecimal, image string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, Item{
		ProductID: productID,
		Name:      name,
		Price:     price,
		Image:     image,
		Quantity:  1,
	})
}

// UpdateQuantity sets a line's quantity. Anything below 1 removes the
// line; zero or negative quantities never persist.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(productID string) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
}

// Subtotal sums price times quantity. Lines without a price (custom
// pricing) contribute zero instead of corrupting the total.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		if !item.Price.Valid {
			continue
		}
		total = total.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Count is the total unit count across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Clear() {
	c.Items = []Item{}
}
