// Package cart holds the shopping cart: an ordered list of line items, one
// per product, with totals derived on demand. The cart lives in memory only.
package cart

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/glowcart/internal/client/models"
	"github.com/shopspring/decimal"
)

// DefaultQuantity is used when a caller does not say how many units to add.
const DefaultQuantity = 1

// Snapshot is a consistent copy of the cart and its totals.
type Snapshot struct {
	Items      []models.LineItem
	TotalItems int
	TotalPrice decimal.Decimal
}

func (s Snapshot) Empty() bool {
	return len(s.Items) == 0
}

type Cart struct {
	mu     sync.Mutex
	items  []models.LineItem
	subs   map[int]func(Snapshot)
	nextID int
}

func New() *Cart {
	return &Cart{subs: make(map[int]func(Snapshot))}
}

// Subscribe registers fn for every subsequent change. The returned function
// removes the subscription.
func (c *Cart) Subscribe(fn func(Snapshot)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Add puts quantity units of p into the cart. A quantity below one counts as
// one. When p is already present its quantity grows and the attributes
// captured on the first add are kept.
func (c *Cart) Add(p models.Product, quantity int) {
	if quantity < 1 {
		quantity = DefaultQuantity
	}

	c.update(func() bool {
		if i := c.indexOf(p.ID); i >= 0 {
			c.items[i].Quantity = c.items[i].EffectiveQuantity() + quantity
			return true
		}
		c.items = append(c.items, models.NewLineItem(p, quantity))
		return true
	})
}

func (c *Cart) AddOne(p models.Product) {
	c.Add(p, DefaultQuantity)
}

// Remove drops the product's line. Unknown ids are ignored.
func (c *Cart) Remove(productID int64) {
	c.update(func() bool {
		i := c.indexOf(productID)
		if i < 0 {
			return false
		}
		c.items = slices.Delete(c.items, i, i+1)
		return true
	})
}

// SetQuantity replaces the line's quantity; a quantity below one removes the
// line. Unknown ids are ignored.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}

	c.update(func() bool {
		i := c.indexOf(productID)
		if i < 0 {
			return false
		}
		c.items[i].Quantity = quantity
		return true
	})
}

func (c *Cart) Clear() {
	c.update(func() bool {
		if len(c.items) == 0 {
			return false
		}
		c.items = nil
		return true
	})
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []models.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *Cart) Contains(productID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indexOf(productID) >= 0
}

// Quantity is the effective quantity held for the product, 0 when absent.
func (c *Cart) Quantity(productID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(productID); i >= 0 {
		return c.items[i].EffectiveQuantity()
	}
	return 0
}

// TotalItems sums effective quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalItems(c.items)
}

// TotalPrice sums unit price times effective quantity.
func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalPrice(c.items)
}

func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Cart) snapshotLocked() Snapshot {
	return Snapshot{
		Items:      slices.Clone(c.items),
		TotalItems: totalItems(c.items),
		TotalPrice: totalPrice(c.items),
	}
}

// update applies mutate under the lock and, when it reports a change,
// notifies subscribers after the lock is released.
func (c *Cart) update(mutate func() bool) {
	c.mu.Lock()
	if !mutate() {
		c.mu.Unlock()
		return
	}
	snap := c.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (c *Cart) indexOf(productID int64) int {
	return slices.IndexFunc(c.items, func(li models.LineItem) bool {
		return li.ProductID == productID
	})
}

func totalItems(items []models.LineItem) int {
	n := 0
	for _, li := range items {
		n += li.EffectiveQuantity()
	}
	return n
}

func totalPrice(items []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.Subtotal())
	}
	return total
}
