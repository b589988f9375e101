// Package ordertest builds valid orders for tests.
package ordertest

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// Line describes one line of a test order.
type Line struct {
	ProductID int64
	Name      string
	Quantity  int
	Price     string
	Image     string
}

// Builder assembles an order with sensible defaults.
type Builder struct {
	customerID int64
	total      string
	items      []Line
}

// New returns a builder for a customer 7 order of 25.50 with two items
// (2 x 10.00 and 1 x 5.50).
func New() *Builder {
	return &Builder{
		customerID: 7,
		total:      "25.50",
		items: []Line{
			{ProductID: 11, Name: "Ramen", Quantity: 2, Price: "10.00"},
			{ProductID: 12, Name: "Tea", Quantity: 1, Price: "5.50", Image: "tea.png"},
		},
	}
}

func (b *Builder) WithCustomer(id int64) *Builder {
	b.customerID = id
	return b
}

func (b *Builder) WithTotal(total string) *Builder {
	b.total = total
	return b
}

func (b *Builder) WithItems(items ...Line) *Builder {
	b.items = items
	return b
}

// Build constructs the order, failing the test on any validation error.
func (b *Builder) Build(t testing.TB) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer(b.customerID, "Dana", "+1 555 0100")
	require.NoError(t, err)
	location, err := kernel.NewLocation("12 Market Street", 40.7128, -74.0060)
	require.NoError(t, err)
	restaurant, err := order.NewRestaurant(3, "Noodle Bar")
	require.NoError(t, err)

	items := make([]order.Item, 0, len(b.items))
	for _, line := range b.items {
		item, itemErr := order.NewItem(line.ProductID, line.Name, line.Quantity, kernel.MustNewAmount(line.Price), line.Image)
		require.NoError(t, itemErr)
		items = append(items, item)
	}

	o, err := order.NewOrder(customer, location, restaurant, kernel.MustNewAmount(b.total), items)
	require.NoError(t, err)
	return o
}
