package order

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a product snapshot with quantity and unit price.
// Items are written together with their order and never change afterwards.
type Item struct {
	productID   int64
	productName string
	quantity    int
	price       kernel.Amount
	image       string
	guard       guard.ConstructorGuard
}

// NewItem validates a line item. The image reference is optional.
//
// Parameters:
//   - productID: Catalog identifier of the product (must be positive)
//   - productName: Product name at the time of ordering (must not be blank)
//   - quantity: Number of units (must be greater than 0)
//   - price: Unit price (must be created via kernel.NewAmount; zero is allowed)
//   - image: Optional image reference, stored trimmed
//
// Returns:
//   - Item: A valid line item
//   - error: Joined validation errors for every invalid argument
//
// Example:
//
//	item, err := order.NewItem(11, "Ramen", 2, kernel.MustNewAmount("10.00"), "ramen.png")
//	if err != nil {
//	    // Handle validation error
//	}
func NewItem(productID int64, productName string, quantity int, price kernel.Amount, image string) (Item, error) {
	productName = strings.TrimSpace(productName)

	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := errors.Join(
		requirePositive("product id", productID),
		requireText("product name", productName),
		quantityErr,
		price.Validate(),
	); err != nil {
		return Item{}, err
	}

	return Item{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		price:       price,
		image:       strings.TrimSpace(image),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() int64     { return i.productID }
func (i Item) ProductName() string  { return i.productName }
func (i Item) Quantity() int        { return i.quantity }
func (i Item) Price() kernel.Amount { return i.price }

// Image returns the image reference, empty when the item has none.
func (i Item) Image() string { return i.image }
