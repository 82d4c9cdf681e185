package order

import (
	"errors"
	"fmt"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/pkg/errs"
	"tradelink/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a product, the quantity sold, the unit rate,
// a line discount, and the free-text scheme applied by the salesperson.
// Item is an immutable value object.
type Item struct {
	productID   string
	productName string
	qty         int
	rate        kernel.Money
	discount    kernel.Money
	scheme      string

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
// Quantity must be positive and the line discount may not exceed the line
// gross (rate times quantity).
func NewItem(productID, productName string, qty int, rate, discount kernel.Money, scheme string) (Item, error) {
	if productID == "" {
		return Item{}, errs.NewValueIsRequiredError("product id")
	}
	if qty <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if err := errors.Join(rate.Validate(), discount.Validate()); err != nil {
		return Item{}, err
	}
	if discount > rate.Mul(qty) {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("line discount %s exceeds line gross %s", discount, rate.Mul(qty)))
	}

	return Item{
		productID:   productID,
		productName: productName,
		qty:         qty,
		rate:        rate,
		discount:    discount,
		scheme:      scheme,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the product identifier.
func (i Item) ProductID() string {
	return i.productID
}

// ProductName returns the product display name.
func (i Item) ProductName() string {
	return i.productName
}

// Qty returns the quantity sold.
func (i Item) Qty() int {
	return i.qty
}

// Rate returns the unit rate.
func (i Item) Rate() kernel.Money {
	return i.rate
}

// Discount returns the line discount.
func (i Item) Discount() kernel.Money {
	return i.discount
}

// Scheme returns the free-text scheme note.
func (i Item) Scheme() string {
	return i.scheme
}

// LineTotal returns the line net amount: rate times quantity minus the line
// discount. The constructor guarantees the result is not negative.
func (i Item) LineTotal() kernel.Money {
	total, _ := i.rate.Mul(i.qty).Sub(i.discount)
	return total
}
