package order

import (
	"fmt"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/pkg/errs"
)

// Item is a value object describing one line of a comanda: which article,
// how many, and optional kitchen notes ("sin cebolla"). Items are set at
// creation and immutable afterwards.
type Item struct {
	articleID kernel.UUID
	quantity  int
	notes     string
}

// NewItem creates an order line. The article reference must be a valid UUID
// and the quantity positive; notes may be empty.
func NewItem(articleID kernel.UUID, quantity int, notes string) (Item, error) {
	if err := articleID.Validate(); err != nil {
		return Item{}, err
	}

	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		articleID: articleID,
		quantity:  quantity,
		notes:     notes,
	}, nil
}

// ArticleID returns the referenced menu article.
func (i Item) ArticleID() kernel.UUID {
	return i.articleID
}

// Quantity returns how many units of the article were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Notes returns the free-form kitchen notes for this line.
func (i Item) Notes() string {
	return i.notes
}
