package order

import (
	"errors"
	"fmt"
	"strings"

	"trustpoints/internal/pkg/errs"
	"trustpoints/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// Item describes the package being delivered: what it is, how heavy it is,
// and whether it needs careful handling. Item is an immutable value object;
// weight and fragility drive the delivery cost and the hunter reward.
type Item struct { //nolint:recvcheck //using for validation
	name        string
	category    Category
	weightKg    float64
	fragile     bool
	photoURL    string
	description string

	guard guard.ConstructorGuard
}

// NewItem creates a validated Item. The name is required, the category must
// be one of the closed enum values, and the weight cannot be negative.
// Photo URL and description are optional.
func NewItem(name string, category Category, weightKg float64, fragile bool,
	photoURL string, description string,
) (Item, error) {
	item := Item{
		fragile:     fragile,
		photoURL:    photoURL,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setCategory(category),
		item.setWeightKg(weightKg),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks that the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the item's display name.
func (i Item) Name() string {
	return i.name
}

// Category returns the item's category.
func (i Item) Category() Category {
	return i.category
}

// WeightKg returns the item's weight in kilograms.
func (i Item) WeightKg() float64 {
	return i.weightKg
}

// IsFragile reports whether the item needs careful handling.
// Fragile items cost more to send and reward the hunter more.
func (i Item) IsFragile() bool {
	return i.fragile
}

// PhotoURL returns an optional reference to a photo of the item.
func (i Item) PhotoURL() string {
	return i.photoURL
}

// Description returns the optional free-text description.
func (i Item) Description() string {
	return i.description
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = strings.TrimSpace(name)
	return nil
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func (i *Item) setWeightKg(weightKg float64) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item weight",
			fmt.Errorf("%g kg is negative", weightKg))
	}
	i.weightKg = weightKg
	return nil
}
