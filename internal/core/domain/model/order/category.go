package order

import (
	"fmt"

	"trustpoints/internal/pkg/errs"
)

// Category classifies the item being delivered. The set is closed; anything
// that does not fit a specific category is CategoryOther.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota
	CategoryFood
	CategoryDocument
	CategoryElectronics
	CategoryFashion
	CategoryGrocery
	CategoryMedicine
	CategoryOther
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryFood:        "FOOD",
		CategoryDocument:    "DOCUMENT",
		CategoryElectronics: "ELECTRONICS",
		CategoryFashion:     "FASHION",
		CategoryGrocery:     "GROCERY",
		CategoryMedicine:    "MEDICINE",
		CategoryOther:       "OTHER",
	}
}

// CategoryFromString parses the wire representation of a category
// ("FOOD", "DOCUMENT", ...). Returns an error for unknown values.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid item category", s))
}

// Validate checks if the Category is one of the defined values.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid item category", c))
	}
	return nil
}

// String returns the wire name of the category. Implements fmt.Stringer.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
