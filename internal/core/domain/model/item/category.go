package item

import (
	"fmt"

	"grabngo/internal/pkg/errs"
)

// Category classifies a catalog item by the kind of delivery it needs.
// It is a value object persisted and exposed in its snake_case string form.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	CategoryUnknown Category = iota

	// CategoryFood is restaurant-prepared food.
	CategoryFood

	// CategoryGrocery is grocery and convenience goods.
	CategoryGrocery

	// CategoryPharmacy is pharmacy and health products.
	CategoryPharmacy

	// CategoryPackage is point-to-point package delivery.
	CategoryPackage
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:  "unknown",
		CategoryFood:     "food",
		CategoryGrocery:  "grocery",
		CategoryPharmacy: "pharmacy",
		CategoryPackage:  "package",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryFood:     "food",
		CategoryGrocery:  "grocery",
		CategoryPharmacy: "pharmacy",
		CategoryPackage:  "package",
	}
}

// CategoryFromString parses the wire/database representation of a category.
// Returns an error for anything outside the known set.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category", fmt.Errorf("%q is not a valid category", s))
}

// Validate checks that the Category is one of the known values.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the snake_case name used in the API and the database.
// Implements fmt.Stringer; safe to call on any value, invalid ones
// render as "unknown".
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}
