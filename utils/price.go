package utils

import (
	"fmt"
	"regexp"
)

// Recipe prices are decimal strings constrained like numeric(5,2): up to
// 5 digits total, 2 of them after the point, so at most 3 before it
// (largest representable value: 999.99).
var priceFormat = regexp.MustCompile(`^\d{1,3}(\.\d{1,2})?$`)

// ValidatePrice checks a submitted price string against the storage
// column's numeric(5,2) constraint
func ValidatePrice(price string) error {
	if !priceFormat.MatchString(price) {
		return fmt.Errorf("invalid price %q: expected up to 3 digits, optionally followed by up to 2 decimal places", price)
	}
	return nil
}
