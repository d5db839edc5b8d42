package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePrice(t *testing.T) {
	valid := []string{"1.50", "999.99", "0.01", "5", "12.3", "100"}
	for _, price := range valid {
		assert.NoError(t, ValidatePrice(price), "price %q", price)
	}

	invalid := []string{"1000.00", "1234.5", "1.999", "-1.50", "abc", "", "1,50", "1.", ".50"}
	for _, price := range invalid {
		assert.Error(t, ValidatePrice(price), "price %q", price)
	}
}
