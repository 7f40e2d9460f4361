package product

import (
	"fmt"
	"strings"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"
)

// Category groups the menu. The zero value is invalid.
type Category int

const (
	UnknownCategory Category = iota
	Snack
	Side
	Drink
	Dessert
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		Snack:   "snack",
		Side:    "side",
		Drink:   "drink",
		Dessert: "dessert",
	}
}

// Categories lists every valid category in menu order.
func Categories() []Category {
	return []Category{Snack, Side, Drink, Dessert}
}

func CategoryFromString(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for category, str := range getCategoryStrings() {
		if str == name {
			return category, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", s))
}

func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := CategoryFromString(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
