package customer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"
)

const cpfLength = 11

// CPF is the Brazilian taxpayer number, kept as its 11 digits.
type CPF struct {
	digits string
}

// NewCPF accepts the bare digits or the formatted "000.000.000-00" form.
func NewCPF(s string) (CPF, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CPF{}, errs.NewValueIsRequiredError("cpf")
	}

	digits := strings.Map(func(r rune) rune {
		if r == '.' || r == '-' {
			return -1
		}
		return r
	}, s)
	if len(digits) != cpfLength || strings.IndexFunc(digits, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return CPF{}, errs.NewValueIsInvalidErrorWithCause("cpf", fmt.Errorf("%q must have %d digits", s, cpfLength))
	}
	return CPF{digits: digits}, nil
}

func (c CPF) String() string {
	return c.digits
}

func (c CPF) IsEqual(other CPF) bool {
	return c.digits == other.digits
}

func (c CPF) Validate() error {
	if c.digits == "" {
		return errs.NewValueIsRequiredError("cpf")
	}
	return nil
}

func (c CPF) MarshalText() ([]byte, error) {
	return []byte(c.digits), nil
}

func (c *CPF) UnmarshalText(text []byte) error {
	parsed, err := NewCPF(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
