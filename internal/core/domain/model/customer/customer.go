package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"
)

const maxNameLength = 120

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer identifies who placed an order. CPF is unique; uniqueness is
// enforced by storage.
type Customer struct {
	id    kernel.UUID
	cpf   CPF
	name  string
	email string

	isConstructed bool
}

func NewCustomer(id kernel.UUID, cpf CPF, name, email string) (*Customer, error) {
	customer := &Customer{isConstructed: true}

	if err := errors.Join(
		customer.setID(id),
		customer.setCPF(cpf),
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) CPF() CPF {
	return c.cpf
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Snapshot() Snapshot {
	return Snapshot{ID: c.id, CPF: c.cpf, Name: c.name, Email: c.email}
}

// Revise returns a new customer carrying the fields of candidate.
func (c *Customer) Revise(candidate Snapshot) (*Customer, error) {
	if !candidate.ID.IsEqual(c.id) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("snapshot of %s cannot revise customer %s", candidate.ID, c.id),
		)
	}
	return NewCustomer(c.id, candidate.CPF, candidate.Name, candidate.Email)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setCPF(cpf CPF) error {
	if err := cpf.Validate(); err != nil {
		return err
	}
	c.cpf = cpf
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, maxNameLength)
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a bare e-mail address", email))
	}
	c.email = email
	return nil
}
