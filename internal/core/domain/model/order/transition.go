package order

import (
	"errors"
	"fmt"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
)

var (
	// ErrTransitionIsRejected is matched by every TransitionError.
	ErrTransitionIsRejected = errors.New("status transition is rejected")

	ErrStatusIsUnknown        = errors.New("status is unknown")
	ErrStatusIsFinal          = errors.New("status is final")
	ErrPaymentAlreadySettled  = errors.New("payment already settled")
	ErrPaymentIsRequired      = errors.New("payment is required")
	ErrStatusRegresses        = errors.New("status goes backwards")
	ErrStatusSkipsStep        = errors.New("status skips a step")
	ErrStatusIsNotFulfillment = errors.New("status is outside preparation")
)

// Transition is a proposed status change for one order.
type Transition struct {
	OrderID  kernel.UUID
	Current  Status
	Proposed Status
}

func NewTransition(orderID kernel.UUID, current, proposed Status) Transition {
	return Transition{OrderID: orderID, Current: current, Proposed: proposed}
}

// IsNoop reports whether the transition keeps the current status.
func (t Transition) IsNoop() bool {
	return t.Current == t.Proposed
}

func (t Transition) reject(rule error) *TransitionError {
	return &TransitionError{Rule: rule, OrderID: t.OrderID, From: t.Current, To: t.Proposed}
}

// TransitionError names the single rule that vetoed a transition.
//
//	var te *order.TransitionError
//	if errors.As(err, &te) && errors.Is(te, order.ErrPaymentAlreadySettled) { ... }
type TransitionError struct {
	Rule    error
	OrderID kernel.UUID
	From    Status
	To      Status
}

func (e *TransitionError) Error() string {
	if e.OrderID.Validate() != nil {
		return fmt.Sprintf("%s: %v (%s -> %s)", ErrTransitionIsRejected, e.Rule, e.From, e.To)
	}
	return fmt.Sprintf("%s: %v (order %s: %s -> %s)", ErrTransitionIsRejected, e.Rule, e.OrderID, e.From, e.To)
}

func (e *TransitionError) Unwrap() []error {
	return []error{ErrTransitionIsRejected, e.Rule}
}

// TransitionRule checks one invariant. It returns nil when the transition does
// not violate it, letting the next rule of the chain run.
// Rules must be pure functions of their input.
type TransitionRule func(Transition) error

// TransitionValidator decides whether a status transition may happen.
// TransitionChain is the production implementation.
type TransitionValidator interface {
	Run(t Transition) error
}

// TransitionChain runs rules in order and stops at the first rejection.
// The zero value is an empty chain, which accepts every transition.
type TransitionChain struct {
	rules []TransitionRule
}

// NewTransitionChain links rules head to tail in the given order. Nil rules are skipped.
func NewTransitionChain(rules ...TransitionRule) TransitionChain {
	linked := make([]TransitionRule, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			linked = append(linked, r)
		}
	}
	return TransitionChain{rules: linked}
}

// Then returns a new chain with rule appended; c itself is left unchanged.
func (c TransitionChain) Then(rule TransitionRule) TransitionChain {
	rules := make([]TransitionRule, 0, len(c.rules)+1)
	rules = append(rules, c.rules...)
	return NewTransitionChain(append(rules, rule)...)
}

func (c TransitionChain) Len() int {
	return len(c.rules)
}

// Run returns the error of the first rule that rejects t, or nil once every
// rule has passed it on.
func (c TransitionChain) Run(t Transition) error {
	for _, rule := range c.rules {
		if err := rule(t); err != nil {
			return err
		}
	}
	return nil
}

// NewPatchTransitionChain returns the rule set guarding status edits coming
// from partial updates and from unpaid-order expiry.
func NewPatchTransitionChain() TransitionChain {
	return NewTransitionChain(
		RequireKnownStatus,
		RejectLeavingFinalStatus,
		RejectPaymentReversal,
		RequireSettledPayment,
		RejectLateCancellation,
		RejectRegression,
		RejectSkippedStep,
	)
}

// NewProgressTransitionChain returns the rule set used by the kitchen to move a
// paid order through preparation. Payment reversal is not part of it since every
// accepted move leaves PAID; RequireFulfillmentStatus keeps the kitchen from
// settling payments or cancelling.
func NewProgressTransitionChain() TransitionChain {
	return NewTransitionChain(
		RequireKnownStatus,
		RejectLeavingFinalStatus,
		RequireFulfillmentStatus,
		RequireSettledPayment,
		RejectRegression,
		RejectSkippedStep,
	)
}
