package order

import (
	"fmt"
	"strings"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"
)

// Status represents the lifecycle stage of an order, covering both payment and
// fulfillment.
//
// Expected progression:
//
//	RECEIVED ──> AWAITING_PAYMENT ──> PAID ──> IN_PREPARATION ──> READY ──> FINISHED
//	    │               │
//	    └───────────────┴──────────────────────────────> CANCELLED
//
// The diagram documents the usual flow. Which changes are actually legal is
// decided by the transition rules in transition_rules.go, never by Status alone.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status of a registered order.
	Received

	// AwaitingPayment means checkout has started and payment is pending.
	AwaitingPayment

	// Paid means the payment is settled. A paid order cannot go back to an
	// unpaid status.
	Paid

	// InPreparation means the kitchen is working on the order.
	InPreparation

	// Ready means the order can be picked up.
	Ready

	// Finished means the order was handed to the customer. Final.
	Finished

	// Cancelled means the order was abandoned before payment. Final.
	Cancelled
)

// sequence is the forward progression, Cancelled excluded.
var sequence = []Status{Received, AwaitingPayment, Paid, InPreparation, Ready, Finished}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Received:        "RECEIVED",
		AwaitingPayment: "AWAITING_PAYMENT",
		Paid:            "PAID",
		InPreparation:   "IN_PREPARATION",
		Ready:           "READY",
		Finished:        "FINISHED",
		Cancelled:       "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	valid := getStatusStrings()
	delete(valid, Unknown)
	return valid
}

// StatusFromString parses the textual form ("PAID", "in_preparation", ...).
func StatusFromString(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s belongs to the closed set of statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-snake name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := StatusFromString(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsFinal reports whether no other status may follow s.
func (s Status) IsFinal() bool {
	return s == Finished || s == Cancelled
}

// IsFulfillment reports whether s belongs to the kitchen part of the lifecycle.
func (s Status) IsFulfillment() bool {
	return s == InPreparation || s == Ready || s == Finished
}

// Next returns the successor of s in the forward progression.
// ok is false for Finished, Cancelled and invalid values.
func (s Status) Next() (next Status, ok bool) {
	pos := s.position()
	if pos < 0 || pos == len(sequence)-1 {
		return Unknown, false
	}
	return sequence[pos+1], true
}

// Precedes reports whether s comes before other in the forward progression.
// Cancelled and invalid values precede nothing and are preceded by nothing.
func (s Status) Precedes(other Status) bool {
	a, b := s.position(), other.position()
	return a >= 0 && b >= 0 && a < b
}

// stepsTo returns how many forward steps separate s from other, or -1 when
// either is outside the progression.
func (s Status) stepsTo(other Status) int {
	a, b := s.position(), other.position()
	if a < 0 || b < 0 {
		return -1
	}
	return b - a
}

func (s Status) position() int {
	for i, st := range sequence {
		if st == s {
			return i
		}
	}
	return -1
}
