package telemetry

import (
	"context"
	"errors"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// InstrumentedValidator counts every transition that goes through the wrapped
// validator, labelled by outcome, target status and, for rejections, the rule.
type InstrumentedValidator struct {
	next    order.TransitionValidator
	counter metric.Int64Counter
	chain   string
}

// NewInstrumentedValidator wraps next. chain names the rule set in the
// "chain" attribute, e.g. "patch" or "progress".
func NewInstrumentedValidator(next order.TransitionValidator, meter metric.Meter, chain string) (*InstrumentedValidator, error) {
	counter, err := meter.Int64Counter(
		"order.status.transitions",
		metric.WithDescription("Order status transitions checked by the rule chain"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, err
	}

	return &InstrumentedValidator{next: next, counter: counter, chain: chain}, nil
}

func (v *InstrumentedValidator) Run(t order.Transition) error {
	err := v.next.Run(t)

	outcome := OutcomeAccepted
	if err != nil {
		outcome = OutcomeRejected
	}
	attrs := []attribute.KeyValue{
		attribute.String("chain", v.chain),
		attribute.String("to", t.Proposed.String()),
		attribute.String("outcome", outcome),
	}

	var rejected *order.TransitionError
	if errors.As(err, &rejected) {
		attrs = append(attrs, attribute.String("rule", rejected.Rule.Error()))
	}

	// The validator interface carries no context; counters do not need one.
	v.counter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	return err
}
