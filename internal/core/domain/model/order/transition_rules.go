package order

// RequireKnownStatus rejects transitions from or to a value outside the closed set.
func RequireKnownStatus(t Transition) error {
	if t.Current.Validate() != nil || t.Proposed.Validate() != nil {
		return t.reject(ErrStatusIsUnknown)
	}
	return nil
}

// RejectLeavingFinalStatus rejects any change once an order is FINISHED or CANCELLED.
func RejectLeavingFinalStatus(t Transition) error {
	if t.Current.IsFinal() && !t.IsNoop() {
		return t.reject(ErrStatusIsFinal)
	}
	return nil
}

// RejectPaymentReversal rejects moving a PAID order to any other status.
func RejectPaymentReversal(t Transition) error {
	if t.Current == Paid && t.Proposed != Paid {
		return t.reject(ErrPaymentAlreadySettled)
	}
	return nil
}

// RequireSettledPayment rejects entering preparation before the order is paid.
func RequireSettledPayment(t Transition) error {
	if t.Proposed.IsFulfillment() && t.Current.Precedes(Paid) {
		return t.reject(ErrPaymentIsRequired)
	}
	return nil
}

// RejectRegression rejects moving backwards. Cancellation is off the
// progression and never counts as a regression.
func RejectRegression(t Transition) error {
	if t.Proposed != Cancelled && t.Proposed.Precedes(t.Current) {
		return t.reject(ErrStatusRegresses)
	}
	return nil
}

// RejectSkippedStep rejects jumping more than one step forward.
func RejectSkippedStep(t Transition) error {
	if t.Proposed != Cancelled && t.Current.stepsTo(t.Proposed) > 1 {
		return t.reject(ErrStatusSkipsStep)
	}
	return nil
}

// RejectLateCancellation rejects cancelling an order whose payment is settled.
// RejectPaymentReversal already covers PAID; this one also covers the
// fulfillment statuses. Patch chain only: the progress chain never targets
// CANCELLED because RequireFulfillmentStatus rejects it first.
func RejectLateCancellation(t Transition) error {
	if t.Proposed == Cancelled && !t.IsNoop() && !t.Current.Precedes(Paid) {
		return t.reject(ErrPaymentAlreadySettled)
	}
	return nil
}

// RequireFulfillmentStatus rejects any target outside IN_PREPARATION, READY
// and FINISHED. No-ops pass.
func RequireFulfillmentStatus(t Transition) error {
	if !t.Proposed.IsFulfillment() && !t.IsNoop() {
		return t.reject(ErrStatusIsNotFulfillment)
	}
	return nil
}
